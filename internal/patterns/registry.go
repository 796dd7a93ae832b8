package patterns

import (
	"fmt"
	"regexp"

	"github.com/keysniff/keysniff/internal/config"
)

// Pattern is a named, compiled expression.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
}

// Registry is the ordered pattern list and ignore set for one run.
type Registry struct {
	patterns []Pattern
	ignored  map[string]struct{}
}

// Defaults returns a registry holding only the built-in patterns and ignore
// names. An error here means the binary itself is broken.
func Defaults() (*Registry, error) {
	r := &Registry{
		patterns: make([]Pattern, 0, len(builtins)),
		ignored:  make(map[string]struct{}, len(defaultIgnored)),
	}
	for _, b := range builtins {
		re, err := regexp.Compile(b.expr)
		if err != nil {
			return nil, fmt.Errorf("built-in pattern %q: %w", b.name, err)
		}
		r.patterns = append(r.patterns, Pattern{Name: b.name, Regex: re})
	}
	for _, name := range defaultIgnored {
		r.ignored[name] = struct{}{}
	}
	return r, nil
}

// Compile builds a Pattern from a delimiter-wrapped expression.
func Compile(name, literal string) (Pattern, error) {
	body, flags, err := ParseLiteral(literal)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	prefix, err := inlineFlags(flags)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	re, err := regexp.Compile(prefix + body)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	return Pattern{Name: name, Regex: re}, nil
}

// Extend returns a new registry with the custom patterns of cfg appended after
// r's patterns and cfg's ignored paths added to r's ignore set. Built-ins are
// never replaced, even on a name collision. If any custom pattern fails to
// compile, no customization is applied and r is left as it was.
func (r *Registry) Extend(cfg config.FileConfig) (*Registry, error) {
	custom := make([]Pattern, 0, len(cfg.Patterns))
	for _, e := range cfg.Patterns {
		p, err := Compile(e.Name, e.Expr)
		if err != nil {
			return nil, err
		}
		custom = append(custom, p)
	}
	out := &Registry{
		patterns: make([]Pattern, 0, len(r.patterns)+len(custom)),
		ignored:  make(map[string]struct{}, len(r.ignored)+len(cfg.IgnoredPaths)),
	}
	out.patterns = append(out.patterns, r.patterns...)
	out.patterns = append(out.patterns, custom...)
	for name := range r.ignored {
		out.ignored[name] = struct{}{}
	}
	for _, name := range cfg.IgnoredPaths {
		out.ignored[name] = struct{}{}
	}
	return out, nil
}

// Patterns returns the patterns in registration order.
func (r *Registry) Patterns() []Pattern {
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Ignored reports whether a file or directory with the given base name is
// skipped.
func (r *Registry) Ignored(name string) bool {
	_, ok := r.ignored[name]
	return ok
}
