package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by LoadLocal when no configuration file exists.
// It is the normal path, not a failure.
var ErrNoConfig = errors.New("no local config")

// FileNames lists the configuration files LoadLocal looks for, in order.
var FileNames = []string{"config.json", "config.yaml", "config.yml"}

// NamedExpr is one custom pattern entry: a name and its delimiter-wrapped
// expression, e.g. {"Custom", "/foo\\d+/i"}.
type NamedExpr struct {
	Name string
	Expr string
}

// PatternList keeps custom pattern entries in document order. A name that
// appears twice keeps its first position and its last expression.
type PatternList []NamedExpr

func (l PatternList) set(name, expr string, index map[string]int) PatternList {
	if i, ok := index[name]; ok {
		l[i].Expr = expr
		return l
	}
	index[name] = len(l)
	return append(l, NamedExpr{Name: name, Expr: expr})
}

// UnmarshalYAML decodes a mapping of name -> expression string while
// preserving key order, which a Go map would lose.
func (l *PatternList) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		*l = nil
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: patterns must be a mapping of name to expression", n.Line)
	}
	out := make(PatternList, 0, len(n.Content)/2)
	index := map[string]int{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode || v.Tag != "!!str" {
			return fmt.Errorf("line %d: pattern %q must be a string", v.Line, k.Value)
		}
		out = out.set(k.Value, v.Value, index)
	}
	*l = out
	return nil
}

// StringList is a sequence whose items must all be strings.
type StringList []string

// UnmarshalYAML rejects numbers, booleans and nulls instead of converting
// them to their textual form.
func (l *StringList) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		*l = nil
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: ignored_paths must be a list of names", n.Line)
	}
	out := make(StringList, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
			return fmt.Errorf("line %d: ignored_paths entries must be strings", item.Line)
		}
		out = append(out, item.Value)
	}
	*l = out
	return nil
}

// FileConfig is the on-disk configuration shape. Both fields are optional.
type FileConfig struct {
	Patterns     PatternList `yaml:"patterns"`
	IgnoredPaths StringList  `yaml:"ignored_paths"`
}

// Empty reports whether the config carries no customization.
func (fc FileConfig) Empty() bool {
	return len(fc.Patterns) == 0 && len(fc.IgnoredPaths) == 0
}

// LoadFile reads a configuration file. Files ending in .json are decoded with
// JSON semantics; anything else is read as YAML.
func LoadFile(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	var cfg FileConfig
	if strings.EqualFold(filepath.Ext(path), ".json") {
		cfg, err = decodeJSON(b)
	} else {
		err = yaml.Unmarshal(b, &cfg)
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadLocal searches dir for the first of FileNames and loads it. It returns
// the path it loaded so callers can name it in messages.
func LoadLocal(dir string) (FileConfig, string, error) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFile(p)
			return cfg, p, err
		}
	}
	return FileConfig{}, "", ErrNoConfig
}
