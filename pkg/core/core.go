package core

import (
	"errors"

	"github.com/keysniff/keysniff/internal/engine"
	"github.com/keysniff/keysniff/internal/patterns"
	"github.com/keysniff/keysniff/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Finding = types.Finding
type Registry = patterns.Registry

// DefaultRegistry returns the built-in patterns and ignore names.
func DefaultRegistry() (*Registry, error) {
	return patterns.Defaults()
}

// Scan walks root with reg and returns every finding. Files and directories
// that could not be read do not stop the scan; their errors are joined into
// the returned error alongside the partial findings.
func Scan(root string, reg *Registry) ([]Finding, error) {
	var errs []error
	fs := engine.Scan(engine.Config{
		Root:     root,
		Registry: reg,
		OnError:  func(err error) { errs = append(errs, err) },
	})
	return fs, errors.Join(errs...)
}
