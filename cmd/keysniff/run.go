package keysniff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/keysniff/keysniff/internal/config"
	"github.com/keysniff/keysniff/internal/console"
	"github.com/keysniff/keysniff/internal/engine"
	"github.com/keysniff/keysniff/internal/patterns"
	"github.com/keysniff/keysniff/internal/report"
)

func run(opts Options, root string) error {
	out := console.New(opts.Stdout, opts.Stderr)

	wd := opts.WorkDir
	if wd == "" {
		d, err := os.Getwd()
		if err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("resolving working directory: %w", err)}
		}
		wd = d
	}

	reg, err := loadRegistry(out, wd)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	scanRoot := root
	if opts.WorkDir != "" && !filepath.IsAbs(root) {
		scanRoot = filepath.Join(opts.WorkDir, root)
	}
	out.Info("Scanning directory: %s", root)
	res := engine.ScanWithStats(engine.Config{
		Root:     scanRoot,
		Registry: reg,
		OnSkip:   out.Skip,
		OnError:  out.Err,
	})
	for _, f := range res.Findings {
		out.Finding(report.FormatLine(f))
	}
	report.PrintSummary(opts.Stdout, res.Findings, report.SummaryOptions{
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
	})

	pr := report.Persist(wd, res.Findings)
	if pr.PriorErr != nil {
		out.Err(pr.PriorErr)
	}
	if pr.JSONErr != nil {
		out.Err(pr.JSONErr)
	} else {
		out.Success("JSON report saved: %s (%d entries)", pr.JSONPath, pr.Total)
	}
	if pr.LogErr != nil {
		out.Err(pr.LogErr)
	} else {
		out.Success("Log saved: %s", pr.LogPath)
	}
	out.Success("Scan complete!")
	return nil
}

// loadRegistry builds the pattern registry for this run. Only a broken
// built-in set is fatal; any problem with the customization file falls back
// to the defaults with a notice.
func loadRegistry(out *console.Printer, wd string) (*patterns.Registry, error) {
	base, err := patterns.Defaults()
	if err != nil {
		return nil, err
	}
	fc, path, err := config.LoadLocal(wd)
	switch {
	case errors.Is(err, config.ErrNoConfig):
		out.Warn("No %s found. Using only default patterns and ignored paths.", config.FileNames[0])
		return base, nil
	case err != nil:
		out.Error("Error loading %s: %v. Using only default patterns and ignored paths.", filepath.Base(path), err)
		return base, nil
	}
	if fc.Empty() {
		out.Warn("%s has no patterns or ignored_paths. Using only default patterns and ignored paths.", filepath.Base(path))
		return base, nil
	}
	out.Info("Loading additional customizations from %s...", filepath.Base(path))
	reg, err := base.Extend(fc)
	if err != nil {
		out.Error("Error loading %s: %v. Using only default patterns and ignored paths.", filepath.Base(path), err)
		return base, nil
	}
	return reg, nil
}
