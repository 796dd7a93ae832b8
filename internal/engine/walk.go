package engine

import (
	"os"
	"path/filepath"
)

type walker struct {
	cfg Config
	res *Result
}

func (w *walker) skip(path string) {
	if w.cfg.OnSkip != nil {
		w.cfg.OnSkip(path)
	}
}

func (w *walker) fail(err error) {
	if w.cfg.OnError != nil {
		w.cfg.OnError(err)
	}
}

// walk visits the entries of dir depth-first in listing order. A listing or
// stat failure ends the walk of dir only; whatever was already appended to
// the result stays.
func (w *walker) walk(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.fail(&ScanError{Op: OpList, Path: dir, Err: err})
		return
	}
	for _, e := range entries {
		name := e.Name()
		full := filepath.Join(dir, name)
		// Stat follows symlinks, so a link to a directory is descended into.
		info, err := os.Stat(full)
		if err != nil {
			w.fail(&ScanError{Op: OpStat, Path: full, Err: err})
			return
		}
		if w.cfg.Registry.Ignored(name) {
			w.skip(full)
			continue
		}
		switch {
		case info.IsDir():
			w.walk(full)
		case info.Mode().IsRegular():
			fs, err := ScanFile(full, w.cfg.Registry)
			if err != nil {
				w.fail(err)
				continue
			}
			w.res.FilesScanned++
			w.res.Findings = append(w.res.Findings, fs...)
		}
	}
}
