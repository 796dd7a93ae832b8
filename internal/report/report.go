package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/keysniff/keysniff/internal/types"
)

// Well-known output names, resolved against the working directory.
const (
	JSONFileName = "scan_results.json"
	LogFileName  = "scan_results.log"
)

// FormatLine renders one finding the way it appears in the plain-text log.
func FormatLine(f types.Finding) string {
	return fmt.Sprintf("[%s] Found in %s at line %d → %s", f.Pattern, f.File, f.Line, f.Match)
}

// LoadPrior reads the entries of an existing JSON report. Entries are kept
// as raw JSON so fields this tool does not know survive a rewrite. A missing
// file is an empty history, not an error.
func LoadPrior(path string) ([]json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading existing %s: %w", filepath.Base(path), err)
	}
	var prior []json.RawMessage
	if err := json.Unmarshal(b, &prior); err != nil {
		return nil, fmt.Errorf("error reading existing %s: %w", filepath.Base(path), err)
	}
	return prior, nil
}

// WriteJSON overwrites path with prior followed by findings, pretty-printed.
func WriteJSON(path string, prior []json.RawMessage, findings []types.Finding) error {
	all := make([]any, 0, len(prior)+len(findings))
	for _, p := range prior {
		all = append(all, p)
	}
	for _, f := range findings {
		all = append(all, f)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		return fmt.Errorf("error encoding JSON report: %w", err)
	}
	if err := os.WriteFile(path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")), 0o644); err != nil {
		return fmt.Errorf("error saving JSON report: %w", err)
	}
	return nil
}

// WriteLog overwrites path with one FormatLine per finding, newline-joined,
// with terminal control sequences removed.
func WriteLog(path string, findings []types.Finding) error {
	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = FormatLine(f)
	}
	data := ansi.Strip(strings.Join(lines, "\n"))
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("error saving log file: %w", err)
	}
	return nil
}

// PersistResult reports the outcome of each independent write.
type PersistResult struct {
	JSONPath string
	LogPath  string
	// Total is the number of entries in the JSON report after the merge.
	Total int

	PriorErr error
	JSONErr  error
	LogErr   error
}

// Persist merges findings into the JSON history in dir and rewrites the log.
// A history that cannot be read counts as empty. Both files are always
// attempted.
func Persist(dir string, findings []types.Finding) PersistResult {
	res := PersistResult{
		JSONPath: filepath.Join(dir, JSONFileName),
		LogPath:  filepath.Join(dir, LogFileName),
	}
	prior, err := LoadPrior(res.JSONPath)
	if err != nil {
		res.PriorErr = err
		prior = nil
	}
	res.JSONErr = WriteJSON(res.JSONPath, prior, findings)
	if res.JSONErr == nil {
		res.Total = len(prior) + len(findings)
	}
	res.LogErr = WriteLog(res.LogPath, findings)
	return res
}
