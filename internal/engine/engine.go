package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/keysniff/keysniff/internal/mask"
	"github.com/keysniff/keysniff/internal/patterns"
	"github.com/keysniff/keysniff/internal/types"
)

// Operations reported in a ScanError.
const (
	OpRead = "read"
	OpList = "list"
	OpStat = "stat"
)

// ErrNotText is wrapped by read errors for files that are not valid UTF-8.
var ErrNotText = errors.New("not valid UTF-8 text")

// ScanError records a recovered per-file or per-directory failure.
type ScanError struct {
	Op   string
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	switch e.Op {
	case OpRead:
		return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
	case OpList:
		return fmt.Sprintf("error scanning directory %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("error inspecting %s: %v", e.Path, e.Err)
	}
}

func (e *ScanError) Unwrap() error { return e.Err }

// Config controls a scan.
type Config struct {
	Root     string
	Registry *patterns.Registry

	// OnSkip is called with the full path of every ignored entry.
	OnSkip func(path string)
	// OnError is called with a *ScanError for every recovered failure.
	OnError func(err error)
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
}

// ScanFile reads path and returns one finding per (line, pattern) match, in
// line order and then registry order. Only the first match of a pattern on a
// line is recorded. On a read failure it returns no findings and a *ScanError.
func ScanFile(path string, reg *patterns.Registry) ([]types.Finding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ScanError{Op: OpRead, Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return nil, &ScanError{Op: OpRead, Path: path, Err: ErrNotText}
	}
	return scanLines(path, string(b), reg.Patterns()), nil
}

func scanLines(path, content string, ps []patterns.Pattern) []types.Finding {
	var out []types.Finding
	for i, line := range strings.Split(content, "\n") {
		for _, p := range ps {
			loc := p.Regex.FindStringIndex(line)
			if loc == nil {
				continue
			}
			out = append(out, types.Finding{
				File:    path,
				Pattern: p.Name,
				Match:   mask.Value(line[loc[0]:loc[1]]),
				Line:    i + 1,
			})
		}
	}
	return out
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) []types.Finding {
	return ScanWithStats(cfg).Findings
}

// ScanWithStats walks cfg.Root and returns findings along with timing and
// counts. It never fails as a whole; failures below the root are passed to
// cfg.OnError and the walk continues elsewhere.
func ScanWithStats(cfg Config) Result {
	var res Result
	started := time.Now()
	w := walker{cfg: cfg, res: &res}
	w.walk(cfg.Root)
	res.Duration = time.Since(started)
	return res
}
