package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keysniff/keysniff/internal/config"
	"github.com/keysniff/keysniff/internal/patterns"
	"github.com/keysniff/keysniff/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *patterns.Registry {
	t.Helper()
	r, err := patterns.Defaults()
	require.NoError(t, err)
	return r
}

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestScanFile_LineNumbersAndMasking(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "settings.py")
	write(t, p, "# settings\nDEBUG = True\npassword = \"hunter22\"\n")

	fs, err := ScanFile(p, defaults(t))
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, types.Finding{
		File:    p,
		Pattern: "Basic Password",
		Match:   "p" + strings.Repeat("*", len(`password = "hunter22"`)-2) + `"`,
		Line:    3,
	}, fs[0])
	assert.NotContains(t, fs[0].Match, "hunter22")
}

func TestScanFile_MultiplePatternsPerLineInRegistryOrder(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".envrc")
	write(t, p, `export DB_PASSWORD="s3cretpass" PG_PORT=5432`)

	fs, err := ScanFile(p, defaults(t))
	require.NoError(t, err)
	var got []string
	for _, f := range fs {
		got = append(got, f.Pattern)
		assert.Equal(t, 1, f.Line)
	}
	assert.Equal(t, []string{"Database Password", "Database Port", "Basic Password"}, got)
}

func TestScanFile_FirstMatchOnlyPerLine(t *testing.T) {
	base := defaults(t)
	reg, err := base.Extend(config.FileConfig{Patterns: config.PatternList{{Name: "Custom", Expr: `/foo\d+/i`}}})
	require.NoError(t, err)

	dir := t.TempDir()
	p := filepath.Join(dir, "notes.txt")
	write(t, p, "foo1 FOO22 foo333\nnothing here\nfoo123")

	fs, err := ScanFile(p, reg)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, "Custom", fs[0].Pattern)
	assert.Equal(t, 1, fs[0].Line)
	assert.Equal(t, "****", fs[0].Match)
	assert.Equal(t, 3, fs[1].Line)
	assert.Equal(t, "f****3", fs[1].Match)
}

func TestScanFile_TrailingNewlineCountsAsLine(t *testing.T) {
	base := defaults(t)
	reg, err := base.Extend(config.FileConfig{Patterns: config.PatternList{{Name: "Empty", Expr: "/^$/"}}})
	require.NoError(t, err)

	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	write(t, p, "x\n")
	fs, err := ScanFile(p, reg)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, 2, fs[0].Line)
	assert.Equal(t, "****", fs[0].Match)
}

func TestScanFile_ReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ScanFile(filepath.Join(dir, "missing.txt"), defaults(t))
	var se *ScanError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpRead, se.Op)

	bin := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(bin, []byte{0xff, 0xfe, 'p', 'a', 's', 's'}, 0o644))
	fs, err := ScanFile(bin, defaults(t))
	assert.Empty(t, fs)
	assert.True(t, errors.Is(err, ErrNotText))
}

func TestScanWithStats_Basic(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "config.txt"), "apikey = 'abcdef123456'")
	write(t, filepath.Join(dir, "readme.md"), "nothing to see")

	res := ScanWithStats(Config{Root: dir, Registry: defaults(t)})
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "API Key", res.Findings[0].Pattern)
	assert.Equal(t, 2, res.FilesScanned)
}
