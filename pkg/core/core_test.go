package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte(`apikey = "abcdef123456"`), 0o644); err != nil {
		t.Fatal(err)
	}
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	findings, err := Scan(dir, reg)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(findings) != 1 || findings[0].Pattern != "API Key" {
		t.Fatalf("unexpected findings: %#v", findings)
	}
}

func TestScan_ReportsUnreadableRoot(t *testing.T) {
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatal(err)
	}
	findings, err := Scan(filepath.Join(t.TempDir(), "missing"), reg)
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(findings))
	}
}

func TestMarshalUnmarshalFindings(t *testing.T) {
	in := []Finding{{File: "a.txt", Pattern: "JWT", Match: "e****1", Line: 4}}
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}
