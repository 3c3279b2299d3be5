package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportShippedConfig(t *testing.T) {
	var buf bytes.Buffer
	if !report(&buf, "../../data/thunder.yaml") {
		t.Fatalf("shipped config rejected:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Thunder1") {
		t.Errorf("report does not mention clips:\n%s", buf.String())
	}
}

func TestReportInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tints: [\"orange\"]\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var buf bytes.Buffer
	if report(&buf, path) {
		t.Errorf("invalid config accepted:\n%s", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "❌") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
