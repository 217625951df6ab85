package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenDisabledReturnsNilLogger(t *testing.T) {
	logger, err := Open("  ")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if logger != nil {
		t.Fatalf("expected nil logger when disabled")
	}
	logger.Printf("dropped %d", 1)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close on nil logger: %v", err)
	}
}

func TestPrintfAppendsSingleLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hooks.log")
	logger, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Printf("first %s", "entry")
	logger.Printf("multi\nline\n")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], "] first entry") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], `] multi\nline`) {
		t.Fatalf("line 1 = %q", lines[1])
	}
}
