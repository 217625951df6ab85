package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kingrea/dream-team/internal/config"
)

// Logger appends timestamped lines to the configured debug log. stdout is
// the hook protocol channel, so nothing here ever writes to it.
type Logger struct {
	file *os.File
}

// New opens the log file configured for cfg. It returns a nil Logger, which
// discards everything, when logging is disabled.
func New(cfg *config.Config) (*Logger, error) {
	return Open(cfg.LogFile())
}

// Open creates (or reuses) the log file at path.
func Open(path string) (*Logger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{file: f}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single timestamped line to the log file.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.ReplaceAll(strings.TrimRight(line, "\n"), "\n", `\n`)
	timestamp := time.Now().Format(time.RFC3339)
	fmt.Fprintf(l.file, "[%s] %s\n", timestamp, line)
}
