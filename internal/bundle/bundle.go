// Package bundle manages per-run output directories. Every run gets its own
// timestamped directory and never touches a previous run's files, so
// parallel runs cannot conflict.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// New creates the output directory for one run under base, named
// "<name>_<timestamp>", and returns its path.
func New(base, name string) (string, error) {
	dir := filepath.Join(base, Stamp(name, time.Now()))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

// Stamp returns the directory name for a run started at t.
func Stamp(name string, t time.Time) string {
	name = sanitize(name)
	if name == "" {
		name = "highlights"
	}
	return name + "_" + t.Format(timestampLayout)
}

// CopyFile copies src into the bundle at dst.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}

// sanitize keeps directory names portable: spaces become underscores and
// path separators are dropped.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, string(filepath.Separator), "-")
	name = strings.ReplaceAll(name, "..", "")
	return name
}
