// Package output writes the final text blob to its target location.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores conversion results on disk. Safe by default: existing files are
// not replaced unless overwrite was requested.
type Sink struct {
	overwrite bool
}

// NewSink creates a sink with the given overwrite policy.
func NewSink(overwrite bool) *Sink {
	return &Sink{overwrite: overwrite}
}

// CheckTarget validates the target before a conversion starts, so a long run
// never fails at the final write for a reason knowable up front.
func (s *Sink) CheckTarget(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", dir)
	}
	if err != nil {
		return fmt.Errorf("cannot access output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output location is not a directory: %s", dir)
	}

	if _, err := os.Stat(path); err == nil && !s.overwrite {
		return fmt.Errorf("output file already exists: %s (use --overwrite to replace it)", path)
	}
	return nil
}

// Write stores text at path, honoring the overwrite policy. The target is
// re-checked at write time in case it appeared during the conversion.
func (s *Sink) Write(path, text string) error {
	if err := s.CheckTarget(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
