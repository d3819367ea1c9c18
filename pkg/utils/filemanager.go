// =============================================================================
// Seatcard Sorter - File Management Utilities
// =============================================================================
//
// Path helpers used by the command layer before any file is read or written:
//   - deriving the default target path from the source path
//   - checking that input files exist and that a target does not
//
// =============================================================================

package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultTargetPath derives a target path next to source, replacing the
// source extension with suffix.
//
// EXAMPLE:
//   DefaultTargetPath("/data/oct.csv", ".sorted.csv") -> "/data/oct.sorted.csv"
func DefaultTargetPath(source, suffix string) string {
	dir := filepath.Dir(source)
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+suffix)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RequireFile returns an error naming the flag when path does not exist.
func RequireFile(flag, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("--%s file not found: %s", flag, path)
	}
	if info.IsDir() {
		return errors.Errorf("--%s is a directory: %s", flag, path)
	}
	return nil
}

// RequireAbsent returns an error when path already exists.
func RequireAbsent(flag, path string) error {
	if FileExists(path) {
		return errors.Errorf("--%s file already exists: %s", flag, path)
	}
	return nil
}
