// Package fileutil provides idempotent file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrFilesystem             = errors.New("filesystem operation failed")
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// filePermissions applies to files written by ReplaceFile.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// EnsureDir creates path and all missing ancestors, like `mkdir -p`.
// Succeeds silently if path already exists as a directory.
// A blank path is a no-op.
func EnsureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("%w: creating directory %s: %v", ErrFilesystem, path, err)
	}
	return nil
}

// RemoveIfPresent deletes the file at path, like `rm -f`.
// Succeeds silently if the file does not exist.
func RemoveIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing %s: %v", ErrFilesystem, path, err)
	}
	return nil
}

// ReplaceFile guarantees the file at path ends up containing exactly content.
// It deletes any existing file, creates missing parent directories when the
// grandparent directory is absent, then writes the content.
//
// NOT atomic: a failure between the delete and the write leaves path absent.
// Callers must not rely on crash-safety, and concurrent invocations targeting
// the same path must be serialized by the caller.
func ReplaceFile(path, content string) error {
	if err := RemoveIfPresent(path); err != nil {
		return err
	}

	// Quirk preserved from the original distribution script: the parent is
	// only created when the grandparent is missing. A present grandparent
	// with an absent parent makes the write fail.
	parent := filepath.Dir(path)
	if !IsDir(filepath.Dir(parent)) {
		if err := EnsureDir(parent); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrFilesystem, path, err)
	}
	return nil
}

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "md2rst-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir returns true if the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsSymlink returns true if the path itself is a symbolic link,
// regardless of whether its target exists.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
