package main

import (
	"errors"
	"os"

	md2rst "github.com/alnah/go-md2rst"
	"github.com/alnah/go-md2rst/internal/config"
)

// Exit codes for the md2rst CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful resolution
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or malformed input document
	ExitIO        = 3 // File not found, permission denied
	ExitConverter = 4 // pandoc unavailable or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter errors (exit 4)
	if errors.Is(err, md2rst.ErrConversion) {
		return ExitConverter
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2rst.ErrSourceNotFound) ||
		errors.Is(err, md2rst.ErrFilesystem) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2rst.ErrEmptyMarkdown) ||
		errors.Is(err, md2rst.ErrMalformedDocument) {
		return ExitUsage
	}

	return ExitGeneral
}
