package main

import (
	"errors"
	"os"

	md2pptx "github.com/alnah/go-md2pptx"
)

// errUsage marks command-line usage errors.
var errUsage = errors.New("invalid usage")

// Exit codes for the md2pptx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteDeck) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, md2pptx.ErrEmptyMarkdown) ||
		errors.Is(err, md2pptx.ErrInvalidFontConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
