// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// inline content or a name. A string containing path separators (/, \) is
// treated as a path.
//
// Examples:
//   - "compact" -> false (name)
//   - "./fonts.yaml" -> true (relative path)
//   - "../shared/fonts.yaml" -> true (parent path)
//   - "/etc/md2pptx/fonts.yaml" -> true (absolute)
//   - "C:\configs\fonts.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsYAML returns true if the string looks like inline YAML content rather
// than a bare name: a mapping key ("base_sizes:") or a document with
// newlines. Single-line names without separators stay names.
func IsYAML(s string) bool {
	return strings.Contains(s, ":") || strings.Contains(s, "\n")
}

// ResolveImagePath resolves an image reference from a Markdown document.
// Absolute paths pass through. Relative paths resolve against baseDir when
// the candidate exists there. Otherwise the literal string is returned and
// failure is deferred to the deck writer at placement time.
func ResolveImagePath(src, baseDir string) string {
	if src == "" || filepath.IsAbs(src) {
		return src
	}
	if baseDir != "" {
		candidate := filepath.Join(baseDir, src)
		if FileExists(candidate) {
			return candidate
		}
	}
	return src
}
