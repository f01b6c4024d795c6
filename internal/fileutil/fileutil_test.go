package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2pptx/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestIsFilePath - Path separators distinguish paths from names
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"compact", false},
		{"fonts.yaml", false},
		{"./fonts.yaml", true},
		{"../shared/fonts.yaml", true},
		{"/etc/md2pptx/fonts.yaml", true},
		{`C:\configs\fonts.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsYAML - Mapping keys and newlines mark inline content
// ---------------------------------------------------------------------------

func TestIsYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"base_sizes:", true},
		{"base_sizes:\n  text: 20", true},
		{"line one\nline two", true},
		{"compact", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsYAML(tt.input); got != tt.want {
			t.Errorf("IsYAML(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Files yes, directories and missing paths no
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("existing file reported as missing")
	}
	if fileutil.FileExists(dir) {
		t.Error("directory reported as file")
	}
	if fileutil.FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("missing file reported as present")
	}
}

// ---------------------------------------------------------------------------
// TestResolveImagePath - Relative paths resolve against the base directory
// ---------------------------------------------------------------------------

func TestResolveImagePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	img := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		src     string
		baseDir string
		want    string
	}{
		{"absolute passes through", img, "other", img},
		{"relative resolves when present", "pic.png", dir, img},
		{"relative stays literal when absent", "missing.png", dir, "missing.png"},
		{"no base directory stays literal", "pic.png", "", "pic.png"},
		{"empty source stays empty", "", dir, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ResolveImagePath(tt.src, tt.baseDir); got != tt.want {
				t.Errorf("ResolveImagePath(%q, %q) = %q, want %q", tt.src, tt.baseDir, got, tt.want)
			}
		})
	}
}
