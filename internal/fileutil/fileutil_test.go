package fileutil_test

// Notes:
// - ReplaceFile's write-error branch is not tested because triggering disk
//   write failures is platform-specific. We test observable behavior instead:
//   the delete-then-write sequence and the grandparent quirk.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2rst/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestEnsureDir - Directory creation
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates missing ancestors", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "c")
		if err := fileutil.EnsureDir(path); err != nil {
			t.Fatalf("EnsureDir(%q) = %v, want nil", path, err)
		}
		if !fileutil.IsDir(path) {
			t.Errorf("EnsureDir(%q) did not create a directory", path)
		}
	})

	t.Run("idempotent on existing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dir")
		for i := 0; i < 2; i++ {
			if err := fileutil.EnsureDir(path); err != nil {
				t.Fatalf("EnsureDir call %d = %v, want nil", i+1, err)
			}
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("reading parent: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly one directory, got %d entries", len(entries))
		}
	})

	t.Run("blank path is a no-op", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"", "   ", "\t"} {
			if err := fileutil.EnsureDir(path); err != nil {
				t.Errorf("EnsureDir(%q) = %v, want nil", path, err)
			}
		}
	})

	t.Run("path exists as file returns ErrFilesystem", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		err := fileutil.EnsureDir(path)
		if !errors.Is(err, fileutil.ErrFilesystem) {
			t.Errorf("EnsureDir on file = %v, want ErrFilesystem", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRemoveIfPresent - File deletion
// ---------------------------------------------------------------------------

func TestRemoveIfPresent(t *testing.T) {
	t.Parallel()

	t.Run("removes existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		if err := fileutil.RemoveIfPresent(path); err != nil {
			t.Fatalf("RemoveIfPresent(%q) = %v, want nil", path, err)
		}
		if fileutil.FileExists(path) {
			t.Errorf("file %q still exists after RemoveIfPresent", path)
		}
	})

	t.Run("no-op on nonexistent path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "does-not-exist")
		if err := fileutil.RemoveIfPresent(path); err != nil {
			t.Fatalf("RemoveIfPresent(%q) = %v, want nil", path, err)
		}
		if fileutil.FileExists(path) {
			t.Errorf("file %q exists after RemoveIfPresent on nonexistent path", path)
		}
	})

	t.Run("non-empty directory returns ErrFilesystem", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "child"), []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		err := fileutil.RemoveIfPresent(dir)
		if !errors.Is(err, fileutil.ErrFilesystem) {
			t.Errorf("RemoveIfPresent on non-empty dir = %v, want ErrFilesystem", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestReplaceFile - Whole-file replacement
// ---------------------------------------------------------------------------

func TestReplaceFile(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.rst")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		if err := fileutil.ReplaceFile(path, "new content"); err != nil {
			t.Fatalf("ReplaceFile = %v, want nil", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if string(got) != "new content" {
			t.Errorf("content = %q, want %q", got, "new content")
		}
	})

	t.Run("creates file in existing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.rst")
		if err := fileutil.ReplaceFile(path, "hello"); err != nil {
			t.Fatalf("ReplaceFile = %v, want nil", err)
		}
		if !fileutil.FileExists(path) {
			t.Errorf("file %q not created", path)
		}
	})

	t.Run("creates parent when grandparent is missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing-gp", "missing-parent", "doc.rst")
		if err := fileutil.ReplaceFile(path, "hello"); err != nil {
			t.Fatalf("ReplaceFile = %v, want nil", err)
		}
		if !fileutil.FileExists(path) {
			t.Errorf("file %q not created", path)
		}
	})

	t.Run("does not create parent when grandparent exists", func(t *testing.T) {
		t.Parallel()

		// Grandparent (the temp dir) exists, parent does not. The quirk means
		// the parent is not created and the write fails.
		path := filepath.Join(t.TempDir(), "missing-parent", "doc.rst")
		err := fileutil.ReplaceFile(path, "hello")
		if !errors.Is(err, fileutil.ErrFilesystem) {
			t.Errorf("ReplaceFile = %v, want ErrFilesystem", err)
		}
		if fileutil.FileExists(path) {
			t.Errorf("file %q unexpectedly created", path)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary file creation
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		extension string
	}{
		{name: "markdown file", content: "# Test Markdown", extension: "md"},
		{name: "empty content", content: "", extension: "md"},
		{name: "rst content", content: "Title\n=====\n", extension: "rst"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, cleanup, err := fileutil.WriteTempFile(tt.content, tt.extension)
			if err != nil {
				t.Fatalf("WriteTempFile = %v, want nil", err)
			}
			defer cleanup()

			if !strings.HasSuffix(path, "."+tt.extension) {
				t.Errorf("path %q does not end in .%s", path, tt.extension)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading back: %v", err)
			}
			if string(got) != tt.content {
				t.Errorf("content = %q, want %q", got, tt.content)
			}
		})
	}

	t.Run("cleanup removes the file", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("x", "md")
		if err != nil {
			t.Fatalf("WriteTempFile = %v, want nil", err)
		}
		cleanup()
		if fileutil.FileExists(path) {
			t.Errorf("file %q still exists after cleanup", path)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid extension md", extension: "md", wantErr: nil},
		{name: "valid extension rst", extension: "rst", wantErr: nil},
		{name: "empty extension", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "forward slash path traversal", extension: "../etc/passwd", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash path traversal", extension: "..\\windows", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte injection", extension: "rst\x00exe", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPathPredicates - FileExists / IsDir / IsSymlink
// ---------------------------------------------------------------------------

func TestPathPredicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if !fileutil.IsDir(dir) {
		t.Error("IsDir(dir) = false, want true")
	}
	if fileutil.IsDir(file) {
		t.Error("IsDir(file) = true, want false")
	}
	if !fileutil.IsSymlink(link) {
		t.Error("IsSymlink(link) = false, want true")
	}
	if fileutil.IsSymlink(file) {
		t.Error("IsSymlink(file) = true, want false")
	}
}
