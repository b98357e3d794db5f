package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/errors"
)

func TestValidatePath_Traversal(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testPathConfig(tmpDir)

	paths := []string{
		"../export.jsonl",
		filepath.Join(tmpDir, "..", "export.jsonl"),
		"foo/../../export.jsonl",
	}
	for _, p := range paths {
		if err := ValidatePath(p, PathCheckWrite, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("ValidatePath(%q) should reject traversal, got: %v", p, err)
		}
	}
}

func TestValidatePath_Extension(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testPathConfig(tmpDir)

	// Write mode only accepts .jsonl.
	if err := ValidatePath(filepath.Join(tmpDir, "out.txt"), PathCheckWrite, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("write .txt should be rejected, got: %v", err)
	}
	if err := ValidatePath(filepath.Join(tmpDir, "out.md"), PathCheckWrite, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("write .md should be rejected, got: %v", err)
	}
	if err := ValidatePath(filepath.Join(tmpDir, "out.jsonl"), PathCheckWrite, cfg); err != nil {
		t.Errorf("write .jsonl should be accepted, got: %v", err)
	}

	// Read mode accepts .jsonl and .md; the files must exist.
	for _, name := range []string{"in.jsonl", "in.md"} {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte("x\n"), 0600); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if err := ValidatePath(path, PathCheckRead, cfg); err != nil {
			t.Errorf("read %s should be accepted, got: %v", name, err)
		}
	}
	if err := ValidatePath(filepath.Join(tmpDir, "in.txt"), PathCheckRead, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("read .txt should be rejected, got: %v", err)
	}
}

func TestValidatePath_ReadMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testPathConfig(tmpDir)

	err := ValidatePath(filepath.Join(tmpDir, "missing.jsonl"), PathCheckRead, cfg)
	if !errors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("missing read file should return ErrFileNotFound, got: %v", err)
	}
}

func TestValidatePath_DisallowedDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	other := t.TempDir()
	cfg := testPathConfig(tmpDir)

	err := ValidatePath(filepath.Join(other, "out.jsonl"), PathCheckWrite, cfg)
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("path outside allowed dirs should be rejected, got: %v", err)
	}
}

func TestValidatePath_NoSubdirectories(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testPathConfig(tmpDir)

	sub := filepath.Join(tmpDir, "sub")
	if err := os.Mkdir(sub, 0700); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	err := ValidatePath(filepath.Join(sub, "out.jsonl"), PathCheckWrite, cfg)
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("subdirectory of allowed dir should be rejected, got: %v", err)
	}
}

func TestValidatePath_RelativeAllowedPathIgnored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AllowedPaths = []string{"relative/dir"}

	err := ValidatePath(filepath.Join("relative", "dir", "out.jsonl"), PathCheckWrite, cfg)
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("relative allowed_paths entries should not grant access, got: %v", err)
	}
}

func TestValidatePath_SymlinkFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testPathConfig(tmpDir)

	target := filepath.Join(tmpDir, "real.jsonl")
	if err := os.WriteFile(target, []byte("x\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	link := filepath.Join(tmpDir, "link.jsonl")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	err := ValidatePath(link, PathCheckRead, cfg)
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("symlink file should be rejected, got: %v", err)
	}
}

func TestValidatePath_EmptyPath(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := ValidatePath("", PathCheckWrite, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("empty path should be rejected, got: %v", err)
	}
}

func TestValidatePath_UnsafePaths(t *testing.T) {
	other := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true

	// Directory restrictions are lifted.
	if err := ValidatePath(filepath.Join(other, "out.jsonl"), PathCheckWrite, cfg); err != nil {
		t.Errorf("unsafe mode should allow any directory, got: %v", err)
	}

	// Extension and traversal checks still apply.
	if err := ValidatePath(filepath.Join(other, "out.txt"), PathCheckWrite, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("unsafe mode should still enforce extension, got: %v", err)
	}
	if err := ValidatePath("../out.jsonl", PathCheckWrite, cfg); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("unsafe mode should still reject traversal, got: %v", err)
	}
}

func TestSanitizeForFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"strange", "strange"},
		{"Noble Hatter's Violet", "Noble Hatter's Violet"},
		{"a/b\\c", "a-b-c"},
		{"..secret", "secret"},
		{"264;11;kt-3", "264-11-kt-3"},
		{"a--b", "a-b"},
		{"--", "unnamed"},
		{"", "unnamed"},
	}
	for _, tt := range tests {
		if got := SanitizeForFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeForFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDefaultExportsDir(t *testing.T) {
	dir, err := DefaultExportsDir()
	if err != nil {
		t.Fatalf("DefaultExportsDir failed: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}
	if dir != filepath.Join(home, ".skup", "exports") {
		t.Errorf("DefaultExportsDir = %q", dir)
	}
}
