package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.env")
	if err := os.WriteFile(path, []byte("A=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}

func TestFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	tmp := t.TempDir()
	path := filepath.Join(tmp, "secret.env")
	if err := os.WriteFile(path, []byte("A=1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatal(err)
	}

	mode, err := FileMode(path)
	if err != nil {
		t.Fatalf("FileMode failed: %v", err)
	}
	if mode != 0600 {
		t.Errorf("FileMode = %o, want %o", mode, 0600)
	}
}

func TestFileModeMissingFile(t *testing.T) {
	mode, err := FileMode(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("FileMode failed: %v", err)
	}
	if mode != DefaultFileMode {
		t.Errorf("FileMode = %o, want %o", mode, DefaultFileMode)
	}
}
