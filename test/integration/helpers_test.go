//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/envq-labs/envq/internal/dotenv"
	"github.com/envq-labs/envq/internal/envio"
)

// setupTestEnv sandboxes the config directory and returns a project
// directory for env files.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("ENVQ_HOME", t.TempDir())
	return t.TempDir()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// edit runs one locked read-modify-write cycle on path, the way the edit
// commands do.
func edit(t *testing.T, path string, opts envio.WriteOptions, mutate func(*dotenv.Document)) {
	t.Helper()
	unlock, err := envio.Lock(context.Background(), path)
	if err != nil {
		t.Errorf("Lock(%s): %v", path, err)
		return
	}
	defer unlock()

	content, err := envio.ReadInput(path, nil)
	if err != nil {
		t.Errorf("ReadInput(%s): %v", path, err)
		return
	}
	doc, err := dotenv.Parse(content)
	if err != nil {
		t.Errorf("Parse(%s): %v", path, err)
		return
	}
	mutate(doc)
	if err := envio.WriteFile(path, []byte(doc.String()), opts); err != nil {
		t.Errorf("WriteFile(%s): %v", path, err)
	}
}

// assertFileContent fails if the file doesn't exist or differs from want.
func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s = %q, want %q", path, string(data), want)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
