package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirFromEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("ENVQ_HOME", tmp)

	if got := Dir(); got != tmp {
		t.Errorf("Dir() = %q, want %q", got, tmp)
	}
	if err := Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := filepath.Join(tmp, "config.yaml"); FilePath() != want {
		t.Errorf("FilePath() = %q, want %q", FilePath(), want)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ENVQ_HOME", t.TempDir())

	if err := Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if Output() != "text" {
		t.Errorf("Output() = %q, want text", Output())
	}
	if LogLevel() != "warn" {
		t.Errorf("LogLevel() = %q, want warn", LogLevel())
	}
	if GetBool(KeyBackup) {
		t.Error("backup should default to false")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "output: json\nredact: true\nrequired_version: \">= 1.0.0\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if Output() != "json" {
		t.Errorf("Output() = %q, want json", Output())
	}
	if !GetBool(KeyRedact) {
		t.Error("redact should be true")
	}
	if Get(KeyRequiredVersion) != ">= 1.0.0" {
		t.Errorf("required_version = %q", Get(KeyRequiredVersion))
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ENVQ_HOME", t.TempDir())
	t.Setenv("ENVQ_LOCK", "true")
	t.Setenv("ENVQ_OUTPUT", "yaml")

	if err := Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !GetBool(KeyLock) {
		t.Error("lock should come from ENVQ_LOCK")
	}
	if Output() != "yaml" {
		t.Errorf("Output() = %q, want yaml", Output())
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: xml\nbogus: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Load(path)
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidConfigError, got %v", err)
	}
	if len(invalid.Issues) < 2 {
		t.Errorf("expected at least 2 issues, got %v", invalid.Issues)
	}
}

func TestSetWritesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("ENVQ_HOME", filepath.Join(tmp, "nested"))
	if err := Load(""); err != nil {
		t.Fatal(err)
	}

	if err := Set(KeyBackup, "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := Set(KeyOutput, "json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(data), "backup: true") {
		t.Errorf("config file missing backup setting:\n%s", data)
	}

	// Reload from disk to confirm types survive.
	if err := Load(""); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !GetBool(KeyBackup) || Output() != "json" {
		t.Errorf("reloaded backup=%v output=%q", GetBool(KeyBackup), Output())
	}
}

func TestSetRejectsBadValues(t *testing.T) {
	t.Setenv("ENVQ_HOME", t.TempDir())
	if err := Load(""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key   string
		value string
	}{
		{"unknown", "x"},
		{KeyOutput, "xml"},
		{KeyLock, "maybe"},
		{KeyLogLevel, "verbose"},
		{KeyRequiredVersion, ""},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if err := Set(tt.key, tt.value); err == nil {
				t.Errorf("Set(%q, %q) succeeded, want error", tt.key, tt.value)
			}
		})
	}

	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("rejected values must not create the config file")
	}
}
