package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notionaudit/notionaudit/internal/config"
)

// runInit executes the init command with the given args.
func runInit(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewInitCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// TestInitCmd tests configuration file generation.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates the file with the placeholder token", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".notionaudit")
		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read generated file: %v", err)
		}
		if !strings.Contains(string(data), config.PlaceholderToken) {
			t.Error("expected the placeholder token in the generated file")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat generated file: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected owner-only permissions, got %o", perm)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".notionaudit")
		if err := os.WriteFile(path, []byte("token: existing"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := runInit(t, "-o", path); err == nil {
			t.Fatal("expected an error for an existing file")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(data) != "token: existing" {
			t.Error("expected the existing file to be untouched")
		}
	})

	t.Run("force overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".notionaudit")
		if err := os.WriteFile(path, []byte("token: existing"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !strings.Contains(string(data), config.PlaceholderToken) {
			t.Error("expected the file to be replaced with the template")
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})

	t.Run("generated file loads and validates as placeholder", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".notionaudit")
		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := config.LoadConfigFile(path)
		if err != nil {
			t.Fatalf("generated file failed to load: %v", err)
		}
		if f.Token != config.PlaceholderToken {
			t.Errorf("expected the placeholder token, got %q", f.Token)
		}
	})
}
