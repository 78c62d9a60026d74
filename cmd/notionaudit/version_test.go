package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version resolution priority.
func TestGetVersion(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		original := version
		defer func() { version = original }()

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("expected v1.2.3, got %q", got)
		}
	})

	t.Run("fallback is non-empty", func(t *testing.T) {
		original := version
		defer func() { version = original }()

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected a non-empty version")
		}
	})
}

// TestGetCommit tests commit resolution priority.
func TestGetCommit(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		original := commit
		defer func() { commit = original }()

		commit = "abc1234"
		if got := getCommit(); got != "abc1234" {
			t.Errorf("expected abc1234, got %q", got)
		}
	})

	t.Run("fallback is non-empty", func(t *testing.T) {
		original := commit
		defer func() { commit = original }()

		commit = ""
		if got := getCommit(); got == "" {
			t.Error("expected a non-empty commit")
		}
	})
}

// TestGetDate tests build date resolution priority.
func TestGetDate(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		original := date
		defer func() { date = original }()

		date = "2026-08-25"
		if got := getDate(); got != "2026-08-25" {
			t.Errorf("expected 2026-08-25, got %q", got)
		}
	})
}

// TestVersionCmd tests the version command output.
func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"notionaudit version", "commit:", "built:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}
