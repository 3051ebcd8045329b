package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/studio/internal/page"
)

// runCLI executes one command against an isolated config and storage.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	base := []string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--storage", filepath.Join(dir, "storage.db"),
	}
	cmd := NewRootCmd()
	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&outBuf)
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return outBuf.String(), err
}

func TestStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if _, err := runCLI(t, dir, "storage", "set", "recentDesigns", `[{"title":"Poster"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err := runCLI(t, dir, "storage", "get", "--raw", "recentDesigns")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != `[{"title":"Poster"}]` {
		t.Fatalf("get = %q", out)
	}

	out, err = runCLI(t, dir, "storage", "get", "recentDesigns")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, "\"title\": \"Poster\"") {
		t.Fatalf("indented get = %q", out)
	}

	out, err = runCLI(t, dir, "storage", "keys")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if strings.TrimSpace(out) != "recentDesigns" {
		t.Fatalf("keys = %q", out)
	}

	if _, err := runCLI(t, dir, "storage", "rm", "recentDesigns"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	_, err = runCLI(t, dir, "storage", "get", "recentDesigns")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("get after rm error = %v, want ErrKeyNotFound", err)
	}
}

func TestStorageSetRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	_, err := runCLI(t, dir, "storage", "set", "userPreferences", "{darkMode")
	if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("err = %v, want invalid JSON error", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "storage.db")); statErr == nil {
		t.Fatal("storage opened for an invalid value")
	}
}

func TestStorageExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if _, err := runCLI(t, dir, "storage", "set", "templateCategories", `[{"name":"Business"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	target := filepath.Join(dir, "studio.xlsx")
	out, err := runCLI(t, dir, "storage", "export", target)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "wrote "+target) {
		t.Fatalf("export output = %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
}

func TestPageCheck(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	out, err := runCLI(t, dir, "page", "check")
	if err != nil {
		t.Fatalf("page check on embedded template: %v", err)
	}
	if !strings.Contains(out, ".nav-btn") {
		t.Fatalf("page check output = %q", out)
	}

	broken := filepath.Join(dir, "broken.html")
	if err := os.WriteFile(broken, []byte(`<html><body><input class="search-input"></body></html>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	_, err = runCLI(t, dir, "--page", broken, "page", "check")
	var missing *page.MissingSelectorsError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingSelectorsError", err)
	}
	if len(missing.Missing) != len(page.RequiredSelectors)-1 {
		t.Fatalf("missing = %v", missing.Missing)
	}
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	out, err := runCLI(t, dir, "search", "logo")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, want := range []string{"logo Template 1", "Modern logo Design", "No suggestions"} {
		if !strings.Contains(out, want) {
			t.Fatalf("search output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, dir, "search", "card")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Suggestions: Business cards") {
		t.Fatalf("search output = %q", out)
	}

	if _, err := runCLI(t, dir, "search", " "); err == nil {
		t.Fatal("blank query accepted")
	}
}
