package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/studio/internal/storage"
)

func TestLoad_MissingKeyUsesDefaults(t *testing.T) {
	p, err := Load(context.Background(), storage.NewMemory())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.DarkMode() || p.HighContrast() || p.Notifications() {
		t.Fatalf("boolean defaults = %v/%v/%v, want all false", p.DarkMode(), p.HighContrast(), p.Notifications())
	}
	if !p.Autosave() {
		t.Fatal("Autosave() = false, want true by default")
	}
	if p.Theme() != "" {
		t.Fatalf("Theme = %q, want empty", p.Theme())
	}
}

func TestLoad_ReadsStoredObject(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	_ = kv.Set(ctx, storage.KeyUserPreferences, `{"darkMode":true,"theme":" Dark ","autosave":false}`)

	p, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !p.DarkMode() {
		t.Fatal("DarkMode() = false, want true")
	}
	if p.Autosave() {
		t.Fatal("Autosave() = true, want false")
	}
	if p.Theme() != "Dark" {
		t.Fatalf("Theme = %q, want %q", p.Theme(), "Dark")
	}
}

func TestLoad_InvalidJSONFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	_ = kv.Set(ctx, storage.KeyUserPreferences, `{{{`)

	p, err := Load(ctx, kv)
	var decodeErr *storage.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Load error = %v, want *storage.DecodeError", err)
	}
	if len(p.Values()) != 0 {
		t.Fatalf("Values = %v, want empty", p.Values())
	}
}

func TestSave_PreservesUnknownFields(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	_ = kv.Set(ctx, storage.KeyUserPreferences, `{"language":"de","layout":{"grid":true}}`)

	p, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := Save(ctx, kv, p.With(FieldHighContrast, true)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !loaded.HighContrast() {
		t.Fatal("HighContrast() = false, want true")
	}
	values := loaded.Values()
	if values["language"] != "de" {
		t.Fatalf("language = %v, want de", values["language"])
	}
	if _, ok := values["layout"].(map[string]any); !ok {
		t.Fatalf("layout = %#v, want nested object", values["layout"])
	}
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	base := New(map[string]any{FieldDarkMode: false})
	next := base.With(FieldDarkMode, true)
	if base.DarkMode() {
		t.Fatal("receiver mutated by With")
	}
	if !next.DarkMode() {
		t.Fatal("With did not set field")
	}
	if base.Equal(next) {
		t.Fatal("Equal() = true for differing values")
	}
	if !next.Equal(New(map[string]any{FieldDarkMode: true})) {
		t.Fatal("Equal() = false for identical values")
	}
}

func TestBool_WrongTypeUsesDefault(t *testing.T) {
	p := New(map[string]any{FieldNotifications: "yes"})
	if p.Notifications() {
		t.Fatal("Notifications() = true for non-boolean value")
	}
}
