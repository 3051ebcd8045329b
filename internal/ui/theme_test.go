package ui

import (
	"reflect"
	"testing"

	"github.com/five82/studio/internal/prefs"
)

func TestThemeNames(t *testing.T) {
	want := []string{ThemeLight, ThemeDark, ThemeHighContrast}
	if got := ThemeNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ThemeNames() = %v, want %v", got, want)
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeHighContrast},
		{ThemeHighContrast, ThemeLight},
		{"Unknown", ThemeLight},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme(ThemeDark).Name; got != ThemeDark {
		t.Fatalf("GetTheme(Dark).Name = %q, want %q", got, ThemeDark)
	}
	if got := GetTheme("Nope").Name; got != ThemeLight {
		t.Fatalf("GetTheme(Nope).Name = %q, want %q", got, ThemeLight)
	}
}

func TestThemeFor(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		fallback string
		want     string
	}{
		{"empty uses fallback", nil, ThemeDark, ThemeDark},
		{"empty unknown fallback", nil, "Nope", ThemeLight},
		{"dark mode", map[string]any{prefs.FieldDarkMode: true}, ThemeLight, ThemeDark},
		{"high contrast beats dark", map[string]any{prefs.FieldDarkMode: true, prefs.FieldHighContrast: true}, ThemeLight, ThemeHighContrast},
		{"explicit theme", map[string]any{prefs.FieldTheme: ThemeDark}, ThemeLight, ThemeDark},
		{"unknown explicit theme", map[string]any{prefs.FieldTheme: "Neon"}, ThemeLight, ThemeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThemeFor(prefs.New(tt.values), tt.fallback); got != tt.want {
				t.Fatalf("ThemeFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithTheme_RoundTrips(t *testing.T) {
	for _, name := range ThemeNames() {
		p := withTheme(prefs.New(map[string]any{prefs.FieldDarkMode: true}), name)
		if got := ThemeFor(p, ThemeLight); got != name {
			t.Fatalf("ThemeFor(withTheme(%q)) = %q", name, got)
		}
	}
}
