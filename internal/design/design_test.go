package design

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		name   string
		attr   string
		text   string
		want   Tab
		wantOK bool
	}{
		{"attribute wins", "designs", "Templates", TabDesigns, true},
		{"attribute ai", "AI", "", TabAI, true},
		{"text your designs", "", "Your designs", TabDesigns, true},
		{"text templates", "", "Templates", TabTemplates, true},
		{"text canva ai", "", "Canva AI", TabAI, true},
		{"your designs before templates", "", "Your designs and Templates", TabDesigns, true},
		{"unknown attribute falls back to text", "bogus", "Canva AI", TabAI, true},
		{"case sensitive text", "", "templates", TabTemplates, false},
		{"no match", "", "Docs", TabTemplates, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTab(tt.attr, tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ParseTab(%q, %q) = %v, %v, want %v, %v", tt.attr, tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseDestination(t *testing.T) {
	tests := []struct {
		name   string
		attr   string
		icons  []string
		want   Destination
		wantOK bool
	}{
		{"attribute", "settings", nil, DestSettings, true},
		{"attribute case insensitive", " Brand ", nil, DestBrand, true},
		{"home icon", "", []string{"fas", "fa-home"}, DestHome, true},
		{"folder icon", "", []string{"fas", "fa-folder-open"}, DestProjects, true},
		{"image icon", "", []string{"fa-image"}, DestImages, true},
		{"palette icon", "", []string{"fa-palette"}, DestBrand, true},
		{"grid icon", "", []string{"fa-th"}, DestApps, true},
		{"cog icon", "", []string{"fa-cog"}, DestSettings, true},
		{"destination order decides", "", []string{"fa-cog", "fa-image"}, DestImages, true},
		{"unmatched", "", []string{"fa-star"}, DestHome, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDestination(tt.attr, tt.icons)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ParseDestination(%q, %v) = %v, %v, want %v, %v", tt.attr, tt.icons, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDestinationLabel(t *testing.T) {
	if got := DestSettings.Label(); got != "Settings" {
		t.Fatalf("Label() = %q, want %q", got, "Settings")
	}
	if got := Destination(42).String(); got != "unknown" {
		t.Fatalf("String() = %q, want %q", got, "unknown")
	}
}

func TestMockResults(t *testing.T) {
	got := MockResults("logo")
	want := []Result{
		{Title: "logo Template 1", Type: "template", Premium: false},
		{Title: "logo Template 2", Type: "template", Premium: true},
		{Title: "Professional logo", Type: "template", Premium: false},
		{Title: "Modern logo Design", Type: "template", Premium: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MockResults(logo) = %#v, want %#v", got, want)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"res", []string{"Resume templates"}},
		{"S", []string{"Resume templates", "Business cards", "Social media posts", "Flyers", "Presentations"}},
		{"card", []string{"Business cards"}},
		{"POSTS", []string{"Social media posts"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Suggest(tt.query)
			if got == nil {
				t.Fatalf("Suggest(%q) = nil, want non-nil slice", tt.query)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFragments(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"slug collapses whitespace", Slug("Social  Media\tPost"), "social-media-post"},
		{"editor", EditorFragment("Social media"), "#editor/social-media"},
		{"existing", ExistingEditorFragment("Summer Sale Flyer"), "#editor/existing/summer-sale-flyer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestNewRecentDesign(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := NewRecentDesign("flyer", now)
	if rec.ID == "" {
		t.Fatal("ID is empty")
	}
	if rec.Title != "Untitled Flyer" {
		t.Fatalf("Title = %q, want %q", rec.Title, "Untitled Flyer")
	}
	if !rec.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt = %v, want %v", rec.CreatedAt, now)
	}

	other := NewRecentDesign("poster", now)
	if other.Title != "poster" {
		t.Fatalf("Title = %q, want %q", other.Title, "poster")
	}
	if other.ID == rec.ID {
		t.Fatal("IDs should be unique")
	}
}

func TestPrependRecent(t *testing.T) {
	var existing []json.RawMessage
	for i := 0; i < MaxRecentDesigns; i++ {
		existing = append(existing, json.RawMessage(`{"title":"old"}`))
	}

	got, err := PrependRecent(existing, NewRecentDesign("resume", time.Now()))
	if err != nil {
		t.Fatalf("PrependRecent: %v", err)
	}
	if len(got) != MaxRecentDesigns {
		t.Fatalf("len = %d, want %d", len(got), MaxRecentDesigns)
	}
	if label := EntryLabel(got[0]); label != "Untitled Resume" {
		t.Fatalf("head = %q, want %q", label, "Untitled Resume")
	}
}

func TestEntryLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"title":"Poster"}`, "Poster"},
		{`{"name":"Marketing"}`, "Marketing"},
		{`{"title":"  ","name":"Fallback"}`, "Fallback"},
		{`{ "id": 7 }`, `{"id":7}`},
		{`"plain"`, `"plain"`},
		{`[1, 2]`, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := EntryLabel(json.RawMessage(tt.raw)); got != tt.want {
				t.Fatalf("EntryLabel(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
