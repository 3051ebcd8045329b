package page

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault_HasEveryRequiredSelector(t *testing.T) {
	p := Default()
	if err := p.Validate(RequiredSelectors...); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if p.Title == "" {
		t.Fatal("Title is empty")
	}
}

func TestDefault_ElementDetails(t *testing.T) {
	p := Default()

	tabs := p.All(Tab)
	if len(tabs) != 3 {
		t.Fatalf("tabs = %d, want 3", len(tabs))
	}
	if tabs[0].Text != "Your designs" || tabs[0].Attr("data-tab") != "designs" {
		t.Fatalf("first tab = %+v", tabs[0])
	}

	nav := p.All(NavButton)
	if len(nav) != 6 {
		t.Fatalf("nav buttons = %d, want 6", len(nav))
	}
	last := nav[len(nav)-1]
	if !reflect.DeepEqual(last.Icons, []string{"fas", "fa-cog"}) {
		t.Fatalf("settings icons = %v", last.Icons)
	}
	if last.Title() != "Settings" || last.Label != "Settings" {
		t.Fatalf("settings title/label = %q/%q", last.Title(), last.Label)
	}

	card, ok := p.First(CategoryCard)
	if !ok {
		t.Fatal("no category card")
	}
	if card.Heading != "Business" || card.Detail == "" {
		t.Fatalf("category card = %+v", card)
	}

	types := p.All(DesignType)
	if types[2].Label != "Social media" || types[2].Index != 2 {
		t.Fatalf("design type = %+v", types[2])
	}

	input, _ := p.First(SearchInput)
	if input.Attr("placeholder") == "" {
		t.Fatal("search input has no placeholder")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	p := Default()
	tabs := p.All(Tab)
	tabs[0].Text = "changed"
	if p.All(Tab)[0].Text == "changed" {
		t.Fatal("All() exposed internal slice")
	}
}

func TestValidate_ReportsEveryMissingSelector(t *testing.T) {
	html := `<html><body>
		<input class="search-input">
		<button class="tab">Templates</button>
		<div class="sidebar"></div>
	</body></html>`
	p, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	err = p.Validate(RequiredSelectors...)
	var missingErr *MissingSelectorsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Validate() = %v, want *MissingSelectorsError", err)
	}
	want := []string{
		SearchArrow, NavButton, DesignType, CategoryCard, DesignCard,
		CreateButton, ProButton, MenuToggle, WhatsNew, DesignTypes,
	}
	if !reflect.DeepEqual(missingErr.Missing, want) {
		t.Fatalf("Missing = %v, want %v", missingErr.Missing, want)
	}
	for _, sel := range want {
		if !strings.Contains(err.Error(), sel) {
			t.Fatalf("error %q does not name %s", err.Error(), sel)
		}
	}
}

func TestValidate_DeduplicatesSelectors(t *testing.T) {
	p, err := Parse(strings.NewReader(`<div></div>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = p.Validate(Tab, Tab, Sidebar)
	var missingErr *MissingSelectorsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Validate() = %v, want *MissingSelectorsError", err)
	}
	if !reflect.DeepEqual(missingErr.Missing, []string{Tab, Sidebar}) {
		t.Fatalf("Missing = %v", missingErr.Missing)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	html := `<html><head><title> My   page </title></head><body><button class="pro-btn" title="Go pro">Pro</button></body></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Title != "My page" {
		t.Fatalf("Title = %q, want %q", p.Title, "My page")
	}
	pro, ok := p.First(ProButton)
	if !ok || pro.Title() != "Go pro" {
		t.Fatalf("pro button = %+v, %v", pro, ok)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Fatal("Load returned nil error for missing file")
	}
}
