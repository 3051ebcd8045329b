// Package page loads the landing page template and extracts the interactive
// elements the UI binds to.
package page

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

//go:embed landing.html
var defaultTemplate string

// Selectors of the interactive elements and panels.
const (
	SearchInput  = ".search-input"
	SearchArrow  = ".search-arrow"
	Tab          = ".tab"
	NavButton    = ".nav-btn"
	DesignType   = ".design-type"
	CategoryCard = ".category-card"
	DesignCard   = ".design-card"
	CreateButton = ".create-btn"
	ProButton    = ".pro-btn"
	MenuToggle   = ".menu-toggle"
	Sidebar      = ".sidebar"
	WhatsNew     = ".whats-new"
	DesignTypes  = ".design-types"
)

// RequiredSelectors must all match at least one element.
var RequiredSelectors = []string{
	SearchInput, SearchArrow, Tab, NavButton, DesignType, CategoryCard,
	DesignCard, CreateButton, ProButton, MenuToggle, Sidebar, WhatsNew, DesignTypes,
}

// Element is one matched node, reduced to what the UI renders and dispatches on.
type Element struct {
	Selector string
	Index    int
	// Text is the condensed text content.
	Text string
	// Heading is the text of the first h3, Label of the first span,
	// Detail of the first p.
	Heading string
	Label   string
	Detail  string
	// Icons are the classes of the first <i> child.
	Icons []string
	Attrs map[string]string
}

// Attr returns the attribute value or "".
func (e Element) Attr(name string) string {
	return e.Attrs[name]
}

// Title is the tooltip text of the element.
func (e Element) Title() string {
	return e.Attrs["title"]
}

// Page is a parsed landing page template.
type Page struct {
	Title    string
	elements map[string][]Element
}

// MissingSelectorsError lists every selector with no match in the template.
type MissingSelectorsError struct {
	Missing []string
}

func (e *MissingSelectorsError) Error() string {
	return fmt.Sprintf("page template is missing required elements: %s", strings.Join(e.Missing, ", "))
}

// Load parses the template at path, or the embedded landing page when path
// is empty.
func Load(path string) (*Page, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(strings.NewReader(defaultTemplate))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page template: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded landing page.
func Default() *Page {
	p, err := Parse(strings.NewReader(defaultTemplate))
	if err != nil {
		panic(fmt.Sprintf("embedded landing page: %v", err))
	}
	return p
}

// Parse reads a template and collects the elements of every known selector.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	p := &Page{
		Title:    textCondense(doc.Find("title").First().Text()),
		elements: make(map[string][]Element, len(RequiredSelectors)),
	}
	for _, sel := range RequiredSelectors {
		doc.Find(sel).Each(func(i int, s *goquery.Selection) {
			p.elements[sel] = append(p.elements[sel], extract(sel, i, s))
		})
	}
	return p, nil
}

// Validate reports every selector in selectors that matched nothing.
func (p *Page) Validate(selectors ...string) error {
	var missing []string
	for _, sel := range selectors {
		if len(p.elements[sel]) == 0 && !slices.Contains(missing, sel) {
			missing = append(missing, sel)
		}
	}
	if len(missing) > 0 {
		return &MissingSelectorsError{Missing: missing}
	}
	return nil
}

// All returns the elements matched by selector in document order.
func (p *Page) All(selector string) []Element {
	return slices.Clone(p.elements[selector])
}

// First returns the first element matched by selector.
func (p *Page) First(selector string) (Element, bool) {
	els := p.elements[selector]
	if len(els) == 0 {
		return Element{}, false
	}
	return els[0], true
}

func extract(selector string, index int, s *goquery.Selection) Element {
	el := Element{
		Selector: selector,
		Index:    index,
		Text:     textCondense(s.Text()),
		Heading:  first(s.Find("h3")),
		Label:    first(s.Find("span")),
		Detail:   first(s.Find("p")),
		Attrs:    map[string]string{},
	}
	if icon := s.Find("i").First(); icon.Length() != 0 {
		if class, ok := icon.Attr("class"); ok {
			el.Icons = strings.Fields(class)
		}
	}
	if len(s.Nodes) > 0 {
		for _, a := range s.Nodes[0].Attr {
			el.Attrs[a.Key] = a.Val
		}
	}
	return el
}

func first(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return textCondense(sel.First().Text())
}

func textCondense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
