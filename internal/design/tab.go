package design

import "strings"

// Tab is the selected content tab of the landing page.
type Tab int

const (
	TabTemplates Tab = iota
	TabDesigns
	TabAI
)

func (t Tab) String() string {
	switch t {
	case TabDesigns:
		return "designs"
	case TabAI:
		return "ai"
	default:
		return "templates"
	}
}

// tabText is checked in order; the first substring found wins.
var tabText = []struct {
	needle string
	tab    Tab
}{
	{"Your designs", TabDesigns},
	{"Templates", TabTemplates},
	{"Canva AI", TabAI},
}

// ParseTab resolves a tab element to its state. attr is the data-tab value
// and takes precedence over text. ok is false when nothing matched.
func ParseTab(attr, text string) (Tab, bool) {
	switch strings.ToLower(strings.TrimSpace(attr)) {
	case "templates":
		return TabTemplates, true
	case "designs":
		return TabDesigns, true
	case "ai":
		return TabAI, true
	}
	for _, candidate := range tabText {
		if strings.Contains(text, candidate.needle) {
			return candidate.tab, true
		}
	}
	return TabTemplates, false
}
