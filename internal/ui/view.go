package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/page"
)

// Icon glyphs for the font-awesome classes used by the page template.
var iconGlyphs = map[string]string{
	"fa-home":        "⌂",
	"fa-folder-open": "▣",
	"fa-image":       "▨",
	"fa-palette":     "◐",
	"fa-th":          "▦",
	"fa-cog":         "⚙",
	"fa-star":        "★",
	"fa-chart-bar":   "▤",
	"fa-heart":       "♥",
	"fa-video":       "▶",
	"fa-print":       "⎙",
	"fa-globe":       "◍",
}

func iconGlyph(classes []string) string {
	for _, c := range classes {
		if g, ok := iconGlyphs[c]; ok {
			return g
		}
	}
	return "•"
}

// elementStyle picks the style for an element from its visual state.
// Focus wins over the active and pressed highlight.
func (m Model) elementStyle(e *element, base lipgloss.Style) lipgloss.Style {
	styles := m.theme.Styles()
	switch {
	case m.isFocused(e):
		return styles.Focused
	case e.active, e.pressed:
		return styles.Selected
	}
	return base
}

func (m Model) sidebarWidth() int {
	if m.sidebarHidden {
		return 0
	}
	if m.width < LayoutCompactWidth {
		return SidebarCompactWidth
	}
	return SidebarWidth
}

// renderBody renders the sidebar and the main content side by side.
func (m Model) renderBody(height int) string {
	sw := m.sidebarWidth()
	mainWidth := m.width
	if sw > 0 {
		mainWidth -= sw + 1
	}
	main := lipgloss.NewStyle().
		Width(mainWidth).
		Height(height).
		MaxHeight(height).
		Render(clipLines(m.renderMainContent(mainWidth), mainWidth))
	if sw == 0 {
		return main
	}

	styles := m.theme.Styles()
	sidebar := styles.Surface.
		Width(sw).
		Height(height).
		MaxHeight(height).
		Render(m.renderSidebar(sw))
	divider := styles.FaintText.Render(strings.TrimRight(strings.Repeat("│\n", height), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, divider, main)
}

func (m Model) renderSidebar(width int) string {
	styles := m.theme.Styles()
	compact := width < SidebarWidth
	lines := make([]string, 0, len(m.graph.all(page.NavButton)))
	for _, e := range m.graph.all(page.NavButton) {
		label := " " + iconGlyph(e.Icons)
		if !compact {
			label += " " + e.Label
		}
		lines = append(lines, m.elementStyle(e, styles.Text).Width(width).Render(truncate(label, width)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMainContent(width int) string {
	styles := m.theme.Styles()
	var sections []string

	heading := styles.Text.Bold(true).Render("What will you design today?")
	sections = append(sections, heading+"  "+styles.MutedText.Render(m.content))

	if s := m.renderSearchPanel(width); s != "" {
		sections = append(sections, s)
	}

	sections = append(sections, m.renderTabs())

	if m.whatsNewVisible {
		sections = append(sections, m.renderWhatsNew(width))
	}
	if m.designTypesVisible {
		sections = append(sections, m.renderDesignTypes())
	}
	sections = append(sections, m.renderCategories(width))
	sections = append(sections, m.renderRecent(width))

	return strings.Join(sections, "\n\n")
}

func (m Model) renderSearchPanel(width int) string {
	if m.suggestions == nil && m.results == nil {
		return ""
	}
	styles := m.theme.Styles()
	var b strings.Builder
	if m.suggestions != nil {
		b.WriteString(styles.MutedText.Render("Suggestions: "))
		if len(m.suggestions) == 0 {
			b.WriteString(styles.FaintText.Render("none"))
		} else {
			b.WriteString(styles.Text.Render(truncate(strings.Join(m.suggestions, " · "), width-14)))
		}
	}
	for i, r := range m.results {
		if i == 0 {
			if m.suggestions != nil {
				b.WriteString("\n")
			}
			b.WriteString(styles.AccentText.Bold(true).Render("Results"))
		}
		b.WriteString("\n  ")
		b.WriteString(styles.Text.Render(truncate(r.Title, width-12)))
		if r.Premium {
			b.WriteString(" ")
			b.WriteString(styles.PremiumBadge.Render("PRO"))
		}
	}
	return b.String()
}

func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	tabs := make([]string, 0, len(m.graph.all(page.Tab)))
	for _, e := range m.graph.all(page.Tab) {
		tabs = append(tabs, m.elementStyle(e, styles.Button).Padding(0, 1).Render(e.Text))
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderWhatsNew(width int) string {
	styles := m.theme.Styles()
	detail := ""
	if e, ok := m.page.First(page.WhatsNew); ok {
		detail = e.Detail
	}
	return styles.AccentText.Bold(true).Render("What's new") + "\n" +
		styles.MutedText.Render(truncate(detail, width))
}

func (m Model) renderDesignTypes() string {
	styles := m.theme.Styles()
	tiles := make([]string, 0, len(m.graph.all(page.DesignType)))
	for _, e := range m.graph.all(page.DesignType) {
		tiles = append(tiles, m.elementStyle(e, styles.Text).Render(iconGlyph(e.Icons)+" "+e.Label))
	}
	return strings.Join(tiles, "   ")
}

func (m Model) renderCategories(width int) string {
	styles := m.theme.Styles()
	cards := make([]string, 0, len(m.graph.all(page.CategoryCard)))
	perRow := 4
	if width < 72 {
		perRow = 2
	}
	cardWidth := max(width/perRow-2, 10)
	for _, e := range m.graph.all(page.CategoryCard) {
		arrow := ternary(e.hovered, "  →", " →")
		body := styles.Text.Bold(true).Render(truncate(e.Heading, cardWidth-5)+arrow) + "\n" +
			styles.MutedText.Render(truncate(e.Detail, cardWidth-2))
		style := styles.Card
		if m.isFocused(e) {
			style = styles.CardFocused
		}
		cards = append(cards, style.Width(cardWidth).Render(body))
	}
	return styles.AccentText.Bold(true).Render("Explore templates") + "\n" + grid(cards, perRow)
}

func (m Model) renderRecent(width int) string {
	styles := m.theme.Styles()
	cards := make([]string, 0, len(m.graph.all(page.DesignCard)))
	perRow := 3
	if width < 60 {
		perRow = 1
	}
	cardWidth := max(width/perRow-2, 10)
	for _, e := range m.graph.all(page.DesignCard) {
		body := styles.Text.Bold(true).Render(truncate(e.Heading, cardWidth-2)) + "\n" +
			styles.MutedText.Render(truncate(e.Detail, cardWidth-2))
		style := styles.Card
		if m.isFocused(e) {
			style = styles.CardFocused
		}
		cards = append(cards, style.Width(cardWidth).Render(body))
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Recent designs"))
	b.WriteString("\n")
	b.WriteString(grid(cards, perRow))

	if stored := m.snapshot.RecentDesigns; len(stored) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("Saved (%d): ", len(stored))))
		labels := make([]string, 0, min(len(stored), 5))
		for _, raw := range stored[:min(len(stored), 5)] {
			labels = append(labels, design.EntryLabel(raw))
		}
		b.WriteString(styles.Text.Render(truncate(strings.Join(labels, " · "), width-12)))
	}
	if cats := m.snapshot.TemplateCategories; len(cats) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("Template categories (%d): ", len(cats))))
		labels := make([]string, 0, len(cats))
		for _, raw := range cats {
			labels = append(labels, design.EntryLabel(raw))
		}
		b.WriteString(styles.Text.Render(truncate(strings.Join(labels, " · "), width-28)))
	}
	return b.String()
}

// grid lays out blocks perRow at a time.
func grid(blocks []string, perRow int) string {
	if perRow < 1 {
		perRow = 1
	}
	rows := make([]string, 0, (len(blocks)+perRow-1)/perRow)
	for i := 0; i < len(blocks); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[i:min(i+perRow, len(blocks))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter shows the status line, or the editor location and tooltip,
// and the short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	if m.status != "" {
		parts = append(parts, bg.Render(m.status, styles.WarningText))
	} else {
		if m.location != "" {
			parts = append(parts, bg.Render(m.location, styles.AccentText))
		}
		if m.tooltip != "" {
			parts = append(parts, bg.Render(m.tooltip, styles.InfoText))
		}
	}
	left := bg.Join(parts, "  ")

	right := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return styles.Footer.Width(m.width).Render(clipLines(left, m.width-2))
	}
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + right)
}
