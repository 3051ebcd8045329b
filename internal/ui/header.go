package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studio/internal/page"
)

// renderHeader renders the top bar: menu toggle, logo, search box and the
// create and upgrade buttons, with the storage state on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		m.renderControl(m.graph.first(page.MenuToggle), "≡", bg, styles.Text),
		bg.Render("Studio", styles.Logo),
		m.renderSearchBox(bg, styles),
		m.renderControl(m.graph.first(page.CreateButton), "+ "+m.controlText(page.CreateButton), bg, styles.AccentText.Bold(true)),
		m.renderControl(m.graph.first(page.ProButton), "♛ "+m.controlText(page.ProButton), bg, styles.PremiumBadge),
	}
	left := bg.Join(parts, "  ")

	right := m.renderStorageState(bg, styles)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if right == "" || gap < 1 {
		return styles.Header.Width(m.width).Render(clipLines(left, m.width-2))
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m Model) controlText(selector string) string {
	if e := m.graph.first(selector); e != nil && e.Text != "" {
		return e.Text
	}
	return selector
}

// renderControl renders a header control, highlighted while focused.
func (m Model) renderControl(e *element, label string, bg BgStyle, style lipgloss.Style) string {
	if m.isFocused(e) {
		return m.theme.Styles().Focused.Render(label)
	}
	return bg.Render(label, style)
}

func (m Model) renderSearchBox(bg BgStyle, styles Styles) string {
	input := m.graph.first(page.SearchInput)
	field := m.searchInput.View()
	if w := m.searchInput.Width; w > 0 {
		field = padRight(field, w)
	}
	box := "⌕ " + field
	if m.isFocused(input) {
		box = styles.Focused.Render(box)
	} else {
		box = styles.SurfaceAlt.Render(box)
	}
	arrow := m.renderControl(m.graph.first(page.SearchArrow), "→", bg, styles.AccentText)
	return box + bg.Spaces(1) + arrow
}

// renderStorageState shows the last storage read error, if any.
func (m Model) renderStorageState(bg BgStyle, styles Styles) string {
	if m.snapshot.LastError == nil {
		return ""
	}
	parts := []string{bg.Render("storage: "+truncate(m.snapshot.LastError.Error(), 40), styles.DangerText)}
	if m.snapshot.IsDegraded() {
		parts = append(parts, bg.Render("Retrying...", styles.WarningText.Bold(true)))
	}
	return bg.Join(parts, "  ")
}
