package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertModal shows a one-off message.
type alertModal struct {
	text string
}

func (a alertModal) Title() string { return "Studio" }

func (a alertModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	if key.Matches(msg, keys.Close) || key.Matches(msg, keys.Activate) {
		return a, nil, true
	}
	return a, nil, false
}

func (a alertModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Width(width).Render(a.text))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, styles.PrimaryButton.Render("OK")))
	return b.String()
}
