package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studio/internal/design"
)

// createModal offers the design types of the create flow in a 2x2 grid.
type createModal struct {
	handle modalHandle
	cursor int
}

func (c createModal) Title() string { return "Create New Design" }

func (c createModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	n := len(design.CreateChoices)
	switch {
	case key.Matches(msg, keys.Close):
		return c, nil, true
	case key.Matches(msg, keys.Forward), key.Matches(msg, keys.FocusNext):
		c.cursor = (c.cursor + 1) % n
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.FocusPrev):
		c.cursor = (c.cursor - 1 + n) % n
	case key.Matches(msg, keys.Activate):
		h, choice := c.handle, design.CreateChoices[c.cursor]
		return c, func() tea.Msg {
			return createDesignMsg{handle: h, designType: choice.Type}
		}, false
	}
	return c, nil, false
}

func (c createModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	cellWidth := max((width-2)/2, 12)

	cells := make([]string, 0, len(design.CreateChoices))
	for i, choice := range design.CreateChoices {
		style := styles.Card
		if i == c.cursor {
			style = styles.CardFocused
		}
		label := choice.Icon + "  " + choice.Label
		if i == c.cursor {
			label = styles.AccentText.Bold(true).Render(label)
		}
		cells = append(cells, style.Width(cellWidth-2).Render(truncate(label, cellWidth-4)))
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		end := min(i+2, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Choose a design type:"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("←/→ choose · enter create · esc close"))
	return b.String()
}
