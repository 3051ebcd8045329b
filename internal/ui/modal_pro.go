package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
)

// proModal presents the premium features and the trial button.
type proModal struct {
	handle modalHandle
}

func (p proModal) Title() string { return "Upgrade to Pro" }

func (p proModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Close):
		return p, nil, true
	case key.Matches(msg, keys.Activate):
		h := p.handle
		return p, func() tea.Msg { return upgradeMsg{handle: h} }, false
	}
	return p, nil, false
}

func (p proModal) View(theme Theme, width int) string {
	styles := theme.Styles()

	var md strings.Builder
	md.WriteString("## Unlock Premium Features\n\n")
	for _, f := range design.ProFeatures {
		md.WriteString("- ")
		md.WriteString(f)
		md.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(renderMarkdown(md.String(), theme.Markdown, width))
	b.WriteString("\n\n")
	b.WriteString(styles.PrimaryButton.Render("Start Free Trial"))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter start trial · esc close"))
	return b.String()
}
