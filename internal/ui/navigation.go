package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/page"
)

func (m *Model) onNavClick(ev event) tea.Cmd {
	for _, b := range m.graph.all(page.NavButton) {
		b.active = false
	}
	ev.target.active = true

	dest, ok := design.ParseDestination(ev.target.Attr("data-nav"), ev.target.Icons)
	if !ok {
		return nil
	}
	m.navigateTo(dest)
	return nil
}

func (m *Model) navigateTo(dest design.Destination) {
	m.log("Navigating to", "destination", dest.String())
	if dest == design.DestSettings {
		m.showSettingsModal()
		return
	}
	m.content = dest.Label()
	m.log("Showing content", "content", m.content)
}
