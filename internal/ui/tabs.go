package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/page"
)

// onTabClick makes the clicked tab the only active one, then switches to the
// tab it names. A tab naming nothing only changes the highlight.
func (m *Model) onTabClick(ev event) tea.Cmd {
	for _, t := range m.graph.all(page.Tab) {
		t.active = false
	}
	ev.target.active = true

	tab, ok := design.ParseTab(ev.target.Attr("data-tab"), ev.target.Text)
	if !ok {
		return nil
	}
	return m.switchTab(tab)
}

func (m *Model) switchTab(tab design.Tab) tea.Cmd {
	m.session.tab = tab
	switch tab {
	case design.TabDesigns:
		m.log("Showing user designs")
		m.whatsNewVisible = false
		m.designTypesVisible = false
	case design.TabTemplates:
		m.log("Showing templates")
		m.whatsNewVisible = true
		m.designTypesVisible = true
	case design.TabAI:
		m.log("Showing Canva AI")
	}
	return m.ensureFocusVisible()
}
