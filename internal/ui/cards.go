package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
)

// liftMsg ends the pressed state of a design type tile.
type liftMsg struct{ target *element }

func (m *Model) onDesignTypeClick(ev event) tea.Cmd {
	name := ev.target.Label
	if name == "" {
		name = ev.target.Text
	}
	ev.target.pressed = true
	m.log("Selected design type", "type", name)
	m.openDesignEditor(name)
	return delayCmd(PressDuration, liftMsg{target: ev.target})
}

func (m *Model) openDesignEditor(designType string) {
	m.log("Opening design editor", "type", designType)
	m.location = design.EditorFragment(designType)
}

func (m *Model) onCategoryClick(ev event) tea.Cmd {
	category := ev.target.Heading
	m.log("Selected category", "category", category)
	m.log("Showing templates for category", "category", category)
	m.content = category
	return nil
}

func (m *Model) onCategoryEnter(ev event) tea.Cmd {
	ev.target.hovered = true
	return nil
}

func (m *Model) onCategoryLeave(ev event) tea.Cmd {
	ev.target.hovered = false
	return nil
}

func (m *Model) onDesignCardClick(ev event) tea.Cmd {
	title := ev.target.Heading
	m.log("Opening design", "title", title)
	m.openExistingDesign(title)
	return nil
}

func (m *Model) openExistingDesign(title string) {
	m.log("Opening existing design", "title", title)
	m.location = design.ExistingEditorFragment(title)
}
