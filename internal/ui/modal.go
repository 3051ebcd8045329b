package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool
// indicating if the modal should close.
type Modal interface {
	Title() string
	Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width int) string
}

// modalHandle identifies one open dialog. Handles are never reused.
type modalHandle int

type modalEntry struct {
	handle modalHandle
	modal  Modal
}

// modalStack holds the open dialogs; the last one receives input.
type modalStack struct {
	entries []modalEntry
	next    modalHandle

	// styles is shared by every dialog and built on the first open.
	styles *modalStyles
	builds int
}

// modalStyles holds the layout of the dialog frame. Colors come from the
// theme at render time so a theme change needs no rebuild.
type modalStyles struct {
	frame lipgloss.Style
	title lipgloss.Style
	close lipgloss.Style
	rule  lipgloss.Style
}

func newModalStyles() *modalStyles {
	return &modalStyles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		title: lipgloss.NewStyle().Bold(true),
		close: lipgloss.NewStyle(),
		rule:  lipgloss.NewStyle(),
	}
}

// open builds a dialog with its own handle and puts it on top.
func (s *modalStack) open(build func(h modalHandle) Modal) modalHandle {
	if s.styles == nil {
		s.styles = newModalStyles()
		s.builds++
	}
	s.next++
	h := s.next
	s.entries = append(s.entries, modalEntry{handle: h, modal: build(h)})
	return h
}

// close removes the dialog with handle h. It reports whether one was open.
func (s *modalStack) close(h modalHandle) bool {
	i := slices.IndexFunc(s.entries, func(e modalEntry) bool { return e.handle == h })
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

func (s *modalStack) replace(h modalHandle, m Modal) {
	for i := range s.entries {
		if s.entries[i].handle == h {
			s.entries[i].modal = m
			return
		}
	}
}

func (s *modalStack) top() (modalEntry, bool) {
	if len(s.entries) == 0 {
		return modalEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *modalStack) len() int {
	return len(s.entries)
}

// updateTopModal sends a key to the top dialog. A dialog that asks to close
// removes only itself.
func (m *Model) updateTopModal(msg tea.KeyMsg) tea.Cmd {
	entry, ok := m.modals.top()
	if !ok {
		return nil
	}
	next, cmd, closed := entry.modal.Update(msg, m.keys)
	if closed {
		m.modals.close(entry.handle)
		m.log("Closed dialog", "title", entry.modal.Title())
		return cmd
	}
	m.modals.replace(entry.handle, next)
	return cmd
}

func (m *Model) openModal(build func(h modalHandle) Modal) modalHandle {
	h := m.modals.open(build)
	if e, ok := m.modals.top(); ok {
		m.log("Opened dialog", "title", e.modal.Title())
	}
	return h
}

func (m *Model) showCreateNewModal() modalHandle {
	return m.openModal(func(h modalHandle) Modal {
		return createModal{handle: h}
	})
}

func (m *Model) showProUpgradeModal() modalHandle {
	return m.openModal(func(h modalHandle) Modal {
		return proModal{handle: h}
	})
}

func (m *Model) showSettingsModal() modalHandle {
	p := m.prefs
	return m.openModal(func(modalHandle) Modal {
		return settingsModal{prefs: p}
	})
}

func (m *Model) openAlert(text string) modalHandle {
	return m.openModal(func(modalHandle) Modal {
		return alertModal{text: text}
	})
}

// renderModal draws the top dialog centered over the page.
func (m Model) renderModal(e modalEntry) string {
	st := m.modals.styles
	if st == nil {
		st = newModalStyles()
	}
	t := m.theme

	width := min(max(m.width-4, 20), 64)
	inner := width - 6 // border and padding

	title := st.title.Foreground(lipgloss.Color(t.Text)).Render(e.modal.Title())
	closeHint := st.close.Foreground(lipgloss.Color(t.Faint)).Render("esc ×")
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(closeHint), 1)
	header := title + lipgloss.NewStyle().Width(gap).Render("") + closeHint
	rule := st.rule.Foreground(lipgloss.Color(t.BorderMuted)).Render(repeatRule(inner))

	body := clipLines(e.modal.View(t, inner), inner)
	box := st.frame.
		BorderForeground(lipgloss.Color(t.Accent)).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, rule, "", body))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(t.Background)),
	)
}
