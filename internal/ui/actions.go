package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/prefs"
	"github.com/five82/studio/internal/storage"
)

// Messages emitted by dialog actions.
type (
	createDesignMsg struct {
		handle     modalHandle
		designType string
	}
	upgradeMsg struct {
		handle modalHandle
	}
	prefsChangedMsg struct {
		prefs   prefs.Prefs
		persist bool
	}
	alertMsg struct {
		text string
	}
)

func (m *Model) onCreateClick(event) tea.Cmd {
	m.log("Create design clicked")
	m.showCreateNewModal()
	return nil
}

func (m *Model) onProClick(event) tea.Cmd {
	m.log("Pro upgrade clicked")
	m.showProUpgradeModal()
	return nil
}

func (m *Model) onMenuToggle(event) tea.Cmd {
	m.sidebarHidden = !m.sidebarHidden
	m.log("Toggled sidebar", "hidden", m.sidebarHidden)
	return m.ensureFocusVisible()
}

// createDesign closes the dialog that asked for it, records the design and
// announces the editor after the action delay.
// createDesign runs once per dialog; a repeated choice arrives after the
// handle is gone and is dropped.
func (m *Model) createDesign(msg createDesignMsg) tea.Cmd {
	if !m.modals.close(msg.handle) {
		return nil
	}
	m.log("Creating design of type", "type", msg.designType)
	return tea.Batch(
		m.recordRecentDesign(msg.designType),
		delayCmd(m.actionDelay, alertMsg{text: fmt.Sprintf("Opening %s editor...", msg.designType)}),
	)
}

func (m *Model) processProUpgrade(msg upgradeMsg) tea.Cmd {
	if !m.modals.close(msg.handle) {
		return nil
	}
	m.log("Processing Pro upgrade")
	return delayCmd(m.actionDelay, alertMsg{text: "Redirecting to payment page..."})
}

// recordRecentDesign puts a new design at the head of recentDesigns when
// autosave is on. A malformed stored list is left untouched.
func (m *Model) recordRecentDesign(designType string) tea.Cmd {
	if !m.prefs.Autosave() {
		return nil
	}
	existing, err := storage.RecentDesigns(m.ctx, m.kv)
	if err != nil {
		var decodeErr *storage.DecodeError
		if errors.As(err, &decodeErr) {
			m.logger.Warn("recent designs are malformed, not recording", "error", err)
		} else {
			m.logger.Error("read recent designs failed", "error", err)
		}
		return m.setStatus(fmt.Sprintf("Recent designs not updated: %v", err))
	}

	rec := design.NewRecentDesign(designType, m.now())
	updated, err := design.PrependRecent(existing, rec)
	if err == nil {
		err = storage.SaveToStorage(m.ctx, m.kv, storage.KeyRecentDesigns, updated)
	}
	if err != nil {
		m.logger.Error("record recent design failed", "error", err)
		return m.setStatus(fmt.Sprintf("Recent designs not updated: %v", err))
	}

	m.snapshot.RecentDesigns = updated
	m.log("Recorded recent design", "id", rec.ID, "title", rec.Title)
	return nil
}

// applyPreferenceChange applies preferences edited in the settings dialog.
// Live toggles only re-theme; the closing change is also saved.
func (m *Model) applyPreferenceChange(msg prefsChangedMsg) tea.Cmd {
	if msg.persist {
		return m.savePreferences(msg.prefs)
	}
	m.applyUserPreferences(msg.prefs)
	return nil
}

// showAlert opens an alert dialog and mirrors it as a desktop notification
// when notifications are enabled.
func (m *Model) showAlert(text string) tea.Cmd {
	m.openAlert(text)
	if !m.prefs.Notifications() {
		return nil
	}
	send := m.notifier
	return func() tea.Msg {
		if err := send(text); err != nil {
			return statusMsg(fmt.Sprintf("Notification failed: %v", err))
		}
		return nil
	}
}
