package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/prefs"
)

type settingsItem struct {
	group string
	field string
	label string
}

var settingsItems = []settingsItem{
	{"Account Settings", prefs.FieldNotifications, "Enable notifications"},
	{"Account Settings", prefs.FieldAutosave, "Auto-save designs"},
	{"Display Settings", prefs.FieldDarkMode, "Dark mode"},
	{"Display Settings", prefs.FieldHighContrast, "High contrast"},
}

// settingsModal edits a copy of the preferences. Every toggle is applied
// live; closing the dialog asks for the result to be saved.
type settingsModal struct {
	prefs  prefs.Prefs
	cursor int
}

func (s settingsModal) Title() string { return "Settings" }

func (s settingsModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	n := len(settingsItems)
	switch {
	case key.Matches(msg, keys.Close):
		return s, prefsChangedCmd(s.prefs, true), true
	case key.Matches(msg, keys.Forward), key.Matches(msg, keys.FocusNext):
		s.cursor = (s.cursor + 1) % n
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.FocusPrev):
		s.cursor = (s.cursor - 1 + n) % n
	case key.Matches(msg, keys.Activate):
		s.prefs = s.toggle(settingsItems[s.cursor].field)
		return s, prefsChangedCmd(s.prefs, false), false
	}
	return s, nil, false
}

// toggle flips field. Display toggles drop an explicit theme name so the
// checkboxes decide the theme.
func (s settingsModal) toggle(field string) prefs.Prefs {
	next := s.prefs.With(field, !checked(s.prefs, field))
	if field == prefs.FieldDarkMode || field == prefs.FieldHighContrast {
		next = next.With(prefs.FieldTheme, "")
	}
	return next
}

func checked(p prefs.Prefs, field string) bool {
	switch field {
	case prefs.FieldNotifications:
		return p.Notifications()
	case prefs.FieldAutosave:
		return p.Autosave()
	case prefs.FieldDarkMode:
		return p.DarkMode()
	case prefs.FieldHighContrast:
		return p.HighContrast()
	}
	return p.Bool(field, false)
}

func (s settingsModal) View(theme Theme, width int) string {
	styles := theme.Styles()

	var b strings.Builder
	group := ""
	for i, item := range settingsItems {
		if item.group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = item.group
			b.WriteString(styles.AccentText.Bold(true).Render(group))
			b.WriteString("\n")
		}
		box := ternary(checked(s.prefs, item.field), "[x]", "[ ]")
		line := truncate(box+" "+item.label, width-2)
		if i == s.cursor {
			b.WriteString(styles.Focused.Render("› " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter toggle · esc save and close"))
	return b.String()
}

func prefsChangedCmd(p prefs.Prefs, persist bool) tea.Cmd {
	return func() tea.Msg {
		return prefsChangedMsg{prefs: p, persist: persist}
	}
}
