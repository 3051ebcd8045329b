package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/page"
)

// suggestMsg fires when a debounce period ends. Only the lookup whose seq
// matches the session's latest one runs.
type suggestMsg struct{ seq int }

func newSearchInput(p *page.Page) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Placeholder = "Search"
	if el, ok := p.First(page.SearchInput); ok && el.Attr("placeholder") != "" {
		ti.Placeholder = el.Attr("placeholder")
	}
	return ti
}

func (m *Model) searchFocused() bool {
	return m.searchInput.Focused()
}

func (m Model) searchWidth() int {
	return max(m.width/3, 20)
}

// handleSearchKey feeds a key to the focused search box. Tab keys still move
// focus; everything else fires keypress, then input when the text changed.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.FocusNext):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		return m.moveFocus(-1)
	}

	target := m.focused()
	cmds := []tea.Cmd{m.dispatch(evKeypress, target, msg)}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	if m.searchInput.Value() != before {
		cmds = append(cmds, m.dispatch(evInput, target, msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) onSearchInput(event) tea.Cmd {
	m.session.query = m.searchInput.Value()
	m.session.searchSeq++
	return delayCmd(m.debounce, suggestMsg{seq: m.session.searchSeq})
}

func (m *Model) onSearchKeyPress(ev event) tea.Cmd {
	if ev.key.Type == tea.KeyEnter {
		m.performSearch(m.session.query)
	}
	return nil
}

func (m *Model) onSearchSubmit(event) tea.Cmd {
	m.performSearch(m.session.query)
	return nil
}

func (m *Model) handleSuggest(msg suggestMsg) {
	if msg.seq != m.session.searchSeq {
		return
	}
	if strings.TrimSpace(m.session.query) == "" {
		m.suggestions = nil
		return
	}
	m.showSuggestions(m.session.query)
}

func (m *Model) showSuggestions(query string) {
	m.suggestions = m.suggest(query)
	m.log("Suggestions", "query", query, "suggestions", m.suggestions)
}

func (m *Model) performSearch(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	m.log("Searching for", "query", query)
	m.displaySearchResults(design.MockResults(query))
}

func (m *Model) displaySearchResults(results []design.Result) {
	m.results = results
	m.log("Search results", "count", len(results))
}

func (m *Model) focusSearch() tea.Cmd {
	return m.setFocus(m.graph.indexOf(m.graph.first(page.SearchInput)))
}

// clearSearch empties the search box, drops any pending lookup and blurs it.
func (m *Model) clearSearch() tea.Cmd {
	m.searchInput.SetValue("")
	m.session.query = ""
	m.session.searchSeq++
	m.suggestions = nil
	m.results = nil
	if m.searchFocused() {
		return m.setFocus(-1)
	}
	return nil
}
