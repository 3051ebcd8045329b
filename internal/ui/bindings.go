package ui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/page"
)

// eventType names the DOM-style events the page elements react to.
type eventType int

const (
	evClick eventType = iota
	evInput
	evKeypress
	evMouseEnter
	evMouseLeave
)

func (e eventType) String() string {
	switch e {
	case evClick:
		return "click"
	case evInput:
		return "input"
	case evKeypress:
		return "keypress"
	case evMouseEnter:
		return "mouseenter"
	case evMouseLeave:
		return "mouseleave"
	default:
		return "unknown"
	}
}

type event struct {
	kind   eventType
	target *element
	key    tea.KeyMsg
}

type listener func(m *Model, ev event) tea.Cmd

type binding struct {
	selector string
	kind     eventType
	handle   listener
}

// bindingTable is the fixed set of element listeners. Document-level keydown
// is handled by handleKeyboardShortcuts before any element sees a key.
var bindingTable = []binding{
	{page.SearchInput, evInput, (*Model).onSearchInput},
	{page.SearchInput, evKeypress, (*Model).onSearchKeyPress},
	{page.SearchArrow, evClick, (*Model).onSearchSubmit},
	{page.Tab, evClick, (*Model).onTabClick},
	{page.NavButton, evClick, (*Model).onNavClick},
	{page.DesignType, evClick, (*Model).onDesignTypeClick},
	{page.CategoryCard, evClick, (*Model).onCategoryClick},
	{page.CategoryCard, evMouseEnter, (*Model).onCategoryEnter},
	{page.CategoryCard, evMouseLeave, (*Model).onCategoryLeave},
	{page.DesignCard, evClick, (*Model).onDesignCardClick},
	{page.CreateButton, evClick, (*Model).onCreateClick},
	{page.ProButton, evClick, (*Model).onProClick},
	{page.MenuToggle, evClick, (*Model).onMenuToggle},
}

// panelSelectors are containers the handlers show and hide.
var panelSelectors = []string{page.Sidebar, page.WhatsNew, page.DesignTypes}

// focusOrder is the tab order across the page.
var focusOrder = []string{
	page.SearchInput,
	page.SearchArrow,
	page.CreateButton,
	page.ProButton,
	page.MenuToggle,
	page.NavButton,
	page.Tab,
	page.DesignType,
	page.CategoryCard,
	page.DesignCard,
}

// element is a page element plus its visual state.
type element struct {
	page.Element
	active  bool
	hovered bool
	pressed bool
}

func (e *element) hasClass(name string) bool {
	return slices.Contains(strings.Fields(e.Attr("class")), name)
}

type listenerKey struct {
	selector string
	kind     eventType
}

// elementGraph holds the bound elements and their listeners.
type elementGraph struct {
	bySelector map[string][]*element
	listeners  map[listenerKey][]listener
	order      []*element
}

// bindEventListeners validates that p has every element the bindings and
// panels need, then attaches the listeners.
func bindEventListeners(p *page.Page) (elementGraph, error) {
	required := make([]string, 0, len(bindingTable)+len(panelSelectors))
	for _, b := range bindingTable {
		required = append(required, b.selector)
	}
	required = append(required, panelSelectors...)
	if err := p.Validate(required...); err != nil {
		return elementGraph{}, fmt.Errorf("bind event listeners: %w", err)
	}

	g := elementGraph{
		bySelector: make(map[string][]*element),
		listeners:  make(map[listenerKey][]listener),
	}
	for _, sel := range focusOrder {
		for _, pe := range p.All(sel) {
			e := &element{Element: pe}
			e.active = e.hasClass("active")
			g.bySelector[sel] = append(g.bySelector[sel], e)
			g.order = append(g.order, e)
		}
	}
	for _, b := range bindingTable {
		k := listenerKey{b.selector, b.kind}
		g.listeners[k] = append(g.listeners[k], b.handle)
	}
	return g, nil
}

func (g elementGraph) all(selector string) []*element {
	return g.bySelector[selector]
}

func (g elementGraph) first(selector string) *element {
	if els := g.bySelector[selector]; len(els) > 0 {
		return els[0]
	}
	return nil
}

func (g elementGraph) indexOf(target *element) int {
	return slices.Index(g.order, target)
}

// listenerCount is the number of (element, event) pairs with a listener.
func (g elementGraph) listenerCount() int {
	n := 0
	for k, ls := range g.listeners {
		n += len(g.bySelector[k.selector]) * len(ls)
	}
	return n
}

// dispatch runs the listeners bound to target for kind.
func (m *Model) dispatch(kind eventType, target *element, key tea.KeyMsg) tea.Cmd {
	if target == nil {
		return nil
	}
	ls := m.graph.listeners[listenerKey{target.Selector, kind}]
	if len(ls) == 0 {
		return nil
	}
	ev := event{kind: kind, target: target, key: key}
	cmds := make([]tea.Cmd, 0, len(ls))
	for _, l := range ls {
		cmds = append(cmds, l(m, ev))
	}
	return tea.Batch(cmds...)
}

func (m *Model) focused() *element {
	if m.focus < 0 || m.focus >= len(m.graph.order) {
		return nil
	}
	return m.graph.order[m.focus]
}

func (m *Model) isFocused(e *element) bool {
	return e != nil && m.focused() == e
}

// setFocus moves focus to graph.order[idx], or clears it when idx is -1.
// Leaving an element fires mouseleave and entering one fires mouseenter.
func (m *Model) setFocus(idx int) tea.Cmd {
	if idx == m.focus {
		return nil
	}
	var cmds []tea.Cmd

	if old := m.focused(); old != nil {
		cmds = append(cmds, m.dispatch(evMouseLeave, old, tea.KeyMsg{}))
		if old.Selector == page.SearchInput {
			m.searchInput.Blur()
		}
		if m.tooltip != "" {
			m.logger.Debug("Hiding tooltip", "text", m.tooltip)
			m.tooltip = ""
		}
	}

	m.focus = idx
	next := m.focused()
	if next == nil {
		m.focus = -1
		return tea.Batch(cmds...)
	}
	if next.Selector == page.SearchInput {
		cmds = append(cmds, m.searchInput.Focus())
	}
	cmds = append(cmds, m.dispatch(evMouseEnter, next, tea.KeyMsg{}))
	if title := next.Title(); title != "" {
		m.tooltip = title
		m.logger.Debug("Showing tooltip", "text", title)
	}
	return tea.Batch(cmds...)
}

// moveFocus steps through the visible elements in tab order, wrapping at
// either end.
func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.graph.order)
	if n == 0 {
		return nil
	}
	idx := m.focus
	if idx < 0 {
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	for range n {
		idx = (idx + delta + n) % n
		if m.elementVisible(m.graph.order[idx]) {
			return m.setFocus(idx)
		}
	}
	return nil
}

func (m *Model) elementVisible(e *element) bool {
	switch e.Selector {
	case page.NavButton:
		return !m.sidebarHidden
	case page.DesignType:
		return m.designTypesVisible
	}
	return true
}

// ensureFocusVisible moves focus off an element that was just hidden.
func (m *Model) ensureFocusVisible() tea.Cmd {
	if cur := m.focused(); cur != nil && !m.elementVisible(cur) {
		return m.moveFocus(1)
	}
	return nil
}
