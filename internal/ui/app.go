package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/logging"
	"github.com/five82/studio/internal/notify"
	"github.com/five82/studio/internal/page"
	"github.com/five82/studio/internal/prefs"
	"github.com/five82/studio/internal/state"
	"github.com/five82/studio/internal/storage"
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Store          *state.Store
	KV             storage.KV
	Page           *page.Page // nil uses the embedded landing page
	Logger         *slog.Logger
	PollTick       time.Duration
	SearchDebounce time.Duration
	ActionDelay    time.Duration
	ThemeName      string   // fallback when preferences name no theme
	Console        []string // lines that seed the activity console
	LogPath        string   // shown in the console header
	Debug          bool     // debug records are logged at startup
	// SetLogLevel changes the log level at runtime; nil disables the toggle.
	SetLogLevel func(slog.Level)
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	store       *state.Store
	kv          storage.KV
	logger      *slog.Logger
	pollTick    time.Duration
	debounce    time.Duration
	actionDelay time.Duration
	baseTheme   string
	logPath     string
	debug       bool

	// Seams
	suggest  func(string) []string
	notifier func(string) error
	copyText    func(string) error
	now         func() time.Time
	setLogLevel func(slog.Level)

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Page
	page    *page.Page
	graph   elementGraph
	focus   int // index into graph.order, -1 when nothing is focused
	tooltip string

	session            session
	searchInput        textinput.Model
	results            []design.Result
	suggestions        []string
	whatsNewVisible    bool
	designTypesVisible bool
	sidebarHidden      bool
	content            string // content header set by navigation
	location           string // editor location fragment

	// Data state
	snapshot     state.Snapshot
	loaded       bool
	prefs        prefs.Prefs
	prefsSavedAt time.Time

	modals  modalStack
	console console

	status   string
	statusID int
}

// New builds the model and binds the page's event listeners. It fails when
// the page template lacks any element the bindings need.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := opts.Page
	if p == nil {
		p = page.Default()
	}

	graph, err := bindEventListeners(p)
	if err != nil {
		return Model{}, err
	}

	kv := opts.KV
	if kv == nil {
		kv = storage.NewMemory()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	debounce := opts.SearchDebounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	actionDelay := opts.ActionDelay
	if actionDelay <= 0 {
		actionDelay = DefaultActionDelay
	}

	baseTheme := opts.ThemeName
	if baseTheme == "" {
		baseTheme = ThemeLight
	}

	m := Model{
		ctx:                ctx,
		store:              opts.Store,
		kv:                 kv,
		logger:             logger,
		pollTick:           pollTick,
		debounce:           debounce,
		actionDelay:        actionDelay,
		baseTheme:          baseTheme,
		logPath:            opts.LogPath,
		debug:              opts.Debug,
		setLogLevel:        opts.SetLogLevel,
		suggest:            design.Suggest,
		notifier:           notify.Alert,
		copyText:           clipboard.WriteAll,
		now:                time.Now,
		keys:               DefaultKeyMap(),
		help:               help.New(),
		theme:              GetTheme(baseTheme),
		page:               p,
		graph:              graph,
		focus:              -1,
		session:            newSession(),
		searchInput:        newSearchInput(p),
		whatsNewVisible:    true,
		designTypesVisible: true,
		content:            design.DestHome.Label(),
		prefs:              prefs.New(nil),
	}
	m.console.seed(opts.Console)
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.searchInput.Width = m.searchWidth()
		m.console.resize(msg.Width, ConsoleHeight)
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case suggestMsg:
		m.handleSuggest(msg)
		return m, nil

	case liftMsg:
		if msg.target != nil {
			msg.target.pressed = false
		}
		return m, nil

	case createDesignMsg:
		cmd := m.createDesign(msg)
		return m, cmd

	case upgradeMsg:
		cmd := m.processProUpgrade(msg)
		return m, cmd

	case prefsChangedMsg:
		cmd := m.applyPreferenceChange(msg)
		return m, cmd

	case alertMsg:
		cmd := m.showAlert(msg.text)
		return m, cmd

	case statusMsg:
		cmd := m.setStatus(string(msg))
		return m, cmd

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if top, ok := m.modals.top(); ok {
		return m.renderModal(top)
	}

	return m.renderMain()
}

// handleKey routes a key press. Dialogs take every key; otherwise the
// document shortcuts run first, then the focused element.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modals.len() > 0 {
		cmd := m.updateTopModal(msg)
		return m, cmd
	}

	handled, cmd := m.handleKeyboardShortcuts(msg)
	if handled {
		return m, cmd
	}

	if m.searchFocused() {
		cmd = m.handleSearchKey(msg)
	} else {
		cmd = m.handlePageKey(msg)
	}
	return m, cmd
}

// handleKeyboardShortcuts is the document-level keydown handler.
func (m *Model) handleKeyboardShortcuts(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusSearch):
		return true, m.focusSearch()
	case key.Matches(msg, m.keys.Escape):
		return true, m.clearSearch()
	case key.Matches(msg, m.keys.NewDesign):
		m.showCreateNewModal()
		return true, nil
	}

	// Printable shortcuts would swallow typed text.
	if m.searchFocused() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return true, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return true, m.cycleTheme()
	case key.Matches(msg, m.keys.Console):
		m.console.toggle()
		return true, nil
	case key.Matches(msg, m.keys.CopyLocation):
		return true, m.copyLocation()
	case key.Matches(msg, m.keys.DebugLog):
		return true, m.toggleDebugLog()
	}
	return false, nil
}

// handlePageKey moves focus and clicks the focused element.
func (m *Model) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.Forward):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.FocusPrev), key.Matches(msg, m.keys.Back):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.dispatch(evClick, m.focused(), msg)
	case key.Matches(msg, m.keys.PageUp):
		m.console.pageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.console.pageDown()
	}
	return nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// applySnapshot takes in fresh storage data. The first snapshot performs the
// initial data load. Later snapshots only re-apply preferences that changed
// in storage since the previous snapshot and after our own last save.
func (m *Model) applySnapshot(snap state.Snapshot) {
	prev := m.snapshot
	m.snapshot = snap
	if !m.loaded {
		m.loaded = true
		m.loadInitialData()
		return
	}
	if !snap.HasData || snap.PreferencesErr != nil || m.modals.len() > 0 {
		return
	}
	if !snap.Preferences.Equal(prev.Preferences) && snap.LastUpdated.After(m.prefsSavedAt) {
		m.applyUserPreferences(snap.Preferences)
	}
}

func (m *Model) loadInitialData() {
	m.log("Updating recent designs display", "count", len(m.snapshot.RecentDesigns))
	m.log("Updating categories display", "count", len(m.snapshot.TemplateCategories))
	if m.snapshot.LastError != nil {
		m.logger.Warn("initial storage read failed", "error", m.snapshot.LastError)
	}
	m.applyUserPreferences(m.snapshot.Preferences)
}

// applyUserPreferences installs p and re-applies the theme it selects.
func (m *Model) applyUserPreferences(p prefs.Prefs) {
	m.prefs = p
	name := ThemeFor(p, m.baseTheme)
	if name != m.theme.Name {
		m.theme = GetTheme(name)
		m.log("Applied theme", "theme", name)
	}
}

// savePreferences applies p and writes it to storage. A stored object that
// cannot be read is left alone; p then only lasts for this session.
func (m *Model) savePreferences(p prefs.Prefs) tea.Cmd {
	m.applyUserPreferences(p)
	if _, err := prefs.Load(m.ctx, m.kv); err != nil {
		m.logger.Warn("preferences not saved", "error", err)
		return m.setStatus(fmt.Sprintf("Preferences not saved: %v", err))
	}
	m.prefsSavedAt = m.now()
	if err := prefs.Save(m.ctx, m.kv, p); err != nil {
		m.logger.Error("save preferences failed", "error", err)
		return m.setStatus(fmt.Sprintf("Could not save preferences: %v", err))
	}
	m.log("Saved preferences")
	return nil
}

func (m *Model) cycleTheme() tea.Cmd {
	return m.savePreferences(withTheme(m.prefs, NextTheme(m.theme.Name)))
}

// setStatus shows text in the footer until StatusTimeout passes or another
// status replaces it.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusID++
	m.status = text
	return clearStatusCmd(m.statusID, StatusTimeout)
}

// toggleDebugLog switches the log file between debug and info records.
func (m *Model) toggleDebugLog() tea.Cmd {
	if m.setLogLevel == nil {
		return m.setStatus("Log level is fixed")
	}
	m.debug = !m.debug
	m.setLogLevel(ternary(m.debug, slog.LevelDebug, slog.LevelInfo))
	m.log("Debug logging", "enabled", m.debug)
	return m.setStatus(ternary(m.debug, "Debug logging on", "Debug logging off"))
}

func (m *Model) copyLocation() tea.Cmd {
	if m.location == "" {
		return m.setStatus("Nothing to copy")
	}
	if err := m.copyText(m.location); err != nil {
		m.logger.Error("copy location failed", "error", err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err))
	}
	m.log("Copied location", "location", m.location)
	return m.setStatus("Copied " + m.location)
}

// renderMain renders the full page.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	bodyHeight := m.height - headerHeight - footerHeight
	if m.console.visible {
		bodyHeight -= ConsoleHeight + 1
	}
	b.WriteString(m.renderBody(max(bodyHeight, 1)))
	b.WriteString("\n")

	if m.console.visible {
		b.WriteString(m.renderConsole())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type statusMsg string

type clearStatusMsg struct{ id int }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// delayCmd delivers msg after d. The timer cannot be cancelled.
func delayCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Run starts the Bubble Tea program and blocks until it exits or the context
// is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	ctx := m.ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
