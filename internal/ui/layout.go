package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the sidebar shows icons only.
	LayoutCompactWidth = 90

	// SidebarWidth is the width of the expanded sidebar.
	SidebarWidth = 16

	// SidebarCompactWidth is the width of the icon-only sidebar.
	SidebarCompactWidth = 5

	// ConsoleHeight is the number of rows the activity console takes when open.
	ConsoleHeight = 8
)

// Buffer limits.
const (
	// ConsoleLineLimit is the maximum number of console lines kept in memory.
	ConsoleLineLimit = 500

	// ConsoleSeedLines is how many log file lines seed the console at startup.
	ConsoleSeedLines = 200
)

// Timing constants.
const (
	// DefaultSearchDebounce is the quiet period before suggestions are computed.
	DefaultSearchDebounce = 300 * time.Millisecond

	// DefaultActionDelay separates a dialog action from its follow-up alert.
	DefaultActionDelay = 300 * time.Millisecond

	// PressDuration is how long a design type tile stays pressed.
	PressDuration = 100 * time.Millisecond

	// StatusTimeout is how long a status message stays in the footer.
	StatusTimeout = 4 * time.Second

	// DefaultUIInterval is the default snapshot refresh interval.
	DefaultUIInterval = time.Second
)

// Fixed chrome heights.
const (
	headerHeight = 1
	footerHeight = 1
)
