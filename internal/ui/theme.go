package ui

import (
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studio/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, sidebar and footer
	SurfaceAlt string // Cards and panels
	FocusBg    string // Focused element

	// Selection
	SelectionBg   string // Active tab / nav button
	SelectionText string

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
	Premium string

	// Markdown is the glamour standard style used for dialog bodies.
	Markdown string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Focused: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		PrimaryButton: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		PremiumBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Premium)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header        lipgloss.Style
	Footer        lipgloss.Style
	Logo          lipgloss.Style
	Selected      lipgloss.Style
	Focused       lipgloss.Style
	Button        lipgloss.Style
	PrimaryButton lipgloss.Style
	PremiumBadge  lipgloss.Style
	Card          lipgloss.Style
	CardFocused   lipgloss.Style
}

// Theme definitions

const (
	ThemeLight        = "Light"
	ThemeDark         = "Dark"
	ThemeHighContrast = "High Contrast"
)

var themes = map[string]Theme{
	ThemeLight:        lightTheme(),
	ThemeDark:         darkTheme(),
	ThemeHighContrast: highContrastTheme(),
}

var themeOrder = []string{ThemeLight, ThemeDark, ThemeHighContrast}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return lightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// ThemeFor picks the theme a preferences record asks for. highContrast beats
// darkMode, which beats an explicit theme name; fallback is used when none
// of them applies.
func ThemeFor(p prefs.Prefs, fallback string) string {
	switch {
	case p.HighContrast():
		return ThemeHighContrast
	case p.DarkMode():
		return ThemeDark
	}
	if name := p.Theme(); name != "" {
		if _, ok := themes[name]; ok {
			return name
		}
	}
	if _, ok := themes[fallback]; ok {
		return fallback
	}
	return ThemeLight
}

// withTheme returns p updated so ThemeFor(p) yields name.
func withTheme(p prefs.Prefs, name string) prefs.Prefs {
	return p.
		With(prefs.FieldTheme, name).
		With(prefs.FieldDarkMode, name == ThemeDark).
		With(prefs.FieldHighContrast, name == ThemeHighContrast)
}

func lightTheme() Theme {
	// Tailwind CSS palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: ThemeLight,

		Background: "#ffffff",
		Surface:    "#f8fafc", // slate-50
		SurfaceAlt: "#f1f5f9", // slate-100
		FocusBg:    "#ede9fe", // violet-100

		SelectionBg:   "#7c3aed", // violet-600
		SelectionText: "#ffffff",

		Border:      "#cbd5e1", // slate-300
		BorderMuted: "#e2e8f0", // slate-200
		BorderFocus: "#7c3aed", // violet-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Accent:  "#7c3aed", // violet-600
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600
		Info:    "#0891b2", // cyan-600
		Premium: "#ca8a04", // yellow-600

		Markdown: styles.LightStyle,
	}
}

func darkTheme() Theme {
	return Theme{
		Name: ThemeDark,

		Background: "#0f172a", // slate-900
		Surface:    "#1e293b", // slate-800
		SurfaceAlt: "#273449",
		FocusBg:    "#3b2f63",

		SelectionBg:   "#8b5cf6", // violet-500
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#a78bfa", // violet-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#a78bfa", // violet-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500
		Premium: "#facc15", // yellow-400

		Markdown: styles.DarkStyle,
	}
}

func highContrastTheme() Theme {
	return Theme{
		Name: ThemeHighContrast,

		Background: "#000000",
		Surface:    "#000000",
		SurfaceAlt: "#1a1a1a",
		FocusBg:    "#4d4d00",

		SelectionBg:   "#ffffff",
		SelectionText: "#000000",

		Border:      "#ffffff",
		BorderMuted: "#808080",
		BorderFocus: "#ffff00",

		Text:    "#ffffff",
		Muted:   "#e0e0e0",
		Faint:   "#bdbdbd",
		Accent:  "#00ffff",
		Success: "#00ff00",
		Warning: "#ffff00",
		Danger:  "#ff4040",
		Info:    "#00ffff",
		Premium: "#ffd700",

		Markdown: styles.DarkStyle,
	}
}
