package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studio/internal/logtail"
)

// console is the in-app activity log. It mirrors every handler log line.
type console struct {
	lines   []string
	view    viewport.Model
	visible bool
	sized   bool
}

func (c *console) seed(lines []string) {
	for _, l := range lines {
		c.lines = append(c.lines, logtail.ConsoleLine(l))
	}
	c.trim()
	c.sync()
}

func (c *console) append(line string) {
	c.lines = append(c.lines, line)
	c.trim()
	c.sync()
}

func (c *console) trim() {
	if over := len(c.lines) - ConsoleLineLimit; over > 0 {
		c.lines = append(c.lines[:0:0], c.lines[over:]...)
	}
}

func (c *console) resize(width, height int) {
	if !c.sized {
		c.view = viewport.New(width, height)
		c.sized = true
	} else {
		c.view.Width = width
		c.view.Height = height
	}
	c.sync()
}

func (c *console) sync() {
	if !c.sized {
		return
	}
	c.view.SetContent(strings.Join(c.lines, "\n"))
	c.view.GotoBottom()
}

func (c *console) toggle() {
	c.visible = !c.visible
}

func (c *console) pageUp() {
	c.view.PageUp()
}

func (c *console) pageDown() {
	c.view.PageDown()
}

// log writes msg to the log file and the console.
func (m *Model) log(msg string, args ...any) {
	m.logger.Info(msg, args...)
	m.console.append(logtail.FormatRecord(m.now(), "INFO", msg, formatAttrs(args)))
}

// formatAttrs renders slog-style key/value pairs as key=value strings.
func formatAttrs(args []any) []string {
	out := make([]string, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			out = append(out, fmt.Sprint(args[i]))
			break
		}
		out = append(out, fmt.Sprintf("%v=%v", args[i], args[i+1]))
	}
	return out
}

func (m Model) renderConsole() string {
	styles := m.theme.Styles()
	parts := []string{styles.AccentText.Bold(true).Render("Activity")}
	if m.logPath != "" {
		parts = append(parts, styles.MutedText.Render(truncateMiddle(m.logPath, 40)))
	}
	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.MutedText.Render("synced "+humanizeDuration(m.now().Sub(m.snapshot.LastUpdated))))
	}
	parts = append(parts, styles.FaintText.Render("pgup/pgdown scroll · L hide"))
	head := strings.Join(parts, "  ")
	return lipgloss.JoinVertical(lipgloss.Left, clipLines(head, m.width), styles.MutedText.Render(m.console.view.View()))
}
