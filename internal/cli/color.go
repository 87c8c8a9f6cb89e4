package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorEnabled controls whether ANSI color codes are emitted.
// It defaults to true if stdout is a terminal and NO_COLOR is not set.
var ColorEnabled = initColorEnabled()

func initColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderer always emits 24-bit color; ColorEnabled decides whether it is used.
var renderer = newRenderer()

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// style returns the lipgloss style for a role in the current theme, and
// false when the role renders as plain text.
func style(role ColorRole) (lipgloss.Style, bool) {
	s := renderer.NewStyle()
	c, ok := currentTheme.Colors[role]
	if ok {
		s = s.Foreground(c)
	}
	if role == RoleHeading && currentTheme.BoldHeadings {
		s = s.Bold(true)
		ok = true
	}
	return s, ok
}

// Success formats a message with a green check prefix.
func Success(msg string) string {
	return Colorize(RoleSuccess, "✓ "+msg)
}

// Error formats a message with a red cross prefix.
func Error(msg string) string {
	return Colorize(RoleError, "✗ "+msg)
}

// Warn formats a message with a yellow warning prefix.
func Warn(msg string) string {
	return Colorize(RoleWarn, "⚠ "+msg)
}

// Info formats a message with the theme's info color (no prefix).
func Info(msg string) string {
	return Colorize(RoleInfo, msg)
}
