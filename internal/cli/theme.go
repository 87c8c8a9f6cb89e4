package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorRole identifies a semantic color in the theme.
type ColorRole int

const (
	RoleSuccess ColorRole = iota
	RoleError
	RoleWarn
	RoleInfo
	RoleAccent
	RoleHeading
	RoleMuted
)

// Theme maps color roles to hex colors. A role missing from Colors renders
// as plain text.
type Theme struct {
	Name         string
	Colors       map[ColorRole]lipgloss.Color
	BoldHeadings bool
}

var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[ColorRole]lipgloss.Color{
			RoleSuccess: "#2D8C5A",
			RoleError:   "#C43030",
			RoleWarn:    "#D4940A",
			RoleInfo:    "#3FA7B5",
			RoleAccent:  "#E85D3A",
			RoleMuted:   "#8C8C8C",
		},
		BoldHeadings: true,
	},
	"dark": {
		Name: "dark",
		Colors: map[ColorRole]lipgloss.Color{
			RoleSuccess: "#50DC78",
			RoleError:   "#FF5050",
			RoleWarn:    "#FFC83C",
			RoleInfo:    "#64B4DC",
			RoleAccent:  "#FF7850",
			RoleHeading: "#FFFFFF",
			RoleMuted:   "#787878",
		},
		BoldHeadings: true,
	},
	"light": {
		Name: "light",
		Colors: map[ColorRole]lipgloss.Color{
			RoleSuccess: "#1E643C",
			RoleError:   "#A01E1E",
			RoleWarn:    "#A06E00",
			RoleInfo:    "#3C3C3C",
			RoleAccent:  "#C84628",
			RoleHeading: "#000000",
			RoleMuted:   "#8C8C8C",
		},
		BoldHeadings: true,
	},
	"minimal": {
		Name:   "minimal",
		Colors: map[ColorRole]lipgloss.Color{},
	},
	"ocean": {
		Name: "ocean",
		Colors: map[ColorRole]lipgloss.Color{
			RoleSuccess: "#50C8B4",
			RoleError:   "#FF6464",
			RoleWarn:    "#FFC864",
			RoleInfo:    "#64B4DC",
			RoleAccent:  "#3C96FF",
			RoleHeading: "#3C96FF",
			RoleMuted:   "#7896AA",
		},
		BoldHeadings: true,
	},
	"forest": {
		Name: "forest",
		Colors: map[ColorRole]lipgloss.Color{
			RoleSuccess: "#3CB450",
			RoleError:   "#DC3C3C",
			RoleWarn:    "#C8AA28",
			RoleInfo:    "#78A064",
			RoleAccent:  "#50B43C",
			RoleHeading: "#50B43C",
			RoleMuted:   "#788C6E",
		},
		BoldHeadings: true,
	},
}

// currentTheme is the active theme.
var currentTheme = themes["default"]

// SetTheme changes the active theme. Returns an error if the name is unknown.
func SetTheme(name string) error {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown theme %q, available: %s", name, strings.Join(ThemeNames(), ", "))
	}
	currentTheme = t
	return nil
}

// CurrentThemeName returns the name of the active theme.
func CurrentThemeName() string {
	return currentTheme.Name
}

// ThemeNames returns the list of available theme names in display order.
func ThemeNames() []string {
	return []string{"default", "dark", "light", "minimal", "ocean", "forest"}
}

// GetTheme returns the theme with the given name, or nil if not found.
func GetTheme(name string) *Theme {
	return themes[strings.ToLower(name)]
}

// Colorize renders msg in the current theme's style for the given role.
func Colorize(role ColorRole, msg string) string {
	if !ColorEnabled {
		return msg
	}
	s, ok := style(role)
	if !ok {
		return msg
	}
	return s.Render(msg)
}

// Accent formats text in the theme's accent color.
func Accent(msg string) string {
	return Colorize(RoleAccent, msg)
}

// Heading formats text in the theme's heading style.
func Heading(msg string) string {
	return Colorize(RoleHeading, msg)
}

// Muted formats text in the theme's muted color.
func Muted(msg string) string {
	return Colorize(RoleMuted, msg)
}

// ThemePreview returns a one-line sample of each role in a theme.
func ThemePreview(name string) string {
	t := themes[strings.ToLower(name)]
	if t == nil {
		return ""
	}

	if !ColorEnabled {
		return fmt.Sprintf("  %s (colors disabled)", name)
	}

	samples := []struct {
		role  ColorRole
		label string
	}{
		{RoleAccent, "accent"},
		{RoleSuccess, "success"},
		{RoleError, "error"},
		{RoleWarn, "warn"},
		{RoleInfo, "info"},
		{RoleMuted, "muted"},
	}

	var b strings.Builder
	for _, s := range samples {
		b.WriteString(" ")
		c, ok := t.Colors[s.role]
		if !ok {
			b.WriteString(s.label)
			continue
		}
		b.WriteString(renderer.NewStyle().Foreground(c).Render(s.label))
	}
	return b.String()
}
