package common

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeTokyoNight  ThemeID = "tokyo-night"
	ThemeGruvbox     ThemeID = "gruvbox"
	ThemeGitHubLight ThemeID = "github-light"
)

// ThemeColors defines all colors used by the board.
type ThemeColors struct {
	Background    color.Color
	Foreground    color.Color
	Muted         color.Color
	Border        color.Color
	BorderFocused color.Color

	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Info      color.Color

	Surface1 color.Color
	Surface2 color.Color

	Selection color.Color
	Highlight color.Color
}

// Theme represents a complete color theme.
type Theme struct {
	ID     ThemeID
	Name   string
	Colors ThemeColors
}

// AvailableThemes returns all predefined themes.
func AvailableThemes() []Theme {
	return []Theme{
		TokyoNightTheme(),
		GruvboxTheme(),
		GitHubLightTheme(),
	}
}

// GetTheme returns a theme by ID, defaulting to Tokyo Night.
func GetTheme(id ThemeID) Theme {
	for _, t := range AvailableThemes() {
		if t.ID == id {
			return t
		}
	}
	return TokyoNightTheme()
}

// TokyoNightTheme - cool blue tones
func TokyoNightTheme() Theme {
	return Theme{
		ID:   ThemeTokyoNight,
		Name: "Tokyo Night",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#1a1b26"),
			Foreground:    lipgloss.Color("#a9b1d6"),
			Muted:         lipgloss.Color("#565f89"),
			Border:        lipgloss.Color("#292e42"),
			BorderFocused: lipgloss.Color("#7aa2f7"),

			Primary:   lipgloss.Color("#7aa2f7"),
			Secondary: lipgloss.Color("#bb9af7"),
			Success:   lipgloss.Color("#9ece6a"),
			Warning:   lipgloss.Color("#e0af68"),
			Error:     lipgloss.Color("#f7768e"),
			Info:      lipgloss.Color("#7dcfff"),

			Surface1: lipgloss.Color("#1f2335"),
			Surface2: lipgloss.Color("#24283b"),

			Selection: lipgloss.Color("#33467c"),
			Highlight: lipgloss.Color("#3d59a1"),
		},
	}
}

// GruvboxTheme - warm, retro tones with orange accent
func GruvboxTheme() Theme {
	return Theme{
		ID:   ThemeGruvbox,
		Name: "Gruvbox",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#282828"),
			Foreground:    lipgloss.Color("#ebdbb2"),
			Muted:         lipgloss.Color("#928374"),
			Border:        lipgloss.Color("#3c3836"),
			BorderFocused: lipgloss.Color("#fe8019"),

			Primary:   lipgloss.Color("#fe8019"),
			Secondary: lipgloss.Color("#d3869b"),
			Success:   lipgloss.Color("#b8bb26"),
			Warning:   lipgloss.Color("#fabd2f"),
			Error:     lipgloss.Color("#fb4934"),
			Info:      lipgloss.Color("#83a598"),

			Surface1: lipgloss.Color("#3c3836"),
			Surface2: lipgloss.Color("#504945"),

			Selection: lipgloss.Color("#504945"),
			Highlight: lipgloss.Color("#665c54"),
		},
	}
}

// GitHubLightTheme - light background
func GitHubLightTheme() Theme {
	return Theme{
		ID:   ThemeGitHubLight,
		Name: "GitHub Light",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#ffffff"),
			Foreground:    lipgloss.Color("#24292f"),
			Muted:         lipgloss.Color("#6e7781"),
			Border:        lipgloss.Color("#d0d7de"),
			BorderFocused: lipgloss.Color("#0969da"),

			Primary:   lipgloss.Color("#0969da"),
			Secondary: lipgloss.Color("#8250df"),
			Success:   lipgloss.Color("#1a7f37"),
			Warning:   lipgloss.Color("#9a6700"),
			Error:     lipgloss.Color("#cf222e"),
			Info:      lipgloss.Color("#0550ae"),

			Surface1: lipgloss.Color("#f6f8fa"),
			Surface2: lipgloss.Color("#eaeef2"),

			Selection: lipgloss.Color("#ddf4ff"),
			Highlight: lipgloss.Color("#b6e3ff"),
		},
	}
}

var (
	themeMu      sync.RWMutex
	currentTheme = TokyoNightTheme()
)

// SetCurrentTheme switches the active palette. Styles built afterwards pick
// up the new colors.
func SetCurrentTheme(id ThemeID) {
	t := GetTheme(id)
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func ColorForeground() color.Color { return CurrentTheme().Colors.Foreground }
func ColorMuted() color.Color      { return CurrentTheme().Colors.Muted }
func ColorBorder() color.Color     { return CurrentTheme().Colors.Border }
func ColorPrimary() color.Color    { return CurrentTheme().Colors.Primary }
func ColorSuccess() color.Color    { return CurrentTheme().Colors.Success }
func ColorWarning() color.Color    { return CurrentTheme().Colors.Warning }
func ColorError() color.Color      { return CurrentTheme().Colors.Error }
