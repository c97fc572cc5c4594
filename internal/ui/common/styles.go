package common

import "charm.land/lipgloss/v2"

// Styles contains all the board styles
type Styles struct {
	// Layout
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Text hierarchy
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Columns and cards
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style
	Card               lipgloss.Style
	CardSelected       lipgloss.Style
	CardLifted         lipgloss.Style
	Placeholder        lipgloss.Style
	ScrollIndicator    lipgloss.Style

	// Toolbar
	ToolbarButton       lipgloss.Style
	ToolbarButtonActive lipgloss.Style

	// Help bar
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles builds styles from the current theme.
func DefaultStyles() Styles {
	c := CurrentTheme().Colors
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border),
		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused),

		Title: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(c.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Bold(true),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Bold(true),
		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true).
			Underline(true),
		Card: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Surface1),
		CardSelected: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Selection).
			Bold(true),
		CardLifted: lipgloss.NewStyle().
			Foreground(c.Background).
			Background(c.Primary).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(c.Primary),
		ScrollIndicator: lipgloss.NewStyle().
			Foreground(c.Muted),

		ToolbarButton: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Surface2).
			Padding(0, 1),
		ToolbarButtonActive: lipgloss.NewStyle().
			Foreground(c.Background).
			Background(c.Secondary).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(c.Muted),
		HelpKey: lipgloss.NewStyle().
			Foreground(c.Secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(c.Muted),

		Error:   lipgloss.NewStyle().Foreground(c.Error),
		Success: lipgloss.NewStyle().Foreground(c.Success),
		Warning: lipgloss.NewStyle().Foreground(c.Warning),
		Info:    lipgloss.NewStyle().Foreground(c.Info),

		ToastSuccess: toast.Foreground(c.Background).Background(c.Success),
		ToastError:   toast.Foreground(c.Background).Background(c.Error),
		ToastWarning: toast.Foreground(c.Background).Background(c.Warning),
		ToastInfo:    toast.Foreground(c.Background).Background(c.Info),
	}
}
