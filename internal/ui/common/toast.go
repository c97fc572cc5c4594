package common

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ToastType identifies the type of toast notification
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastError
	ToastWarning
)

// Toast represents a notification message
type Toast struct {
	Message  string
	Type     ToastType
	Duration time.Duration
}

// ToastDismissed is sent when a toast should be dismissed. Seq ties the
// dismissal to the toast that scheduled it.
type ToastDismissed struct {
	Seq uint64
}

// ToastModel manages toast notifications
type ToastModel struct {
	current *Toast
	seq     uint64
	styles  Styles
}

// NewToastModel creates a new toast model
func NewToastModel() *ToastModel {
	return &ToastModel{styles: DefaultStyles()}
}

// SetStyles updates the toast styles (for theme changes).
func (m *ToastModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Show displays a toast and schedules its dismissal.
func (m *ToastModel) Show(message string, toastType ToastType, duration time.Duration) tea.Cmd {
	m.seq++
	seq := m.seq
	m.current = &Toast{Message: message, Type: toastType, Duration: duration}
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{Seq: seq}
	})
}

// ShowSuccess shows a success toast
func (m *ToastModel) ShowSuccess(message string) tea.Cmd {
	return m.Show(message, ToastSuccess, 3*time.Second)
}

// ShowError shows an error toast
func (m *ToastModel) ShowError(message string) tea.Cmd {
	return m.Show(message, ToastError, 5*time.Second)
}

// ShowInfo shows an info toast
func (m *ToastModel) ShowInfo(message string) tea.Cmd {
	return m.Show(message, ToastInfo, 3*time.Second)
}

// ShowWarning shows a warning toast
func (m *ToastModel) ShowWarning(message string) tea.Cmd {
	return m.Show(message, ToastWarning, 4*time.Second)
}

// Update handles messages. A dismissal for an older toast is ignored.
func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	if d, ok := msg.(ToastDismissed); ok && d.Seq == m.seq {
		m.current = nil
	}
	return m, nil
}

// View renders the toast notification
func (m *ToastModel) View() string {
	if m.current == nil {
		return ""
	}

	var style lipgloss.Style
	var icon string
	switch m.current.Type {
	case ToastSuccess:
		style, icon = m.styles.ToastSuccess, Icons.Success
	case ToastError:
		style, icon = m.styles.ToastError, Icons.Error
	case ToastWarning:
		style, icon = m.styles.ToastWarning, Icons.Warning
	default:
		style, icon = m.styles.ToastInfo, Icons.Info
	}
	return style.Render(icon + " " + m.current.Message)
}

// Visible returns whether a toast is showing
func (m *ToastModel) Visible() bool {
	return m.current != nil
}

// Dismiss immediately hides the toast
func (m *ToastModel) Dismiss() {
	m.current = nil
}
