package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/tui/theme"
)

// Status renders the status bar at the bottom
type Status struct {
	Width   int
	Model   string
	Hints   string
	Message string
	Loading bool
	KeySet  bool
}

// NewStatus creates a new status bar
func NewStatus(width int) *Status {
	return &Status{Width: width}
}

// SetWidth updates the status bar width
func (s *Status) SetWidth(width int) {
	s.Width = width
}

// SetMessage sets a transient notice shown in place of the hints
func (s *Status) SetMessage(msg string) {
	s.Message = msg
}

// View renders the status bar
func (s *Status) View() string {
	t := theme.Current

	left := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Render(s.Hints)
	if s.Message != "" {
		left = lipgloss.NewStyle().
			Foreground(t.Accent).
			Render(s.Message)
	}

	keyDot := lipgloss.NewStyle().Foreground(t.Error).Render("●")
	if s.KeySet {
		keyDot = lipgloss.NewStyle().Foreground(t.Success).Render("●")
	}

	modelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.BackgroundSecondary).
		Padding(0, 1)

	right := keyDot + " " + modelStyle.Render(s.Model)
	if s.Loading {
		right = lipgloss.NewStyle().
			Foreground(t.Primary).
			Render("● working...")
	}

	spacing := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacing < 0 {
		spacing = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		left,
		lipgloss.NewStyle().Width(spacing).Render(""),
		right,
	)
}
