package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/tui/theme"
)

// Header renders the application header
type Header struct {
	Width    int
	Title    string
	Subtitle string
	Language string
}

// NewHeader creates a new header component
func NewHeader(width int) *Header {
	return &Header{Width: width}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetContent updates the localized header text
func (h *Header) SetContent(title, subtitle, language string) {
	h.Title = title
	h.Subtitle = subtitle
	h.Language = language
}

// View renders the header
func (h *Header) View() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	leftPart := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render(h.Title),
		"  ",
		subtitleStyle.Render(h.Subtitle),
	)

	// Language and theme badges
	badgeStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.BackgroundSecondary).
		Padding(0, 1)
	rightPart := lipgloss.JoinHorizontal(
		lipgloss.Center,
		badgeStyle.Render(h.Language),
		" ",
		badgeStyle.Foreground(t.Accent).Render(t.Name),
	)

	spacing := h.Width - lipgloss.Width(leftPart) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		leftPart,
		lipgloss.NewStyle().Width(spacing).Render(""),
		rightPart,
	)

	separator := lipgloss.NewStyle().
		Foreground(t.Border).
		Width(h.Width).
		Render(strings.Repeat("─", max(h.Width, 0)))

	return header + "\n" + separator
}
