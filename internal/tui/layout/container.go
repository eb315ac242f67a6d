package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/tui/theme"
)

// Container wraps content with optional borders, padding and a title
type Container struct {
	Title string

	Border      bool
	BorderStyle lipgloss.Border
	BorderColor lipgloss.Color

	PaddingX int
	PaddingY int

	Width int
}

// ContainerOption configures a container
type ContainerOption func(*Container)

// NewContainer creates a container with options
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		Border:      true,
		BorderStyle: lipgloss.RoundedBorder(),
		BorderColor: theme.Current.Border,
		PaddingX:    1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTitle sets a heading rendered inside the top of the container
func WithTitle(title string) ContainerOption {
	return func(c *Container) {
		c.Title = title
	}
}

// WithPadding sets vertical and horizontal padding
func WithPadding(y, x int) ContainerOption {
	return func(c *Container) {
		c.PaddingY = y
		c.PaddingX = x
	}
}

// WithWidth sets the outer width
func WithWidth(width int) ContainerOption {
	return func(c *Container) {
		c.Width = width
	}
}

// WithBorderColor sets the border color
func WithBorderColor(color lipgloss.Color) ContainerOption {
	return func(c *Container) {
		c.BorderColor = color
	}
}

// WithoutBorder disables the border
func WithoutBorder() ContainerOption {
	return func(c *Container) {
		c.Border = false
	}
}

// Render wraps content with the container styling
func (c *Container) Render(content string) string {
	style := lipgloss.NewStyle().Padding(c.PaddingY, c.PaddingX)

	frame := 0
	if c.Border {
		style = style.Border(c.BorderStyle).BorderForeground(c.BorderColor)
		frame = 2
	}
	if c.Width > 0 {
		style = style.Width(max(c.Width-frame, 0))
	}

	if c.Title != "" {
		title := lipgloss.NewStyle().
			Foreground(theme.Current.Primary).
			Bold(true).
			Render(c.Title)
		content = title + "\n" + content
	}
	return style.Render(content)
}

// ThickBorderLeft creates a thick left border style (for quoted blocks)
func ThickBorderLeft(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1)
}
