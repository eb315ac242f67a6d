package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// SplitPane divides the screen into header, sidebar, content and status.
type SplitPane struct {
	Width  int
	Height int

	// Fixed rows above and below the body
	HeaderHeight int
	StatusHeight int

	// Sidebar share of the width, bounded by MinSidebar and MaxSidebar
	SidebarRatio float64
	MinSidebar   int
	MaxSidebar   int
}

// NewSplitPane creates a split pane layout
func NewSplitPane(width, height int) *SplitPane {
	return &SplitPane{
		Width:        width,
		Height:       height,
		HeaderHeight: 2,
		StatusHeight: 1,
		SidebarRatio: 0.25,
		MinSidebar:   22,
		MaxSidebar:   32,
	}
}

// SetSize updates the pane dimensions
func (s *SplitPane) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// BodyHeight is the height between header and status bar
func (s *SplitPane) BodyHeight() int {
	return max(s.Height-s.HeaderHeight-s.StatusHeight, 0)
}

// SidebarWidth returns the width of the navigation column
func (s *SplitPane) SidebarWidth() int {
	w := int(float64(s.Width) * s.SidebarRatio)
	w = min(max(w, s.MinSidebar), s.MaxSidebar)
	return min(w, s.Width)
}

// ContentWidth returns the width of the content pane
func (s *SplitPane) ContentWidth() int {
	return max(s.Width-s.SidebarWidth(), 0)
}

// Render stacks the header, the sidebar and content columns, and the status bar.
func (s *SplitPane) Render(header, sidebar, content, status string) string {
	bodyHeight := s.BodyHeight()

	left := lipgloss.NewStyle().Width(s.SidebarWidth()).Height(bodyHeight).MaxHeight(bodyHeight).Render(sidebar)
	right := lipgloss.NewStyle().Width(s.ContentWidth()).Height(bodyHeight).MaxHeight(bodyHeight).Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		status,
	)
}
