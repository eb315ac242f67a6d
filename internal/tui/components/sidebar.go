package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/content"
	"github.com/hcminh/folio/internal/tui/theme"
)

// Sidebar is the section navigation list. Group headers are shown but
// never selected.
type Sidebar struct {
	items    []content.NavItem
	selected int
	active   string
	focused  bool
	width    int
	height   int
}

// NewSidebar creates a sidebar over items
func NewSidebar(items []content.NavItem) *Sidebar {
	s := &Sidebar{}
	s.SetItems(items)
	return s
}

// SetItems replaces the items, keeping the selection on the same id.
func (s *Sidebar) SetItems(items []content.NavItem) {
	id := s.Selected()
	s.items = items
	s.selected = -1
	if !s.Select(id) {
		s.MoveDown()
	}
}

// SetSize sets the component size
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Sidebar) SetFocused(focused bool) { s.focused = focused }

// SetActive marks the section shown in the content pane
func (s *Sidebar) SetActive(id string) { s.active = id }

// Select moves the cursor to id and reports whether it exists.
func (s *Sidebar) Select(id string) bool {
	if id == "" {
		return false
	}
	for i, item := range s.items {
		if item.ID == id {
			s.selected = i
			return true
		}
	}
	return false
}

// MoveUp moves selection to the previous link
func (s *Sidebar) MoveUp() {
	for i := s.selected - 1; i >= 0; i-- {
		if s.items[i].ID != "" {
			s.selected = i
			return
		}
	}
}

// MoveDown moves selection to the next link
func (s *Sidebar) MoveDown() {
	for i := s.selected + 1; i < len(s.items); i++ {
		if s.items[i].ID != "" {
			s.selected = i
			return
		}
	}
}

// Selected returns the id under the cursor
func (s *Sidebar) Selected() string {
	if s.selected >= 0 && s.selected < len(s.items) {
		return s.items[s.selected].ID
	}
	return ""
}

// View renders the sidebar
func (s *Sidebar) View() string {
	t := theme.Current

	var sb strings.Builder
	for i, item := range s.items {
		if item.ID == "" {
			if i > 0 {
				sb.WriteString("\n")
			}
			headerStyle := lipgloss.NewStyle().
				Foreground(t.TextMuted).
				Italic(true)
			sb.WriteString(headerStyle.Render(strings.ToUpper(item.Header)) + "\n")
			continue
		}

		icon := "  "
		if i == s.selected && s.focused {
			icon = "› "
		}
		nameStyle := lipgloss.NewStyle().Foreground(t.Text)
		if item.ID == s.active {
			nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
		}
		row := lipgloss.NewStyle().Foreground(t.Primary).Render(icon) + nameStyle.Render(item.Title)

		if i == s.selected && s.focused {
			row = lipgloss.NewStyle().
				Background(t.BackgroundSecondary).
				Width(max(s.width-4, 0)).
				Render(row)
		}
		sb.WriteString(row + "\n")
	}

	borderColor := t.Border
	if s.focused {
		borderColor = t.BorderFocus
	}
	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, false, false).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(s.width-1, 0)).
		Height(max(s.height, 0))

	return container.Render(strings.TrimRight(sb.String(), "\n"))
}
