package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/tui/theme"
)

// Editor is a bordered multi-line input
type Editor struct {
	textarea textarea.Model
	width    int
	height   int
	focused  bool
}

// NewEditor creates a new editor component
func NewEditor(width, height int, placeholder string) *Editor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = "┃ "
	ta.SetWidth(width - 6) // prompt and padding
	ta.SetHeight(height - 2)
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)

	return &Editor{
		textarea: ta,
		width:    width,
		height:   height,
	}
}

// SetSize updates the editor dimensions
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.textarea.SetWidth(width - 6)
	e.textarea.SetHeight(height - 2)
}

// SetPlaceholder replaces the placeholder text
func (e *Editor) SetPlaceholder(s string) {
	e.textarea.Placeholder = s
}

func (e *Editor) Focus() tea.Cmd {
	e.focused = true
	return e.textarea.Focus()
}

func (e *Editor) Blur() {
	e.focused = false
	e.textarea.Blur()
}

func (e *Editor) Focused() bool { return e.focused }

// Value returns the current text with leaked terminal responses removed
func (e *Editor) Value() string {
	return stripOSC(e.textarea.Value())
}

// stripOSC removes OSC escape sequences some terminals echo into input.
func stripOSC(val string) string {
	if !strings.Contains(val, "\x1b]") && !strings.Contains(val, "]11;") {
		return strings.TrimSpace(val)
	}
	val = strings.ReplaceAll(val, "\x1b", "")
	for strings.Contains(val, "]") && strings.Contains(val, ";") {
		start := strings.Index(val, "]")
		end := strings.Index(val[start:], "\x07") // BEL ends OSC
		if end == -1 {
			end = strings.Index(val[start:], "\\") // or ST
		}
		if end == -1 {
			end = strings.IndexAny(val[start:], " \n\t")
			if end == -1 {
				val = val[:start]
				break
			}
		}
		val = val[:start] + val[start+end+1:]
	}
	return strings.TrimSpace(val)
}

// Reset clears the editor
func (e *Editor) Reset() {
	e.textarea.Reset()
}

// SetValue sets the editor content
func (e *Editor) SetValue(value string) {
	e.textarea.SetValue(value)
}

// Update handles textarea updates
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor
func (e *Editor) View() string {
	t := theme.Current

	borderColor := t.Border
	if e.focused {
		borderColor = t.BorderFocus
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(e.width - 2).
		Padding(0, 1)

	return container.Render(e.textarea.View())
}
