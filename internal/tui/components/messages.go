package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/toolbox"
	"github.com/hcminh/folio/internal/tui/theme"
)

// Transcript renders chat turns. Model replies are markdown.
type Transcript struct {
	renderer *glamour.TermRenderer
	width    int

	// Names shown above each turn
	UserName  string
	ModelName string
}

// NewTranscript creates a transcript renderer wrapping at width
func NewTranscript(width int) *Transcript {
	t := &Transcript{UserName: "You", ModelName: "Assistant"}
	t.SetWidth(width)
	return t
}

// SetWidth updates the wrap width
func (tr *Transcript) SetWidth(width int) {
	tr.width = width
	// Explicit dark style avoids terminal color queries
	tr.renderer, _ = glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-6, 20)),
	)
}

// Markdown renders s as markdown, or returns it unchanged on failure.
func (tr *Transcript) Markdown(s string) string {
	if tr.renderer == nil {
		return s
	}
	r, err := tr.renderer.Render(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(r)
}

// Render draws the turns, with welcome shown when there are none.
func (tr *Transcript) Render(turns []toolbox.Turn, welcome string) string {
	t := theme.Current
	contentWidth := tr.width - 4

	if len(turns) == 0 {
		return lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true).
			Render(welcome)
	}

	var sb strings.Builder
	for _, turn := range turns {
		switch {
		case turn.Role == llm.RoleUser:
			iconStyle := lipgloss.NewStyle().
				Foreground(t.Info).
				Bold(true)
			headerStyle := lipgloss.NewStyle().
				Foreground(t.Text).
				Bold(true)
			sb.WriteString(iconStyle.Render("◉") + " " + headerStyle.Render(tr.UserName) + "\n")

			bodyStyle := lipgloss.NewStyle().
				Foreground(t.Text).
				PaddingLeft(2).
				Width(contentWidth)
			sb.WriteString(bodyStyle.Render(turn.Text) + "\n\n")

		case turn.Failed:
			iconStyle := lipgloss.NewStyle().
				Foreground(t.Error).
				Bold(true)
			errStyle := lipgloss.NewStyle().
				Foreground(t.Error)
			sb.WriteString(iconStyle.Render("✗") + " " + errStyle.Render(turn.Text) + "\n\n")

		default:
			style := lipgloss.NewStyle().
				Foreground(t.Primary).
				Bold(true)
			sb.WriteString(style.Render("✦") + " " + style.Render(tr.ModelName) + "\n")

			bodyStyle := lipgloss.NewStyle().
				Foreground(t.Text).
				PaddingLeft(2).
				Width(contentWidth)
			sb.WriteString(bodyStyle.Render(tr.Markdown(turn.Text)) + "\n\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
