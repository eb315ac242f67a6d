package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/tui/components"
	"github.com/hcminh/folio/internal/tui/theme"
)

type fieldKind int

const (
	textField   fieldKind = iota // single line
	areaField                    // multi-line, enter inserts a newline
	choiceField                  // ←/→ cycles choices
	pagerField                   // ←/→ handled by the section
)

// field is one focus stop of a tool form.
type field struct {
	kind    fieldKind
	text    textinput.Model
	area    *components.Editor
	choices []string
	choice  int
	focused bool
}

func newTextField(placeholder string) *field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 500
	return &field{kind: textField, text: ti}
}

func newSecretField(placeholder string) *field {
	f := newTextField(placeholder)
	f.text.EchoMode = textinput.EchoPassword
	f.text.EchoCharacter = '•'
	return f
}

func newAreaField(placeholder string, width, height int) *field {
	return &field{kind: areaField, area: components.NewEditor(width, height, placeholder)}
}

func newChoiceField(choices []string, selected int) *field {
	return &field{kind: choiceField, choices: choices, choice: selected}
}

func newPagerField() *field {
	return &field{kind: pagerField}
}

func (f *field) value() string {
	switch f.kind {
	case textField:
		return f.text.Value()
	case areaField:
		return f.area.Value()
	case choiceField:
		if f.choice >= 0 && f.choice < len(f.choices) {
			return f.choices[f.choice]
		}
	}
	return ""
}

func (f *field) reset() {
	switch f.kind {
	case textField:
		f.text.Reset()
	case areaField:
		f.area.Reset()
	}
}

func (f *field) setPlaceholder(s string) {
	switch f.kind {
	case textField:
		f.text.Placeholder = s
	case areaField:
		f.area.SetPlaceholder(s)
	}
}

func (f *field) setWidth(width int) {
	switch f.kind {
	case textField:
		f.text.Width = max(width-4, 10)
	case areaField:
		f.area.SetSize(width, 8)
	}
}

func (f *field) focus() tea.Cmd {
	f.focused = true
	switch f.kind {
	case textField:
		return f.text.Focus()
	case areaField:
		return f.area.Focus()
	}
	return nil
}

func (f *field) blur() {
	f.focused = false
	switch f.kind {
	case textField:
		f.text.Blur()
	case areaField:
		f.area.Blur()
	}
}

// move cycles a choice field and reports whether the choice changed.
func (f *field) move(delta int) bool {
	n := len(f.choices)
	if f.kind != choiceField || n == 0 {
		return false
	}
	f.choice = ((f.choice+delta)%n + n) % n
	return true
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.kind {
	case textField:
		f.text, cmd = f.text.Update(msg)
	case areaField:
		f.area, cmd = f.area.Update(msg)
	}
	return cmd
}

// view renders the input. labels maps choice values to display text.
func (f *field) view(labels func(string) string) string {
	t := theme.Current
	switch f.kind {
	case textField:
		border := t.Border
		if f.focused {
			border = t.BorderFocus
		}
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Render(f.text.View())
	case areaField:
		return f.area.View()
	case choiceField:
		var out []string
		for i, c := range f.choices {
			label := c
			if labels != nil {
				label = labels(c)
			}
			style := lipgloss.NewStyle().Padding(0, 1).Foreground(t.TextMuted)
			if i == f.choice {
				style = style.Foreground(t.TextInverse).Background(t.Primary).Bold(true)
			}
			out = append(out, style.Render(label))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, out...)
		if f.focused {
			arrow := lipgloss.NewStyle().Foreground(t.Accent)
			row = arrow.Render("‹ ") + row + arrow.Render(" ›")
		}
		return row
	}
	return ""
}

// form is an ordered set of fields with one focused at a time.
type form struct {
	fields []*field
	focus  int
	active bool
}

func newForm(fields ...*field) *form {
	return &form{fields: fields}
}

func (f *form) current() *field {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus]
}

// setActive focuses or blurs the current field.
func (f *form) setActive(active bool) tea.Cmd {
	f.active = active
	cur := f.current()
	if cur == nil {
		return nil
	}
	if !active {
		cur.blur()
		return nil
	}
	return cur.focus()
}

func (f *form) step(delta int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	f.current().blur()
	f.focus = ((f.focus+delta)%n + n) % n
	return f.current().focus()
}

func (f *form) next() tea.Cmd { return f.step(1) }

func (f *form) prev() tea.Cmd { return f.step(-1) }

// focusField moves focus to index i.
func (f *form) focusField(i int) tea.Cmd {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	return f.step(i - f.focus)
}

func (f *form) setWidth(width int) {
	for _, fl := range f.fields {
		fl.setWidth(width)
	}
}
