package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/content"
	"github.com/hcminh/folio/internal/toolbox"
	"github.com/hcminh/folio/internal/tui/layout"
	"github.com/hcminh/folio/internal/tui/theme"
)

// Field positions within each tool form.
const (
	titleTopic = iota
	titleTone
)

const (
	timerScript = iota
	timerWPM
)

const (
	headlineTopic = iota
	headlineAudience
)

const (
	clanTheme = iota
	clanCount
	clanPages
)

const (
	helpKey = iota
	helpGuide
	helpFAQ
	helpChat
)

const guideToolbox = "toolbox"

// newForms builds the tool forms with placeholders from b.
func newForms(b *content.Bundle, width int) map[string]*form {
	tones := newChoiceField(toolbox.Tones, 0)

	var wpms []string
	for w := toolbox.MinWPM; w <= toolbox.MaxWPM; w += 10 {
		wpms = append(wpms, strconv.Itoa(w))
	}
	wpm := newChoiceField(wpms, (toolbox.DefaultWPM-toolbox.MinWPM)/10)

	var counts []string
	for _, n := range toolbox.ClanCounts {
		counts = append(counts, strconv.Itoa(n))
	}

	forms := map[string]*form{
		toolbox.ToolTitle:    newForm(newTextField(""), tones),
		toolbox.ToolTimer:    newForm(newAreaField("", width, 8), wpm),
		toolbox.ToolHeadline: newForm(newTextField(""), newTextField("")),
		toolbox.ToolIdiom:    newForm(newTextField("")),
		toolbox.ToolClan:     newForm(newTextField(""), newChoiceField(counts, 1), newPagerField()),
		toolbox.ToolChat:     newForm(newSecretField(""), newChoiceField([]string{"portfolio", guideToolbox}, 0), newPagerField(), newTextField("")),
	}
	for _, f := range forms {
		f.setWidth(width)
	}
	relabel(forms, b, false)
	return forms
}

// relabel applies localized placeholders. chatDisabled selects the
// disabled chat placeholder.
func relabel(forms map[string]*form, b *content.Bundle, chatDisabled bool) {
	tools := b.Tools
	forms[toolbox.ToolTitle].fields[titleTopic].setPlaceholder(tools.Title.TopicPlaceholder)
	forms[toolbox.ToolTimer].fields[timerScript].setPlaceholder(tools.Timer.ScriptPlaceholder)
	forms[toolbox.ToolHeadline].fields[headlineTopic].setPlaceholder(tools.Headline.TopicPlaceholder)
	forms[toolbox.ToolHeadline].fields[headlineAudience].setPlaceholder(tools.Headline.AudiencePlaceholder)
	forms[toolbox.ToolIdiom].fields[0].setPlaceholder(tools.Idiom.IdiomPlaceholder)
	forms[toolbox.ToolClan].fields[clanTheme].setPlaceholder(tools.Clan.ThemePlaceholder)

	help := forms[toolbox.ToolChat]
	help.fields[helpKey].setPlaceholder(b.Help.APIKey.InputPlaceholder)
	if chatDisabled {
		help.fields[helpChat].setPlaceholder(b.Help.APIKey.DisabledPlaceholder)
	} else {
		help.fields[helpChat].setPlaceholder(tools.Chat.Placeholder)
	}
}

func heading(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Current.Primary).Bold(true).Render(s)
}

func label(title, description string, width int) string {
	out := lipgloss.NewStyle().Foreground(theme.Current.Text).Bold(true).Render(title)
	if description != "" {
		out += "\n" + mutedStyle().Width(width).Render(description)
	}
	return out
}

func errorText(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Current.Error).Render("✗ " + s)
}

func (m Model) loadingLine(text string) string {
	return m.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.Current.Primary).Render(text)
}

// phaseLine renders the loading or error line for a snapshot phase.
func (m Model) phaseLine(phase toolbox.Phase, err error) string {
	switch phase {
	case toolbox.Requesting:
		return m.loadingLine(m.ctrl.LoadingMessage())
	case toolbox.Failed:
		return errorText(m.ctrl.ErrorText(err))
	}
	return ""
}

func suggestionCards(items []toolbox.Suggestion, reasoningLabel, title string, width int) string {
	var cards []string
	for i, s := range items {
		text := lipgloss.NewStyle().Foreground(theme.Current.Text).Bold(true).Render(fmt.Sprintf("%d. %s", i+1, s.Text))
		reason := mutedStyle().Width(width - 6).Render(reasoningLabel + ": " + s.Reasoning)
		cards = append(cards, layout.NewContainer(layout.WithWidth(width)).Render(text+"\n"+reason))
	}
	return heading(title) + "\n" + strings.Join(cards, "\n")
}

func joinBlocks(blocks ...string) string {
	var out []string
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n\n")
}

func (m Model) renderDisabled(width int) string {
	k := m.ctrl.Content().Help.APIKey
	body := mutedStyle().Width(width-4).Render(k.DisabledMessage) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true).Render("enter › "+k.Button)
	return layout.NewContainer(
		layout.WithTitle("⚠ "+k.DisabledTitle),
		layout.WithBorderColor(theme.Current.Warning),
		layout.WithWidth(width),
		layout.WithPadding(1, 2),
	).Render(body)
}

// renderTool draws a tool section or "" when section is not a tool.
func (m Model) renderTool(section string, width int) string {
	if m.ctrl.Disabled() {
		return m.renderDisabled(width)
	}

	b := m.ctrl.Content()
	tools := m.ctrl.Tools()
	f := m.forms[section]

	switch section {
	case toolbox.ToolTitle:
		s := b.Tools.Title
		snap := tools.Titles.Snapshot()
		toneLabel := func(v string) string {
			if l, ok := s.Tones[v]; ok {
				return l
			}
			return v
		}
		var results string
		if snap.Phase == toolbox.Succeeded {
			results = suggestionCards(snap.Result, s.ReasoningLabel, s.ResultsTitle, width)
		}
		return joinBlocks(
			label(s.TopicLabel, s.TopicDescription, width)+"\n"+f.fields[titleTopic].view(nil),
			label(s.ToneLabel, "", width)+"\n"+f.fields[titleTone].view(toneLabel),
			m.button(s.Button, snap.Loading()),
			m.phaseLine(snap.Phase, snap.Err),
			results,
		)

	case toolbox.ToolTimer:
		s := b.Tools.Timer
		snap := tools.Timer.Snapshot()
		var results string
		if rt, ok := m.ctrl.ReadingTime(); ok {
			results = heading(s.ResultsTitle) + "\n" + layout.NewContainer(layout.WithWidth(width)).Render(
				label(s.EstimatedTimeLabel, "", width)+" "+lipgloss.NewStyle().Foreground(theme.Current.Accent).Render(rt)+"\n"+
					label(s.WordCountLabel, "", width)+" "+strconv.Itoa(snap.Result.WordCount))
		}
		line := ""
		if snap.Loading() {
			line = m.loadingLine("...")
		} else if snap.Phase == toolbox.Failed {
			line = errorText(m.ctrl.ErrorText(snap.Err))
		}
		return joinBlocks(
			label(s.ScriptLabel, s.ScriptDescription, width)+"\n"+f.fields[timerScript].view(nil),
			label(fmt.Sprintf("%s: %d", s.WPMLabel, tools.Timer.WPM()), "", width)+"\n"+f.fields[timerWPM].view(nil),
			m.button(s.Button, snap.Loading()),
			line,
			results,
		)

	case toolbox.ToolHeadline:
		s := b.Tools.Headline
		snap := tools.Headlines.Snapshot()
		var results string
		if snap.Phase == toolbox.Succeeded {
			results = suggestionCards(snap.Result, s.ReasoningLabel, s.ResultsTitle, width)
		}
		return joinBlocks(
			label(s.TopicLabel, s.TopicDescription, width)+"\n"+f.fields[headlineTopic].view(nil),
			label(s.AudienceLabel, "", width)+"\n"+f.fields[headlineAudience].view(nil),
			m.button(s.Button, snap.Loading()),
			m.phaseLine(snap.Phase, snap.Err),
			results,
		)

	case toolbox.ToolIdiom:
		s := b.Tools.Idiom
		snap := tools.Idioms.Snapshot()
		var results string
		if snap.Phase == toolbox.Succeeded {
			r := snap.Result
			quote := layout.ThickBorderLeft(theme.Current.Primary).Width(width - 4)
			body := label(s.MeaningLabel, "", width) + "\n" + textStyle(width-4).Render(r.Explanation) + "\n\n" +
				label(s.DialogueLabel, "", width) + "\n" + quote.Render(r.Dialogue) + "\n" +
				mutedStyle().Width(width-4).Render(s.ReasoningLabel+": "+r.DialogueReasoning) + "\n\n" +
				label(s.EquivalentLabel, "", width) + "\n" + textStyle(width-4).Render(r.Equivalent)
			results = heading(s.ResultsTitle) + "\n" + layout.NewContainer(layout.WithWidth(width)).Render(body)
		}
		return joinBlocks(
			label(s.IdiomLabel, s.IdiomDescription, width)+"\n"+f.fields[0].view(nil),
			m.button(s.Button, snap.Loading()),
			m.phaseLine(snap.Phase, snap.Err),
			results,
		)

	case toolbox.ToolClan:
		s := b.Tools.Clan
		snap := tools.Clans.Snapshot()
		var results string
		if cur, ok := tools.Clans.Current(); ok {
			page := fmt.Sprintf(b.UI.Page, tools.Clans.Pages.Index()+1, tools.Clans.Pages.Len())
			nav := mutedStyle().Render("‹ " + page + " ›")
			if f.fields[clanPages].focused {
				nav = lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true).Render("‹ " + page + " ›")
			}
			name := lipgloss.NewStyle().Foreground(theme.Current.Primary).Bold(true).Render(cur.Text)
			reason := mutedStyle().Width(width - 6).Render(s.ReasoningLabel + ": " + cur.Reasoning)
			results = heading(s.ResultsTitle) + "\n" +
				layout.NewContainer(layout.WithWidth(width), layout.WithPadding(1, 2)).Render(name+"\n\n"+reason+"\n\n"+nav)
		}
		return joinBlocks(
			label(s.ThemeLabel, s.ThemeDescription, width)+"\n"+f.fields[clanTheme].view(nil),
			label(s.CountLabel, "", width)+"\n"+f.fields[clanCount].view(nil),
			m.button(s.Button, snap.Loading()),
			m.phaseLine(snap.Phase, snap.Err),
			results,
		)

	case toolbox.ToolChat:
		return m.renderHelp(width)
	}
	return ""
}

func (m Model) button(text string, loading bool) string {
	t := theme.Current
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if loading {
		return style.Foreground(t.TextMuted).Background(t.BackgroundSecondary).Render(text)
	}
	return style.Foreground(t.TextInverse).Background(t.Primary).Render(text)
}

func (m Model) renderHelp(width int) string {
	b := m.ctrl.Content()
	h := b.Help
	f := m.forms[toolbox.ToolChat]

	// API key setup
	k := h.APIKey
	keyStatus := lipgloss.NewStyle().Foreground(theme.Current.Error).Render(k.StatusNotSet)
	if m.ctrl.Enabled() {
		keyStatus = lipgloss.NewStyle().Foreground(theme.Current.Success).Render(k.StatusSet)
	}
	apiKey := layout.NewContainer(layout.WithTitle(k.Title), layout.WithWidth(width)).Render(
		label(k.Heading, k.P1+" "+k.P2, width-4) + "\n" +
			linkStyle().Render(k.LinkText+": "+k.LinkURL) + "\n\n" +
			label(k.InputLabel, "", width) + "\n" + f.fields[helpKey].view(nil) + "\n" +
			mutedStyle().Render("enter › "+k.SaveButton+"   ctrl+x › "+k.ClearButton) + "\n" +
			keyStatus)

	// Feature guide
	tabLabel := func(v string) string {
		if v == guideToolbox {
			return h.ToolboxTab
		}
		return h.PortfolioTab
	}
	g := h.Portfolio
	if f.fields[helpGuide].value() == guideToolbox {
		g = h.Toolbox
	}
	guide := layout.NewContainer(layout.WithTitle(h.GuideTitle), layout.WithWidth(width)).Render(
		f.fields[helpGuide].view(tabLabel) + "\n\n" + label(g.Heading, g.P1+"\n\n"+g.P2, width-4))

	// FAQ carousel
	var faqs string
	if faq, i, total := m.ctrl.FAQ(); total > 0 {
		page := fmt.Sprintf(b.UI.Page, i+1, total)
		navStyle := mutedStyle()
		if f.fields[helpFAQ].focused {
			navStyle = lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true)
		}
		faqs = layout.NewContainer(layout.WithTitle(b.UI.FAQTitle), layout.WithWidth(width)).Render(
			label(faq.Question, faq.Answer, width-4) + "\n\n" +
				navStyle.Render("‹ "+page+" ›") + "  " + mutedStyle().Render("enter › "+b.Tools.Chat.AskThisQuestion))
	}

	// Chat transcript
	welcome := b.Tools.Chat.Placeholder
	if !m.ctrl.Enabled() {
		welcome = k.DisabledMessageChat
	}
	chat := heading(h.ChatTitle) + "\n" + m.transcript.Render(m.ctrl.Tools().Chat.Turns(), welcome)
	if m.ctrl.Tools().Chat.Loading() {
		chat += "\n\n" + m.loadingLine("...")
	}

	return joinBlocks(apiKey, guide, faqs, chat)
}

// chatFooter is the chat input pinned below the help pane.
func (m Model) chatFooter() string {
	f := m.forms[toolbox.ToolChat]
	return f.fields[helpChat].view(nil)
}
