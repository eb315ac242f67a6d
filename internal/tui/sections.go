package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/content"
	"github.com/hcminh/folio/internal/tui/layout"
	"github.com/hcminh/folio/internal/tui/theme"
)

// renderPortfolio draws a static portfolio section, or "" for other ids.
func renderPortfolio(b *content.Bundle, section string, width int) string {
	switch section {
	case "summary":
		return renderSummary(b, width)
	case "experience":
		return renderExperience(b, width)
	case "projects":
		return renderProjects(b, width)
	case "education":
		return renderEducation(b, width)
	case "skills":
		return renderSkills(b, width)
	case "links":
		return renderLinks(b, width)
	}
	return ""
}

func textStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current.Text).Width(width)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
}

func linkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current.Accent).Underline(true)
}

func bullets(items []string, width int) string {
	var sb strings.Builder
	dot := lipgloss.NewStyle().Foreground(theme.Current.Primary).Render("•")
	for _, it := range items {
		body := textStyle(width - 2).Render(it)
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, dot+" ", body) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderSummary(b *content.Bundle, width int) string {
	t := theme.Current

	var stats []string
	statWidth := max((width-2)/max(len(b.KeyStats), 1), 12)
	for _, s := range b.KeyStats {
		value := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(s.Value)
		label := mutedStyle().Render(s.Label)
		stats = append(stats, layout.NewContainer(layout.WithWidth(statWidth)).Render(value+"\n"+label))
	}

	return textStyle(width).Render(b.Summary) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, stats...)
}

func renderExperience(b *content.Bundle, width int) string {
	t := theme.Current
	var cards []string
	for _, e := range b.Experience {
		head := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(e.Role) +
			mutedStyle().Render(" · "+e.Company)
		body := head + "\n" + mutedStyle().Italic(true).Render(e.Period) + "\n\n" +
			bullets(e.Achievements, width-6)
		cards = append(cards, layout.NewContainer(layout.WithWidth(width)).Render(body))
	}
	return strings.Join(cards, "\n")
}

func renderProjects(b *content.Bundle, width int) string {
	var cards []string
	for _, p := range b.Projects {
		body := textStyle(width-4).Render(p.Description) + "\n" + linkStyle().Render(p.Link)
		cards = append(cards, layout.NewContainer(layout.WithTitle(p.Name), layout.WithWidth(width)).Render(body))
	}
	return strings.Join(cards, "\n")
}

func renderEducation(b *content.Bundle, width int) string {
	var cards []string
	for _, e := range b.Education {
		body := mutedStyle().Render(e.Institution+" · "+e.Period) + "\n\n" + bullets(e.Details, width-6)
		for _, p := range e.Projects {
			body += "\n" + mutedStyle().Render(p.Type+": ") + linkStyle().Render(p.Name) + " " + mutedStyle().Render(p.Link)
		}
		cards = append(cards, layout.NewContainer(layout.WithTitle(e.Degree), layout.WithWidth(width)).Render(body))
	}
	return strings.Join(cards, "\n")
}

func renderSkills(b *content.Bundle, width int) string {
	t := theme.Current
	var sb strings.Builder
	nameWidth := 0
	for _, s := range b.Skills {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}
	for _, s := range b.Skills {
		name := lipgloss.NewStyle().Foreground(t.Text).Width(nameWidth + 2).Render(s.Name)
		level := lipgloss.NewStyle().Foreground(t.Accent).Render(s.Level)
		sb.WriteString(name + level + "\n")
	}
	return layout.NewContainer(layout.WithWidth(width)).Render(strings.TrimRight(sb.String(), "\n"))
}

func renderLinks(b *content.Bundle, width int) string {
	var sb strings.Builder
	for _, l := range b.Links {
		fmt.Fprintf(&sb, "%s  %s\n", lipgloss.NewStyle().Foreground(theme.Current.Text).Bold(true).Render(l.Name), linkStyle().Render(l.URL))
	}
	return layout.NewContainer(layout.WithWidth(width)).Render(strings.TrimRight(sb.String(), "\n"))
}
