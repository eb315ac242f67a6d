// Package content holds the bilingual portfolio and toolbox text.
package content

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml vi.yaml
var files embed.FS

// Languages lists the supported language codes in toggle order.
var Languages = []string{"en", "vi"}

type (
	// NavItem is either a group header or a link to a section.
	NavItem struct {
		Header string `yaml:"header,omitempty"`
		ID     string `yaml:"id,omitempty"`
		Title  string `yaml:"title,omitempty"`
	}

	Stat struct {
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	}

	Experience struct {
		Role         string   `yaml:"role"`
		Company      string   `yaml:"company"`
		Period       string   `yaml:"period"`
		Achievements []string `yaml:"achievements"`
	}

	Project struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Link        string `yaml:"link"`
	}

	EducationProject struct {
		Name string `yaml:"name"`
		Link string `yaml:"link"`
		Type string `yaml:"type"`
	}

	Education struct {
		Degree      string             `yaml:"degree"`
		Institution string             `yaml:"institution"`
		Period      string             `yaml:"period"`
		Details     []string           `yaml:"details"`
		Projects    []EducationProject `yaml:"projects,omitempty"`
	}

	Skill struct {
		Name  string `yaml:"name"`
		Level string `yaml:"level"`
	}

	Link struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	}
)

// Tool strings.
type (
	TitleStrings struct {
		TopicLabel       string            `yaml:"topic_label"`
		TopicDescription string            `yaml:"topic_description"`
		TopicPlaceholder string            `yaml:"topic_placeholder"`
		ToneLabel        string            `yaml:"tone_label"`
		Tones            map[string]string `yaml:"tones"`
		Button           string            `yaml:"button"`
		ResultsTitle     string            `yaml:"results_title"`
		Error            string            `yaml:"error"`
		ToneError        string            `yaml:"tone_error"`
		ReasoningLabel   string            `yaml:"reasoning_label"`
		Loading          []string          `yaml:"loading"`
	}

	TimerStrings struct {
		ScriptLabel        string `yaml:"script_label"`
		ScriptDescription  string `yaml:"script_description"`
		ScriptPlaceholder  string `yaml:"script_placeholder"`
		WPMLabel           string `yaml:"wpm_label"`
		Button             string `yaml:"button"`
		ResultsTitle       string `yaml:"results_title"`
		EstimatedTimeLabel string `yaml:"estimated_time_label"`
		WordCountLabel     string `yaml:"word_count_label"`
		Error              string `yaml:"error"`
		Minute             string `yaml:"minute"`
		Minutes            string `yaml:"minutes"`
		Second             string `yaml:"second"`
		Seconds            string `yaml:"seconds"`
		LessThanASecond    string `yaml:"less_than_a_second"`
	}

	HeadlineStrings struct {
		TopicLabel          string   `yaml:"topic_label"`
		TopicDescription    string   `yaml:"topic_description"`
		TopicPlaceholder    string   `yaml:"topic_placeholder"`
		AudienceLabel       string   `yaml:"audience_label"`
		AudiencePlaceholder string   `yaml:"audience_placeholder"`
		Button              string   `yaml:"button"`
		ResultsTitle        string   `yaml:"results_title"`
		Error               string   `yaml:"error"`
		ReasoningLabel      string   `yaml:"reasoning_label"`
		Loading             []string `yaml:"loading"`
	}

	IdiomStrings struct {
		IdiomLabel       string   `yaml:"idiom_label"`
		IdiomDescription string   `yaml:"idiom_description"`
		IdiomPlaceholder string   `yaml:"idiom_placeholder"`
		Button           string   `yaml:"button"`
		ResultsTitle     string   `yaml:"results_title"`
		MeaningLabel     string   `yaml:"meaning_label"`
		DialogueLabel    string   `yaml:"dialogue_label"`
		EquivalentLabel  string   `yaml:"equivalent_label"`
		Error            string   `yaml:"error"`
		ReasoningLabel   string   `yaml:"reasoning_label"`
		Loading          []string `yaml:"loading"`
	}

	ClanStrings struct {
		ThemeLabel       string   `yaml:"theme_label"`
		ThemeDescription string   `yaml:"theme_description"`
		ThemePlaceholder string   `yaml:"theme_placeholder"`
		CountLabel       string   `yaml:"count_label"`
		Button           string   `yaml:"button"`
		ResultsTitle     string   `yaml:"results_title"`
		Error            string   `yaml:"error"`
		CountError       string   `yaml:"count_error"`
		ReasoningLabel   string   `yaml:"reasoning_label"`
		Loading          []string `yaml:"loading"`
	}

	ChatStrings struct {
		Placeholder     string `yaml:"placeholder"`
		Button          string `yaml:"button"`
		AskThisQuestion string `yaml:"ask_this_question"`
		Error           string `yaml:"error"`
		NoFAQ           string `yaml:"no_faq"`
	}

	ToolStrings struct {
		Title    TitleStrings    `yaml:"title"`
		Timer    TimerStrings    `yaml:"timer"`
		Headline HeadlineStrings `yaml:"headline"`
		Idiom    IdiomStrings    `yaml:"idiom"`
		Clan     ClanStrings     `yaml:"clan"`
		Chat     ChatStrings     `yaml:"chat"`
	}
)

// Help & Support strings.
type (
	Guide struct {
		Heading string `yaml:"heading"`
		P1      string `yaml:"p1"`
		P2      string `yaml:"p2"`
	}

	FAQ struct {
		Question string `yaml:"question"`
		Answer   string `yaml:"answer"`
	}

	APIKeyStrings struct {
		Title               string `yaml:"title"`
		Heading             string `yaml:"heading"`
		P1                  string `yaml:"p1"`
		P2                  string `yaml:"p2"`
		LinkText            string `yaml:"link_text"`
		LinkURL             string `yaml:"link_url"`
		InputLabel          string `yaml:"input_label"`
		InputPlaceholder    string `yaml:"input_placeholder"`
		SaveButton          string `yaml:"save_button"`
		ClearButton         string `yaml:"clear_button"`
		Saved               string `yaml:"saved"`
		Cleared             string `yaml:"cleared"`
		StatusSet           string `yaml:"status_set"`
		StatusNotSet        string `yaml:"status_not_set"`
		DisabledTitle       string `yaml:"disabled_title"`
		DisabledMessage     string `yaml:"disabled_message"`
		DisabledMessageChat string `yaml:"disabled_message_chat"`
		DisabledPlaceholder string `yaml:"disabled_placeholder"`
		Button              string `yaml:"button"`
	}

	Help struct {
		GuideTitle   string        `yaml:"guide_title"`
		ChatTitle    string        `yaml:"chat_title"`
		PortfolioTab string        `yaml:"portfolio_tab"`
		ToolboxTab   string        `yaml:"toolbox_tab"`
		Portfolio    Guide         `yaml:"portfolio"`
		Toolbox      Guide         `yaml:"toolbox"`
		FAQs         []FAQ         `yaml:"faqs"`
		APIKey       APIKeyStrings `yaml:"api_key"`
	}
)

// UI is terminal chrome text.
type UI struct {
	Hints        string `yaml:"hints"`
	LanguageName string `yaml:"language_name"`
	FAQTitle     string `yaml:"faq_title"`
	NewChat      string `yaml:"new_chat"`
	Page         string `yaml:"page"`
}

// Header is the title block shown above every section.
type Header struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Bundle is all text for one language.
type Bundle struct {
	Lang       string            `yaml:"lang"`
	Header     Header            `yaml:"header"`
	Navigation []NavItem         `yaml:"navigation"`
	ViewTitles map[string]string `yaml:"view_titles"`
	Summary    string            `yaml:"summary"`
	KeyStats   []Stat            `yaml:"key_stats"`
	Experience []Experience      `yaml:"experience"`
	Projects   []Project         `yaml:"projects"`
	Education  []Education       `yaml:"education"`
	Skills     []Skill           `yaml:"skills"`
	Links      []Link            `yaml:"links"`
	Tools      ToolStrings       `yaml:"tools"`
	Help       Help              `yaml:"help"`
	UI         UI                `yaml:"ui"`
}

// Load parses the bundle for lang.
func Load(lang string) (*Bundle, error) {
	data, err := files.ReadFile(lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}

	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse %s content: %w", lang, err)
	}
	return &b, nil
}

// MustLoad is Load for the embedded bundles, which are known to parse.
func MustLoad(lang string) *Bundle {
	b, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return b
}

// SectionIDs returns the ids of all navigation links in order.
func (b *Bundle) SectionIDs() []string {
	ids := make([]string, 0, len(b.Navigation))
	for _, item := range b.Navigation {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// HasSection reports whether id is a navigation link.
func (b *Bundle) HasSection(id string) bool {
	for _, item := range b.Navigation {
		if item.ID != "" && item.ID == id {
			return true
		}
	}
	return false
}

// Title returns the view title for a section, falling back to its link
// title.
func (b *Bundle) Title(id string) string {
	if t, ok := b.ViewTitles[id]; ok {
		return t
	}
	for _, item := range b.Navigation {
		if item.ID == id {
			return item.Title
		}
	}
	return id
}

// Localize returns the text for a message key such as "title.error", or
// fallback when the key is unknown.
func (b *Bundle) Localize(key, fallback string) string {
	var s string
	switch key {
	case "title.error":
		s = b.Tools.Title.Error
	case "title.toneError":
		s = b.Tools.Title.ToneError
	case "headline.error":
		s = b.Tools.Headline.Error
	case "idiom.error":
		s = b.Tools.Idiom.Error
	case "clan.error":
		s = b.Tools.Clan.Error
	case "clan.countError":
		s = b.Tools.Clan.CountError
	case "timer.error":
		s = b.Tools.Timer.Error
	case "chat.error":
		s = b.Tools.Chat.Error
	case "chat.noFAQ":
		s = b.Tools.Chat.NoFAQ
	}
	if s == "" {
		return fallback
	}
	return s
}

// Loading returns the rotating loading messages for a tool section.
func (b *Bundle) Loading(section string) []string {
	switch section {
	case "youtube-title-generator":
		return b.Tools.Title.Loading
	case "headline-generator":
		return b.Tools.Headline.Loading
	case "idiom-explainer":
		return b.Tools.Idiom.Loading
	case "clan-name-generator":
		return b.Tools.Clan.Loading
	}
	return nil
}

// Profile renders the portfolio as plain text for the chat persona.
func (b *Bundle) Profile() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s.\n%s\n", b.Header.Title, b.Header.Subtitle, b.Summary)

	sb.WriteString("Experience:\n")
	for _, e := range b.Experience {
		fmt.Fprintf(&sb, "- %s, %s (%s)\n", e.Role, e.Company, e.Period)
	}
	sb.WriteString("Education:\n")
	for _, e := range b.Education {
		fmt.Fprintf(&sb, "- %s, %s (%s)\n", e.Degree, e.Institution, e.Period)
	}
	sb.WriteString("Skills:")
	for i, s := range b.Skills {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %s (%s)", s.Name, s.Level)
	}
	sb.WriteString("\nAI projects:\n")
	for _, p := range b.Projects {
		fmt.Fprintf(&sb, "- %s: %s %s\n", p.Name, p.Description, p.Link)
	}
	return strings.TrimSpace(sb.String())
}
