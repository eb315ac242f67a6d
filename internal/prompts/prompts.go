// Package prompts builds the model prompts and response schemas for each
// toolbox tool.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/hcminh/folio/internal/llm"
)

//go:embed chatbot.md
var chatbotPrompt string

// Chat markers the persona emits to switch the UI theme.
const (
	MarkerActivate   = "---SYNTHWAVE_MODE_ACTIVATE---"
	MarkerDeactivate = "---SYNTHWAVE_MODE_DEACTIVATE---"
)

const noFormatting = "contain no special formatting characters like asterisks"

// Language returns the language name used in prompt instructions.
func Language(lang string) string {
	if lang == "vi" {
		return "Vietnamese"
	}
	return "English"
}

// ChatSystem returns the persona instruction. profile, when set, is appended
// as the portfolio facts the persona answers from.
func ChatSystem(profile string) string {
	sys := strings.TrimSpace(chatbotPrompt)
	if profile = strings.TrimSpace(profile); profile != "" {
		sys += "\n\n**Portfolio:**\n" + profile
	}
	return sys
}

// Title returns the prompt and schema for the YouTube title generator.
func Title(topic, tone, lang string) (string, *llm.Schema) {
	prompt := fmt.Sprintf(
		"Generate 5 catchy, SEO-friendly YouTube titles for a video about %q. The tone should be %s. "+
			"For each title, provide a brief reasoning for why it's effective. The response must be in %s and %s.",
		topic, tone, Language(lang), noFormatting)

	schema := llm.Object(map[string]*llm.Schema{
		"titles": llm.ArrayOf(llm.Object(map[string]*llm.Schema{
			"title":     llm.String(""),
			"reasoning": llm.String("A brief explanation of why this title is effective (e.g., SEO, emotional appeal, clarity)."),
		}, "title", "reasoning"), ""),
	}, "titles")
	return prompt, schema
}

// Headline returns the prompt and schema for the headline generator.
// audience is optional.
func Headline(topic, audience, lang string) (string, *llm.Schema) {
	var audienceInstruction string
	if audience = strings.TrimSpace(audience); audience != "" {
		audienceInstruction = fmt.Sprintf(" The target audience is %s.", audience)
	}
	prompt := fmt.Sprintf(
		"Generate 5 engaging, click-worthy headlines for a news article about %q.%s "+
			"For each headline, provide a brief reasoning for why it's compelling. The response must be in %s and %s.",
		topic, audienceInstruction, Language(lang), noFormatting)

	schema := llm.Object(map[string]*llm.Schema{
		"headlines": llm.ArrayOf(llm.Object(map[string]*llm.Schema{
			"headline":  llm.String(""),
			"reasoning": llm.String("A brief explanation of why this headline is compelling for the target audience."),
		}, "headline", "reasoning"), ""),
	}, "headlines")
	return prompt, schema
}

// Idiom returns the prompt and schema for the idiom explainer.
func Idiom(idiom, lang string) (string, *llm.Schema) {
	prompt := fmt.Sprintf(
		"Explain the idiom %q. Provide its meaning, a contextual equivalent, a short dialogue using it, "+
			"and a brief reasoning for why the dialogue is a good example. The response must be in %s and %s.",
		idiom, Language(lang), noFormatting)

	schema := llm.Object(map[string]*llm.Schema{
		"explanation":       llm.String(""),
		"dialogue":          llm.String("A short, natural dialogue of 2-3 lines that uses the idiom."),
		"equivalent":        llm.String("A contextual equivalent, e.g., a similar phrase in another language or a simpler way to say it."),
		"dialogueReasoning": llm.String("A brief explanation of why the dialogue is a good, natural-sounding example of the idiom in use."),
	}, "explanation", "dialogue", "equivalent", "dialogueReasoning")
	return prompt, schema
}

// ClanNames returns the prompt and schema for the clan-name generator.
func ClanNames(theme string, count int, lang string) (string, *llm.Schema) {
	prompt := fmt.Sprintf(
		"Generate %d unique and cool names for a gaming clan with the theme %q. "+
			"For each name, provide a brief reasoning explaining its origin or why it fits the theme. The response must be in %s and %s.",
		count, theme, Language(lang), noFormatting)

	schema := llm.Object(map[string]*llm.Schema{
		"clanNames": llm.ArrayOf(llm.Object(map[string]*llm.Schema{
			"name":      llm.String(""),
			"reasoning": llm.String("A brief explanation of the name's origin, meaning, or why it fits the theme (e.g., historical context, mythology, wordplay)."),
		}, "name", "reasoning"), ""),
	}, "clanNames")
	return prompt, schema
}

// WordCount returns the prompt and schema for the script timer.
// The script is sent as-is.
func WordCount(script string) (string, *llm.Schema) {
	prompt := fmt.Sprintf(
		"Count the number of words in the following script. Respond only with the JSON object containing the word count. Script: \"%s\"",
		script)

	schema := llm.Object(map[string]*llm.Schema{
		"wordCount": llm.Integer(""),
	}, "wordCount")
	return prompt, schema
}
