package prompts

import (
	"strings"
	"testing"
)

func TestLanguage(t *testing.T) {
	tests := []struct{ lang, want string }{
		{"en", "English"},
		{"vi", "Vietnamese"},
		{"", "English"},
	}
	for _, tt := range tests {
		if got := Language(tt.lang); got != tt.want {
			t.Errorf("Language(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestTitlePrompt(t *testing.T) {
	prompt, schema := Title("retro gaming", "Casual", "vi")

	for _, want := range []string{`"retro gaming"`, "The tone should be Casual.", "must be in Vietnamese", "asterisks"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Title() prompt missing %q: %s", want, prompt)
		}
	}
	if len(schema.Required) != 1 || schema.Required[0] != "titles" {
		t.Errorf("schema required = %v, want [titles]", schema.Required)
	}
	if schema.Properties["titles"].Items == nil {
		t.Error("titles schema has no items")
	}
}

func TestHeadlineAudience(t *testing.T) {
	tests := []struct {
		name     string
		audience string
		want     bool
	}{
		{name: "with audience", audience: "students", want: true},
		{name: "blank audience", audience: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, _ := Headline("climate", tt.audience, "en")
			got := strings.Contains(prompt, "The target audience is")
			if got != tt.want {
				t.Errorf("audience clause present = %v, want %v: %s", got, tt.want, prompt)
			}
		})
	}
}

func TestIdiomSchemaRequiresAllFields(t *testing.T) {
	_, schema := Idiom("break a leg", "en")
	want := map[string]bool{"explanation": true, "dialogue": true, "equivalent": true, "dialogueReasoning": true}
	if len(schema.Required) != len(want) {
		t.Fatalf("required = %v", schema.Required)
	}
	for _, r := range schema.Required {
		if !want[r] {
			t.Errorf("unexpected required field %q", r)
		}
	}
}

func TestClanNamesCount(t *testing.T) {
	prompt, _ := ClanNames("space pirates", 15, "en")
	if !strings.HasPrefix(prompt, "Generate 15 unique and cool names") {
		t.Errorf("ClanNames() prompt = %s", prompt)
	}
}

func TestWordCountPrompt(t *testing.T) {
	prompt, schema := WordCount("one two three")
	if !strings.HasSuffix(prompt, `Script: "one two three"`) {
		t.Errorf("WordCount() prompt = %s", prompt)
	}
	if schema.Properties["wordCount"].Type != "INTEGER" {
		t.Errorf("wordCount type = %v", schema.Properties["wordCount"].Type)
	}
}

func TestChatSystem(t *testing.T) {
	sys := ChatSystem("")
	for _, want := range []string{MarkerActivate, MarkerDeactivate, "Hoang Cao Minh"} {
		if !strings.Contains(sys, want) {
			t.Errorf("ChatSystem() missing %q", want)
		}
	}
	if strings.Contains(sys, "**Portfolio:**") {
		t.Error("empty profile should not add a portfolio section")
	}

	withProfile := ChatSystem("Skills: Video Editing")
	if !strings.HasSuffix(withProfile, "**Portfolio:**\nSkills: Video Editing") {
		t.Errorf("profile not appended: %q", withProfile[len(withProfile)-60:])
	}
}
