package view

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hcminh/folio/internal/credential"
	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/prompts"
	"github.com/hcminh/folio/internal/toolbox"
)

// MockClient is a test double for llm.Client
type MockClient struct {
	StructuredFunc     func(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error)
	ConversationalFunc func(ctx context.Context, req llm.ChatRequest) (string, error)
	calls              int
}

func (m *MockClient) InvokeStructured(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error) {
	m.calls++
	if m.StructuredFunc != nil {
		return m.StructuredFunc(ctx, prompt, schema)
	}
	return json.RawMessage(`{}`), nil
}

func (m *MockClient) InvokeConversational(ctx context.Context, req llm.ChatRequest) (string, error) {
	m.calls++
	if m.ConversationalFunc != nil {
		return m.ConversationalFunc(ctx, req)
	}
	return "ok", nil
}

// newTestController returns a controller over a memory-backed store holding key.
func newTestController(t *testing.T, client llm.Client, key string) (*Controller, map[string]string) {
	t.Helper()
	store := credential.New(&credential.MemoryBackend{}, key)
	saved := map[string]string{}
	c := New(Options{
		Lang:        "en",
		Tools:       toolbox.New(client, store, "persona"),
		Credentials: store,
		Persist: func(k, v string) error {
			saved[k] = v
			return nil
		},
	})
	return c, saved
}

func TestNewDefaults(t *testing.T) {
	c := New(Options{Lang: "fr", Theme: "neon", Section: "nowhere"})
	if c.Lang() != "en" {
		t.Errorf("Lang() = %q, want en", c.Lang())
	}
	if c.Theme() != ThemeDefault {
		t.Errorf("Theme() = %q, want default", c.Theme())
	}
	if c.Section() != "summary" {
		t.Errorf("Section() = %q, want summary", c.Section())
	}
	if c.Enabled() {
		t.Error("Enabled() should be false without a credential store")
	}
}

func TestNavigate(t *testing.T) {
	c, _ := newTestController(t, &MockClient{}, "")

	tests := []struct {
		id      string
		ok      bool
		section string
	}{
		{id: "skills", ok: true, section: "skills"},
		{id: "Portfolio", ok: false, section: "skills"},
		{id: "", ok: false, section: "skills"},
		{id: toolbox.ToolClan, ok: true, section: toolbox.ToolClan},
	}
	for _, tt := range tests {
		if got := c.Navigate(tt.id); got != tt.ok {
			t.Errorf("Navigate(%q) = %v, want %v", tt.id, got, tt.ok)
		}
		if c.Section() != tt.section {
			t.Errorf("after Navigate(%q) Section() = %q, want %q", tt.id, c.Section(), tt.section)
		}
	}
}

func TestToggleLanguage(t *testing.T) {
	c, saved := newTestController(t, &MockClient{}, "")
	c.Navigate("education")

	if got := c.ToggleLanguage(); got != "vi" {
		t.Fatalf("ToggleLanguage() = %q, want vi", got)
	}
	if c.Content().Lang != "vi" {
		t.Errorf("bundle lang = %q", c.Content().Lang)
	}
	if c.Section() != "education" {
		t.Errorf("Section() = %q, want education kept", c.Section())
	}
	if saved["language"] != "vi" {
		t.Errorf("persisted language = %q", saved["language"])
	}
	if got := c.ToggleLanguage(); got != "en" {
		t.Errorf("second ToggleLanguage() = %q, want en", got)
	}
	if err := c.SetLanguage("de"); err == nil {
		t.Error("SetLanguage(de) should fail")
	}
}

func TestTheme(t *testing.T) {
	var applied []string
	c := New(Options{
		OnTheme: func(theme string) { applied = append(applied, theme) },
	})

	if got := c.ToggleTheme(); got != ThemeSynthwave {
		t.Errorf("ToggleTheme() = %q", got)
	}
	c.SetTheme(ThemeSynthwave) // no change, no callback
	c.SetTheme("bogus")

	if c.Theme() != ThemeDefault {
		t.Errorf("Theme() = %q, want default", c.Theme())
	}
	if len(applied) != 2 || applied[0] != ThemeSynthwave || applied[1] != ThemeDefault {
		t.Errorf("OnTheme calls = %v", applied)
	}
}

func TestChatMarkerSwitchesTheme(t *testing.T) {
	client := &MockClient{
		ConversationalFunc: func(ctx context.Context, req llm.ChatRequest) (string, error) {
			return prompts.MarkerActivate, nil
		},
	}
	c, saved := newTestController(t, client, "key")

	job, err := c.SubmitChat("play a game")
	if err != nil {
		t.Fatalf("SubmitChat() error = %v", err)
	}
	c.Tools().Chat.Complete(job.Do(context.Background()))

	if c.Theme() != ThemeSynthwave {
		t.Errorf("Theme() = %q, want synthwave", c.Theme())
	}
	if saved["theme"] != ThemeSynthwave {
		t.Errorf("persisted theme = %q", saved["theme"])
	}
}

func TestSubmitDisabled(t *testing.T) {
	client := &MockClient{}
	c, _ := newTestController(t, client, "")

	submits := map[string]func() error{
		"title":    func() error { _, err := c.SubmitTitle("go", toolbox.ToneCasual); return err },
		"headline": func() error { _, err := c.SubmitHeadline("go", ""); return err },
		"idiom":    func() error { _, err := c.SubmitIdiom("bite the bullet"); return err },
		"clan":     func() error { _, err := c.SubmitClan("viking", 5); return err },
		"script":   func() error { _, err := c.SubmitScript("hello world"); return err },
		"chat":     func() error { _, err := c.SubmitChat("hi"); return err },
		"faq":      func() error { _, err := c.AskFAQ(); return err },
	}
	for name, submit := range submits {
		if err := submit(); !errors.Is(err, toolbox.ErrDisabled) {
			t.Errorf("%s: error = %v, want ErrDisabled", name, err)
		}
	}
	if client.calls != 0 {
		t.Errorf("model calls = %d, want 0", client.calls)
	}
	if len(c.Tools().Chat.Turns()) != 0 {
		t.Error("disabled chat must not append turns")
	}
}

func TestSubmitAfterClear(t *testing.T) {
	client := &MockClient{}
	c, _ := newTestController(t, client, "")

	if err := c.SaveCredential("key"); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}
	if err := c.ClearCredential(); err != nil {
		t.Fatalf("ClearCredential() error = %v", err)
	}

	submits := map[string]func() error{
		"title":    func() error { _, err := c.SubmitTitle("go", toolbox.ToneProfessional); return err },
		"headline": func() error { _, err := c.SubmitHeadline("go", "developers"); return err },
		"idiom":    func() error { _, err := c.SubmitIdiom("break a leg"); return err },
		"clan":     func() error { _, err := c.SubmitClan("samurai", 10); return err },
		"script":   func() error { _, err := c.SubmitScript("one two three"); return err },
		"chat":     func() error { _, err := c.SubmitChat("hello"); return err },
	}
	for name, submit := range submits {
		if err := submit(); !errors.Is(err, toolbox.ErrDisabled) {
			t.Errorf("%s after clear: error = %v, want ErrDisabled", name, err)
		}
	}
	if client.calls != 0 {
		t.Errorf("model calls after clear = %d, want 0", client.calls)
	}
	if len(c.Tools().Chat.Turns()) != 0 {
		t.Error("chat appended a turn after clear")
	}
}

func TestAskFAQWithoutQuestions(t *testing.T) {
	client := &MockClient{}
	c, _ := newTestController(t, client, "key")
	if err := c.SetLanguage("vi"); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	c.Content().Help.FAQs = nil

	_, err := c.AskFAQ()
	if !errors.Is(err, toolbox.ErrValidation) {
		t.Fatalf("AskFAQ() error = %v, want ErrValidation", err)
	}
	if got := c.ErrorText(err); got != "Không có câu hỏi nào để hỏi." {
		t.Errorf("ErrorText() = %q", got)
	}
	if client.calls != 0 {
		t.Errorf("model calls = %d, want 0", client.calls)
	}
}

func TestDisabledView(t *testing.T) {
	c, _ := newTestController(t, &MockClient{}, "")

	c.Navigate("summary")
	if c.Disabled() {
		t.Error("static sections are never disabled")
	}
	c.Navigate(toolbox.ToolTitle)
	if !c.Disabled() {
		t.Error("tool section should be disabled without a credential")
	}
	c.Navigate(toolbox.ToolChat)
	if c.Disabled() {
		t.Error("help and support must stay usable without a credential")
	}
	c.Navigate(toolbox.ToolTitle)

	if err := c.SaveCredential("  new-key "); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}
	if c.Disabled() || !c.Enabled() {
		t.Error("credential should enable the toolbox")
	}
	if err := c.ClearCredential(); err != nil {
		t.Fatalf("ClearCredential() error = %v", err)
	}
	if c.Enabled() {
		t.Error("Enabled() should be false after clear")
	}
}

func TestSubmitUsesLanguage(t *testing.T) {
	var prompt string
	client := &MockClient{
		StructuredFunc: func(ctx context.Context, p string, schema *llm.Schema) (json.RawMessage, error) {
			prompt = p
			return json.RawMessage(`{"titles":[{"title":"T","reasoning":"R"}]}`), nil
		},
	}
	c, _ := newTestController(t, client, "key")
	c.SetLanguage("vi")

	job, err := c.SubmitTitle("cooking", toolbox.ToneProfessional)
	if err != nil {
		t.Fatalf("SubmitTitle() error = %v", err)
	}
	c.Tools().Titles.Complete(job.Do(context.Background()))

	if want := prompts.Language("vi"); !strings.Contains(prompt, want) {
		t.Errorf("prompt %q does not mention %q", prompt, want)
	}
	snap := c.Tools().Titles.Snapshot()
	if snap.Phase != toolbox.Succeeded || len(snap.Result) != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestErrorTextLocalized(t *testing.T) {
	c, _ := newTestController(t, &MockClient{}, "key")
	c.SetLanguage("vi")

	_, err := c.SubmitScript("   ")
	if got := c.ErrorText(err); got != "Vui lòng nhập kịch bản." {
		t.Errorf("ErrorText() = %q", got)
	}
	if got := c.ErrorText(llm.ErrEmptyResponse); got != llm.MsgEmptyResponse {
		t.Errorf("ErrorText(empty) = %q", got)
	}
	if got := c.ErrorText(toolbox.ErrDisabled); got != c.Content().Help.APIKey.DisabledMessage {
		t.Errorf("ErrorText(disabled) = %q", got)
	}
}

func TestLoadingRotation(t *testing.T) {
	c, _ := newTestController(t, &MockClient{}, "key")
	c.Navigate(toolbox.ToolIdiom)

	want := c.Content().Tools.Idiom.Loading
	for i := 0; i < len(want)+1; i++ {
		if got := c.LoadingMessage(); got != want[i%len(want)] {
			t.Errorf("step %d LoadingMessage() = %q, want %q", i, got, want[i%len(want)])
		}
		c.AdvanceLoading()
	}

	c.Navigate("summary")
	if got := c.LoadingMessage(); got != "" {
		t.Errorf("LoadingMessage() on summary = %q", got)
	}
}

func TestFAQCarousel(t *testing.T) {
	var asked string
	client := &MockClient{
		ConversationalFunc: func(ctx context.Context, req llm.ChatRequest) (string, error) {
			asked = req.Prompt
			return "answer", nil
		},
	}
	c, _ := newTestController(t, client, "key")

	first, i, total := c.FAQ()
	if i != 0 || total != 10 {
		t.Fatalf("FAQ() index %d total %d", i, total)
	}
	c.PrevFAQ()
	if _, i, _ := c.FAQ(); i != total-1 {
		t.Errorf("PrevFAQ from 0 = %d, want %d", i, total-1)
	}
	c.NextFAQ()
	if faq, _, _ := c.FAQ(); faq != first {
		t.Errorf("NextFAQ should wrap back to the first question")
	}

	job, err := c.AskFAQ()
	if err != nil {
		t.Fatalf("AskFAQ() error = %v", err)
	}
	c.Tools().Chat.Complete(job.Do(context.Background()))
	if asked != first.Question {
		t.Errorf("asked %q, want %q", asked, first.Question)
	}
}

func TestReadingTimeLocalized(t *testing.T) {
	client := &MockClient{
		StructuredFunc: func(ctx context.Context, p string, schema *llm.Schema) (json.RawMessage, error) {
			return json.RawMessage(`{"wordCount": 300}`), nil
		},
	}
	c, _ := newTestController(t, client, "key")

	if _, ok := c.ReadingTime(); ok {
		t.Error("ReadingTime() before an estimate should report false")
	}
	job, err := c.SubmitScript("a script")
	if err != nil {
		t.Fatalf("SubmitScript() error = %v", err)
	}
	c.Tools().Timer.Complete(job.Do(context.Background()))

	if got, _ := c.ReadingTime(); got != "2 minutes" {
		t.Errorf("ReadingTime() = %q, want 2 minutes", got)
	}
	c.SetLanguage("vi")
	want := "2 " + c.Content().Tools.Timer.Minutes
	if got, _ := c.ReadingTime(); got != want {
		t.Errorf("ReadingTime() vi = %q, want %q", got, want)
	}
}
