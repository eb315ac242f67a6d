package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/prompts"
)

// Tones accepted by the title generator.
const (
	ToneProfessional = "Professional"
	ToneCasual       = "Casual"
	ToneClickbait    = "Clickbait"
)

// Tones lists the title tones in display order.
var Tones = []string{ToneProfessional, ToneCasual, ToneClickbait}

// ClanCounts lists the accepted clan-name counts.
var ClanCounts = []int{5, 10, 15, 20}

type (
	// Suggestion is one generated title, headline or clan name with the
	// model's reasoning.
	Suggestion struct {
		Text      string
		Reasoning string
	}

	TitleInput struct {
		Topic string
		Tone  string
		Lang  string
	}

	HeadlineInput struct {
		Topic    string
		Audience string
		Lang     string
	}

	IdiomInput struct {
		Idiom string
		Lang  string
	}

	// IdiomExplanation is the idiom explainer result
	IdiomExplanation struct {
		Explanation       string `json:"explanation"`
		Dialogue          string `json:"dialogue"`
		Equivalent        string `json:"equivalent"`
		DialogueReasoning string `json:"dialogueReasoning"`
	}

	ClanInput struct {
		Theme string
		Count int
		Lang  string
	}
)

type (
	TitleGenerator    = Adapter[TitleInput, []Suggestion]
	HeadlineGenerator = Adapter[HeadlineInput, []Suggestion]
	IdiomExplainer    = Adapter[IdiomInput, IdiomExplanation]
)

// NewTitleGenerator creates the YouTube title adapter.
func NewTitleGenerator(client llm.Client, gate Gate) *TitleGenerator {
	validate := func(in TitleInput) error {
		if err := requireText("topic", "title.error", "Please enter a video topic.", in.Topic); err != nil {
			return err
		}
		if !validTone(in.Tone) {
			return &ValidationError{Field: "tone", Key: "title.toneError", Message: "Please choose a tone."}
		}
		return nil
	}
	call := func(ctx context.Context, in TitleInput) ([]Suggestion, error) {
		prompt, schema := prompts.Title(strings.TrimSpace(in.Topic), in.Tone, in.Lang)
		raw, err := client.InvokeStructured(ctx, prompt, schema)
		if err != nil {
			return nil, err
		}
		var out struct {
			Titles []struct {
				Title     string `json:"title"`
				Reasoning string `json:"reasoning"`
			} `json:"titles"`
		}
		if err := decode(raw, &out); err != nil {
			return nil, err
		}
		list := make([]Suggestion, 0, len(out.Titles))
		for _, t := range out.Titles {
			list = append(list, Suggestion{Text: t.Title, Reasoning: t.Reasoning})
		}
		return list, nil
	}
	return newAdapter(gate, validate, call)
}

// NewHeadlineGenerator creates the news headline adapter. Audience is
// optional.
func NewHeadlineGenerator(client llm.Client, gate Gate) *HeadlineGenerator {
	validate := func(in HeadlineInput) error {
		return requireText("topic", "headline.error", "Please enter a topic.", in.Topic)
	}
	call := func(ctx context.Context, in HeadlineInput) ([]Suggestion, error) {
		prompt, schema := prompts.Headline(strings.TrimSpace(in.Topic), in.Audience, in.Lang)
		raw, err := client.InvokeStructured(ctx, prompt, schema)
		if err != nil {
			return nil, err
		}
		var out struct {
			Headlines []struct {
				Headline  string `json:"headline"`
				Reasoning string `json:"reasoning"`
			} `json:"headlines"`
		}
		if err := decode(raw, &out); err != nil {
			return nil, err
		}
		list := make([]Suggestion, 0, len(out.Headlines))
		for _, h := range out.Headlines {
			list = append(list, Suggestion{Text: h.Headline, Reasoning: h.Reasoning})
		}
		return list, nil
	}
	return newAdapter(gate, validate, call)
}

// NewIdiomExplainer creates the idiom explainer adapter.
func NewIdiomExplainer(client llm.Client, gate Gate) *IdiomExplainer {
	validate := func(in IdiomInput) error {
		return requireText("idiom", "idiom.error", "Please enter an idiom.", in.Idiom)
	}
	call := func(ctx context.Context, in IdiomInput) (IdiomExplanation, error) {
		var out IdiomExplanation
		prompt, schema := prompts.Idiom(strings.TrimSpace(in.Idiom), in.Lang)
		raw, err := client.InvokeStructured(ctx, prompt, schema)
		if err != nil {
			return out, err
		}
		err = decode(raw, &out)
		return out, err
	}
	return newAdapter(gate, validate, call)
}

// ClanNameGenerator generates clan names and pages through them.
type ClanNameGenerator struct {
	*Adapter[ClanInput, []Suggestion]
	Pages Pager
}

// NewClanNameGenerator creates the clan-name adapter.
func NewClanNameGenerator(client llm.Client, gate Gate) *ClanNameGenerator {
	validate := func(in ClanInput) error {
		if err := requireText("theme", "clan.error", "Please enter a theme.", in.Theme); err != nil {
			return err
		}
		if !validCount(in.Count) {
			return &ValidationError{Field: "count", Key: "clan.countError", Message: "Please choose 5, 10, 15 or 20 names."}
		}
		return nil
	}
	call := func(ctx context.Context, in ClanInput) ([]Suggestion, error) {
		prompt, schema := prompts.ClanNames(strings.TrimSpace(in.Theme), in.Count, in.Lang)
		raw, err := client.InvokeStructured(ctx, prompt, schema)
		if err != nil {
			return nil, err
		}
		var out struct {
			ClanNames []struct {
				Name      string `json:"name"`
				Reasoning string `json:"reasoning"`
			} `json:"clanNames"`
		}
		if err := decode(raw, &out); err != nil {
			return nil, err
		}
		list := make([]Suggestion, 0, len(out.ClanNames))
		for _, c := range out.ClanNames {
			list = append(list, Suggestion{Text: c.Name, Reasoning: c.Reasoning})
		}
		return list, nil
	}
	return &ClanNameGenerator{Adapter: newAdapter(gate, validate, call)}
}

// Start resets the pager to the first name and submits in.
func (g *ClanNameGenerator) Start(in ClanInput) (*Job[[]Suggestion], error) {
	job, err := g.Adapter.Start(in)
	if err == nil {
		g.Pages.Reset(0)
	}
	return job, err
}

// Complete applies the outcome and sizes the pager to the result.
func (g *ClanNameGenerator) Complete(o Outcome[[]Suggestion]) bool {
	if !g.Adapter.Complete(o) {
		return false
	}
	g.Pages.Reset(len(g.Snapshot().Result))
	return true
}

// Run is the blocking form of Start, Do and Complete.
func (g *ClanNameGenerator) Run(ctx context.Context, in ClanInput) ([]Suggestion, error) {
	job, err := g.Start(in)
	if err != nil {
		return nil, err
	}
	o := job.Do(ctx)
	g.Complete(o)
	return o.Result, o.Err
}

// Current returns the suggestion under the pager, if any.
func (g *ClanNameGenerator) Current() (Suggestion, bool) {
	list := g.Snapshot().Result
	i := g.Pages.Index()
	if i < 0 || i >= len(list) {
		return Suggestion{}, false
	}
	return list[i], true
}

func requireText(field, key, msg, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Key: key, Message: msg}
	}
	return nil
}

func validTone(tone string) bool {
	for _, t := range Tones {
		if t == tone {
			return true
		}
	}
	return false
}

func validCount(n int) bool {
	for _, c := range ClanCounts {
		if c == n {
			return true
		}
	}
	return false
}

func decode(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	return nil
}
