package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Conversation roles. Gemini calls the assistant side "model".
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message represents one turn of a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a conversational call: persona instruction, prior turns and
// the new user prompt.
type ChatRequest struct {
	System  string
	History []Message
	Prompt  string
}

// Client is the interface for model backends
type Client interface {
	// InvokeStructured asks for JSON conforming to schema and returns the
	// validated document.
	InvokeStructured(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error)

	// InvokeConversational returns the model's free-text reply.
	InvokeConversational(ctx context.Context, req ChatRequest) (string, error)
}

// KeySource supplies the credential. It is read on every call.
type KeySource interface {
	Get() (string, bool)
}

// Options selects and configures a backend.
type Options struct {
	Provider string
	Model    string
	BaseURL  string
	Keys     KeySource
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	if provider == "openai" {
		return "gpt-4o-mini"
	}
	return "gemini-2.5-flash"
}

// New creates the client for opts.Provider.
func New(opts Options) (Client, error) {
	provider := strings.ToLower(opts.Provider)
	model := opts.Model
	if model == "" {
		model = DefaultModel(provider)
	}

	switch provider {
	case "", "gemini":
		g := NewGemini(opts.Keys, model)
		if opts.BaseURL != "" {
			g.BaseURL = strings.TrimRight(opts.BaseURL, "/")
		}
		return g, nil
	case "openai":
		o := NewOpenAI(opts.Keys, model)
		if opts.BaseURL != "" {
			o.BaseURL = strings.TrimRight(opts.BaseURL, "/")
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", opts.Provider)
	}
}

// decodeStructured checks raw model text against schema.
func decodeStructured(text string, schema *Schema) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedResponse)
	}
	if schema != nil {
		if err := schema.Validate(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	return json.RawMessage(text), nil
}

func credential(keys KeySource) (string, error) {
	if keys == nil {
		return "", ErrNoCredential
	}
	key, ok := keys.Get()
	if !ok || key == "" {
		return "", ErrNoCredential
	}
	return key, nil
}
