package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Gemini implements Client over the Generative Language REST API
type Gemini struct {
	Keys    KeySource
	Model   string
	BaseURL string
	client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	Error *geminiError `json:"error,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewGemini creates a Gemini client. The http.Client carries no timeout of
// its own; the caller's context bounds each call.
func NewGemini(keys KeySource, model string) *Gemini {
	return &Gemini{
		Keys:    keys,
		Model:   model,
		BaseURL: "https://generativelanguage.googleapis.com",
		client:  &http.Client{},
	}
}

// ModelName returns the model identifier
func (g *Gemini) ModelName() string {
	return g.Model
}

// InvokeStructured asks for application/json output constrained by schema
func (g *Gemini) InvokeStructured(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error) {
	req := geminiRequest{
		Contents: []geminiContent{{Role: RoleUser, Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}

	text, err := g.generate(ctx, "structured", req)
	if err != nil {
		return nil, err
	}
	return decodeStructured(text, schema)
}

// InvokeConversational sends the persona, the history and the new turn
func (g *Gemini) InvokeConversational(ctx context.Context, cr ChatRequest) (string, error) {
	contents := make([]geminiContent, 0, len(cr.History)+1)
	for _, m := range cr.History {
		role := RoleUser
		if m.Role == RoleModel || m.Role == "assistant" {
			role = RoleModel
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}
	contents = append(contents, geminiContent{Role: RoleUser, Parts: []geminiPart{{Text: cr.Prompt}}})

	req := geminiRequest{Contents: contents}
	if cr.System != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: cr.System}}}
	}

	text, err := g.generate(ctx, "chat", req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *Gemini) generate(ctx context.Context, kind string, body geminiRequest) (text string, err error) {
	key, err := credential(g.Keys)
	if err != nil {
		return "", err
	}

	start := time.Now()
	reqID := uuid.NewString()
	defer func() {
		ev := log.Debug()
		if err != nil {
			ev = log.Warn().Err(err)
		}
		ev.Str("provider", "gemini").
			Str("model", g.Model).
			Str("kind", kind).
			Str("request_id", reqID).
			Dur("latency", time.Since(start)).
			Msg("model call")
	}()

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.BaseURL, g.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", key)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("Gemini API error: %s", strings.TrimSpace(string(raw)))}
		}
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if gr.Error != nil || resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if gr.Error != nil {
			msg = gr.Error.Message
		}
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("Gemini API error: %s", msg)}
	}

	if len(gr.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
