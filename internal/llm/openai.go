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

// OpenAI implements Client using an OpenAI-compatible chat completions API
type OpenAI struct {
	Keys    KeySource
	Model   string
	BaseURL string
	client  *http.Client
}

// OpenAI API request/response types
type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *openAISchemaSpec `json:"json_schema,omitempty"`
}

type openAISchemaSpec struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

type openAIResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *openAIError `json:"error,omitempty"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(keys KeySource, model string) *OpenAI {
	return &OpenAI{
		Keys:    keys,
		Model:   model,
		BaseURL: "https://api.openai.com/v1",
		client:  &http.Client{},
	}
}

// ModelName returns the model identifier
func (o *OpenAI) ModelName() string {
	return o.Model
}

// InvokeStructured requests a json_schema constrained completion
func (o *OpenAI) InvokeStructured(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error) {
	req := openAIRequest{
		Model:    o.Model,
		Messages: []openAIMessage{{Role: "user", Content: prompt}},
	}
	if schema != nil {
		req.ResponseFormat = &openAIResponseFormat{
			Type:       "json_schema",
			JSONSchema: &openAISchemaSpec{Name: "result", Schema: schema.JSONSchema()},
		}
	}

	text, err := o.complete(ctx, "structured", req)
	if err != nil {
		return nil, err
	}
	return decodeStructured(text, schema)
}

// InvokeConversational sends the persona as a system message followed by
// the transcript and the new turn
func (o *OpenAI) InvokeConversational(ctx context.Context, cr ChatRequest) (string, error) {
	msgs := make([]openAIMessage, 0, len(cr.History)+2)
	if cr.System != "" {
		msgs = append(msgs, openAIMessage{Role: "system", Content: cr.System})
	}
	for _, m := range cr.History {
		role := "user"
		if m.Role == RoleModel || m.Role == "assistant" {
			role = "assistant"
		}
		msgs = append(msgs, openAIMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openAIMessage{Role: "user", Content: cr.Prompt})

	text, err := o.complete(ctx, "chat", openAIRequest{Model: o.Model, Messages: msgs})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (o *OpenAI) complete(ctx context.Context, kind string, reqBody openAIRequest) (text string, err error) {
	key, err := credential(o.Keys)
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
		ev.Str("provider", "openai").
			Str("model", o.Model).
			Str("kind", kind).
			Str("request_id", reqID).
			Dur("latency", time.Since(start)).
			Msg("model call")
	}()

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("OpenAI API error: %s", strings.TrimSpace(string(body)))}
		}
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if openAIResp.Error != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("OpenAI API error: %s", openAIResp.Error.Message)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("OpenAI API error: %s", http.StatusText(resp.StatusCode))}
	}

	if len(openAIResp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return openAIResp.Choices[0].Message.Content, nil
}
