package toolbox

import (
	"context"
	"encoding/json"

	"github.com/hcminh/folio/internal/llm"
)

// MockClient is a test implementation of llm.Client
type MockClient struct {
	StructuredFunc     func(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error)
	ConversationalFunc func(ctx context.Context, req llm.ChatRequest) (string, error)

	calls int
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
	return "mock reply", nil
}

// jsonReply returns a StructuredFunc that always answers body.
func jsonReply(body string) func(context.Context, string, *llm.Schema) (json.RawMessage, error) {
	return func(context.Context, string, *llm.Schema) (json.RawMessage, error) {
		return json.RawMessage(body), nil
	}
}

// gate is a Gate with a fixed answer
type gate bool

func (g gate) Present() bool { return bool(g) }
