package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIInvokeStructured(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		io.WriteString(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"wordCount\":7}"}}]}`)
	}))
	defer srv.Close()

	o := NewOpenAI(staticKeys("sk-test"), "gpt-4o-mini")
	o.BaseURL = srv.URL

	schema := Object(map[string]*Schema{"wordCount": Integer("")}, "wordCount")
	raw, err := o.InvokeStructured(context.Background(), "count", schema)
	if err != nil {
		t.Fatalf("InvokeStructured() error = %v", err)
	}
	if string(raw) != `{"wordCount":7}` {
		t.Errorf("raw = %s", raw)
	}

	rf, ok := got["response_format"].(map[string]any)
	if !ok || rf["type"] != "json_schema" {
		t.Fatalf("response_format = %v", got["response_format"])
	}
	js := rf["json_schema"].(map[string]any)["schema"].(map[string]any)
	if js["type"] != "object" {
		t.Errorf("schema type = %v, want object", js["type"])
	}
}

func TestOpenAIInvokeConversationalRoles(t *testing.T) {
	var got openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`)
	}))
	defer srv.Close()

	o := NewOpenAI(staticKeys("sk-test"), "gpt-4o-mini")
	o.BaseURL = srv.URL

	_, err := o.InvokeConversational(context.Background(), ChatRequest{
		System:  "persona",
		History: []Message{{Role: RoleUser, Content: "a"}, {Role: RoleModel, Content: "b"}},
		Prompt:  "c",
	})
	if err != nil {
		t.Fatalf("InvokeConversational() error = %v", err)
	}

	want := []string{"system", "user", "assistant", "user"}
	if len(got.Messages) != len(want) {
		t.Fatalf("messages len = %d, want %d", len(got.Messages), len(want))
	}
	for i, role := range want {
		if got.Messages[i].Role != role {
			t.Errorf("messages[%d].role = %q, want %q", i, got.Messages[i].Role, role)
		}
	}
}

func TestOpenAIAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	o := NewOpenAI(staticKeys("sk-bad"), "gpt-4o-mini")
	o.BaseURL = srv.URL

	_, err := o.InvokeConversational(context.Background(), ChatRequest{Prompt: "hi"})
	var te *TransportError
	if !errors.As(err, &te) || te.StatusCode != http.StatusUnauthorized {
		t.Errorf("error = %v, want TransportError 401", err)
	}
}

func TestOpenAIEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	o := NewOpenAI(staticKeys("sk-test"), "gpt-4o-mini")
	o.BaseURL = srv.URL

	if _, err := o.InvokeConversational(context.Background(), ChatRequest{Prompt: "hi"}); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("error = %v, want ErrEmptyResponse", err)
	}
}
