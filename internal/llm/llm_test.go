package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// staticKeys is a KeySource with a fixed value
type staticKeys string

func (k staticKeys) Get() (string, bool) { return string(k), k != "" }

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		wantOK bool
	}{
		{name: "empty", err: ErrEmptyResponse, want: MsgEmptyResponse, wantOK: true},
		{name: "wrapped malformed", err: fmt.Errorf("%w: bad", ErrMalformedResponse), want: MsgMalformedResponse, wantOK: true},
		{name: "transport", err: &TransportError{StatusCode: 429, Err: errors.New("quota")}, want: MsgTransport, wantOK: true},
		{name: "context canceled inside transport", err: &TransportError{Err: context.Canceled}, want: MsgTransport, wantOK: true},
		{name: "unknown", err: errors.New("boom"), want: "", wantOK: false},
		{name: "nil", err: nil, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UserMessage(tt.err)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("UserMessage() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	err := &TransportError{Err: context.DeadlineExceeded}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("TransportError should unwrap to its cause")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantModel string
		wantErr   bool
	}{
		{name: "default provider", opts: Options{}, wantModel: "gemini-2.5-flash"},
		{name: "gemini explicit model", opts: Options{Provider: "gemini", Model: "gemini-2.5-pro"}, wantModel: "gemini-2.5-pro"},
		{name: "openai", opts: Options{Provider: "OpenAI"}, wantModel: "gpt-4o-mini"},
		{name: "unknown", opts: Options{Provider: "claude"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Error("New() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			named, ok := c.(interface{ ModelName() string })
			if !ok {
				t.Fatalf("client %T has no ModelName", c)
			}
			if named.ModelName() != tt.wantModel {
				t.Errorf("ModelName() = %q, want %q", named.ModelName(), tt.wantModel)
			}
		})
	}
}

func TestDecodeStructured(t *testing.T) {
	schema := Object(map[string]*Schema{"wordCount": Integer("")}, "wordCount")

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "valid", text: `{"wordCount": 12}`},
		{name: "surrounding whitespace", text: "\n  {\"wordCount\": 3}  \n"},
		{name: "blank", text: "   ", wantErr: ErrEmptyResponse},
		{name: "not json", text: "twelve words", wantErr: ErrMalformedResponse},
		{name: "missing field", text: `{"count": 12}`, wantErr: ErrMalformedResponse},
		{name: "wrong type", text: `{"wordCount": "12"}`, wantErr: ErrMalformedResponse},
		{name: "decimal integer", text: `{"wordCount": 3.0}`, wantErr: ErrMalformedResponse},
		{name: "trailing data", text: `{"wordCount": 3} {}`, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeStructured(tt.text, schema)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("decodeStructured() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("decodeStructured() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
