package toolbox

import (
	"context"
	"errors"
	"testing"

	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/prompts"
)

func TestApplyMarkers(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  ChatReply
	}{
		{name: "plain", reply: "Hello!", want: ChatReply{Text: "Hello!"}},
		{name: "activate only", reply: prompts.MarkerActivate, want: ChatReply{Text: MsgSynthwaveOn, Mode: ModeSynthwave}},
		{name: "activate with text", reply: "Welcome to the grid. " + prompts.MarkerActivate, want: ChatReply{Text: "Welcome to the grid.", Mode: ModeSynthwave}},
		{name: "deactivate only", reply: "  " + prompts.MarkerDeactivate + "\n", want: ChatReply{Text: MsgSynthwaveOff, Mode: ModeDefault}},
		{name: "activate wins", reply: prompts.MarkerActivate + prompts.MarkerDeactivate, want: ChatReply{Text: prompts.MarkerDeactivate, Mode: ModeSynthwave}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyMarkers(tt.reply); got != tt.want {
				t.Errorf("ApplyMarkers(%q) = %+v, want %+v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestChatSendsHistoryOnce(t *testing.T) {
	var requests []llm.ChatRequest
	client := &MockClient{
		ConversationalFunc: func(ctx context.Context, req llm.ChatRequest) (string, error) {
			requests = append(requests, req)
			return "reply", nil
		},
	}
	c := NewChat(client, gate(true), "persona")

	if _, err := c.Send(context.Background(), "  first  "); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := c.Send(context.Background(), "second"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(requests))
	}
	if requests[0].System != "persona" || requests[0].Prompt != "first" || len(requests[0].History) != 0 {
		t.Errorf("first request = %+v", requests[0])
	}
	h := requests[1].History
	if len(h) != 2 || h[0].Content != "first" || h[1].Role != llm.RoleModel || requests[1].Prompt != "second" {
		t.Errorf("second request = %+v", requests[1])
	}

	turns := c.Turns()
	if len(turns) != 4 {
		t.Fatalf("turns = %d, want 4", len(turns))
	}
}

func TestChatFailureAppendsPlaceholder(t *testing.T) {
	var requests []llm.ChatRequest
	fail := true
	client := &MockClient{
		ConversationalFunc: func(ctx context.Context, req llm.ChatRequest) (string, error) {
			requests = append(requests, req)
			if fail {
				return "", &llm.TransportError{Err: errors.New("offline")}
			}
			return "back online", nil
		},
	}
	c := NewChat(client, gate(true), "")

	if _, err := c.Send(context.Background(), "hi"); err == nil {
		t.Fatal("Send() error = nil, want failure")
	}
	turns := c.Turns()
	last := turns[len(turns)-1]
	if last.Text != MsgChatUnavailable || !last.Failed || last.Role != llm.RoleModel {
		t.Errorf("last turn = %+v", last)
	}

	fail = false
	if _, err := c.Send(context.Background(), "hi again"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	for _, m := range requests[1].History {
		if m.Content == MsgChatUnavailable {
			t.Error("failure placeholder was sent to the model")
		}
	}
}

func TestChatEmptyReplyIsFailure(t *testing.T) {
	client := &MockClient{
		ConversationalFunc: func(ctx context.Context, req llm.ChatRequest) (string, error) {
			return "", llm.ErrEmptyResponse
		},
	}
	c := NewChat(client, gate(true), "")
	_, _ = c.Send(context.Background(), "hello")

	turns := c.Turns()
	if turns[len(turns)-1].Text != MsgChatUnavailable {
		t.Errorf("last turn = %+v, want placeholder", turns[len(turns)-1])
	}
}

func TestChatThemeSwitch(t *testing.T) {
	client := &MockClient{
		ConversationalFunc: func(ctx context.Context, req llm.ChatRequest) (string, error) {
			if req.Prompt == "synthwave" {
				return prompts.MarkerActivate, nil
			}
			return prompts.MarkerDeactivate, nil
		},
	}
	c := NewChat(client, gate(true), "")
	var modes []string
	c.OnMode = func(mode string) { modes = append(modes, mode) }

	reply, err := c.Send(context.Background(), "synthwave")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Text != MsgSynthwaveOn {
		t.Errorf("reply = %q", reply.Text)
	}
	if _, err := c.Send(context.Background(), "return to normal"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if len(modes) != 2 || modes[0] != ModeSynthwave || modes[1] != ModeDefault {
		t.Errorf("modes = %v", modes)
	}
}

func TestChatGuards(t *testing.T) {
	client := &MockClient{}

	disabled := NewChat(client, gate(false), "")
	if _, err := disabled.Start("hello"); !errors.Is(err, ErrDisabled) {
		t.Errorf("Start() without credential error = %v, want ErrDisabled", err)
	}
	if len(disabled.Turns()) != 0 {
		t.Error("rejected message was appended")
	}

	c := NewChat(client, gate(true), "")
	if _, err := c.Start("   "); !errors.Is(err, ErrValidation) {
		t.Errorf("Start(blank) error = %v, want ErrValidation", err)
	}
	snap := c.Snapshot()
	if snap.Phase != Failed {
		t.Errorf("blank message: phase = %v, want %v", snap.Phase, Failed)
	}
	var verr *ValidationError
	if !errors.As(snap.Err, &verr) || verr.Key != "chat.error" {
		t.Errorf("blank message: err = %v, want chat.error ValidationError", snap.Err)
	}
	if len(c.Turns()) != 0 {
		t.Errorf("blank message appended turns: %+v", c.Turns())
	}
	if _, err := c.Start("one"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := c.Start("two"); !errors.Is(err, ErrBusy) {
		t.Errorf("Start() while loading error = %v, want ErrBusy", err)
	}
	if client.calls != 0 {
		t.Errorf("model calls = %d, want 0", client.calls)
	}
}

func TestChatResetDiscardsReply(t *testing.T) {
	c := NewChat(&MockClient{}, gate(true), "")
	firstID := c.ID()

	job, err := c.Start("hello")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c.Reset()

	if c.Complete(job.Do(context.Background())) {
		t.Error("Complete() applied a reply from a previous session")
	}
	if len(c.Turns()) != 0 {
		t.Errorf("turns = %+v, want empty", c.Turns())
	}
	if c.ID() == firstID {
		t.Error("Reset() kept the session id")
	}
}
