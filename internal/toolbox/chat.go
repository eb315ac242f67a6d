package toolbox

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/prompts"
)

// Theme modes the chat persona can switch to.
const (
	ModeDefault   = "default"
	ModeSynthwave = "synthwave"
)

// Chat fallback texts.
const (
	MsgChatUnavailable = "Sorry, I'm having trouble connecting right now."
	MsgSynthwaveOn     = "Synthwave mode activated!"
	MsgSynthwaveOff    = "Returning to normal theme."
)

// Turn is one entry of the chat transcript.
type Turn struct {
	Role   string // llm.RoleUser or llm.RoleModel
	Text   string
	Failed bool // placeholder appended after a failed call
}

// ChatReply is a processed model reply. Mode is empty when the reply does
// not change the theme.
type ChatReply struct {
	Text string
	Mode string
}

// ApplyMarkers strips a theme marker from reply and reports the mode it
// requests. Only the first activate or deactivate marker is honoured.
func ApplyMarkers(reply string) ChatReply {
	switch {
	case strings.Contains(reply, prompts.MarkerActivate):
		text := strings.TrimSpace(strings.Replace(reply, prompts.MarkerActivate, "", 1))
		if text == "" {
			text = MsgSynthwaveOn
		}
		return ChatReply{Text: text, Mode: ModeSynthwave}
	case strings.Contains(reply, prompts.MarkerDeactivate):
		text := strings.TrimSpace(strings.Replace(reply, prompts.MarkerDeactivate, "", 1))
		if text == "" {
			text = MsgSynthwaveOff
		}
		return ChatReply{Text: text, Mode: ModeDefault}
	}
	return ChatReply{Text: reply}
}

// Chat is the conversational adapter. The transcript is append-only until
// Reset.
type Chat struct {
	machine[ChatReply]

	client llm.Client
	gate   Gate
	system string

	// OnMode is called from Complete when a reply switches the theme.
	OnMode func(mode string)

	turnsMu sync.RWMutex
	id      string
	turns   []Turn
}

// NewChat creates a chat session using system as the persona instruction.
func NewChat(client llm.Client, gate Gate, system string) *Chat {
	return &Chat{client: client, gate: gate, system: system, id: uuid.NewString()}
}

// Start appends the user turn and returns the job that asks for a reply.
func (c *Chat) Start(message string) (*Job[ChatReply], error) {
	message = strings.TrimSpace(message)
	gen, err := c.begin(c.gate, func() error {
		return requireText("message", "chat.error", "Please enter a message.", message)
	})
	if err != nil {
		return nil, err
	}

	c.turnsMu.Lock()
	history := c.historyLocked()
	c.turns = append(c.turns, Turn{Role: llm.RoleUser, Text: message})
	id := c.id
	c.turnsMu.Unlock()

	req := llm.ChatRequest{System: c.system, History: history, Prompt: message}
	call := func(ctx context.Context) (ChatReply, error) {
		reply, err := c.client.InvokeConversational(ctx, req)
		if err != nil {
			log.Debug().Err(err).Str("session", id).Msg("chat: reply failed")
			return ChatReply{}, err
		}
		return ApplyMarkers(reply), nil
	}
	return &Job[ChatReply]{gen: gen, call: call}, nil
}

// Complete appends the reply, or the placeholder on failure, and reports
// a theme switch through OnMode.
func (c *Chat) Complete(o Outcome[ChatReply]) bool {
	if !c.complete(o) {
		return false
	}

	c.turnsMu.Lock()
	if o.Err != nil {
		c.turns = append(c.turns, Turn{Role: llm.RoleModel, Text: MsgChatUnavailable, Failed: true})
	} else {
		c.turns = append(c.turns, Turn{Role: llm.RoleModel, Text: o.Result.Text})
	}
	c.turnsMu.Unlock()

	if o.Err == nil && o.Result.Mode != "" && c.OnMode != nil {
		c.OnMode(o.Result.Mode)
	}
	return true
}

// Send is the blocking form of Start, Do and Complete.
func (c *Chat) Send(ctx context.Context, message string) (ChatReply, error) {
	job, err := c.Start(message)
	if err != nil {
		return ChatReply{}, err
	}
	o := job.Do(ctx)
	c.Complete(o)
	return o.Result, o.Err
}

// Reset starts a new session. A reply still in flight is discarded.
func (c *Chat) Reset() {
	c.machine.Reset()
	c.turnsMu.Lock()
	defer c.turnsMu.Unlock()
	c.turns = nil
	c.id = uuid.NewString()
}

// ID identifies the current session.
func (c *Chat) ID() string {
	c.turnsMu.RLock()
	defer c.turnsMu.RUnlock()
	return c.id
}

// Turns returns a copy of the transcript.
func (c *Chat) Turns() []Turn {
	c.turnsMu.RLock()
	defer c.turnsMu.RUnlock()
	return append([]Turn(nil), c.turns...)
}

// historyLocked converts the transcript to model messages. Failure
// placeholders are local only and are not sent.
func (c *Chat) historyLocked() []llm.Message {
	msgs := make([]llm.Message, 0, len(c.turns))
	for _, t := range c.turns {
		if t.Failed {
			continue
		}
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Text})
	}
	return msgs
}
