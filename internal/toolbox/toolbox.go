// Package toolbox implements the AI tool adapters: typed requests with a
// shared Idle, Validating, Requesting, Succeeded/Failed lifecycle.
package toolbox

import "github.com/hcminh/folio/internal/llm"

// Tool ids, equal to the navigation section that hosts each tool.
const (
	ToolTitle    = "youtube-title-generator"
	ToolTimer    = "script-timer"
	ToolHeadline = "headline-generator"
	ToolIdiom    = "idiom-explainer"
	ToolClan     = "clan-name-generator"
	ToolChat     = "help-and-support"
)

// Descriptor describes a tool for navigation and the command line.
type Descriptor struct {
	ID      string
	Command string
	Summary string
}

// Registry lists the tools in sidebar order.
var Registry = []Descriptor{
	{ID: ToolTitle, Command: "title", Summary: "Generate YouTube video titles"},
	{ID: ToolTimer, Command: "timer", Summary: "Estimate the reading time of a script"},
	{ID: ToolHeadline, Command: "headline", Summary: "Generate news headlines"},
	{ID: ToolIdiom, Command: "idiom", Summary: "Explain an idiom with a dialogue"},
	{ID: ToolClan, Command: "clan", Summary: "Generate gaming clan names"},
	{ID: ToolChat, Command: "chat", Summary: "Chat with the portfolio assistant"},
}

// Lookup returns the descriptor for a tool id.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range Registry {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Toolbox groups the six adapters over one client and credential gate.
type Toolbox struct {
	Titles    *TitleGenerator
	Headlines *HeadlineGenerator
	Idioms    *IdiomExplainer
	Clans     *ClanNameGenerator
	Timer     *ScriptTimer
	Chat      *Chat
}

// New builds all adapters. chatSystem is the chat persona instruction.
func New(client llm.Client, gate Gate, chatSystem string) *Toolbox {
	return &Toolbox{
		Titles:    NewTitleGenerator(client, gate),
		Headlines: NewHeadlineGenerator(client, gate),
		Idioms:    NewIdiomExplainer(client, gate),
		Clans:     NewClanNameGenerator(client, gate),
		Timer:     NewScriptTimer(client, gate),
		Chat:      NewChat(client, gate, chatSystem),
	}
}

// Busy reports whether any adapter has a request in flight.
func (t *Toolbox) Busy() bool {
	return t.Titles.Loading() || t.Headlines.Loading() || t.Idioms.Loading() ||
		t.Clans.Loading() || t.Timer.Loading() || t.Chat.Loading()
}
