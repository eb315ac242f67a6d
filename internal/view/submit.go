package view

import (
	"github.com/hcminh/folio/internal/toolbox"
)

// Each Submit method checks the credential before touching the adapter and
// fills in the current language. The returned job is run off the UI
// goroutine and its outcome applied with the adapter's Complete.

func (c *Controller) SubmitTitle(topic, tone string) (*toolbox.Job[[]toolbox.Suggestion], error) {
	if !c.Enabled() {
		return nil, toolbox.ErrDisabled
	}
	return c.tools.Titles.Start(toolbox.TitleInput{Topic: topic, Tone: tone, Lang: c.Lang()})
}

func (c *Controller) SubmitHeadline(topic, audience string) (*toolbox.Job[[]toolbox.Suggestion], error) {
	if !c.Enabled() {
		return nil, toolbox.ErrDisabled
	}
	return c.tools.Headlines.Start(toolbox.HeadlineInput{Topic: topic, Audience: audience, Lang: c.Lang()})
}

func (c *Controller) SubmitIdiom(idiom string) (*toolbox.Job[toolbox.IdiomExplanation], error) {
	if !c.Enabled() {
		return nil, toolbox.ErrDisabled
	}
	return c.tools.Idioms.Start(toolbox.IdiomInput{Idiom: idiom, Lang: c.Lang()})
}

func (c *Controller) SubmitClan(theme string, count int) (*toolbox.Job[[]toolbox.Suggestion], error) {
	if !c.Enabled() {
		return nil, toolbox.ErrDisabled
	}
	return c.tools.Clans.Start(toolbox.ClanInput{Theme: theme, Count: count, Lang: c.Lang()})
}

func (c *Controller) SubmitScript(script string) (*toolbox.Job[toolbox.Estimate], error) {
	if !c.Enabled() {
		return nil, toolbox.ErrDisabled
	}
	return c.tools.Timer.Start(toolbox.ScriptInput{Script: script})
}

func (c *Controller) SubmitChat(message string) (*toolbox.Job[toolbox.ChatReply], error) {
	if !c.Enabled() {
		return nil, toolbox.ErrDisabled
	}
	return c.tools.Chat.Start(message)
}

// AskFAQ sends the current FAQ question to the chat.
func (c *Controller) AskFAQ() (*toolbox.Job[toolbox.ChatReply], error) {
	faq, _, total := c.FAQ()
	if total == 0 {
		return nil, &toolbox.ValidationError{Field: "faq", Key: "chat.noFAQ", Message: "There is no question to ask."}
	}
	return c.SubmitChat(faq.Question)
}

// ReadingTime formats the script timer estimate in the current language.
func (c *Controller) ReadingTime() (string, bool) {
	return c.tools.Timer.ReadingTime(c.TimerUnits())
}
