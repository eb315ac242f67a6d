// Package view holds the application state shared by the terminal UI:
// active section, language, theme, credential gating and the tool adapters.
package view

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hcminh/folio/internal/content"
	"github.com/hcminh/folio/internal/credential"
	"github.com/hcminh/folio/internal/toolbox"
)

const (
	ThemeDefault   = toolbox.ModeDefault
	ThemeSynthwave = toolbox.ModeSynthwave
)

// Options configure a Controller.
type Options struct {
	Lang        string
	Theme       string
	Section     string
	Tools       *toolbox.Toolbox
	Credentials *credential.Store

	// Persist stores a preference ("language" or "theme"). Optional.
	Persist func(key, value string) error

	// OnTheme is called after the theme changes. Optional.
	OnTheme func(theme string)
}

// Controller is the view state. All methods are safe for concurrent use.
type Controller struct {
	mu      sync.RWMutex
	lang    string
	bundle  *content.Bundle
	section string
	theme   string
	loading int

	tools   *toolbox.Toolbox
	creds   *credential.Store
	persist func(key, value string) error
	onTheme func(string)

	faq toolbox.Pager
}

// New creates a controller. Unknown languages fall back to English and
// an unknown section to the first navigation link.
func New(opts Options) *Controller {
	lang := opts.Lang
	bundle, err := content.Load(lang)
	if err != nil {
		lang = "en"
		bundle = content.MustLoad(lang)
	}

	theme := opts.Theme
	if theme != ThemeSynthwave {
		theme = ThemeDefault
	}

	c := &Controller{
		lang:    lang,
		bundle:  bundle,
		theme:   theme,
		tools:   opts.Tools,
		creds:   opts.Credentials,
		persist: opts.Persist,
		onTheme: opts.OnTheme,
	}
	c.section = c.validSection(opts.Section)
	c.faq.Reset(len(bundle.Help.FAQs))

	if c.tools != nil {
		c.tools.Chat.OnMode = func(mode string) { c.SetTheme(mode) }
	}
	return c
}

// validSection returns id when the bundle links to it, else the first link.
// Caller holds mu or has exclusive access.
func (c *Controller) validSection(id string) string {
	if c.bundle.HasSection(id) {
		return id
	}
	if ids := c.bundle.SectionIDs(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

func (c *Controller) Lang() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Content returns the bundle for the current language.
func (c *Controller) Content() *content.Bundle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bundle
}

func (c *Controller) Section() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.section
}

func (c *Controller) Theme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

// Tools returns the adapters.
func (c *Controller) Tools() *toolbox.Toolbox { return c.tools }

// Navigate switches the active section. Ids not in the navigation are
// ignored and Navigate reports false.
func (c *Controller) Navigate(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bundle.HasSection(id) {
		return false
	}
	c.section = id
	c.loading = 0
	return true
}

// SetLanguage switches the content language and keeps the active section
// when the new navigation has it.
func (c *Controller) SetLanguage(lang string) error {
	bundle, err := content.Load(lang)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.lang = lang
	c.bundle = bundle
	c.section = c.validSection(c.section)
	c.faq.Reset(len(bundle.Help.FAQs))
	c.mu.Unlock()

	c.save("language", lang)
	return nil
}

// ToggleLanguage cycles through content.Languages and returns the new code.
func (c *Controller) ToggleLanguage() string {
	cur := c.Lang()
	next := content.Languages[0]
	for i, l := range content.Languages {
		if l == cur {
			next = content.Languages[(i+1)%len(content.Languages)]
			break
		}
	}
	if err := c.SetLanguage(next); err != nil {
		log.Warn().Err(err).Str("lang", next).Msg("language switch failed")
		return cur
	}
	return next
}

// SetTheme applies a theme. Unknown names select the default theme.
func (c *Controller) SetTheme(theme string) {
	if theme != ThemeSynthwave {
		theme = ThemeDefault
	}

	c.mu.Lock()
	changed := c.theme != theme
	c.theme = theme
	c.mu.Unlock()

	if !changed {
		return
	}
	c.save("theme", theme)
	if c.onTheme != nil {
		c.onTheme(theme)
	}
}

// ToggleTheme switches between the default and synthwave themes.
func (c *Controller) ToggleTheme() string {
	next := ThemeSynthwave
	if c.Theme() == ThemeSynthwave {
		next = ThemeDefault
	}
	c.SetTheme(next)
	return next
}

func (c *Controller) save(key, value string) {
	if c.persist == nil {
		return
	}
	if err := c.persist(key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to save preference")
	}
}

// Enabled reports whether a credential is present.
func (c *Controller) Enabled() bool {
	return c.creds != nil && c.creds.Present()
}

// IsTool reports whether the section hosts a tool.
func IsTool(section string) bool {
	_, ok := toolbox.Lookup(section)
	return ok
}

// Disabled reports whether the active section must show the disabled view.
// Help and support stays reachable so a key can be entered there.
func (c *Controller) Disabled() bool {
	section := c.Section()
	return section != toolbox.ToolChat && IsTool(section) && !c.Enabled()
}

func (c *Controller) SaveCredential(value string) error {
	if c.creds == nil {
		return errors.New("no credential store")
	}
	return c.creds.Set(value)
}

func (c *Controller) ClearCredential() error {
	if c.creds == nil {
		return errors.New("no credential store")
	}
	return c.creds.Clear()
}

// ErrorText returns the localized text for an adapter error.
func (c *Controller) ErrorText(err error) string {
	var ve *toolbox.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Content().Localize(ve.Key, ve.Message)
	case errors.Is(err, toolbox.ErrDisabled):
		return c.Content().Help.APIKey.DisabledMessage
	}
	return toolbox.DisplayError(err)
}

// LoadingMessage returns the current rotating message for the active tool.
func (c *Controller) LoadingMessage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	msgs := c.bundle.Loading(c.section)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[c.loading%len(msgs)]
}

// AdvanceLoading moves to the next loading message.
func (c *Controller) AdvanceLoading() {
	c.mu.Lock()
	c.loading++
	c.mu.Unlock()
}

// FAQ returns the FAQ shown in the carousel with its position.
func (c *Controller) FAQ() (faq content.FAQ, index, total int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	faqs := c.bundle.Help.FAQs
	if len(faqs) == 0 {
		return content.FAQ{}, 0, 0
	}
	i := c.faq.Index()
	return faqs[i], i, len(faqs)
}

func (c *Controller) NextFAQ() { c.faq.Next() }

func (c *Controller) PrevFAQ() { c.faq.Prev() }

// TimerUnits returns the unit words for the current language.
func (c *Controller) TimerUnits() toolbox.Units {
	t := c.Content().Tools.Timer
	return toolbox.Units{
		Minute:          t.Minute,
		Minutes:         t.Minutes,
		Second:          t.Second,
		Seconds:         t.Seconds,
		LessThanASecond: t.LessThanASecond,
	}
}
