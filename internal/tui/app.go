// Package tui is the terminal presentation of the portfolio and toolbox.
package tui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hcminh/folio/internal/toolbox"
	"github.com/hcminh/folio/internal/tui/components"
	"github.com/hcminh/folio/internal/tui/layout"
	"github.com/hcminh/folio/internal/tui/theme"
	"github.com/hcminh/folio/internal/view"
)

// loadingInterval is how often the loading message rotates.
const loadingInterval = 2 * time.Second

// jobDoneMsg carries a finished model call back to the UI goroutine.
type jobDoneMsg struct {
	section string
	apply   func() bool
}

type loadingTickMsg struct{}

// Model is the main TUI model
type Model struct {
	ctrl   *view.Controller
	ctx    context.Context
	cancel context.CancelFunc

	// Components
	header     *components.Header
	sidebar    *components.Sidebar
	status     *components.Status
	help       *components.HelpDialog
	transcript *components.Transcript
	spinner    spinner.Model
	pane       viewport.Model
	forms      map[string]*form

	// Layout
	layout *layout.SplitPane

	// State
	width        int
	height       int
	ready        bool
	showHelp     bool
	focusContent bool
	follow       bool // scroll the pane to the bottom on next refresh
	ticking      bool // a loading tick is scheduled
}

// New creates a new TUI model
func New(ctrl *view.Controller, modelName string) Model {
	theme.Set(ctrl.Theme())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	status := components.NewStatus(80)
	status.Model = modelName

	ctx, cancel := context.WithCancel(context.Background())
	b := ctrl.Content()

	m := Model{
		ctrl:       ctrl,
		ctx:        ctx,
		cancel:     cancel,
		header:     components.NewHeader(80),
		sidebar:    components.NewSidebar(b.Navigation),
		status:     status,
		help:       components.NewHelpDialog(),
		transcript: components.NewTranscript(80),
		spinner:    sp,
		forms:      newForms(b, 80),
	}
	m.syncLanguage()
	m.sidebar.Select(ctrl.Section())
	m.sidebar.SetFocused(true)
	return m
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// syncLanguage pushes the current bundle into the chrome components.
func (m *Model) syncLanguage() {
	b := m.ctrl.Content()
	m.header.SetContent(b.Header.Title, b.Header.Subtitle, b.UI.LanguageName)
	m.sidebar.SetItems(b.Navigation)
	m.status.Hints = b.UI.Hints
	relabel(m.forms, b, !m.ctrl.Enabled())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.status.SetMessage("")

		if cmd, handled := m.handleGlobalKey(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else if m.focusContent {
			cmds = append(cmds, m.handleContentKey(msg))
		} else {
			cmds = append(cmds, m.handleSidebarKey(msg))
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		if m.ctrl.Tools().Busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case loadingTickMsg:
		if m.ctrl.Tools().Busy() {
			m.ctrl.AdvanceLoading()
			cmds = append(cmds, loadingTick())
		} else {
			m.ticking = false
		}

	case jobDoneMsg:
		msg.apply()
		if msg.section == toolbox.ToolChat {
			m.follow = true
		}

	default:
		// cursor blink and other input plumbing
		if f := m.currentField(); f != nil {
			cmds = append(cmds, f.update(msg))
		}
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

func loadingTick() tea.Cmd {
	return tea.Tick(loadingInterval, func(time.Time) tea.Msg { return loadingTickMsg{} })
}

// runJob performs a job off the UI goroutine. Its outcome is applied in
// Update so adapter state only changes between renders.
func runJob[R any](ctx context.Context, section string, job *toolbox.Job[R], complete func(toolbox.Outcome[R]) bool) tea.Cmd {
	return func() tea.Msg {
		o := job.Do(ctx)
		return jobDoneMsg{section: section, apply: func() bool { return complete(o) }}
	}
}

// run schedules a job with the spinner and loading rotation.
func (m *Model) run(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd, m.spinner.Tick}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, loadingTick())
	}
	return tea.Batch(cmds...)
}

// startFailed reports a submission the controller refused.
func (m *Model) startFailed(err error) tea.Cmd {
	switch {
	case errors.Is(err, toolbox.ErrBusy):
	case errors.Is(err, toolbox.ErrDisabled):
		m.status.SetMessage(m.ctrl.Content().Help.APIKey.DisabledMessage)
	case m.ctrl.Section() == toolbox.ToolChat:
		// Tool forms show their own errors; chat has no error slot.
		m.status.SetMessage(m.ctrl.ErrorText(err))
	}
	return nil
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return tea.Quit, true

	case "ctrl+h":
		m.showHelp = true
		return nil, true

	case "?":
		if m.focusContent {
			return nil, false
		}
		m.showHelp = true
		return nil, true

	case "ctrl+l":
		m.ctrl.ToggleLanguage()
		m.syncLanguage()
		return nil, true

	case "ctrl+t":
		m.ctrl.ToggleTheme()
		return nil, true

	case "ctrl+n":
		m.ctrl.Tools().Chat.Reset()
		m.status.SetMessage(m.ctrl.Content().UI.NewChat)
		return nil, true

	case "esc":
		if m.focusContent {
			m.blurContent()
		}
		return nil, true

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		return cmd, true
	}
	return nil, false
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.sidebar.MoveUp()
	case "down", "j":
		m.sidebar.MoveDown()
	case "enter", "right", "l":
		return m.open(m.sidebar.Selected())
	}
	return nil
}

// open navigates to section and moves focus into the content pane.
func (m *Model) open(section string) tea.Cmd {
	if !m.ctrl.Navigate(section) {
		return nil
	}
	m.sidebar.Select(section)
	m.pane.GotoTop()
	if section == toolbox.ToolChat {
		m.follow = true
	}
	return m.focusPane()
}

func (m *Model) focusPane() tea.Cmd {
	m.focusContent = true
	m.sidebar.SetFocused(false)
	if f := m.forms[m.ctrl.Section()]; f != nil {
		return f.setActive(true)
	}
	return nil
}

func (m *Model) blurContent() {
	if f := m.forms[m.ctrl.Section()]; f != nil {
		f.setActive(false)
	}
	m.focusContent = false
	m.sidebar.SetFocused(true)
}

// currentField returns the focused field when the content pane has focus.
func (m *Model) currentField() *field {
	if !m.focusContent {
		return nil
	}
	if f := m.forms[m.ctrl.Section()]; f != nil {
		return f.current()
	}
	return nil
}

func (m *Model) handleContentKey(msg tea.KeyMsg) tea.Cmd {
	section := m.ctrl.Section()

	if m.ctrl.Disabled() {
		if msg.String() == "enter" {
			return m.open(toolbox.ToolChat)
		}
		return nil
	}

	f := m.forms[section]
	if f == nil {
		// static section: keys scroll
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		return cmd
	}
	cur := f.current()

	switch msg.String() {
	case "tab":
		return f.next()
	case "shift+tab":
		return f.prev()
	case "ctrl+s":
		return m.submit(section)
	case "ctrl+x":
		if section == toolbox.ToolChat {
			m.clearKey()
			return nil
		}
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch cur.kind {
		case choiceField:
			if cur.move(delta) {
				m.choiceChanged(section, f.focus)
			}
			return nil
		case pagerField:
			m.page(section, delta)
			return nil
		}
	case "up", "down":
		if cur.kind != areaField {
			var cmd tea.Cmd
			m.pane, cmd = m.pane.Update(msg)
			return cmd
		}
	case "enter":
		if cur.kind != areaField {
			return m.enter(section, f.focus)
		}
	}
	return cur.update(msg)
}

func (m *Model) choiceChanged(section string, index int) {
	if section == toolbox.ToolTimer && index == timerWPM {
		wpm, err := strconv.Atoi(m.forms[section].fields[timerWPM].value())
		if err == nil {
			m.ctrl.Tools().Timer.SetWPM(wpm)
		}
	}
}

func (m *Model) page(section string, delta int) {
	switch section {
	case toolbox.ToolClan:
		if delta < 0 {
			m.ctrl.Tools().Clans.Pages.Prev()
		} else {
			m.ctrl.Tools().Clans.Pages.Next()
		}
	case toolbox.ToolChat:
		if delta < 0 {
			m.ctrl.PrevFAQ()
		} else {
			m.ctrl.NextFAQ()
		}
	}
}

func (m *Model) enter(section string, index int) tea.Cmd {
	switch {
	case section == toolbox.ToolClan && index == clanPages:
		m.page(section, 1)
		return nil
	case section == toolbox.ToolChat:
		switch index {
		case helpKey:
			m.saveKey()
		case helpGuide:
			m.forms[section].fields[helpGuide].move(1)
		case helpFAQ:
			return m.askFAQ()
		case helpChat:
			return m.sendChat()
		}
		return nil
	}
	return m.submit(section)
}

func (m *Model) submit(section string) tea.Cmd {
	tools := m.ctrl.Tools()
	f := m.forms[section]

	switch section {
	case toolbox.ToolTitle:
		job, err := m.ctrl.SubmitTitle(f.fields[titleTopic].value(), f.fields[titleTone].value())
		if err != nil {
			return m.startFailed(err)
		}
		return m.run(runJob(m.ctx, section, job, tools.Titles.Complete))

	case toolbox.ToolTimer:
		job, err := m.ctrl.SubmitScript(f.fields[timerScript].value())
		if err != nil {
			return m.startFailed(err)
		}
		return m.run(runJob(m.ctx, section, job, tools.Timer.Complete))

	case toolbox.ToolHeadline:
		job, err := m.ctrl.SubmitHeadline(f.fields[headlineTopic].value(), f.fields[headlineAudience].value())
		if err != nil {
			return m.startFailed(err)
		}
		return m.run(runJob(m.ctx, section, job, tools.Headlines.Complete))

	case toolbox.ToolIdiom:
		job, err := m.ctrl.SubmitIdiom(f.fields[0].value())
		if err != nil {
			return m.startFailed(err)
		}
		return m.run(runJob(m.ctx, section, job, tools.Idioms.Complete))

	case toolbox.ToolClan:
		count, _ := strconv.Atoi(f.fields[clanCount].value())
		job, err := m.ctrl.SubmitClan(f.fields[clanTheme].value(), count)
		if err != nil {
			return m.startFailed(err)
		}
		return m.run(runJob(m.ctx, section, job, tools.Clans.Complete))

	case toolbox.ToolChat:
		return m.sendChat()
	}
	return nil
}

func (m *Model) sendChat() tea.Cmd {
	in := m.forms[toolbox.ToolChat].fields[helpChat]
	job, err := m.ctrl.SubmitChat(in.value())
	if err != nil {
		return m.startFailed(err)
	}
	in.reset()
	m.follow = true
	return m.run(runJob(m.ctx, toolbox.ToolChat, job, m.ctrl.Tools().Chat.Complete))
}

func (m *Model) askFAQ() tea.Cmd {
	job, err := m.ctrl.AskFAQ()
	if err != nil {
		return m.startFailed(err)
	}
	m.follow = true
	return m.run(runJob(m.ctx, toolbox.ToolChat, job, m.ctrl.Tools().Chat.Complete))
}

func (m *Model) saveKey() {
	in := m.forms[toolbox.ToolChat].fields[helpKey]
	if in.value() == "" {
		return
	}
	k := m.ctrl.Content().Help.APIKey
	if err := m.ctrl.SaveCredential(in.value()); err != nil {
		m.status.SetMessage(err.Error())
		return
	}
	in.reset()
	m.status.SetMessage(k.Saved)
}

func (m *Model) clearKey() {
	if err := m.ctrl.ClearCredential(); err != nil {
		m.status.SetMessage(err.Error())
		return
	}
	m.status.SetMessage(m.ctrl.Content().Help.APIKey.Cleared)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	if !m.ready {
		m.layout = layout.NewSplitPane(width, height)
		m.pane = viewport.New(0, 0)
		m.ready = true
	} else {
		m.layout.SetSize(width, height)
	}

	cw := m.contentWidth()
	m.pane.Width = cw
	m.header.SetWidth(width)
	m.status.SetWidth(width)
	m.sidebar.SetSize(m.layout.SidebarWidth(), m.layout.BodyHeight())
	m.transcript.SetWidth(cw)
	for _, f := range m.forms {
		f.setWidth(cw)
	}
}

// contentWidth is the usable width inside the content pane padding.
func (m *Model) contentWidth() int {
	if m.layout == nil {
		return 80
	}
	return max(m.layout.ContentWidth()-4, 20)
}

// refresh re-renders the active section into the pane.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	b := m.ctrl.Content()
	section := m.ctrl.Section()

	relabel(m.forms, b, !m.ctrl.Enabled())
	m.status.Loading = m.ctrl.Tools().Busy()
	m.status.KeySet = m.ctrl.Enabled()
	m.sidebar.SetActive(section)

	footer := 0
	if section == toolbox.ToolChat {
		footer = lipgloss.Height(m.chatFooter())
	}
	m.pane.Height = max(m.layout.BodyHeight()-footer, 1)

	width := m.contentWidth()
	body := renderPortfolio(b, section, width)
	if body == "" {
		body = m.renderTool(section, width)
	}
	m.pane.SetContent(heading(b.Title(section)) + "\n\n" + body)

	if m.follow {
		m.pane.GotoBottom()
		m.follow = false
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	t := theme.Current

	pane := m.pane.View()
	if m.ctrl.Section() == toolbox.ToolChat {
		pane = lipgloss.JoinVertical(lipgloss.Left, pane, m.chatFooter())
	}
	pane = lipgloss.NewStyle().Padding(0, 2).Render(pane)

	view := m.layout.Render(m.header.View(), m.sidebar.View(), pane, m.status.View())

	if m.showHelp {
		view = components.PlaceOverlay(m.help.View(), m.width, m.height)
	}

	return lipgloss.NewStyle().
		Background(t.Background).
		Width(m.width).
		Height(m.height).
		Render(view)
}
