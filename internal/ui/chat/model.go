// Package chat is the assistant panel: a left slide-over holding either an
// API key form or the conversation thread.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sporthub/sporthub/internal/assistant"
	"github.com/sporthub/sporthub/internal/config"
	"github.com/sporthub/sporthub/internal/keys"
	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/shared"
	"github.com/sporthub/sporthub/internal/ui/markdown"
	"github.com/sporthub/sporthub/internal/ui/slideover"
	"github.com/sporthub/sporthub/internal/ui/styles"
	"github.com/sporthub/sporthub/internal/ui/toaster"
)

// PanelID identifies the chat panel's Context and lease.
const PanelID = "chat"

// Mode is what the panel body shows.
type Mode int

const (
	ModeAPIKey Mode = iota
	ModeThread
)

// Deps are the collaborators of the chat panel.
type Deps struct {
	Config     config.ChatConfig
	ConfigPath string // where an entered API key is saved; empty skips saving

	// Provider answers prompts. Nil starts the panel on the API key form.
	Provider assistant.Provider
	// NewProvider builds a provider after a key is entered. Defaults to
	// assistant.NewProvider.
	NewProvider func(config.ChatConfig) (assistant.Provider, error)

	Clipboard shared.Clipboard
	Markdown  *markdown.Cache
	Clock     shared.Clock

	// PlainReplies skips Markdown rendering of replies.
	PlainReplies bool
}

// replyMsg carries the result of the completion for user message id.
type replyMsg struct {
	id   string
	resp *assistant.CompletionResponse
	err  error
}

// Model is the chat panel.
type Model struct {
	deps     Deps
	cfg      config.ChatConfig
	provider assistant.Provider

	ctx     *slideover.Context
	panel   slideover.Model
	trigger slideover.Trigger

	keyInput textinput.Model
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	messages []Message
	pending  string // id of the user message awaiting a reply

	width, height int // inner panel size the layout was computed for
	bodyHeight    int
}

// New builds the chat panel around ctx. Panels open at the same time share
// lock.
func New(deps Deps, ctx *slideover.Context, lock *slideover.ScrollLock) Model {
	if deps.NewProvider == nil {
		deps.NewProvider = assistant.NewProvider
	}
	if deps.Clipboard == nil {
		deps.Clipboard = shared.SystemClipboard{}
	}
	if deps.Markdown == nil {
		deps.Markdown = markdown.NewCache("")
	}
	if deps.Clock == nil {
		deps.Clock = shared.RealClock{}
	}

	keyInput := textinput.New()
	keyInput.Placeholder = "sk-..."
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '•'
	keyInput.Prompt = "key: "
	keyInput.Focus()

	input := textinput.New()
	input.Placeholder = "Ask about matches"
	input.Prompt = "> "
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	return Model{
		deps:     deps,
		cfg:      deps.Config,
		provider: deps.Provider,
		ctx:      ctx,
		panel:    slideover.New(ctx, lock).WithClock(deps.Clock),
		trigger:  slideover.NewTrigger(ctx, "Ask AI"),
		keyInput: keyInput,
		input:    input,
		viewport: viewport.New(0, 0),
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode reports which body is shown.
func (m Model) Mode() Mode {
	if m.provider == nil {
		return ModeAPIKey
	}
	return ModeThread
}

// Panel returns the underlying slide-over.
func (m Model) Panel() slideover.Model { return m.panel }

// Context returns the panel's open state.
func (m Model) Context() *slideover.Context { return m.ctx }

// Messages returns the thread.
func (m Model) Messages() []Message { return m.messages }

// Pending reports whether a reply is outstanding.
func (m Model) Pending() bool { return m.pending != "" }

// Update routes msg to the panel, then to the form or thread.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.panel, cmd = m.panel.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.panel.WantsMouse() {
			cmds = append(cmds, m.header().Update(msg))
			if tea.MouseEvent(msg).IsWheel() && m.Mode() == ModeThread {
				m.viewport, cmd = m.viewport.Update(msg)
				cmds = append(cmds, cmd)
			}
		} else {
			cmds = append(cmds, m.trigger.Update(msg))
		}

	case tea.KeyMsg:
		if m.panel.WantsKeys() && msg.Type != tea.KeyEsc {
			m, cmd = m.handleKey(msg)
			cmds = append(cmds, cmd)
		}

	case replyMsg:
		m, cmd = m.handleReply(msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		if m.pending != "" {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if w, h := m.panel.InnerSize(); w != m.width || h != m.height {
		m = m.layout()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.Mode() == ModeAPIKey {
		if key.Matches(msg, keys.Chat.Send) {
			return m.saveKey()
		}
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Chat.Send):
		return m.send()
	case key.Matches(msg, keys.Chat.CopyReply):
		return m, m.copyReply()
	case key.Matches(msg, keys.Chat.ScrollUp):
		m.viewport.ScrollUp(max(m.viewport.Height/2, 1))
		return m, nil
	case key.Matches(msg, keys.Chat.ScrollDown):
		m.viewport.ScrollDown(max(m.viewport.Height/2, 1))
		return m, nil
	case key.Matches(msg, keys.Chat.ForgetKey):
		return m.forgetKey()
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send appends the prompt and starts the completion. Only one request is
// in flight at a time.
func (m Model) send() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.pending != "" {
		return m, nil
	}

	prompt := newMessage(assistant.RoleUser, text, m.deps.Clock.Now())
	m.messages = append(m.messages, prompt)
	m.pending = prompt.ID
	m.input.Reset()

	req := assistant.CompletionRequest{
		Model:    m.cfg.Model,
		Messages: history(m.cfg.SystemPrompt, m.messages),
	}
	log.Debug(log.CatChat, "Sending prompt", "message", prompt.ID, "turns", len(req.Messages))
	return m.refresh(), tea.Batch(complete(m.provider, req, prompt.ID, m.cfg.Timeout), m.spinner.Tick)
}

func complete(p assistant.Provider, req assistant.CompletionRequest, id string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		resp, err := p.Complete(ctx, req)
		return replyMsg{id: id, resp: resp, err: err}
	}
}

func (m Model) handleReply(msg replyMsg) (Model, tea.Cmd) {
	if msg.id != m.pending {
		log.Debug(log.CatChat, "Dropping stale reply", "message", msg.id)
		return m, nil
	}
	m.pending = ""

	if msg.err != nil {
		for i := range m.messages {
			if m.messages[i].ID == msg.id {
				m.messages[i].Failed = true
			}
		}
		return m.refresh(), toaster.Show(failureText(msg.err), toaster.StyleError)
	}

	m.messages = append(m.messages, newMessage(assistant.RoleAssistant, msg.resp.Content, m.deps.Clock.Now()))
	return m.refresh(), nil
}

func failureText(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The assistant took too long to answer"
	case errors.Is(err, assistant.ErrNoChoices):
		return "The assistant returned an empty answer"
	default:
		return "Assistant request failed: " + err.Error()
	}
}

func (m Model) copyReply() tea.Cmd {
	reply, ok := lastReply(m.messages)
	if !ok {
		return toaster.Show("Nothing to copy yet", toaster.StyleInfo)
	}
	if err := m.deps.Clipboard.Copy(reply.Content); err != nil {
		log.ErrorErr(log.CatChat, "Copy failed", err)
		return toaster.Show("Could not copy: "+err.Error(), toaster.StyleError)
	}
	return toaster.Show("Copied reply", toaster.StyleSuccess)
}

// saveKey persists the entered key and switches to the thread.
func (m Model) saveKey() (Model, tea.Cmd) {
	apiKey := strings.TrimSpace(m.keyInput.Value())
	if apiKey == "" {
		return m, toaster.Show("Enter an API key first", toaster.StyleWarn)
	}

	cfg := m.cfg
	cfg.APIKey = apiKey
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	p, err := m.deps.NewProvider(cfg)
	if err != nil {
		log.ErrorErr(log.CatChat, "Provider setup failed", err)
		return m, toaster.Show("Could not use that key: "+err.Error(), toaster.StyleError)
	}

	if m.deps.ConfigPath != "" {
		if err := config.SaveChatAPIKey(m.deps.ConfigPath, apiKey); err != nil {
			log.ErrorErr(log.CatConfig, "Saving API key failed", err, "path", m.deps.ConfigPath)
			return m, toaster.Show("Could not save API key: "+err.Error(), toaster.StyleError)
		}
	}

	m.cfg = cfg
	m.provider = p
	m.keyInput.Reset()
	return m.layout(), toaster.Show("API key saved", toaster.StyleSuccess)
}

// forgetKey drops the provider and the key, including the copy saved in
// the config file, so a later reload cannot bring it back.
func (m Model) forgetKey() (Model, tea.Cmd) {
	m.provider = nil
	m.pending = ""
	m.cfg.APIKey = ""
	m.keyInput.Reset()
	m = m.layout()

	if m.deps.ConfigPath == "" {
		return m, nil
	}
	if err := config.SaveChatAPIKey(m.deps.ConfigPath, ""); err != nil {
		log.ErrorErr(log.CatConfig, "Clearing API key failed", err, "path", m.deps.ConfigPath)
		return m, toaster.Show("Could not remove saved API key: "+err.Error(), toaster.StyleError)
	}
	return m, toaster.Show("API key removed", toaster.StyleInfo)
}

// Reconfigure applies a reloaded chat section. The provider is kept; a
// key that appears in the file while the form is showing is picked up.
func (m Model) Reconfigure(cfg config.ChatConfig) Model {
	if cfg.APIKey == "" {
		cfg.APIKey = m.cfg.APIKey
	}
	m.cfg = cfg
	if m.provider == nil && cfg.APIKey != "" {
		if p, err := m.deps.NewProvider(cfg); err == nil {
			m.provider = p
		}
	}
	return m.layout()
}

// Unmount releases the panel's lease and detaches it.
func (m Model) Unmount() Model {
	m.panel = m.panel.Unmount()
	return m
}
