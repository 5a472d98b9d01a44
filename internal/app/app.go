// Package app contains the root application model.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sporthub/sporthub/internal/assistant"
	"github.com/sporthub/sporthub/internal/config"
	"github.com/sporthub/sporthub/internal/flags"
	"github.com/sporthub/sporthub/internal/keys"
	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/pubsub"
	"github.com/sporthub/sporthub/internal/shared"
	"github.com/sporthub/sporthub/internal/ui/chat"
	"github.com/sporthub/sporthub/internal/ui/help"
	"github.com/sporthub/sporthub/internal/ui/logpanel"
	"github.com/sporthub/sporthub/internal/ui/markdown"
	"github.com/sporthub/sporthub/internal/ui/matches"
	"github.com/sporthub/sporthub/internal/ui/overlay"
	"github.com/sporthub/sporthub/internal/ui/slideover"
	"github.com/sporthub/sporthub/internal/ui/styles"
	"github.com/sporthub/sporthub/internal/ui/toaster"
	"github.com/sporthub/sporthub/internal/watcher"
)

// Options configures the application.
type Options struct {
	Config     config.Config
	ConfigPath string // watched for changes and used to save the API key

	// Debug enables the log panel (ctrl+x).
	Debug bool

	// Provider answers chat prompts. Nil opens the chat on the API key form.
	Provider    assistant.Provider
	NewProvider func(config.ChatConfig) (assistant.Provider, error)

	Clipboard shared.Clipboard
	Clock     shared.Clock
	Matches   []matches.Match // defaults to the demo fixtures
}

// configChangedMsg reports that the watched config file settled after a
// change.
type configChangedMsg struct {
	path string
}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string
	debug      bool
	keys       keys.KeyMap

	lock     *slideover.ScrollLock
	board    matches.Model
	chat     chat.Model
	logs     logpanel.Model
	help     help.Model
	showHelp bool
	toaster  toaster.Model

	width  int
	height int

	logCancel context.CancelFunc

	// File watcher for config hot reload (pubsub-based)
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[string]
}

// New creates the application model.
func New(opts Options) Model {
	cfg := opts.Config
	if opts.Clock == nil {
		opts.Clock = shared.RealClock{}
	}
	if opts.Matches == nil {
		opts.Matches = matches.Fixtures()
	}

	lock := slideover.NewScrollLock()
	lock.OnChange(func(locked bool) {
		log.Debug(log.CatUI, "Background scroll lock", "locked", locked)
	})

	chatCtx := slideover.NewContext(chat.PanelID, slideover.Options{Config: panelConfig("chat.panel", cfg.Chat.Panel, cfg.UI)})
	logsCtx := slideover.NewContext(logpanel.PanelID, slideover.Options{Config: panelConfig("logs.panel", cfg.Logs.Panel, cfg.UI)})

	features := flags.New(cfg.Flags)
	chatModel := chat.New(chat.Deps{
		Config:      cfg.Chat,
		ConfigPath:  opts.ConfigPath,
		Provider:    opts.Provider,
		NewProvider: opts.NewProvider,
		Clipboard:   opts.Clipboard,
		Markdown:    markdown.NewCache(markdownStyle(cfg.Theme)),
		Clock:       opts.Clock,

		PlainReplies: features.Enabled(flags.FlagPlainReplies),
	}, chatCtx, lock)

	var (
		listener  *log.LogListener
		logCancel context.CancelFunc
	)
	if opts.Debug {
		var ctx context.Context
		ctx, logCancel = context.WithCancel(context.Background())
		listener = log.NewListener(ctx)
	}

	m := Model{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		debug:      opts.Debug,
		keys:       keys.DefaultKeyMap(),
		lock:       lock,
		board:      matches.New(opts.Matches, lock),
		chat:       chatModel,
		logs:       logpanel.New(logsCtx, lock, listener).WithClock(opts.Clock),
		help:       help.New(opts.Debug),
		toaster:    toaster.New(),
		logCancel:  logCancel,
	}

	if opts.ConfigPath != "" {
		m = m.startWatcher(opts.ConfigPath)
	}
	return m
}

// panelConfig converts a panel section, falling back to the defaults when
// it is invalid. Load validates, so this only triggers for hand-built
// configs.
func panelConfig(name string, p config.PanelConfig, ui config.UIConfig) slideover.Config {
	c, err := p.Slideover(ui)
	if err != nil {
		log.ErrorErr(log.CatConfig, "Invalid panel config, using defaults", err, "section", name)
		return slideover.DefaultConfig()
	}
	return c
}

func (m Model) startWatcher(path string) Model {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Config watcher unavailable", err)
		return m
	}
	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatWatcher, "Config watcher unavailable", err)
		_ = w.Stop()
		return m
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.watcherHandle = w
	m.watcherCancel = cancel
	m.watcherListener = pubsub.NewContinuousListener(ctx, w.Broker())
	return m
}

// listenConfig waits for the next reload and tags it so it cannot be
// confused with log events, which share the payload type.
func (m Model) listenConfig() tea.Cmd {
	if m.watcherListener == nil {
		return nil
	}
	return m.watcherListener.ListenMap(func(ev pubsub.Event[string]) tea.Msg {
		return configChangedMsg{path: ev.Payload}
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		m.logs.Init(),
		m.listenConfig(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board = m.board.SetSize(msg.Width, msg.Height)
		m.help = m.help.SetSize(msg.Width, msg.Height)
		return m.broadcast(msg)

	case log.LogEvent:
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd

	case configChangedMsg:
		var cmd tea.Cmd
		m, cmd = m.reload(msg.path)
		return m, tea.Batch(cmd, m.listenConfig())

	case toaster.ShowMsg, toaster.DismissMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Frames, open-state changes, replies and spinner ticks.
	return m.broadcast(msg)
}

// broadcast delivers msg to both panels.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var chatCmd, logsCmd tea.Cmd
	m.chat, chatCmd = m.chat.Update(msg)
	m.logs, logsCmd = m.logs.Update(msg)
	return m, tea.Batch(chatCmd, logsCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.debug && key.Matches(msg, m.keys.ToggleLogs) {
		return m, m.logs.Context().Toggle()
	}

	// Keys, Escape included, go to the most recently opened panel only.
	switch m.lock.Top() {
	case chat.PanelID:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	case logpanel.PanelID:
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.OpenChat):
		return m, m.chat.Context().SetOpen(true)
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// handleMouse routes pointer input to the topmost open panel, or to the
// board and the chat trigger when no panel is open.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.lock.Top() {
	case chat.PanelID:
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	case logpanel.PanelID:
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	// A panel that is closing may still be finishing a drag.
	if m.logs.Panel().WantsMouse() {
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	var chatCmd tea.Cmd
	m.chat, chatCmd = m.chat.Update(msg)
	if !m.chat.Panel().WantsMouse() {
		m.board, cmd = m.board.Update(msg)
	}
	return m, tea.Batch(chatCmd, cmd)
}

// reload re-reads the config file and applies the sections that can change
// at runtime: panel geometry and motion, chat settings and the theme. A file
// that fails to load or validate leaves the running config in place.
func (m Model) reload(path string) (Model, tea.Cmd) {
	cfg, err := config.Load(path)
	if err != nil {
		log.ErrorErr(log.CatConfig, "Config reload failed", err, "path", path)
		return m, toaster.Show("Config reload failed: "+err.Error(), toaster.StyleError)
	}
	if err := cfg.Validate(); err != nil {
		log.ErrorErr(log.CatConfig, "Reloaded config is invalid, keeping current", err, "path", path)
		return m, toaster.Show("Invalid config, keeping current settings", toaster.StyleError)
	}

	m.chat.Context().SetConfig(panelConfig("chat.panel", cfg.Chat.Panel, cfg.UI))
	m.logs.Context().SetConfig(panelConfig("logs.panel", cfg.Logs.Panel, cfg.UI))
	m.chat = m.chat.Reconfigure(cfg.Chat)

	if err := ApplyTheme(cfg.Theme); err != nil {
		log.ErrorErr(log.CatConfig, "Theme reload failed", err)
	} else {
		m.board = m.board.Restyle()
	}

	m.cfg = cfg
	log.Info(log.CatConfig, "Config reloaded", "path", path)
	return m, nil
}

// ApplyTheme applies the theme section: the light/dark override, then the
// preset and color tokens.
func ApplyTheme(theme config.ThemeConfig) error {
	switch strings.ToLower(theme.Mode) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
	return styles.ApplyTheme(styles.ThemeConfig{
		Preset: theme.Preset,
		Colors: theme.FlattenedColors(),
	})
}

// markdownStyle picks the glamour style for the theme mode; empty means
// detect from the terminal.
func markdownStyle(theme config.ThemeConfig) string {
	switch strings.ToLower(theme.Mode) {
	case "dark", "light":
		return strings.ToLower(theme.Mode)
	}
	return ""
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	view := m.board.View()
	view = overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.BottomRight,
		PadX:     2,
		PadY:     1,
	}, m.chat.TriggerView(), view)

	// Draw the most recently opened panel last so it sits on top.
	if m.lock.Top() == chat.PanelID {
		view = m.chat.Overlay(m.logs.Overlay(view))
	} else {
		view = m.logs.Overlay(m.chat.Overlay(view))
	}

	if m.showHelp {
		view = m.help.Overlay(view)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return zone.Scan(view)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.chat = m.chat.Unmount()
	m.logs = m.logs.Unmount()

	if m.logCancel != nil {
		m.logCancel()
	}
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}

// Chat returns the chat panel.
func (m Model) Chat() chat.Model { return m.chat }

// Logs returns the log panel.
func (m Model) Logs() logpanel.Model { return m.logs }

// Board returns the matches board.
func (m Model) Board() matches.Model { return m.board }

// ScrollLock returns the lock shared by the panels.
func (m Model) ScrollLock() *slideover.ScrollLock { return m.lock }

// Config returns the active configuration.
func (m Model) Config() config.Config { return m.cfg }
