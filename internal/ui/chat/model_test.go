package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/sporthub/sporthub/internal/assistant"
	"github.com/sporthub/sporthub/internal/config"
	"github.com/sporthub/sporthub/internal/shared"
	"github.com/sporthub/sporthub/internal/ui/markdown"
	"github.com/sporthub/sporthub/internal/ui/slideover"
	"github.com/sporthub/sporthub/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// fakeProvider replies with reply or fails with err and records requests.
type fakeProvider struct {
	mu       sync.Mutex
	reply    string
	err      error
	requests []assistant.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req assistant.CompletionRequest) (*assistant.CompletionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &assistant.CompletionResponse{Content: f.reply, Model: "fake-1"}, nil
}

type harness struct {
	m     Model
	clock *shared.FakeClock
	clip  *shared.MemoryClipboard
	msgs  []tea.Msg
}

func newHarness(t *testing.T, deps Deps) *harness {
	t.Helper()
	defaults := config.Defaults()
	if deps.Config.Model == "" {
		deps.Config = defaults.Chat
	}
	panelCfg, err := deps.Config.Panel.Slideover(defaults.UI)
	require.NoError(t, err)

	h := &harness{
		clock: shared.NewFakeClock(time.Unix(1_700_000_000, 0)),
		clip:  &shared.MemoryClipboard{},
	}
	deps.Clock = h.clock
	deps.Clipboard = h.clip
	deps.Markdown = markdown.NewCache("notty")

	ctx := slideover.NewContext(PanelID, slideover.Options{Config: panelCfg})
	h.m = New(deps, ctx, slideover.NewScrollLock())
	h.send(tea.WindowSizeMsg{Width: 240, Height: 40})
	return h
}

// send delivers msg and then every message its command produces, except
// the periodic ticks of the panel and spinner.
func (h *harness) send(msg tea.Msg) {
	var cmd tea.Cmd
	h.m, cmd = h.m.Update(msg)
	for _, out := range run(cmd) {
		switch out.(type) {
		case slideover.FrameMsg, tea.WindowSizeMsg:
			continue
		case toaster.ShowMsg:
			h.msgs = append(h.msgs, out)
		default:
			h.send(out)
		}
	}
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func (h *harness) open(t *testing.T) {
	t.Helper()
	h.send(h.m.Context().SetOpen(true)())
	h.clock.Advance(5 * time.Second)
	h.send(slideover.FrameMsg{ID: PanelID})
	require.Equal(t, slideover.PhaseOpen, h.m.Panel().Phase())
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) enter() {
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (h *harness) lastToast(t *testing.T) toaster.ShowMsg {
	t.Helper()
	require.NotEmpty(t, h.msgs, "expected a toast")
	return h.msgs[len(h.msgs)-1].(toaster.ShowMsg)
}

func TestChat_ThreadRoundTrip(t *testing.T) {
	p := &fakeProvider{reply: "Matches start at **19:00**."}
	h := newHarness(t, Deps{Provider: p})
	h.open(t)
	require.Equal(t, ModeThread, h.m.Mode())

	h.typeText("When do matches start?")
	h.enter()

	require.False(t, h.m.Pending())
	msgs := h.m.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, assistant.RoleUser, msgs[0].Role)
	require.Equal(t, assistant.RoleAssistant, msgs[1].Role)
	require.NotEqual(t, msgs[0].ID, msgs[1].ID)
	require.Len(t, msgs[0].ID, 36, "uuid ids")

	require.Len(t, p.requests, 1)
	req := p.requests[0]
	require.Equal(t, config.Defaults().Chat.Model, req.Model)
	require.Equal(t, assistant.RoleSystem, req.Messages[0].Role)
	require.Equal(t, "When do matches start?", req.Messages[len(req.Messages)-1].Content)

	view := ansi.Strip(h.m.View())
	require.Contains(t, view, "19:00")
	require.Contains(t, view, "fake · ")
}

func TestChat_PlainReplies(t *testing.T) {
	p := &fakeProvider{reply: "Kick-off is **19:00**."}
	h := newHarness(t, Deps{Provider: p, PlainReplies: true})
	h.open(t)

	h.typeText("when?")
	h.enter()
	require.Contains(t, ansi.Strip(h.m.View()), "**19:00**", "markdown left as typed")
}

func TestChat_HistoryIsSent(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	h := newHarness(t, Deps{Provider: p})
	h.open(t)

	h.typeText("first")
	h.enter()
	h.typeText("second")
	h.enter()

	require.Len(t, p.requests, 2)
	got := p.requests[1].Messages
	require.Len(t, got, 4) // system, first, ok, second
	require.Equal(t, "first", got[1].Content)
	require.Equal(t, "ok", got[2].Content)
}

func TestChat_BlankPromptIgnored(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	h := newHarness(t, Deps{Provider: p})
	h.open(t)

	h.typeText("   ")
	h.enter()
	require.Empty(t, p.requests)
	require.Empty(t, h.m.Messages())
}

func TestChat_FailureMarksMessageAndToasts(t *testing.T) {
	p := &fakeProvider{err: errors.New("rate limited")}
	h := newHarness(t, Deps{Provider: p})
	h.open(t)

	h.typeText("hello")
	h.enter()

	msgs := h.m.Messages()
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].Failed)
	toast := h.lastToast(t)
	require.Equal(t, toaster.StyleError, toast.Style)
	require.Contains(t, toast.Message, "rate limited")
	require.Contains(t, ansi.Strip(h.m.View()), "not sent")

	// Failed turns are left out of later requests.
	p.err = nil
	p.reply = "hi"
	h.typeText("again")
	h.enter()
	last := p.requests[len(p.requests)-1].Messages
	require.Len(t, last, 2)
	require.Equal(t, "again", last[1].Content)
}

func TestChat_TimeoutMessage(t *testing.T) {
	require.Equal(t, "The assistant took too long to answer", failureText(context.DeadlineExceeded))
}

func TestChat_StaleReplyDropped(t *testing.T) {
	h := newHarness(t, Deps{Provider: &fakeProvider{reply: "x"}})
	h.open(t)
	h.send(replyMsg{id: "unknown", resp: &assistant.CompletionResponse{Content: "late"}})
	require.Empty(t, h.m.Messages())
}

func TestChat_CopyReply(t *testing.T) {
	h := newHarness(t, Deps{Provider: &fakeProvider{reply: "Bring shin pads."}})
	h.open(t)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Equal(t, toaster.StyleInfo, h.lastToast(t).Style)
	require.Empty(t, h.clip.Text)

	h.typeText("what to bring?")
	h.enter()
	h.send(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Equal(t, "Bring shin pads.", h.clip.Text)
	require.Equal(t, toaster.StyleSuccess, h.lastToast(t).Style)
}

func TestChat_APIKeyFormSavesAndSwitches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	var built config.ChatConfig
	h := newHarness(t, Deps{
		ConfigPath: path,
		NewProvider: func(cfg config.ChatConfig) (assistant.Provider, error) {
			built = cfg
			return &fakeProvider{reply: "hi"}, nil
		},
	})
	h.open(t)
	require.Equal(t, ModeAPIKey, h.m.Mode())
	require.Contains(t, ansi.Strip(h.m.View()), "API key")

	h.enter()
	require.Equal(t, toaster.StyleWarn, h.lastToast(t).Style)
	require.Equal(t, ModeAPIKey, h.m.Mode())

	h.typeText("sk-secret")
	require.NotContains(t, h.m.View(), "sk-secret", "key input is masked")
	h.enter()

	require.Equal(t, ModeThread, h.m.Mode())
	require.Equal(t, "sk-secret", built.APIKey)
	require.Equal(t, toaster.StyleSuccess, h.lastToast(t).Style)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "sk-secret", cfg.Chat.APIKey)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.Equal(t, ModeAPIKey, h.m.Mode())
}

func TestChat_ForgetKeySurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chat:\n  model: gpt-4o-mini # keep\n  api_key: sk-old\n"), 0o600))

	cfg := config.Defaults().Chat
	cfg.APIKey = "sk-old"
	h := newHarness(t, Deps{
		Config:     cfg,
		ConfigPath: path,
		Provider:   &fakeProvider{reply: "ok"},
		NewProvider: func(config.ChatConfig) (assistant.Provider, error) {
			return &fakeProvider{}, nil
		},
	})
	h.open(t)
	require.Equal(t, ModeThread, h.m.Mode())

	h.send(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.Equal(t, ModeAPIKey, h.m.Mode())
	require.Equal(t, toaster.StyleInfo, h.lastToast(t).Style)

	saved, err := config.Load(path)
	require.NoError(t, err)
	require.Empty(t, saved.Chat.APIKey)
	require.Equal(t, "gpt-4o-mini", saved.Chat.Model)

	h.m = h.m.Reconfigure(saved.Chat)
	require.Equal(t, ModeAPIKey, h.m.Mode(), "reload must not restore a forgotten key")
}

func TestChat_ForgetKeyWithoutConfigFile(t *testing.T) {
	cfg := config.Defaults().Chat
	cfg.APIKey = "sk-env"
	h := newHarness(t, Deps{
		Config:   cfg,
		Provider: &fakeProvider{},
		NewProvider: func(config.ChatConfig) (assistant.Provider, error) {
			return &fakeProvider{}, nil
		},
	})
	h.open(t)
	h.send(tea.KeyMsg{Type: tea.KeyCtrlK})

	h.m = h.m.Reconfigure(config.Defaults().Chat)
	require.Equal(t, ModeAPIKey, h.m.Mode())
	require.Empty(t, h.msgs)
}

func TestChat_APIKeyRejectedByProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	h := newHarness(t, Deps{
		ConfigPath: path,
		NewProvider: func(config.ChatConfig) (assistant.Provider, error) {
			return nil, errors.New("unsupported provider type: x")
		},
	})
	h.open(t)
	h.typeText("sk")
	h.enter()

	require.Equal(t, ModeAPIKey, h.m.Mode())
	require.Equal(t, toaster.StyleError, h.lastToast(t).Style)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "nothing saved for a rejected key")
}

func TestChat_KeysIgnoredWhileClosed(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	h := newHarness(t, Deps{Provider: p})
	h.typeText("hello")
	h.enter()
	require.Empty(t, p.requests)
}

func TestChat_EscapeClosesPanel(t *testing.T) {
	h := newHarness(t, Deps{Provider: &fakeProvider{reply: "ok"}})
	h.open(t)
	require.True(t, h.m.Panel().Locked())

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, h.m.Context().IsOpen())
	require.False(t, h.m.Panel().Locked())
}

func TestChat_LayoutFitsPanel(t *testing.T) {
	h := newHarness(t, Deps{Provider: &fakeProvider{reply: "ok"}})
	h.open(t)
	w, height := h.m.Panel().InnerSize()
	view := h.m.View()
	require.LessOrEqual(t, len(splitLines(view)), height)
	for _, line := range splitLines(view) {
		require.LessOrEqual(t, ansi.StringWidth(line), w)
	}
}

func TestChat_Reconfigure(t *testing.T) {
	h := newHarness(t, Deps{NewProvider: func(cfg config.ChatConfig) (assistant.Provider, error) {
		return &fakeProvider{}, nil
	}})
	require.Equal(t, ModeAPIKey, h.m.Mode())

	cfg := config.Defaults().Chat
	cfg.APIKey = "sk-from-file"
	cfg.Model = "gpt-4.1"
	h.m = h.m.Reconfigure(cfg)
	require.Equal(t, ModeThread, h.m.Mode())
	require.Contains(t, ansi.Strip(h.m.header().Render(60)), "gpt-4.1")
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
