package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/sporthub/sporthub/internal/assistant"
	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/ui/markdown"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

// Message is one entry of the thread.
type Message struct {
	ID      string
	Role    assistant.Role
	Content string
	At      time.Time
	Failed  bool // the request for this user message errored
}

func newMessage(role assistant.Role, content string, at time.Time) Message {
	return Message{ID: uuid.NewString(), Role: role, Content: content, At: at}
}

var (
	roleStyle   = lipgloss.NewStyle().Bold(true)
	failedStyle = lipgloss.NewStyle().Italic(true)
)

// renderThread lays out messages in width columns. Assistant replies go
// through the markdown cache unless md is nil; user text is word wrapped.
func renderThread(ctx context.Context, messages []Message, width int, md *markdown.Cache) string {
	if len(messages) == 0 {
		return styles.HintStyle.Render(wordwrap.String("Ask about fixtures, joining a match or how scores work.", width))
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case assistant.RoleUser:
			b.WriteString(roleStyle.Foreground(styles.ChatUserColor).Render("You"))
			b.WriteString("\n")
			b.WriteString(wordwrap.String(msg.Content, width))
			if msg.Failed {
				b.WriteString("\n")
				b.WriteString(failedStyle.Foreground(styles.StatusErrorColor).Render("not sent"))
			}
		default:
			b.WriteString(roleStyle.Foreground(styles.ChatAssistantColor).Render("Assistant"))
			b.WriteString("\n")
			b.WriteString(renderReply(ctx, msg, width, md))
		}
	}
	return b.String()
}

func renderReply(ctx context.Context, msg Message, width int, md *markdown.Cache) string {
	if md == nil {
		return wordwrap.String(msg.Content, width)
	}
	out, err := md.Render(ctx, msg.ID, width, msg.Content)
	if err != nil {
		log.ErrorErr(log.CatChat, "Markdown render failed", err, "message", msg.ID)
		return wordwrap.String(msg.Content, width)
	}
	return out
}

// history converts the thread into completion messages, skipping failed
// turns.
func history(system string, messages []Message) []assistant.Message {
	out := make([]assistant.Message, 0, len(messages)+1)
	if system != "" {
		out = append(out, assistant.Message{Role: assistant.RoleSystem, Content: system})
	}
	for _, m := range messages {
		if m.Failed {
			continue
		}
		out = append(out, assistant.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

// lastReply returns the newest assistant message.
func lastReply(messages []Message) (Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == assistant.RoleAssistant {
			return messages[i], true
		}
	}
	return Message{}, false
}
