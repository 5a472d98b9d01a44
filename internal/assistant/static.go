package assistant

import (
	"context"
	"strings"
)

// StaticProvider answers from a fixed table of topics. It needs no network
// and backs demos and tests.
type StaticProvider struct {
	answers  []staticAnswer
	fallback string
}

type staticAnswer struct {
	keywords []string
	reply    string
}

// NewStaticProvider returns a provider with the built-in answers.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		answers: []staticAnswer{
			{[]string{"create", "new match", "organi"}, "To create a match:\n\n1. Press **n** on the board\n2. Pick a sport, venue and time\n3. Invite players or leave it open"},
			{[]string{"join", "spot", "player"}, "Open a match and choose **Join**. Matches marked `FULL` keep a waitlist."},
			{[]string{"cancel", "leave"}, "You can leave a match up to **2 hours** before kick-off without a penalty."},
			{[]string{"score", "result", "live"}, "Live scores update on the board every minute. Finished matches show the final score in grey."},
		},
		fallback: "I can help with creating, joining and following matches. Try asking *how do I create a match?*",
	}
}

func (p *StaticProvider) Name() string {
	return "static"
}

// Complete matches the last message against the topics, first hit wins.
func (p *StaticProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	prompt := strings.ToLower(req.Messages[len(req.Messages)-1].Content)
	reply := p.fallback
	for _, a := range p.answers {
		if containsAny(prompt, a.keywords) {
			reply = a.reply
			break
		}
	}
	return &CompletionResponse{
		Content:      reply,
		Model:        "static",
		InputTokens:  len(strings.Fields(prompt)),
		OutputTokens: len(strings.Fields(reply)),
		FinishReason: "stop",
	}, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
