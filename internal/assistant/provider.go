// Package assistant answers questions about matches through a chat
// completion provider.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sporthub/sporthub/internal/config"
)

var (
	// ErrNoAPIKey is returned when the openai provider has no key.
	ErrNoAPIKey = errors.New("no API key configured")
	// ErrEmptyPrompt is returned when the last message has no text.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrNoChoices is returned when the provider answers without content.
	ErrNoChoices = errors.New("provider returned no choices")
)

// Provider produces assistant replies.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Name() string
}

// APIKeyEnv is read when chat.api_key is empty.
const APIKeyEnv = "OPENAI_API_KEY"

// NewProvider builds the provider selected by chat.provider. The openai
// provider returns ErrNoAPIKey when neither the config nor APIKeyEnv
// supplies a key.
func NewProvider(cfg config.ChatConfig) (Provider, error) {
	switch cfg.Provider {
	case "static":
		return NewStaticProvider(), nil
	case "openai", "":
		key := cfg.APIKey
		if key == "" {
			key = os.Getenv(APIKeyEnv)
		}
		if key == "" {
			return nil, ErrNoAPIKey
		}
		return NewOpenAIProvider(key, cfg.Model, cfg.BaseURL, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Provider)
	}
}

// validate rejects requests whose final message is blank.
func validate(req CompletionRequest) error {
	if len(req.Messages) == 0 {
		return ErrEmptyPrompt
	}
	if strings.TrimSpace(req.Messages[len(req.Messages)-1].Content) == "" {
		return ErrEmptyPrompt
	}
	return nil
}
