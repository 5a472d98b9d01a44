package assistant

// Role is who wrote a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest asks for the next assistant turn.
type CompletionRequest struct {
	Model       string // empty uses the provider's default
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is the assistant turn and its usage.
type CompletionResponse struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
	FinishReason string
}
