package tracing

// Span names.
const (
	SpanCompletion = "assistant.complete"
)

// Span attribute keys.
const (
	AttrProvider     = "assistant.provider"
	AttrModel        = "assistant.model"
	AttrMessageCount = "assistant.messages"
	AttrPromptChars  = "assistant.prompt_chars"
	AttrReplyChars   = "assistant.reply_chars"
	AttrErrorType    = "error.type"
)
