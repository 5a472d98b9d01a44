package assistant

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/tracing"
)

// TracedProvider records a span around every completion.
type TracedProvider struct {
	next   Provider
	tracer trace.Tracer
}

// Traced wraps p.
func Traced(p Provider, tracer trace.Tracer) *TracedProvider {
	return &TracedProvider{next: p, tracer: tracer}
}

func (t *TracedProvider) Name() string {
	return t.next.Name()
}

func (t *TracedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	prompt := 0
	for _, m := range req.Messages {
		prompt += len(m.Content)
	}

	ctx, span := t.tracer.Start(ctx, tracing.SpanCompletion,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrProvider, t.next.Name()),
			attribute.String(tracing.AttrModel, req.Model),
			attribute.Int(tracing.AttrMessageCount, len(req.Messages)),
			attribute.Int(tracing.AttrPromptChars, prompt),
		),
	)
	defer span.End()

	resp, err := t.next.Complete(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(tracing.AttrErrorType, errorType(err)))
		log.ErrorErr(log.CatChat, "Completion failed", err, "provider", t.next.Name())
		return nil, err
	}

	span.SetAttributes(
		attribute.String(tracing.AttrModel, resp.Model),
		attribute.Int(tracing.AttrReplyChars, len(resp.Content)),
	)
	span.SetStatus(codes.Ok, "")
	log.Debug(log.CatChat, "Completion done", "provider", t.next.Name(), "model", resp.Model,
		"in", resp.InputTokens, "out", resp.OutputTokens)
	return resp, nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, ErrEmptyPrompt):
		return "empty_prompt"
	case errors.Is(err, ErrNoChoices):
		return "no_choices"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("api_%d", apiErr.HTTPStatusCode)
	}
	return "unknown"
}
