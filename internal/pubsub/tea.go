package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenCmd waits for the next event on ch and returns it as the message.
// The command yields nil once ctx ends or ch closes, which stops the chain.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return ListenMapCmd(ctx, ch, func(ev Event[T]) tea.Msg { return ev })
}

// ListenMapCmd is ListenCmd with each event converted by fn, so a model can
// tell apart two brokers that share a payload type.
func ListenMapCmd[T any](ctx context.Context, ch <-chan Event[T], fn func(Event[T]) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			return fn(ev)
		}
	}
}

// ContinuousListener holds one subscription open across Update calls.
// After handling an event, return Listen (or ListenMap) again to get the
// next one.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to broker until ctx ends.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen waits for the next event.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return ListenCmd(l.ctx, l.ch)
}

// ListenMap waits for the next event and delivers fn(event).
func (l *ContinuousListener[T]) ListenMap(fn func(Event[T]) tea.Msg) tea.Cmd {
	return ListenMapCmd(l.ctx, l.ch, fn)
}
