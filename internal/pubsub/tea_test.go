package pubsub

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReturnsEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(ReloadedEvent, "config.yaml")

	msg := ListenCmd(ctx, ch)()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, ReloadedEvent, ev.Type)
	require.Equal(t, "config.yaml", ev.Payload)
}

func TestListenCmd_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := ListenCmd(ctx, make(chan Event[string]))()
	require.Nil(t, msg)
}

func TestListenCmd_ClosedChannel(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	msg := ListenCmd(context.Background(), ch)()
	require.Nil(t, msg)
}

func TestContinuousListener_ListensRepeatedly(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)
	broker.Publish(AppendedEvent, 1)
	broker.Publish(AppendedEvent, 2)

	first := listener.Listen()().(Event[int])
	second := listener.Listen()().(Event[int])
	require.Equal(t, 1, first.Payload)
	require.Equal(t, 2, second.Payload)
}

func TestContinuousListener_ListenMap(t *testing.T) {
	type reloaded struct{ path string }

	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)
	broker.Publish(ReloadedEvent, "/tmp/config.yaml")

	msg := listener.ListenMap(func(ev Event[string]) tea.Msg { return reloaded{path: ev.Payload} })()
	require.Equal(t, reloaded{path: "/tmp/config.yaml"}, msg)
}

func TestListenMapCmd_ClosedChannelSkipsMapping(t *testing.T) {
	ch := make(chan Event[int])
	close(ch)

	called := false
	msg := ListenMapCmd(context.Background(), ch, func(Event[int]) tea.Msg {
		called = true
		return "mapped"
	})()
	require.Nil(t, msg)
	require.False(t, called)
}
