package log

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLog_FormatsFields(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, 10)

	Info(CatPanel, "panel opened", "id", "chat", "width", 450)

	out := buf.String()
	require.Contains(t, out, "[INFO] [panel] panel opened")
	require.Contains(t, out, "id=chat")
	require.Contains(t, out, "width=450")
}

func TestLog_OddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, 10)

	Warn(CatConfig, "dangling", "orphan")

	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, 10)

	ErrorErr(CatChat, "request failed", context.DeadlineExceeded)
	ErrorErr(CatChat, "nil error", nil)

	require.Contains(t, buf.String(), "error=context deadline exceeded")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, 10)
	SetMinLevel(LevelWarn)

	Debug(CatUI, "hidden")
	Error(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_Disabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, 10)
	SetEnabled(false)

	Error(CatUI, "dropped")

	require.Empty(t, buf.String())
}

func TestGetRecentLogs_RingWraps(t *testing.T) {
	InitWriter(&bytes.Buffer{}, 3)

	for _, msg := range []string{"one", "two", "three", "four"} {
		Info(CatUI, msg)
	}

	entries := GetRecentLogs(0)
	require.Len(t, entries, 3)
	require.Contains(t, entries[0].Line, "two")
	require.Contains(t, entries[2].Line, "four")

	last := GetRecentLogs(1)
	require.Len(t, last, 1)
	require.Contains(t, last[0].Line, "four")
}

func TestClearBuffer(t *testing.T) {
	InitWriter(&bytes.Buffer{}, 5)
	Info(CatUI, "entry")

	ClearBuffer()

	require.Empty(t, GetRecentLogs(10))
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	InitWriter(&bytes.Buffer{}, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatPanel, "published")

	done := make(chan LogEvent, 1)
	go func() {
		if ev, ok := listener.Listen()().(LogEvent); ok {
			done <- ev
		}
	}()

	select {
	case ev := <-done:
		require.Contains(t, ev.Payload, "published")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for log event")
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
