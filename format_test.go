// FILE: cubana-log/format_test.go
package log

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(w *bytes.Buffer) *Event {
	return &Event{
		Level:  LevelInfo,
		File:   "main.go",
		Line:   42,
		Format: "started on port %d",
		Args:   []any{8080},
		Time:   time.Date(2024, 1, 2, 12, 30, 45, 0, time.UTC),
		Writer: w,
	}
}

// TestConsoleSink verifies the plain console layout
func TestConsoleSink(t *testing.T) {
	buf := &bytes.Buffer{}
	e := testEvent(buf)

	require.NoError(t, ConsoleSink()(e))
	assert.Equal(t, "12:30:45 INFO   main.go:42: started on port 8080\n", buf.String())
}

// TestConsoleSinkFlushes verifies buffered destinations are flushed
func TestConsoleSinkFlushes(t *testing.T) {
	var backing bytes.Buffer
	fw := &flushWriter{w: &backing}
	e := testEvent(&bytes.Buffer{})
	e.Writer = fw

	require.NoError(t, ConsoleSink()(e))
	assert.True(t, fw.flushed)
}

type flushWriter struct {
	w       *bytes.Buffer
	flushed bool
}

func (f *flushWriter) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *flushWriter) Flush() error                { f.flushed = true; return nil }

// TestConsoleColorSink verifies ANSI escapes wrap the level and location
func TestConsoleColorSink(t *testing.T) {
	buf := &bytes.Buffer{}
	e := testEvent(buf)

	require.NoError(t, ConsoleColorSink()(e))
	out := buf.String()

	assert.Contains(t, out, "\x1b[32m", "INFO level color")
	assert.Contains(t, out, "\x1b[90m", "dim source location")
	assert.Contains(t, out, "\x1b[0m", "reset code")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "main.go:42:")
	assert.Contains(t, out, "started on port 8080")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

// TestConsoleColorSinkLevels verifies the color table alignment
func TestConsoleColorSinkLevels(t *testing.T) {
	tests := []struct {
		level int64
		code  string
	}{
		{LevelTrace, "\x1b[94m"},
		{LevelDebug, "\x1b[36m"},
		{LevelInfo, "\x1b[32m"},
		{LevelWarn, "\x1b[33m"},
		{LevelError, "\x1b[31m"},
		{LevelFatal, "\x1b[35m"},
	}

	for _, tt := range tests {
		t.Run(LevelName(tt.level), func(t *testing.T) {
			buf := &bytes.Buffer{}
			e := testEvent(buf)
			e.Level = tt.level

			require.NoError(t, ConsoleColorSink()(e))
			assert.Contains(t, buf.String(), tt.code)
		})
	}
}

// TestFileSink verifies the file layout with full date
func TestFileSink(t *testing.T) {
	buf := &bytes.Buffer{}
	e := testEvent(buf)
	e.Level = LevelError
	e.Format = "disk %s"
	e.Args = []any{"full"}

	require.NoError(t, FileSink()(e))
	assert.Equal(t, "2024-01-02 12:30:45 ERROR  main.go:42: disk full\n", buf.String())
}

// TestDebugConsoleSink verifies bounded-buffer truncation
func TestDebugConsoleSink(t *testing.T) {
	t.Run("short message passes through", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := testEvent(buf)

		require.NoError(t, DebugConsoleSink()(e))
		assert.Equal(t, "12:30:45 INFO   main.go:42: started on port 8080\n", buf.String())
	})

	t.Run("oversized message truncated", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := testEvent(buf)
		e.Format = strings.Repeat("x", 4*debugBufferSize)
		e.Args = nil

		require.NoError(t, DebugConsoleSink()(e))
		out := buf.String()

		assert.Len(t, out, debugBufferSize)
		assert.True(t, strings.HasSuffix(out, "\n"))
		assert.True(t, strings.HasPrefix(out, "12:30:45 INFO   main.go:42: "))
	})
}

// TestEventMessageRenderedOnce verifies the format/args pair renders once
// per dispatch
func TestEventMessageRenderedOnce(t *testing.T) {
	calls := 0
	e := &Event{Format: "%s", Args: []any{stringerFunc(func() string {
		calls++
		return "rendered"
	})}}

	assert.Equal(t, "rendered", e.Message())
	assert.Equal(t, "rendered", e.Message())
	assert.Equal(t, 1, calls)
}

type stringerFunc func() string

func (s stringerFunc) String() string { return s() }

// TestEventMessageNoArgs verifies printf escapes are interpreted even
// when no arguments are supplied
func TestEventMessageNoArgs(t *testing.T) {
	e := &Event{Format: "progress 50%% done"}
	assert.Equal(t, "progress 50% done", e.Message())
}
