// FILE: cubana-log/compat/compat_test.go
package compat

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	log "github.com/ForksMD/cubana-log"
)

// newCaptureDispatcher builds a quiet dispatcher with a single capture
// sink recording every event
func newCaptureDispatcher(t *testing.T) (*log.Dispatcher, *bytes.Buffer) {
	t.Helper()

	d := log.NewDispatcher()
	d.SetQuiet(true)

	buf := &bytes.Buffer{}
	capture := func(e *log.Event) error {
		_, err := fmt.Fprintf(e.Writer, "%s %s\n", log.LevelName(e.Level), e.Message())
		return err
	}
	_, err := d.AddSink(capture, buf, log.LevelTrace)
	require.NoError(t, err)

	return d, buf
}

// TestDetectLogLevel tests message-content level detection
func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		msg   string
		level int64
	}{
		{"connection error occurred", log.LevelError},
		{"request failed with timeout", log.LevelError},
		{"fatal condition", log.LevelError},
		{"panic recovered", log.LevelError},
		{"warning: high memory", log.LevelWarn},
		{"this API is deprecated", log.LevelWarn},
		{"debug info here", log.LevelDebug},
		{"trace output", log.LevelDebug},
		{"normal operation", log.LevelInfo},
		{"", log.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.level, DetectLogLevel(tt.msg))
		})
	}
}

// TestFastHTTPAdapterPrintf verifies routing by detected level
func TestFastHTTPAdapterPrintf(t *testing.T) {
	d, buf := newCaptureDispatcher(t)
	adapter := NewFastHTTPAdapter(d)

	adapter.Printf("request %s completed", "/api")
	assert.Contains(t, buf.String(), "INFO request /api completed")

	buf.Reset()
	adapter.Printf("connection failed: %v", "refused")
	assert.Contains(t, buf.String(), "ERROR connection failed: refused")

	buf.Reset()
	adapter.Printf("deprecated handler in use")
	assert.Contains(t, buf.String(), "WARN deprecated handler in use")
}

// TestFastHTTPAdapterOptions verifies default level and custom detector
func TestFastHTTPAdapterOptions(t *testing.T) {
	d, buf := newCaptureDispatcher(t)

	adapter := NewFastHTTPAdapter(d,
		WithDefaultLevel(log.LevelDebug),
		WithLevelDetector(func(string) int64 { return 0 }))

	adapter.Printf("plain message")
	assert.Contains(t, buf.String(), "DEBUG plain message")
}

// TestGnetAdapterLevels verifies each gnet method reaches its level
func TestGnetAdapterLevels(t *testing.T) {
	d, buf := newCaptureDispatcher(t)
	adapter := NewGnetAdapter(d)

	adapter.Debugf("poll %d", 1)
	adapter.Infof("accepted %s", "conn")
	adapter.Warnf("slow loop")
	adapter.Errorf("read error")

	out := buf.String()
	assert.Contains(t, out, "DEBUG poll 1")
	assert.Contains(t, out, "INFO accepted conn")
	assert.Contains(t, out, "WARN slow loop")
	assert.Contains(t, out, "ERROR read error")
}

// TestGnetAdapterFatalf verifies the record lands before the handler runs
// and the default exit can be replaced
func TestGnetAdapterFatalf(t *testing.T) {
	d, buf := newCaptureDispatcher(t)

	var handled string
	adapter := NewGnetAdapter(d, WithFatalHandler(func(msg string) {
		handled = msg
	}))

	adapter.Fatalf("unrecoverable: %s", "oom")

	assert.Contains(t, buf.String(), "FATAL unrecoverable: oom")
	assert.Equal(t, "unrecoverable: oom", handled)
}
