// FILE: cubana-log/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	log "github.com/ForksMD/cubana-log"
)

// FastHTTPAdapter wraps a log.Dispatcher to implement the fasthttp
// Logger interface
type FastHTTPAdapter struct {
	dispatcher    *log.Dispatcher
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(d *log.Dispatcher, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		dispatcher:    d,
		defaultLevel:  log.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		detected := a.levelDetector(msg)
		if detected != 0 {
			level = detected
		}
	}

	switch level {
	case log.LevelDebug:
		a.dispatcher.Debug("%s", msg)
	case log.LevelWarn:
		a.dispatcher.Warn("%s", msg)
	case log.LevelError:
		a.dispatcher.Error("%s", msg)
	default:
		a.dispatcher.Info("%s", msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return log.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return log.LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return log.LevelDebug
	}

	// Default to info level
	return log.LevelInfo
}
