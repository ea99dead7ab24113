// FILE: cubana-log/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	log "github.com/ForksMD/cubana-log"
)

// GnetAdapter wraps a log.Dispatcher to implement the gnet
// logging.Logger interface
type GnetAdapter struct {
	dispatcher   *log.Dispatcher
	fatalHandler func(msg string) // Customizable fatal behavior
}

var _ logging.Logger = (*GnetAdapter)(nil)

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(d *log.Dispatcher, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		dispatcher: d,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.dispatcher.Debug(format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.dispatcher.Info(format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.dispatcher.Warn(format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.dispatcher.Error(format, args...)
}

// Fatalf logs at fatal level and triggers the fatal handler. The
// dispatcher itself never exits, so termination policy lives here.
// Sink writes are synchronous, the record is on its destinations before
// the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.dispatcher.Fatal(format, args...)

	if a.fatalHandler != nil {
		a.fatalHandler(fmt.Sprintf(format, args...))
	}
}
