// FILE: cubana-log/type.go
package log

import (
	"fmt"
	"io"
	"time"
)

// Event carries one log call through the dispatch. It is constructed on
// the stack per Log call and is only valid for the duration of that call;
// sinks must not retain it or its Args.
type Event struct {
	Level int64
	File  string
	Line  int

	Format string
	Args   []any

	// Time is the wall-clock time of the log call. It is captured lazily
	// on first use and shared by every sink invoked for the call.
	Time time.Time

	// Writer is the destination of the sink currently being invoked,
	// set by the dispatcher immediately before each sink call.
	Writer io.Writer

	message  string
	rendered bool
}

// Message renders the format/args pair. The result is computed once per
// dispatch and reused by every sink. The template is always interpreted,
// printf escapes are processed even when no arguments are supplied.
func (e *Event) Message() string {
	if !e.rendered {
		e.message = fmt.Sprintf(e.Format, e.Args...)
		e.rendered = true
	}
	return e.message
}

// stamp captures the event time on first use. Reuses the value already
// set by an earlier sink in the same dispatch.
func (e *Event) stamp() {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
}

// SinkFunc renders an event to the event's Writer. A returned error is
// not propagated to the Log caller; the dispatcher reports it to stderr
// when internal error reporting is enabled.
type SinkFunc func(e *Event) error

// sink is one registered (formatter, destination, threshold) triple
type sink struct {
	fn    SinkFunc
	w     io.Writer
	level int64
}

// flusher is satisfied by buffered writers that support explicit flushing
type flusher interface {
	Flush() error
}
