// FILE: cubana-log/dispatcher.go
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	// ErrSinkCapacity is returned by AddSink when the sink table is full.
	// The table is left unchanged.
	ErrSinkCapacity = errors.New("log: sink table at capacity")

	// ErrInvalidLevel is returned when a level value is not one of the
	// defined constants
	ErrInvalidLevel = errors.New("log: invalid level")
)

// Dispatcher gates leveled log events and fans them out synchronously to
// the built-in console sink and a bounded table of registered sinks.
//
// All state is guarded by a single mutex, so concurrent Log and AddSink
// calls are safe; one dispatch, including all sink writes, runs at a
// time. There is no buffering, events reach sinks in call order before
// Log returns.
type Dispatcher struct {
	mu    sync.Mutex
	level int64
	quiet bool
	sinks []sink

	console  SinkFunc
	consoleW io.Writer
	debugW   io.Writer

	fileSlot  int
	debugSlot int

	internalErrs bool
	cfg          *Config
}

// NewDispatcher creates a dispatcher with zero-value defaults: global
// level TRACE, quiet off, plain console output to stderr, empty sink
// table at the default capacity.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		level:     LevelTrace,
		sinks:     make([]sink, DefaultMaxSinks),
		console:   ConsoleSink(),
		consoleW:  os.Stderr,
		debugW:    os.Stderr,
		fileSlot:  -1,
		debugSlot: -1,
		cfg:       DefaultConfig(),
	}
}

// SetLevel sets the global minimum level. Events below it are dropped
// before any sink runs.
func (d *Dispatcher) SetLevel(level int64) error {
	if !validLevel(level) {
		return ErrInvalidLevel
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.level = level
	return nil
}

// SetQuiet toggles suppression of the built-in console sink. Registered
// sinks are unaffected.
func (d *Dispatcher) SetQuiet(enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quiet = enable
}

// AddSink registers a sink in the first unused slot of the table and
// returns the slot index. The dispatcher holds w as a non-owning
// reference; closing it remains the caller's responsibility. There is no
// removal, sinks persist for the process lifetime. Returns
// ErrSinkCapacity when the table is full.
func (d *Dispatcher) AddSink(fn SinkFunc, w io.Writer, level int64) (int, error) {
	if fn == nil {
		return -1, fmtErrorf("sink function cannot be nil")
	}
	if !validLevel(level) {
		return -1, ErrInvalidLevel
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addSink(fn, w, level)
}

// addSink scans for the first empty slot, assuming the mutex is held
func (d *Dispatcher) addSink(fn SinkFunc, w io.Writer, level int64) (int, error) {
	for i := range d.sinks {
		if d.sinks[i].fn == nil {
			d.sinks[i] = sink{fn: fn, w: w, level: level}
			return i, nil
		}
	}
	return -1, ErrSinkCapacity
}

// Log is the dispatch entry point. The console sink fires first when the
// event clears the global gate and quiet is off, then registered sinks
// fire in registration order when the event clears their own threshold.
// The timestamp is captured at most once per call and shared by every
// sink. Sink write failures are not returned; see internalLog.
func (d *Dispatcher) Log(level int64, file string, line int, format string, args ...any) error {
	if !validLevel(level) {
		return ErrInvalidLevel
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	e := Event{
		Level:  level,
		File:   file,
		Line:   line,
		Format: format,
		Args:   args,
	}

	if !d.quiet && level >= d.level {
		e.stamp()
		e.Writer = d.consoleW
		if err := d.console(&e); err != nil {
			d.internalLog("console sink write failed: %v\n", err)
		}
	}

	for i := range d.sinks {
		s := &d.sinks[i]
		if s.fn == nil {
			break
		}
		if level >= s.level {
			e.stamp()
			e.Writer = s.w
			if err := s.fn(&e); err != nil {
				d.internalLog("sink %d write failed: %v\n", i, err)
			}
		}
	}

	return nil
}

// log backs the leveled convenience methods, capturing the caller's
// source location. skip is the frame distance to the user call site.
func (d *Dispatcher) log(skip int, level int64, format string, args ...any) {
	file, line := caller(skip)
	_ = d.Log(level, file, line, format, args...)
}

// Trace logs a printf-style message at trace level
func (d *Dispatcher) Trace(format string, args ...any) {
	d.log(3, LevelTrace, format, args...)
}

// Debug logs a printf-style message at debug level
func (d *Dispatcher) Debug(format string, args ...any) {
	d.log(3, LevelDebug, format, args...)
}

// Info logs a printf-style message at info level
func (d *Dispatcher) Info(format string, args ...any) {
	d.log(3, LevelInfo, format, args...)
}

// Warn logs a printf-style message at warning level
func (d *Dispatcher) Warn(format string, args ...any) {
	d.log(3, LevelWarn, format, args...)
}

// Error logs a printf-style message at error level
func (d *Dispatcher) Error(format string, args ...any) {
	d.log(3, LevelError, format, args...)
}

// Fatal logs a printf-style message at fatal level. The level is a
// severity label only, the dispatcher never terminates the process.
func (d *Dispatcher) Fatal(format string, args ...any) {
	d.log(3, LevelFatal, format, args...)
}

// Init registers the debug-console sink when the configuration enables
// it, at the configured global level. Otherwise it is a no-op returning
// success. Safe to call more than once, the sink is registered at most
// once.
func (d *Dispatcher) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.cfg.EnableDebugConsole || d.debugSlot >= 0 {
		return nil
	}
	slot, err := d.addSink(DebugConsoleSink(), d.debugW, d.level)
	if err != nil {
		return err
	}
	d.debugSlot = slot
	return nil
}

// SetDebugOutput points the debug-console variant at a platform debug
// channel. Takes effect for sinks registered after the call.
func (d *Dispatcher) SetDebugOutput(w io.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debugW = w
}

// internalLog writes dispatcher diagnostics to stderr when enabled.
// Sink write failures are reported here rather than returned from Log,
// a deliberate deviation kept from the reference behavior of swallowing
// them entirely.
func (d *Dispatcher) internalLog(format string, args ...any) {
	if !d.internalErrs {
		return
	}
	if len(format) < 5 || format[:5] != "log: " {
		format = "log: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
