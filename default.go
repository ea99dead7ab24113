// FILE: cubana-log/default.go
package log

import (
	"io"
	"os"
)

// Global instance for package-level functions
var defaultDispatcher = NewDispatcher()

// Default returns the package-level dispatcher
func Default() *Dispatcher {
	return defaultDispatcher
}

// Default package-level functions that delegate to the default dispatcher

// Init registers the debug-console sink when configured, otherwise a
// no-op returning success
func Init() error {
	return defaultDispatcher.Init()
}

// ApplyConfig applies a validated configuration to the default dispatcher
func ApplyConfig(cfg *Config) error {
	return defaultDispatcher.ApplyConfig(cfg)
}

// ApplyOverride applies "key=value" overrides to the default dispatcher
func ApplyOverride(overrides ...string) error {
	return defaultDispatcher.ApplyOverride(overrides...)
}

// SetLevel sets the global minimum level
func SetLevel(level int64) error {
	return defaultDispatcher.SetLevel(level)
}

// SetQuiet toggles suppression of the built-in console sink
func SetQuiet(enable bool) {
	defaultDispatcher.SetQuiet(enable)
}

// SetDebugOutput points the debug-console variant at a platform channel
func SetDebugOutput(w io.Writer) {
	defaultDispatcher.SetDebugOutput(w)
}

// AddSink registers a sink with the default dispatcher
func AddSink(fn SinkFunc, w io.Writer, level int64) (int, error) {
	return defaultDispatcher.AddSink(fn, w, level)
}

// AddFile registers the file formatter against an already opened file
func AddFile(f *os.File, level int64) (int, error) {
	return defaultDispatcher.AddFile(f, level)
}

// AddFileSink opens path and registers the file formatter against it
func AddFileSink(path string, level int64) (*os.File, error) {
	return defaultDispatcher.AddFileSink(path, level)
}

// Log is the dispatch entry point with an explicit source location
func Log(level int64, file string, line int, format string, args ...any) error {
	return defaultDispatcher.Log(level, file, line, format, args...)
}

// Trace logs a printf-style message at trace level
func Trace(format string, args ...any) {
	defaultDispatcher.log(3, LevelTrace, format, args...)
}

// Debug logs a printf-style message at debug level
func Debug(format string, args ...any) {
	defaultDispatcher.log(3, LevelDebug, format, args...)
}

// Info logs a printf-style message at info level
func Info(format string, args ...any) {
	defaultDispatcher.log(3, LevelInfo, format, args...)
}

// Warn logs a printf-style message at warning level
func Warn(format string, args ...any) {
	defaultDispatcher.log(3, LevelWarn, format, args...)
}

// Error logs a printf-style message at error level
func Error(format string, args ...any) {
	defaultDispatcher.log(3, LevelError, format, args...)
}

// Fatal logs a printf-style message at fatal level without terminating
// the process
func Fatal(format string, args ...any) {
	defaultDispatcher.log(3, LevelFatal, format, args...)
}

// Dump logs a deep rendering of values at trace level
func Dump(args ...any) {
	defaultDispatcher.log(3, LevelTrace, "%s", Sdump(args...))
}
