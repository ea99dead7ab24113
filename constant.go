// FILE: cubana-log/constant.go
package log

// Log level constants, ascending severity
const (
	LevelTrace int64 = -8
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
	LevelFatal int64 = 12
)

// Sink table
const (
	// DefaultMaxSinks is the reference sink table capacity
	DefaultMaxSinks = 2
)

// Formatting
const (
	// Fixed buffer size for the debug-console formatter, output past
	// this bound is truncated
	debugBufferSize = 1024

	consoleTimeFormat = "15:04:05"
	fileTimeFormat    = "2006-01-02 15:04:05"
)

// levelNames is ordered by ascending severity, the color table in
// format.go is aligned positionally with it
var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// levelIndex converts a level constant to a position in the name and
// color tables. Returns -1 for values outside the fixed set.
func levelIndex(level int64) int {
	if level < LevelTrace || level > LevelFatal || level%4 != 0 {
		return -1
	}
	return int((level - LevelTrace) / 4)
}
