// FILE: cubana-log/format.go
package log

import (
	"fmt"

	"github.com/fatih/color"
)

// levelColors is aligned positionally with levelNames
var levelColors = [...]*color.Color{
	color.New(color.FgHiBlue),  // TRACE
	color.New(color.FgCyan),    // DEBUG
	color.New(color.FgGreen),   // INFO
	color.New(color.FgYellow),  // WARN
	color.New(color.FgRed),     // ERROR
	color.New(color.FgMagenta), // FATAL
}

// locationColor dims the source-location field in colorized output
var locationColor = color.New(color.FgHiBlack)

func init() {
	// The colorized variant is selected explicitly, it must not fall back
	// to plain output when stdout is not a terminal
	for _, c := range levelColors {
		c.EnableColor()
	}
	locationColor.EnableColor()
}

// ConsoleSink returns the plain console formatter. Output layout:
//
//	HH:MM:SS LEVEL  file:line: message
//
// The destination is flushed after each event when it supports flushing.
func ConsoleSink() SinkFunc {
	return func(e *Event) error {
		_, err := fmt.Fprintf(e.Writer, "%s %-6s %s:%d: %s\n",
			e.Time.Format(consoleTimeFormat), LevelName(e.Level), e.File, e.Line, e.Message())
		if f, ok := e.Writer.(flusher); ok {
			err = combineErrors(err, f.Flush())
		}
		return err
	}
}

// ConsoleColorSink returns the colorized console formatter. Layout matches
// ConsoleSink with the level name colored by severity and the source
// location dimmed.
func ConsoleColorSink() SinkFunc {
	return func(e *Event) error {
		idx := levelIndex(e.Level)
		if idx < 0 {
			return ErrInvalidLevel
		}
		_, err := fmt.Fprintf(e.Writer, "%s %s %s %s\n",
			e.Time.Format(consoleTimeFormat),
			levelColors[idx].Sprintf("%-5s", levelNames[idx]),
			locationColor.Sprintf("%s:%d:", e.File, e.Line),
			e.Message())
		if f, ok := e.Writer.(flusher); ok {
			err = combineErrors(err, f.Flush())
		}
		return err
	}
}

// FileSink returns the file formatter. Output layout:
//
//	YYYY-MM-DD HH:MM:SS LEVEL  file:line: message
//
// No explicit flush is performed, buffering is left to the destination.
func FileSink() SinkFunc {
	return func(e *Event) error {
		_, err := fmt.Fprintf(e.Writer, "%s %-6s %s:%d: %s\n",
			e.Time.Format(fileTimeFormat), LevelName(e.Level), e.File, e.Line, e.Message())
		return err
	}
}

// DebugConsoleSink returns the debug-console formatter. The event is
// rendered into a fixed-size buffer and forwarded to the destination in
// one write, truncated silently if it exceeds the buffer bound.
func DebugConsoleSink() SinkFunc {
	return func(e *Event) error {
		buf := make([]byte, 0, debugBufferSize)
		buf = append(buf, e.Time.Format(consoleTimeFormat)...)
		buf = fmt.Appendf(buf, " %-6s %s:%d: ", LevelName(e.Level), e.File, e.Line)
		buf = append(buf, e.Message()...)
		if len(buf) > debugBufferSize-1 {
			buf = buf[:debugBufferSize-1]
		}
		buf = append(buf, '\n')
		_, err := e.Writer.Write(buf)
		return err
	}
}
