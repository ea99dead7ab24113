// FILE: cubana-log/utility.go
package log

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// LevelName converts a level constant to its fixed name.
// Unknown values render as "LEVEL(n)".
func LevelName(level int64) string {
	if i := levelIndex(level); i >= 0 {
		return levelNames[i]
	}
	return fmt.Sprintf("LEVEL(%d)", level)
}

// Level converts a level name to its numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, fatal)", levelStr)
	}
}

// validLevel reports whether level is one of the six defined constants
func validLevel(level int64) bool {
	return levelIndex(level) >= 0
}

// caller returns the file base name and line of the calling site,
// skip frames above this function.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "(unknown)", 0
	}
	return filepath.Base(file), line
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}
