// FILE: cubana-log/file.go
package log

import (
	"os"
	"path/filepath"
)

// openLogFile creates the log directory if needed and opens the log file
// in append mode
func openLogFile(dir, name, ext string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmtErrorf("failed to create log directory '%s': %w", dir, err)
	}

	path := filepath.Join(dir, name+"."+ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	return f, nil
}

// AddFile registers the file formatter against an already opened file.
// The dispatcher does not take ownership, closing f remains the
// caller's responsibility.
func (d *Dispatcher) AddFile(f *os.File, level int64) (int, error) {
	return d.AddSink(FileSink(), f, level)
}

// AddFileSink opens path (creating parent directories) and registers the
// file formatter against it. The returned file stays open for the process
// lifetime unless the caller closes it after the dispatcher is no longer
// in use.
func (d *Dispatcher) AddFileSink(path string, level int64) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmtErrorf("failed to create log directory '%s': %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	if _, err := d.AddFile(f, level); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}
