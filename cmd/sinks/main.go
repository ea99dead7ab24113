// FILE: main.go
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	log "github.com/ForksMD/cubana-log"
)

// Demonstrates the sink table: per-sink thresholds, capacity behavior,
// and a custom sink alongside the built-in formatters.
func main() {
	fmt.Println("--- Sink Table Example ---")

	d, err := log.NewBuilder().
		LevelString("info").
		ConsoleTarget("stdout").
		ColorMode("on").
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dispatcher: %v\n", err)
		os.Exit(1)
	}

	// Slot 0: file sink at debug level
	f, err := d.AddFileSink("./sink_logs/app.log", log.LevelDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to add file sink: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Slot 1: custom in-memory sink at error level
	var captured bytes.Buffer
	capture := func(e *log.Event) error {
		_, err := fmt.Fprintf(e.Writer, "%s %s\n", log.LevelName(e.Level), e.Message())
		return err
	}
	if _, err := d.AddSink(capture, &captured, log.LevelError); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to add capture sink: %v\n", err)
		os.Exit(1)
	}

	// Third registration exceeds the default capacity of two
	if _, err := d.AddSink(capture, &captured, log.LevelInfo); errors.Is(err, log.ErrSinkCapacity) {
		fmt.Println("Third sink rejected: table at capacity, as expected.")
	}

	d.Debug("reaches the file sink only, console floor is info")
	d.Info("reaches console and file")
	d.Error("reaches all three destinations: %s", "disk full")

	fmt.Printf("Captured by custom sink:\n%s", captured.String())
	fmt.Println("--- Example Finished ---")
}
