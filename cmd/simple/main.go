// FILE: main.go
package main

import (
	"fmt"
	"os"

	log "github.com/ForksMD/cubana-log"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  level = -4 # Debug
  quiet = false
  console_target = "stdout"
  color_mode = "auto"
  enable_file = true
  directory = "./simple_logs"
  name = "simple"
  extension = "log"
  file_level = -8 # Trace
`

func main() {
	fmt.Println("--- Simple Dispatcher Example ---")

	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created dummy config file: %s\n", configFile)

	cfg, err := log.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := log.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure dispatcher: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Dispatcher configured.")

	log.Trace("tracing startup path")
	log.Debug("cache warmed with %d entries", 128)
	log.Info("application starting on port %d", 8080)
	log.Warn("disk usage at %.0f%%", 91.0)
	log.Error("failed to reach upstream: %v", os.ErrDeadlineExceeded)

	// Quiet mode mutes the console but the file sink keeps receiving
	log.SetQuiet(true)
	log.Info("this line reaches only the file sink")
	log.SetQuiet(false)

	fmt.Println("--- Example Finished ---")
	fmt.Println("Check log files in './simple_logs'.")
}
