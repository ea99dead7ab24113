// FILE: cubana-log/config.go
package log

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
	"github.com/mattn/go-isatty"
)

// Config holds all dispatcher configuration values
type Config struct {
	// Gating
	Level int64 `toml:"level"`
	Quiet bool  `toml:"quiet"`

	// Sink table capacity
	MaxSinks int64 `toml:"max_sinks"`

	// Built-in console sink
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	ColorMode     string `toml:"color_mode"`     // "auto", "on", or "off"

	// Optional file sink, registered once at configuration time
	EnableFile bool   `toml:"enable_file"`
	Directory  string `toml:"directory"`
	Name       string `toml:"name"` // Base name for the log file
	Extension  string `toml:"extension"`
	FileLevel  int64  `toml:"file_level"`

	// Optional platform debug-console sink, registered by Init
	EnableDebugConsole bool `toml:"enable_debug_console"`

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Report swallowed sink errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level: LevelTrace,
	Quiet: false,

	MaxSinks: DefaultMaxSinks,

	ConsoleTarget: "stderr",
	ColorMode:     "auto",

	EnableFile: false,
	Directory:  "./logs",
	Name:       "log",
	Extension:  "log",
	FileLevel:  LevelTrace,

	EnableDebugConsole: false,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if !validLevel(c.Level) {
		return fmtErrorf("invalid level: %d", c.Level)
	}

	if c.MaxSinks <= 0 {
		return fmtErrorf("max_sinks must be positive: %d", c.MaxSinks)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if c.ColorMode != "auto" && c.ColorMode != "on" && c.ColorMode != "off" {
		return fmtErrorf("invalid color_mode: '%s' (use auto, on, or off)", c.ColorMode)
	}

	if c.EnableFile {
		if strings.TrimSpace(c.Name) == "" {
			return fmtErrorf("log name cannot be empty")
		}
		if strings.HasPrefix(c.Extension, ".") {
			return fmtErrorf("extension should not start with dot: %s", c.Extension)
		}
		if !validLevel(c.FileLevel) {
			return fmtErrorf("invalid file_level: %d", c.FileLevel)
		}
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// ApplyConfig applies a validated configuration to the dispatcher
// This is the primary way applications should configure the dispatcher
func (d *Dispatcher) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.applyConfig(cfg)
}

// GetConfig returns a copy of current configuration
func (d *Dispatcher) GetConfig() *Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg.Clone()
}

// applyConfig is the internal implementation, assuming the mutex is held.
// All failure paths are checked before any dispatcher state is touched,
// so a rejected configuration leaves the previous one fully in effect.
func (d *Dispatcher) applyConfig(cfg *Config) error {
	// The sink table is append-only; the capacity may grow but cannot
	// drop below the slots already in use
	used := 0
	for i := range d.sinks {
		if d.sinks[i].fn == nil {
			break
		}
		used++
	}
	if int(cfg.MaxSinks) < used {
		return fmtErrorf("max_sinks (%d) below registered sink count (%d)", cfg.MaxSinks, used)
	}

	// File sink registration happens once; without a removal operation
	// the file destination cannot be reconfigured afterwards
	needFile := cfg.EnableFile && d.fileSlot < 0
	var logFile *os.File
	if needFile {
		if used >= int(cfg.MaxSinks) {
			return ErrSinkCapacity
		}
		f, err := openLogFile(cfg.Directory, cfg.Name, cfg.Extension)
		if err != nil {
			return fmtErrorf("failed to open log file: %w", err)
		}
		logFile = f
	}

	// No failure paths past this point, the settings take effect together
	if int(cfg.MaxSinks) != len(d.sinks) {
		resized := make([]sink, cfg.MaxSinks)
		copy(resized, d.sinks[:used])
		d.sinks = resized
	}

	d.level = cfg.Level
	d.quiet = cfg.Quiet
	d.internalErrs = cfg.InternalErrorsToStderr

	// Console destination and formatter variant
	target := os.Stderr
	if cfg.ConsoleTarget == "stdout" {
		target = os.Stdout
	}
	d.consoleW = target

	colorize := false
	switch cfg.ColorMode {
	case "on":
		colorize = true
	case "auto":
		colorize = isatty.IsTerminal(target.Fd()) || isatty.IsCygwinTerminal(target.Fd())
	}
	if colorize {
		d.console = ConsoleColorSink()
	} else {
		d.console = ConsoleSink()
	}

	if logFile != nil {
		slot, err := d.addSink(FileSink(), logFile, cfg.FileLevel)
		if err != nil {
			// Unreachable, the free slot was checked above
			_ = logFile.Close()
			return err
		}
		d.fileSlot = slot
	}

	// Detach from the caller's copy, later mutations must not leak in
	d.cfg = cfg.Clone()
	return nil
}
