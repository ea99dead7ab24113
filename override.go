// FILE: cubana-log/override.go
package log

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the dispatcher's
// current configuration. Each override should be in the format "key=value".
// The configuration is cloned before modification.
//
// Example:
//
//	d := log.NewDispatcher()
//	err := d.ApplyOverride(
//	    "level=warn",
//	    "quiet=true",
//	    "console_target=stdout",
//	)
func (d *Dispatcher) ApplyOverride(overrides ...string) error {
	cfg := d.GetConfig()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return d.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("log: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "log: " prefix from individual errors to avoid duplication
		if strings.HasPrefix(errMsg, "log: ") {
			errMsg = errMsg[5:]
		}
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		levelVal, err := parseLevelValue(value)
		if err != nil {
			return err
		}
		cfg.Level = levelVal
	case "file_level":
		levelVal, err := parseLevelValue(value)
		if err != nil {
			return err
		}
		cfg.FileLevel = levelVal

	case "quiet", "enable_file", "enable_debug_console", "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
		}
		switch key {
		case "quiet":
			cfg.Quiet = boolVal
		case "enable_file":
			cfg.EnableFile = boolVal
		case "enable_debug_console":
			cfg.EnableDebugConsole = boolVal
		case "internal_errors_to_stderr":
			cfg.InternalErrorsToStderr = boolVal
		}

	case "max_sinks":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_sinks '%s': %w", value, err)
		}
		cfg.MaxSinks = intVal

	case "console_target":
		cfg.ConsoleTarget = value
	case "color_mode":
		cfg.ColorMode = value
	case "directory":
		cfg.Directory = value
	case "name":
		cfg.Name = value
	case "extension":
		cfg.Extension = value

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}

// parseLevelValue accepts both numeric and named level values
func parseLevelValue(value string) (int64, error) {
	if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		if !validLevel(numVal) {
			return 0, fmtErrorf("invalid level value '%s'", value)
		}
		return numVal, nil
	}
	levelVal, err := Level(value)
	if err != nil {
		return 0, fmtErrorf("invalid level value '%s': %w", value, err)
	}
	return levelVal, nil
}
