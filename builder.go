// FILE: cubana-log/builder.go
package log

// Builder provides a fluent API for building dispatcher configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Dispatcher with the specified configuration.
func (b *Builder) Build() (*Dispatcher, error) {
	if b.err != nil {
		return nil, b.err
	}

	d := NewDispatcher()

	// ApplyConfig handles all initialization and validation.
	if err := d.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return d, nil
}

// Level sets the global minimum level.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the global minimum level from a name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Quiet suppresses the built-in console sink.
func (b *Builder) Quiet(quiet bool) *Builder {
	b.cfg.Quiet = quiet
	return b
}

// MaxSinks sets the sink table capacity.
func (b *Builder) MaxSinks(n int64) *Builder {
	b.cfg.MaxSinks = n
	return b
}

// ConsoleTarget selects the console destination, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ColorMode selects console colorization, "auto", "on", or "off".
func (b *Builder) ColorMode(mode string) *Builder {
	b.cfg.ColorMode = mode
	return b
}

// EnableFile enables the file sink.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the log file base name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Extension sets the log file extension.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// FileLevel sets the file sink threshold.
func (b *Builder) FileLevel(level int64) *Builder {
	b.cfg.FileLevel = level
	return b
}

// EnableDebugConsole enables the debug-console sink registered by Init.
func (b *Builder) EnableDebugConsole(enable bool) *Builder {
	b.cfg.EnableDebugConsole = enable
	return b
}

// InternalErrorsToStderr enables stderr reporting of swallowed sink errors.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// d, err := log.NewBuilder().
//
//	LevelString("debug").
//	ConsoleTarget("stdout").
//	ColorMode("on").
//	EnableFile(true).
//	Directory("/var/log/app").
//	Build()
//
// if err == nil {
//
//	d.Info("dispatcher configured")
//
// }
