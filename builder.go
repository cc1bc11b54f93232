package klog

// Builder provides a fluent API for building logger configurations.
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

// Build creates a new Logger instance with the specified configuration.
// The logger is configured but not started; call Start on the result.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Name sets the base name for log files.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Extension sets the log file extension.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// MaxLines sets the number of lines per file before rotation.
func (b *Builder) MaxLines(n int64) *Builder {
	b.cfg.MaxLines = n
	return b
}

// EnableFile toggles file output.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// EnableConsole toggles console output.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// EnableColor toggles colored console output.
func (b *Builder) EnableColor(enable bool) *Builder {
	b.cfg.EnableColor = enable
	return b
}

// FlushIntervalMs sets the periodic file sync interval; 0 disables it.
func (b *Builder) FlushIntervalMs(interval int64) *Builder {
	b.cfg.FlushIntervalMs = interval
	return b
}

// InternalErrorsToStderr toggles stderr diagnostics from the logger itself.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
//
//	logger, err := klog.NewBuilder().
//		Directory("/var/log/app").
//		MaxLines(50000).
//		EnableColor(false).
//		Build()
//	if err == nil {
//		logger.Start()
//		defer logger.Shutdown()
//		logger.Info("logger initialized")
//	}
