package klog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the facade owning the queue, the consumer goroutine, and the
// sinks. Construct one with NewLogger, configure it with ApplyConfig or
// Init, and hand it to whatever needs to log; the package-level functions in
// default.go wrap a shared instance for callers that want the convenience.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         loggerState
	initMu        sync.Mutex

	queue   *entryQueue
	files   *fileSink // owned by the consumer goroutine after Start
	console *consoleSink

	syncStop chan struct{}
}

// loggerState tracks lifecycle flags and pipeline counters.
type loggerState struct {
	IsInitialized  atomic.Bool
	Started        atomic.Bool
	ShutdownCalled atomic.Bool

	TotalProcessed    atomic.Uint64
	DroppedFileWrites atomic.Uint64
	TotalRotations    atomic.Uint64

	processorDone chan struct{}
}

// Stats is a point-in-time snapshot of the pipeline counters. QueueDepth is
// the observability hook for the unbounded queue: a steadily growing depth
// means producers are outrunning the consumer.
type Stats struct {
	QueueDepth        int64
	TotalProcessed    uint64
	DroppedFileWrites uint64
	TotalRotations    uint64
}

// NewLogger creates a new Logger with default settings. The logger is
// dormant until ApplyConfig/Init, but Log on a dormant logger performs an
// implicit Init with defaults, so the facade is always safe to call.
func NewLogger() *Logger {
	l := &Logger{queue: newEntryQueue()}
	l.currentConfig.Store(DefaultConfig())
	return l
}

// ApplyConfig validates and applies a configuration. Reconfiguring a running
// logger is a no-op: the original configuration stays in force until
// Shutdown. When file output is requested and the log directory cannot be
// created, the error is returned as a one-time diagnostic but the logger
// still comes up in console-only mode; callers may ignore it and keep
// logging.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.state.Started.Load() {
		return nil
	}
	return l.applyConfig(cfg.Clone())
}

// applyConfig builds the sinks for a validated config. Caller holds initMu.
func (l *Logger) applyConfig(cfg *Config) error {
	var dirErr error

	if cfg.EnableFile {
		if cfg.Directory == "" {
			wd, err := os.Getwd()
			if err != nil {
				dirErr = fmtErrorf("failed to resolve working directory: %w", err)
			} else {
				cfg.Directory = wd
			}
		}
		if dirErr == nil {
			if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
				dirErr = fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
			}
		}
	}

	l.currentConfig.Store(cfg)
	l.console = newConsoleSink(cfg)
	l.files = &fileSink{
		directory: cfg.Directory,
		name:      cfg.Name,
		extension: cfg.Extension,
		maxLines:  cfg.MaxLines,
		disabled:  !cfg.EnableFile || dirErr != nil,
	}

	l.state.IsInitialized.Store(true)
	if dirErr != nil {
		l.internalLog("%v, continuing console-only\n", dirErr)
	}
	return dirErr
}

// GetConfig returns a copy of the current configuration.
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// Start launches the consumer goroutine. Only the first call after
// configuration has any effect; calling Start on a running logger is a
// no-op.
func (l *Logger) Start() error {
	if !l.state.IsInitialized.Load() {
		return fmtErrorf("logger not initialized, call ApplyConfig first")
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger already shut down")
	}

	if !l.state.Started.CompareAndSwap(false, true) {
		return nil
	}

	l.state.processorDone = make(chan struct{})
	go l.processEntries(l.files, l.console)

	cfg := l.getConfig()
	if cfg.EnableFile && cfg.FlushIntervalMs > 0 {
		l.syncStop = make(chan struct{})
		go l.syncLoop(time.Duration(cfg.FlushIntervalMs)*time.Millisecond, l.syncStop)
	}

	return nil
}

// Init configures and starts the logger in one call. directory "" selects
// the current working directory, maxLines <= 0 the default cap. Calling Init
// on a running logger is a no-op. A directory-creation failure is returned
// as a diagnostic; the logger is still running in console-only mode.
func (l *Logger) Init(directory string, maxLines int64) error {
	if l.state.Started.Load() {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Directory = directory
	if maxLines > 0 {
		cfg.MaxLines = maxLines
	}

	diag := l.ApplyConfig(cfg)
	if !l.state.IsInitialized.Load() {
		return diag
	}
	if err := l.Start(); err != nil {
		return combineErrors(diag, err)
	}
	return diag
}

// Log enqueues one entry and returns without waiting for any write to land.
// The only blocking a producer can see is the queue's short critical
// section. A configured-but-dormant logger is started with its applied
// configuration intact; a never-configured one is brought up with defaults.
// A shut-down logger drops the entry.
func (l *Logger) Log(level int64, persist bool, args ...any) {
	if l.state.ShutdownCalled.Load() {
		return
	}

	if !l.state.Started.Load() {
		var err error
		if l.state.IsInitialized.Load() {
			err = l.Start()
		} else {
			err = l.Init("", 0)
		}
		if err != nil {
			l.internalLog("implicit init: %v\n", err)
		}
		if !l.state.Started.Load() {
			return
		}
	}

	l.queue.push(logEntry{
		Level:     level,
		Message:   formatMessage(args),
		TimeStamp: time.Now(),
		Persist:   persist,
	})
}

// Shutdown stops intake, waits for the consumer to dispatch everything
// already queued, then flushes and closes the active file. The drain has no
// timeout: the guarantee that enqueued entries reach their sinks wins over
// promptness. Idempotent; repeat calls return nil immediately.
func (l *Logger) Shutdown() error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	// initMu orders Shutdown against an in-flight Start (possibly reached
	// through Log's implicit init), so Started, processorDone and syncStop
	// are never observed half-built.
	l.initMu.Lock()
	defer l.initMu.Unlock()

	if !l.state.Started.Load() {
		l.state.IsInitialized.Store(false)
		return nil
	}

	if l.syncStop != nil {
		close(l.syncStop)
	}

	l.queue.stop()
	<-l.state.processorDone

	l.state.Started.Store(false)
	l.state.IsInitialized.Store(false)

	// The consumer has exited, so the file handle is safe to touch here.
	return l.files.close()
}

// Flush asks the consumer to sync the active file and waits for
// confirmation or timeout. The request travels through the queue, so every
// entry logged before Flush is on disk once it returns.
func (l *Logger) Flush(timeout time.Duration) error {
	if !l.state.IsInitialized.Load() || l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger not initialized or already shut down")
	}
	if !l.state.Started.Load() {
		return fmtErrorf("logger not started")
	}

	confirm := make(chan struct{})
	l.queue.push(logEntry{sync: true, confirm: confirm})

	select {
	case <-confirm:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Stats returns a snapshot of the pipeline counters.
func (l *Logger) Stats() Stats {
	return Stats{
		QueueDepth:        l.queue.depth(),
		TotalProcessed:    l.state.TotalProcessed.Load(),
		DroppedFileWrites: l.state.DroppedFileWrites.Load(),
		TotalRotations:    l.state.TotalRotations.Load(),
	}
}

// QueueDepth reports the number of entries waiting to be dispatched.
func (l *Logger) QueueDepth() int64 {
	return l.queue.depth()
}

// getConfig returns the current configuration (thread-safe).
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// internalLog writes logger diagnostics to stderr when enabled.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.getConfig().InternalErrorsToStderr {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasPrefix(msg, "klog: ") {
		msg = "klog: " + msg
	}
	fmt.Fprint(os.Stderr, msg)
}
