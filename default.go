package klog

import "time"

// Global instance for package-level functions. Convenience only; libraries
// should accept a *Logger instead of reaching for this.
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger

// Init configures and starts the default logger. directory "" means the
// current working directory; maxLines <= 0 keeps the default cap.
func Init(directory string, maxLines int64) error {
	return defaultLogger.Init(directory, maxLines)
}

// ApplyConfig applies a configuration to the default logger.
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// Start launches the default logger's consumer.
func Start() error {
	return defaultLogger.Start()
}

// Shutdown drains and stops the default logger.
func Shutdown() error {
	return defaultLogger.Shutdown()
}

// Flush syncs the default logger's file buffer to disk.
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// Log enqueues one entry on the default logger.
func Log(level int64, persist bool, args ...any) {
	defaultLogger.Log(level, persist, args...)
}

// Info logs a message at info level to console and file.
func Info(args ...any) {
	defaultLogger.Info(args...)
}

// Warning logs a message at warning level to console and file.
func Warning(args ...any) {
	defaultLogger.Warning(args...)
}

// Error logs a message at error level to console and file.
func Error(args ...any) {
	defaultLogger.Error(args...)
}

// InfoConsole logs a message at info level to console only.
func InfoConsole(args ...any) {
	defaultLogger.InfoConsole(args...)
}

// WarningConsole logs a message at warning level to console only.
func WarningConsole(args ...any) {
	defaultLogger.WarningConsole(args...)
}

// ErrorConsole logs a message at error level to console only.
func ErrorConsole(args ...any) {
	defaultLogger.ErrorConsole(args...)
}

// GetStats returns a counter snapshot from the default logger.
func GetStats() Stats {
	return defaultLogger.Stats()
}

// QueueDepth reports pending entries on the default logger.
func QueueDepth() int64 {
	return defaultLogger.QueueDepth()
}
