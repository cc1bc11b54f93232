package klog

// Logger instance methods for logging at different levels. The plain methods
// persist to file and mirror to console; the *Console variants skip the file.

// Info logs a message at info level to console and file.
func (l *Logger) Info(args ...any) {
	l.Log(LevelInfo, true, args...)
}

// Warning logs a message at warning level to console and file.
func (l *Logger) Warning(args ...any) {
	l.Log(LevelWarning, true, args...)
}

// Error logs a message at error level to console and file.
func (l *Logger) Error(args ...any) {
	l.Log(LevelError, true, args...)
}

// InfoConsole logs a message at info level to console only.
func (l *Logger) InfoConsole(args ...any) {
	l.Log(LevelInfo, false, args...)
}

// WarningConsole logs a message at warning level to console only.
func (l *Logger) WarningConsole(args ...any) {
	l.Log(LevelWarning, false, args...)
}

// ErrorConsole logs a message at error level to console only.
func (l *Logger) ErrorConsole(args ...any) {
	l.Log(LevelError, false, args...)
}
