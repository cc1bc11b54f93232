package klog

import (
	"strings"
	"time"
)

// Log level constants
const (
	LevelInfo    int64 = 0
	LevelWarning int64 = 4
	LevelError   int64 = 8
)

// logEntry is one queued log message plus its metadata. Entries are never
// mutated after creation; the queue owns them until the consumer dispatches
// them. sync/confirm are only set on internal flush requests, which travel
// through the queue so they are ordered against regular entries.
type logEntry struct {
	Level     int64
	Message   string
	TimeStamp time.Time
	Persist   bool

	sync    bool
	confirm chan struct{}
}

// LevelName converts a level constant to its display string.
func LevelName(level int64) string {
	switch level {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Level converts a level string to its numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use info, warning, or error)", levelStr)
	}
}
