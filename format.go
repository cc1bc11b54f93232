package klog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Display timestamp layout: DD-MM-YYYY HH:MM:SS.mmm
const timestampLayout = "02-01-2006 15:04:05.000"

// dumper renders values that have no primitive representation. Compact
// settings keep struct/map dumps log-friendly.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// appendTimestamp appends the display timestamp with millisecond precision.
func appendTimestamp(buf []byte, ts time.Time) []byte {
	return ts.AppendFormat(buf, timestampLayout)
}

// appendLine builds one display line: [timestamp][LEVEL][message].
// No trailing newline; each sink terminates the line itself.
func appendLine(buf []byte, ts time.Time, level int64, message string) []byte {
	buf = append(buf, '[')
	buf = appendTimestamp(buf, ts)
	buf = append(buf, ']', '[')
	buf = append(buf, LevelName(level)...)
	buf = append(buf, ']', '[')
	buf = append(buf, message...)
	buf = append(buf, ']')
	return buf
}

// rotationFileName names a new log file after its creation wall-clock time.
// Millisecond precision keeps names unique under any realistic rotation
// cadence, and every separator is a dash since ':' and ' ' are not legal in
// file names on all platforms.
func rotationFileName(name, extension string, ts time.Time) string {
	buf := make([]byte, 0, 64)
	buf = append(buf, name...)
	buf = append(buf, '_')
	buf = ts.AppendFormat(buf, "02-01-2006-15-04-05")
	buf = append(buf, '-')
	ms := int64(ts.Nanosecond() / int(time.Millisecond))
	if ms < 100 {
		buf = append(buf, '0')
	}
	if ms < 10 {
		buf = append(buf, '0')
	}
	buf = strconv.AppendInt(buf, ms, 10)
	if extension != "" {
		buf = append(buf, '.')
		buf = append(buf, extension...)
	}
	return string(buf)
}

// formatMessage joins args into the entry's message text, space-separated.
func formatMessage(args []any) string {
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}

	buf := make([]byte, 0, 128)
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts a single value to its text representation.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		buf = append(buf, val...)
	case int:
		buf = strconv.AppendInt(buf, int64(val), 10)
	case int64:
		buf = strconv.AppendInt(buf, val, 10)
	case uint:
		buf = strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		buf = strconv.AppendUint(buf, val, 10)
	case float32:
		buf = strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		buf = strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		buf = strconv.AppendBool(buf, val)
	case nil:
		buf = append(buf, "nil"...)
	case time.Time:
		buf = val.AppendFormat(buf, timestampLayout)
	case error:
		buf = append(buf, val.Error()...)
	case fmt.Stringer:
		buf = append(buf, val.String()...)
	default:
		// Structs, maps, pointers, slices: delegate to spew for a compact,
		// deterministic dump instead of fmt's opaque %v.
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		buf = append(buf, bytes.TrimSpace(b.Bytes())...)
	}
	return buf
}
