package klog

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAppendLine verifies the display line layout
func TestAppendLine(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 30, 52, 123_000_000, time.Local)

	line := appendLine(nil, ts, LevelInfo, "hello world")
	assert.Equal(t, "[07-03-2025 14:30:52.123][INFO][hello world]", string(line))

	line = appendLine(nil, ts, LevelWarning, "careful")
	assert.Equal(t, "[07-03-2025 14:30:52.123][WARNING][careful]", string(line))

	line = appendLine(nil, ts, LevelError, "broken")
	assert.Equal(t, "[07-03-2025 14:30:52.123][ERROR][broken]", string(line))
}

// TestAppendLineReusesBuffer verifies the scratch buffer pattern used by the consumer
func TestAppendLineReusesBuffer(t *testing.T) {
	ts := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	buf := appendLine(nil, ts, LevelInfo, "first")
	buf = appendLine(buf[:0], ts, LevelError, "x")
	assert.Equal(t, "[01-01-2025 00:00:00.000][ERROR][x]", string(buf))
}

// TestRotationFileName verifies naming layout and millisecond padding
func TestRotationFileName(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{
			name: "three digit millis",
			ts:   time.Date(2025, time.March, 7, 14, 30, 52, 123_000_000, time.Local),
			want: "klog_07-03-2025-14-30-52-123.txt",
		},
		{
			name: "zero millis padded",
			ts:   time.Date(2025, time.March, 7, 14, 30, 52, 0, time.Local),
			want: "klog_07-03-2025-14-30-52-000.txt",
		},
		{
			name: "single digit millis padded",
			ts:   time.Date(2025, time.December, 31, 23, 59, 59, 7_000_000, time.Local),
			want: "klog_31-12-2025-23-59-59-007.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rotationFileName("klog", "txt", tt.ts)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, ":")
			assert.NotContains(t, got, " ")
		})
	}
}

// TestRotationFileNameCustomParts verifies custom name and empty extension
func TestRotationFileNameCustomParts(t *testing.T) {
	ts := time.Date(2025, time.June, 1, 8, 5, 3, 42_000_000, time.Local)

	assert.Equal(t, "app_01-06-2025-08-05-03-042.log", rotationFileName("app", "log", ts))
	assert.Equal(t, "app_01-06-2025-08-05-03-042", rotationFileName("app", "", ts))
}

// TestTimestampLayout verifies millisecond precision in the display timestamp
func TestTimestampLayout(t *testing.T) {
	out := string(appendTimestamp(nil, time.Now()))
	assert.Regexp(t, regexp.MustCompile(`^\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2}\.\d{3}$`), out)
}

// TestFormatMessage verifies arg joining across supported types
func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"single string fast path", []any{"just text"}, "just text"},
		{"mixed primitives", []any{"count", 42, "ratio", 0.5, true}, "count 42 ratio 0.5 true"},
		{"nil value", []any{"got", nil}, "got nil"},
		{"error value", []any{"failed:", fmt.Errorf("boom")}, "failed: boom"},
		{"unsigned", []any{uint(7), uint64(8)}, "7 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMessage(tt.args))
		})
	}
}

// TestFormatMessageComplexValue verifies the spew fallback for structured args
func TestFormatMessageComplexValue(t *testing.T) {
	type point struct {
		X int
		Y int
	}

	out := formatMessage([]any{"at", point{X: 1, Y: 2}})
	assert.Contains(t, out, "at ")
	assert.Contains(t, out, "X: (int) 1")
	assert.Contains(t, out, "Y: (int) 2")
}
