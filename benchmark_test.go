package klog

import (
	"testing"
)

// newBenchLogger builds a quiet started logger for producer-side benchmarks.
func newBenchLogger(b *testing.B) *Logger {
	b.Helper()
	logger := NewLogger()

	cfg := DefaultConfig()
	cfg.Directory = b.TempDir()
	cfg.EnableConsole = false

	if err := logger.ApplyConfig(cfg); err != nil {
		b.Fatal(err)
	}
	if err := logger.Start(); err != nil {
		b.Fatal(err)
	}
	return logger
}

// BenchmarkLog measures the producer-side cost of one enqueue.
func BenchmarkLog(b *testing.B) {
	logger := newBenchLogger(b)
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkLogParallel measures enqueue contention across producers.
func BenchmarkLogParallel(b *testing.B) {
	logger := newBenchLogger(b)
	defer logger.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("parallel benchmark message")
		}
	})
}

// BenchmarkLogConsoleOnly measures enqueue cost when nothing persists.
func BenchmarkLogConsoleOnly(b *testing.B) {
	logger := NewLogger()

	cfg := DefaultConfig()
	cfg.EnableFile = false
	cfg.EnableConsole = false

	if err := logger.ApplyConfig(cfg); err != nil {
		b.Fatal(err)
	}
	if err := logger.Start(); err != nil {
		b.Fatal(err)
	}
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.InfoConsole("benchmark message", i)
	}
}
