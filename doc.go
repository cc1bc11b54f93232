// Package klog is an in-process asynchronous logger. Producers enqueue
// severity-leveled messages without blocking on I/O; a single background
// consumer drains the queue in arrival order and dispatches each entry to a
// line-count-rotating file and a level-colored console stream.
//
// The pipeline makes three promises: Log never waits on file or console
// I/O, entries are dispatched in the order their Log calls completed, and
// Shutdown blocks until everything already enqueued has been written. The
// queue is unbounded by design; QueueDepth exposes backlog for callers that
// care.
//
// Delivery is best-effort. A line that cannot be written (disk full,
// permissions) is dropped for that sink and processing continues; no error
// from the logging core ever reaches or crashes the host application.
//
//	logger := klog.NewLogger()
//	if err := logger.Init("/var/log/app", 100000); err != nil {
//		// directory problem, logger continues console-only
//	}
//	defer logger.Shutdown()
//
//	logger.Info("service started, port", 8080)
//	logger.ErrorConsole("transient glitch, console only")
package klog
