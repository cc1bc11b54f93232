package klog

import (
	"time"
)

// processEntries is the consumer loop, the only goroutine that performs
// sink I/O. It alternates between waiting on the queue and dispatching a
// drained batch in arrival order, and exits once the queue is stopped and
// empty. Sink failures are non-fatal: the affected line is dropped for that
// sink and the loop moves on, so logging can never crash the host.
func (l *Logger) processEntries(files *fileSink, console *consoleSink) {
	defer close(l.state.processorDone)

	var line []byte
	for {
		batch, ok := l.queue.drainOrWait()
		if !ok {
			// Stop observed with nothing left to drain.
			if err := files.sync(); err != nil {
				l.internalLog("%v\n", err)
			}
			return
		}

		for _, entry := range batch {
			if entry.sync {
				if err := files.sync(); err != nil {
					l.internalLog("%v\n", err)
				}
				if entry.confirm != nil {
					close(entry.confirm)
				}
				continue
			}

			line = appendLine(line[:0], entry.TimeStamp, entry.Level, entry.Message)

			if entry.Persist {
				_, rotated, err := files.write(line)
				if err != nil {
					// Lost to an I/O failure. A sink disabled by
					// configuration reports no error and counts no drop.
					l.state.DroppedFileWrites.Add(1)
					l.internalLog("%v\n", err)
				}
				if rotated {
					l.state.TotalRotations.Add(1)
				}
			}

			console.write(entry.Level, line)
			l.state.TotalProcessed.Add(1)
		}
	}
}

// syncLoop periodically enqueues a sync request so a quiet process does not
// sit on unflushed file buffers. Requests travel through the queue, which
// keeps file syncing on the consumer goroutine that owns the handle.
func (l *Logger) syncLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.queue.push(logEntry{sync: true})
		case <-stop:
			return
		}
	}
}
