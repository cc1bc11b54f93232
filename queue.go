package klog

import "sync"

// entryQueue is the unbounded FIFO between producers and the single
// consumer. Producers only append under the lock; the consumer exchanges the
// whole backing slice for an empty one, so lock-held time on the drain side
// is a pointer swap regardless of batch size.
//
// The queue is deliberately unbounded: a producer outrunning the consumer
// grows memory instead of losing entries. depth() is the observability hook
// for callers that want to watch for that.
type entryQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	entries []logEntry
	stopped bool
}

func newEntryQueue() *entryQueue {
	q := &entryQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends an entry and wakes the consumer. It never blocks the caller
// beyond the critical section. FIFO order is fixed by lock acquisition
// order, so entries are delivered in the order their push calls completed.
func (q *entryQueue) push(e logEntry) {
	q.mu.Lock()
	q.entries = append(q.entries, e)
	q.mu.Unlock()
	q.cond.Signal()
}

// drainOrWait blocks until the queue is non-empty or stopped, then hands the
// entire pending batch to the caller in arrival order. The second return is
// false only when the queue is stopped and empty: no more work will arrive.
// Only the consumer goroutine may call this.
func (q *entryQueue) drainOrWait() ([]logEntry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.entries) == 0 && !q.stopped {
		q.cond.Wait()
	}

	if len(q.entries) == 0 {
		return nil, false
	}

	batch := q.entries
	q.entries = nil
	return batch, true
}

// stop marks the queue closed and wakes the consumer so it can observe the
// flag. Entries already queued remain drainable; stop never discards work.
func (q *entryQueue) stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// depth reports the number of entries currently waiting.
func (q *entryQueue) depth() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.entries))
}
