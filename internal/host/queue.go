package host

// QueueScheduler is a Scheduler for hosts without a display: each call to
// RunNext plays the role of one repaint.
type QueueScheduler struct {
	queue []func()
}

// RequestFrame queues fn for the next repaint.
func (q *QueueScheduler) RequestFrame(fn func()) {
	q.queue = append(q.queue, fn)
}

// Pending reports how many callbacks wait for the next repaint.
func (q *QueueScheduler) Pending() int { return len(q.queue) }

// RunNext invokes the callbacks queued before this repaint. Callbacks
// they request land in the following repaint. Reports false when nothing
// was queued.
func (q *QueueScheduler) RunNext() bool {
	if len(q.queue) == 0 {
		return false
	}
	batch := q.queue
	q.queue = nil
	for _, fn := range batch {
		fn()
	}
	return true
}

// Drain repaints until the queue empties or limit repaints have run.
// A limit of 0 means no limit. Returns the number of repaints.
func (q *QueueScheduler) Drain(limit int) int {
	n := 0
	for (limit == 0 || n < limit) && q.RunNext() {
		n++
	}
	return n
}
