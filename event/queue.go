package event

// queueSize bounds pending impacts; with at most 25 nodes and 3 axes per
// step the queue never fills in practice
const queueSize = 256

// Queue is a fixed-capacity FIFO ring for wall impacts. Oldest entries are
// overwritten on overflow, mirroring the engine policy that stale events are
// worthless after their frame
type Queue struct {
	impacts [queueSize]WallImpact
	head    uint64 // read index
	tail    uint64 // write index
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an impact, dropping the oldest entry when full
func (q *Queue) Push(imp WallImpact) {
	q.impacts[q.tail%queueSize] = imp
	q.tail++
	if q.tail-q.head > queueSize {
		q.head = q.tail - queueSize
	}
}

// Len reports pending impacts
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Drain appends all pending impacts to dst in FIFO order and empties the
// queue. Passing a reused dst slice avoids per-frame allocation
func (q *Queue) Drain(dst []WallImpact) []WallImpact {
	for q.head != q.tail {
		dst = append(dst, q.impacts[q.head%queueSize])
		q.head++
	}
	return dst
}

// Clear discards all pending impacts
func (q *Queue) Clear() {
	q.head = q.tail
}
