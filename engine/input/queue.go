package input

import "sync"

// Queue is a FIFO of events safe for concurrent Push. Drain is meant to be
// called from a single consumer.
type Queue interface {
	// Push appends an event. Safe to call from any goroutine.
	//
	// Parameters:
	//   - e: the event to append
	Push(e Event)

	// Drain removes and returns every queued event in arrival order.
	//
	// Returns:
	//   - []Event: the queued events, nil when empty
	Drain() []Event

	// Len returns the number of queued events.
	//
	// Returns:
	//   - int: the queue length
	Len() int
}

type queueImpl struct {
	mu     *sync.Mutex
	events []Event
}

var _ Queue = &queueImpl{}

// NewQueue creates an empty Queue.
//
// Returns:
//   - Queue: the new queue
func NewQueue() Queue {
	return &queueImpl{
		mu: &sync.Mutex{},
	}
}

func (q *queueImpl) Push(e Event) {
	if e == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

func (q *queueImpl) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

func (q *queueImpl) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
