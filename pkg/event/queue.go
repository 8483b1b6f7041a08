// pkg/event/queue.go
package event

import "sync"

// HostEvent is an input from the host loop. The set of implementations is
// closed: AnimationFrame, KeyDown and KeyUp.
type HostEvent interface {
	hostEvent()
}

// Modifiers is a bit set of held modifier keys
type Modifiers uint8

// Modifier bits
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// AnimationFrame asks the simulation to advance one tick
type AnimationFrame struct{}

// KeyDown reports a key press with its host key code
type KeyDown struct {
	Code      int
	Modifiers Modifiers
}

// KeyUp reports a key release
type KeyUp struct {
	Code      int
	Modifiers Modifiers
}

func (AnimationFrame) hostEvent() {}
func (KeyDown) hostEvent()        {}
func (KeyUp) hostEvent()          {}

// Queue is a FIFO of host events. A single producer goroutine may Push
// while the loop goroutine drains.
type Queue struct {
	mu     sync.Mutex
	events []HostEvent
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends events in order
func (q *Queue) Push(events ...HostEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, events...)
}

// Drain removes and returns every queued event, oldest first
func (q *Queue) Drain() []HostEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
