package announce

import (
	"sync"
	"time"
)

// Queue is a FIFO of self-expiring messages. Each message owns its own
// timer, so a burst of announcements is read out in full rather than
// only the last one surviving. At most maxPending messages are shown;
// later ones wait and start their timer when a slot frees up.
type Queue struct {
	mu         sync.Mutex
	pending    []Message
	waiting    []Message
	timers     map[uint64]Timer
	nextID     uint64
	closed     bool
	delay      time.Duration
	maxPending int
	schedule   Scheduler
	notify     func()
	now        func() time.Time
}

// NewQueue creates an announcer queue
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		timers:     make(map[uint64]Timer),
		delay:      DefaultDelay,
		maxPending: DefaultMaxPending,
		schedule: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Announce enqueues text. Empty text and anything after Close are ignored.
// A repeated text is its own announcement.
func (q *Queue) Announce(text string) {
	if text == "" {
		return
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	q.nextID++
	msg := Message{ID: q.nextID, Text: text}
	if len(q.pending) >= q.maxPending {
		q.waiting = append(q.waiting, msg)
		q.mu.Unlock()
		return
	}
	q.showLocked(msg)
	notify := q.notify
	q.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Messages returns the shown messages, oldest first
func (q *Queue) Messages() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Message(nil), q.pending...)
}

// Len returns the number of messages not yet expired, waiting ones included
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) + len(q.waiting)
}

// Close stops every pending timer and drops later announcements
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id := range q.timers {
		q.stopLocked(id)
	}
	q.pending = nil
	q.waiting = nil
}

func (q *Queue) expire(id uint64) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	delete(q.timers, id)

	removed := false
	for i, m := range q.pending {
		if m.ID == id {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			removed = true
			break
		}
	}
	if removed && len(q.waiting) > 0 {
		next := q.waiting[0]
		q.waiting = q.waiting[1:]
		q.showLocked(next)
	}
	notify := q.notify
	q.mu.Unlock()

	if removed && notify != nil {
		notify()
	}
}

// showLocked makes msg visible and starts its expiry timer
func (q *Queue) showLocked(msg Message) {
	id := msg.ID
	msg.At = q.now()
	q.pending = append(q.pending, msg)
	q.timers[id] = q.schedule(q.delay, func() { q.expire(id) })
}

func (q *Queue) stopLocked(id uint64) {
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
}

// Nop discards every announcement; used when nothing reads the live region
type Nop struct{}

func (Nop) Announce(string)     {}
func (Nop) Messages() []Message { return nil }
func (Nop) Close()              {}
