package announce

import "time"

// DefaultDelay is how long a message stays pending
const DefaultDelay = time.Second

// DefaultMaxPending caps how many messages are shown at once
const DefaultMaxPending = 5

// Message is one pending live-region announcement
type Message struct {
	ID   uint64
	Text string
	At   time.Time
}

// Announcer is the only surface assistive-technology text is produced on
type Announcer interface {
	Announce(text string)
	Messages() []Message
	Close()
}

// Timer is the part of *time.Timer the queue needs
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d
type Scheduler func(d time.Duration, fn func()) Timer

// Option configures a Queue
type Option func(*Queue)

// WithDelay sets the lifetime of each message
func WithDelay(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.delay = d
		}
	}
}

// WithScheduler replaces time.AfterFunc, mainly for tests
func WithScheduler(s Scheduler) Option {
	return func(q *Queue) {
		if s != nil {
			q.schedule = s
		}
	}
}

// WithMaxPending caps the number of shown messages; the rest wait their turn
func WithMaxPending(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.maxPending = n
		}
	}
}

// WithNotify registers a callback invoked after the pending set changes.
// It may run on a timer goroutine.
func WithNotify(fn func()) Option {
	return func(q *Queue) {
		q.notify = fn
	}
}

// WithClock overrides time.Now for message timestamps
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}
