package celebrate

import (
	"sort"
	"time"
)

type deferredCall struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler runs deferred callbacks on the goroutine that calls Advance.
// Time is whatever the caller says it is, so tests step it by hand and the
// scene steps it by one tick per Update.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue []deferredCall // sorted by (due, seq)
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run once d has elapsed. A non-positive d fires on the
// next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	c := deferredCall{due: s.now + max(d, 0), seq: s.seq, fn: fn}
	s.seq++
	i := sort.Search(len(s.queue), func(i int) bool {
		q := s.queue[i]
		return q.due > c.due || (q.due == c.due && q.seq > c.seq)
	})
	s.queue = append(s.queue, deferredCall{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = c
}

// Advance moves time forward by dt and runs every callback that is now due,
// earliest first. Callbacks may schedule further callbacks; those run in the
// same Advance if they are already due. Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		c := s.queue[0]
		s.queue[0] = deferredCall{}
		s.queue = s.queue[1:]
		c.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Now returns the scheduler's clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Reset drops every queued callback. The clock keeps running.
func (s *Scheduler) Reset() {
	clear(s.queue)
	s.queue = s.queue[:0]
}
