package frame

import "time"

// Callback runs once on the next frame. now is the frame's time sample.
type Callback func(now time.Time)

// Handle identifies a requested frame callback. The zero Handle is never issued.
type Handle uint64

type request struct {
	handle Handle
	fn     Callback
}

// Scheduler queues one-shot frame callbacks and runs them when the host
// ticks. A callback requested while a tick is running fires on the next
// tick, never the current one.
type Scheduler struct {
	src     Source
	last    time.Time
	next    Handle
	queue   []request
	running []request
}

// NewScheduler creates a scheduler reading time from src. A nil src uses
// the system clock.
func NewScheduler(src Source) *Scheduler {
	if src == nil {
		src = SystemSource{}
	}
	return &Scheduler{src: src}
}

// Now returns a time sample that never moves backwards.
func (s *Scheduler) Now() time.Time {
	if s == nil {
		return time.Time{}
	}
	now := s.src.Now()
	if now.Before(s.last) {
		return s.last
	}
	s.last = now
	return now
}

// Request queues fn for the next tick.
func (s *Scheduler) Request(fn Callback) Handle {
	if s == nil || fn == nil {
		return 0
	}
	s.next++
	s.queue = append(s.queue, request{handle: s.next, fn: fn})
	return s.next
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(h Handle) bool {
	if s == nil || h == 0 {
		return false
	}
	for i := range s.queue {
		if s.queue[i].handle == h {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	// Cancelled from inside a running tick.
	for i := range s.running {
		if s.running[i].handle == h && s.running[i].fn != nil {
			s.running[i].fn = nil
			return true
		}
	}
	return false
}

// Tick runs every callback that was pending when the tick started, in
// request order, and returns how many ran.
func (s *Scheduler) Tick() int {
	if s == nil || len(s.queue) == 0 {
		return 0
	}
	now := s.Now()
	s.running, s.queue = s.queue, nil
	ran := 0
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		fn(now)
		ran++
	}
	s.running = nil
	return ran
}

// Pending returns the number of callbacks waiting for a tick.
func (s *Scheduler) Pending() int {
	if s == nil {
		return 0
	}
	n := len(s.queue)
	for _, r := range s.running {
		if r.fn != nil {
			n++
		}
	}
	return n
}
