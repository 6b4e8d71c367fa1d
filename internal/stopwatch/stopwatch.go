// Package stopwatch measures elapsed time from a resumable origin and reports
// it on a fixed tick.
package stopwatch

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is roughly one display refresh.
const DefaultInterval = 16 * time.Millisecond

// Sink receives the elapsed seconds on every tick. It is called from the
// ticker goroutine with the stopwatch locked and must not block or call back
// into the stopwatch.
type Sink func(elapsed float64)

// Stopwatch is either stopped or running. Elapsed time is measured against the
// clock's monotonic reading and only grows while running.
type Stopwatch struct {
	origin   time.Time
	clock    clockwork.Clock
	sink     Sink
	done     chan struct{}
	interval time.Duration
	elapsed  time.Duration
	mu       sync.Mutex
	running  bool
}

// New returns a stopped stopwatch. A nil clock uses the real clock and a
// non-positive interval uses DefaultInterval.
func New(clock clockwork.Clock, interval time.Duration, sink Sink) *Stopwatch {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Stopwatch{
		clock:    clock,
		interval: interval,
		sink:     sink,
	}
}

// Start resumes counting from the current elapsed value. It does nothing if
// the stopwatch is already running.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.origin = s.clock.Now().Add(-s.elapsed)
	s.running = true
	s.done = make(chan struct{})

	go s.loop(s.done, s.clock.NewTicker(s.interval))
}

func (s *Stopwatch) loop(done <-chan struct{}, ticker clockwork.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.Chan():
			s.report()
		}
	}
}

// report samples and delivers under the lock, so no reading reaches the sink
// once Stop or Reset has returned.
func (s *Stopwatch) report() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.elapsed = s.clock.Since(s.origin)

	if s.sink != nil {
		s.sink(s.elapsed.Seconds())
	}
}

// Tick recomputes the elapsed time. It reports false when the stopwatch is
// not running, in which case the frozen value is returned.
func (s *Stopwatch) Tick() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return s.elapsed.Seconds(), false
	}

	s.elapsed = s.clock.Since(s.origin)

	return s.elapsed.Seconds(), true
}

// Stop freezes the stopwatch at the instant of the call and returns the
// elapsed seconds. A stopped stopwatch returns its frozen value.
func (s *Stopwatch) Stop() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return s.elapsed.Seconds()
	}

	s.elapsed = s.clock.Since(s.origin)
	s.halt()

	return s.elapsed.Seconds()
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.halt()
	}

	s.elapsed = 0
}

func (s *Stopwatch) halt() {
	s.running = false
	close(s.done)
	s.done = nil
}

// Elapsed returns the last computed elapsed seconds.
func (s *Stopwatch) Elapsed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.elapsed.Seconds()
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}
