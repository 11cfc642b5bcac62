// Package clocktest holds helpers for driving timer code from tests.
package clocktest

import (
	"sync"
	"testing"
	"time"

	"arrow-randomizer/internal/clock"
)

// Counting wraps a Clock and tracks timers that have neither fired nor
// been stopped.
type Counting struct {
	clock.Clock

	mu      sync.Mutex
	pending int
}

func NewCounting(c clock.Clock) *Counting {
	return &Counting{Clock: c}
}

func (c *Counting) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	c.pending++
	c.mu.Unlock()

	t := &countedTimer{owner: c}
	t.inner = c.Clock.AfterFunc(d, func() {
		if t.settle() {
			f()
		}
	})
	return t
}

// Pending returns the number of live timers
func (c *Counting) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

type countedTimer struct {
	owner   *Counting
	inner   clock.Timer
	settled bool
}

// settle marks the timer finished once; it reports false if it already was
func (t *countedTimer) settle() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.settled {
		return false
	}
	t.settled = true
	t.owner.pending--
	return true
}

func (t *countedTimer) Stop() bool {
	stopped := t.inner.Stop()
	if stopped {
		t.settle()
	}
	return stopped
}

// Queue collects dispatched callbacks so a test can run them on its own
// goroutine, in the order they arrived.
type Queue struct {
	calls chan func()
}

func NewQueue() *Queue {
	return &Queue{calls: make(chan func(), 64)}
}

// Dispatch matches the presenter's dispatcher signature
func (q *Queue) Dispatch(fn func()) {
	q.calls <- fn
}

// Run executes exactly n queued callbacks, waiting for each to arrive, and
// fails if another one shows up shortly after.
func (q *Queue) Run(t testing.TB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case fn := <-q.calls:
			fn()
		case <-time.After(2 * time.Second):
			t.Fatalf("timer callback %d of %d never dispatched", i+1, n)
		}
	}

	select {
	case fn := <-q.calls:
		fn()
		t.Fatalf("unexpected extra timer callback after %d", n)
	case <-time.After(20 * time.Millisecond):
	}
}
