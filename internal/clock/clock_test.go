package clock_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"arrow-randomizer/internal/clock"
	"arrow-randomizer/internal/clock/clocktest"
)

var epoch = time.Date(2016, 4, 11, 9, 0, 0, 0, time.UTC)

func TestSystem_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	clock.System.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("system timer did not fire")
	}
}

func TestWrap_FakeClock(t *testing.T) {
	fake := clockwork.NewFakeClockAt(epoch)
	c := clock.Wrap(fake)
	assert.Equal(t, epoch, c.Now())

	queue := clocktest.NewQueue()
	c.AfterFunc(time.Second, func() { queue.Dispatch(func() {}) })

	fake.Advance(999 * time.Millisecond)
	queue.Run(t, 0)

	fake.Advance(time.Millisecond)
	queue.Run(t, 1)
}

func TestCounting_TracksStopAndFire(t *testing.T) {
	fake := clockwork.NewFakeClockAt(epoch)
	counting := clocktest.NewCounting(clock.Wrap(fake))
	queue := clocktest.NewQueue()

	stopped := counting.AfterFunc(time.Second, func() { queue.Dispatch(func() {}) })
	counting.AfterFunc(2*time.Second, func() { queue.Dispatch(func() {}) })
	assert.Equal(t, 2, counting.Pending())

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
	assert.Equal(t, 1, counting.Pending())

	fake.Advance(2 * time.Second)
	queue.Run(t, 1)
	assert.Zero(t, counting.Pending())
}
