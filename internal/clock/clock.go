// Package clock abstracts deferred execution so timer-driven code can be
// tested without sleeping.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer is a pending deferred call. Stop reports whether the call was
// prevented; stopping an already fired or stopped timer returns false.
type Timer interface {
	Stop() bool
}

// Clock schedules single-shot callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// System is the Clock backed by the runtime timer heap.
var System Clock = Wrap(clockwork.NewRealClock())

// Wrap adapts a clockwork clock, real or fake, to Clock.
func Wrap(c clockwork.Clock) Clock {
	return clockworkClock{clock: c}
}

type clockworkClock struct {
	clock clockwork.Clock
}

func (c clockworkClock) AfterFunc(d time.Duration, f func()) Timer {
	return c.clock.AfterFunc(d, f)
}

func (c clockworkClock) Now() time.Time {
	return c.clock.Now()
}
