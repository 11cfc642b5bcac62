package controllers

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"arrow-randomizer/internal/clock"
	"arrow-randomizer/internal/logger"
	"arrow-randomizer/internal/models"
)

const (
	componentName = "ArrowPresenter"

	// DefaultDuration is how long an arrow stays on screen
	DefaultDuration = 4000 * time.Millisecond
)

// Display is the output surface the presenter renders into. Both methods
// are called on the UI goroutine.
type Display interface {
	ShowArrow(direction models.Direction)
	ClearArrow()
}

// Option configures an ArrowPresenter
type Option func(*ArrowPresenter)

// WithDuration sets how long each arrow stays visible
func WithDuration(d time.Duration) Option {
	return func(p *ArrowPresenter) {
		if d > 0 {
			p.duration = d
		}
	}
}

// WithClock replaces the system clock
func WithClock(c clock.Clock) Option {
	return func(p *ArrowPresenter) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithRand replaces the random source used to pick directions
func WithRand(r *rand.Rand) Option {
	return func(p *ArrowPresenter) {
		if r != nil {
			p.rng = r
		}
	}
}

// WithDispatch sets how timer callbacks are moved onto the UI goroutine.
// The Fyne application passes fyne.Do.
func WithDispatch(dispatch func(func())) Option {
	return func(p *ArrowPresenter) {
		if dispatch != nil {
			p.dispatch = dispatch
		}
	}
}

// WithLogger attaches a logger
func WithLogger(log logger.Logger) Option {
	return func(p *ArrowPresenter) {
		if log != nil {
			p.logger = log
		}
	}
}

// ArrowPresenter shows a random arrow on each activation and clears it
// after a fixed duration. A new activation restarts the window.
type ArrowPresenter struct {
	display  Display
	duration time.Duration
	clock    clock.Clock
	rng      *rand.Rand
	dispatch func(func())
	logger   logger.Logger

	mu    sync.Mutex
	state models.DisplayState
	timer clock.Timer
	// generation increments per cycle; a fire carrying an older value is stale
	generation uint64
	torndown   bool
}

// NewArrowPresenter creates a presenter in the idle state
func NewArrowPresenter(display Display, opts ...Option) *ArrowPresenter {
	p := &ArrowPresenter{
		display:  display,
		duration: DefaultDuration,
		clock:    clock.System,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		dispatch: func(fn func()) { fn() },
		logger:   logger.NewNop(),
		state:    models.IdleState(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Activate handles one activation event: cancel any pending clear, draw a
// direction, show it and schedule a fresh clear.
func (p *ArrowPresenter) Activate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.torndown {
		p.logger.Debug(componentName, "activation after teardown ignored", nil)
		return
	}

	restarted := p.cancelTimerLocked()

	direction := models.Directions[p.rng.IntN(len(models.Directions))]
	now := p.clock.Now()
	cutShort := p.state.Remaining(now)

	p.generation++
	gen := p.generation
	p.state = models.DisplayState{
		Phase:     models.PhaseShowing,
		Direction: direction,
		CycleID:   p.newCycleID(now),
		ShownAt:   now,
		ExpiresAt: now.Add(p.duration),
	}

	p.display.ShowArrow(direction)

	p.timer = p.clock.AfterFunc(p.duration, func() {
		p.dispatch(func() { p.expire(gen) })
	})

	fields := map[string]interface{}{
		"cycle":       p.state.CycleID.String(),
		"direction":   direction.String(),
		"duration_ms": p.duration.Milliseconds(),
		"restarted":   restarted,
	}
	if restarted {
		fields["remaining_ms"] = cutShort.Milliseconds()
	}
	p.logger.Debug(componentName, "arrow shown", fields)
}

// expire clears the display if gen is still the live cycle
func (p *ArrowPresenter) expire(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.torndown || gen != p.generation || !p.state.IsShowing() {
		return
	}

	cycle := p.state.CycleID
	p.timer = nil
	p.state = models.IdleState()
	p.display.ClearArrow()

	p.logger.Debug(componentName, "arrow cleared", map[string]interface{}{
		"cycle": cycle.String(),
	})
}

// Teardown cancels any pending clear and stops reacting to activations.
// The display is not touched since its view is going away. Safe to call
// more than once.
func (p *ArrowPresenter) Teardown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.torndown {
		return
	}

	cancelled := p.cancelTimerLocked()
	p.torndown = true
	p.generation++
	p.state = models.IdleState()

	p.logger.Debug(componentName, "torn down", map[string]interface{}{
		"cancelled_pending": cancelled,
	})
}

// Shutdown lets the shutdown manager tear the presenter down
func (p *ArrowPresenter) Shutdown() {
	p.Teardown()
}

// State returns a snapshot of the current display state
func (p *ArrowPresenter) State() models.DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Duration returns the configured on-screen duration
func (p *ArrowPresenter) Duration() time.Duration {
	return p.duration
}

// cancelTimerLocked stops the pending timer, if any, and reports whether
// one was pending.
func (p *ArrowPresenter) cancelTimerLocked() bool {
	if p.timer == nil {
		return false
	}
	p.timer.Stop()
	p.timer = nil
	return true
}

func (p *ArrowPresenter) newCycleID(now time.Time) ulid.ULID {
	id, err := ulid.New(ulid.Timestamp(now), cryptorand.Reader)
	if err != nil {
		p.logger.Warning(componentName, "cycle id unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return ulid.ULID{}
	}
	return id
}
