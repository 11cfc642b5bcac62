package models

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Phase is the coarse display state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseShowing
)

func (p Phase) String() string {
	if p == PhaseShowing {
		return "showing"
	}
	return "idle"
}

// DisplayState is a snapshot of what the presenter is currently showing.
// Direction, CycleID, ShownAt and ExpiresAt are only meaningful while
// Phase is PhaseShowing.
type DisplayState struct {
	Phase     Phase
	Direction Direction
	CycleID   ulid.ULID
	ShownAt   time.Time
	ExpiresAt time.Time
}

// IdleState is the state with no image and no pending clear
func IdleState() DisplayState {
	return DisplayState{Phase: PhaseIdle}
}

// IsShowing returns true while an arrow is on screen
func (s DisplayState) IsShowing() bool {
	return s.Phase == PhaseShowing
}

// Remaining returns how long until the clear fires, measured from now.
// It is zero when idle or already past expiry.
func (s DisplayState) Remaining(now time.Time) time.Duration {
	if !s.IsShowing() || !now.Before(s.ExpiresAt) {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}
