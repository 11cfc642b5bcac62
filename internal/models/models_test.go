package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range Directions {
		assert.True(t, d.Valid())
	}
	assert.False(t, Direction(-1).Valid())
	assert.Len(t, Directions, 2)
}

func TestDisplayState_Idle(t *testing.T) {
	s := IdleState()
	assert.False(t, s.IsShowing())
	assert.Equal(t, "idle", s.Phase.String())
	assert.Zero(t, s.Remaining(time.Now()))
}

func TestDisplayState_Remaining(t *testing.T) {
	shown := time.Date(2016, 4, 11, 9, 0, 0, 0, time.UTC)
	s := DisplayState{
		Phase:     PhaseShowing,
		Direction: Right,
		ShownAt:   shown,
		ExpiresAt: shown.Add(4 * time.Second),
	}

	assert.Equal(t, "showing", s.Phase.String())
	assert.Equal(t, 4*time.Second, s.Remaining(shown))
	assert.Equal(t, 1500*time.Millisecond, s.Remaining(shown.Add(2500*time.Millisecond)))
	assert.Zero(t, s.Remaining(shown.Add(4*time.Second)))
	assert.Zero(t, s.Remaining(shown.Add(time.Minute)))
}
