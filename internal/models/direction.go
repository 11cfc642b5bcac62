package models

import "fmt"

// Direction is the way the displayed arrow points
type Direction int

const (
	Left Direction = iota
	Right
)

// Directions lists every direction in draw order; a uniform draw indexes it.
var Directions = [...]Direction{Left, Right}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the two known directions
func (d Direction) Valid() bool {
	return d == Left || d == Right
}
