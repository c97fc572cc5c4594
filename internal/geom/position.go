package geom

import "math"

// Position is a 2D vector. It is used for scroll offsets, scroll extents
// and movement deltas alike.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the zero vector.
var Origin = Position{}

// Add returns a + b.
func Add(a, b Position) Position {
	return Position{X: a.X + b.X, Y: a.Y + b.Y}
}

// Subtract returns a - b.
func Subtract(a, b Position) Position {
	return Position{X: a.X - b.X, Y: a.Y - b.Y}
}

// Negate flips the sign of both axes.
func Negate(p Position) Position {
	return Clean(Position{X: -p.X, Y: -p.Y})
}

// IsEqual reports whether both components match exactly.
func IsEqual(a, b Position) bool {
	return a.X == b.X && a.Y == b.Y
}

// Apply runs fn over each component.
func Apply(p Position, fn func(float64) float64) Position {
	return Position{X: fn(p.X), Y: fn(p.Y)}
}

// Max returns the elementwise maximum of a and b.
func Max(a, b Position) Position {
	return Position{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Sign reduces each component to -1, 0 or 1.
func Sign(p Position) Position {
	return Apply(p, sign)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Clean replaces negative zero with zero so results compare and print
// predictably.
func Clean(p Position) Position {
	return Apply(p, func(v float64) float64 {
		if v == 0 {
			return 0
		}
		return v
	})
}

// Patch builds a vector with value on axis and other on the cross axis.
func Patch(axis Axis, value, other float64) Position {
	if axis == Horizontal {
		return Position{X: value, Y: other}
	}
	return Position{X: other, Y: value}
}

// On returns the component of p along axis.
func (p Position) On(axis Axis) float64 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}
