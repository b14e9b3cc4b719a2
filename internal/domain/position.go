package domain

import "math"

// Position - integer map coordinates. No sub-tile precision.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the exact euclidean distance to another point.
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquaredTo returns the squared distance (int) for comparisons
// that do not need the square root.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent reports whether the other position is one tile away,
// diagonals included.
func (p Position) IsAdjacent(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift returns a new position offset by (dx, dy). The receiver is
// unchanged since positions are passed by value.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// DirectionTo returns the unit step (sign per axis) toward other.
func (p Position) DirectionTo(other Position) (int, int) {
	return Sign(other.X - p.X), Sign(other.Y - p.Y)
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
