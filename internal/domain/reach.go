package domain

// ReachKind selects the shape of legal relative offsets.
type ReachKind uint8

const (
	// ReachSingle - any of the 8 directions, up to Dist tiles out.
	ReachSingle ReachKind = iota
	// ReachHoriz - cardinal directions only.
	ReachHoriz
	// ReachDiag - diagonal directions only.
	ReachDiag
)

// Reach - declarative shape describing legal relative move or attack
// offsets. Membership is derived from the shape on each query rather
// than precomputed into a list.
type Reach struct {
	Kind ReachKind `json:"kind"`
	Dist int       `json:"dist"`
}

// Contains reports whether the relative offset (dx, dy) is legal for
// this shape.
func (r Reach) Contains(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	if abs(dx) > r.Dist || abs(dy) > r.Dist {
		return false
	}

	switch r.Kind {
	case ReachSingle:
		// straight or exact diagonal rays only
		return dx == 0 || dy == 0 || abs(dx) == abs(dy)
	case ReachHoriz:
		return dx == 0 || dy == 0
	case ReachDiag:
		return abs(dx) == abs(dy)
	}
	return false
}

// Offsets enumerates every legal relative offset, nearest ring first.
// Order is deterministic: distance, then clockwise from (dist, 0).
func (r Reach) Offsets() []Position {
	dirs := [][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}

	var offsets []Position
	for dist := 1; dist <= r.Dist; dist++ {
		for _, d := range dirs {
			dx, dy := d[0]*dist, d[1]*dist
			if r.Contains(dx, dy) {
				offsets = append(offsets, Position{X: dx, Y: dy})
			}
		}
	}
	return offsets
}

// ClosestTo returns the reachable position from `from` closest to
// `to`. Falls back to `from` itself when the shape is empty.
func (r Reach) ClosestTo(from, to Position) Position {
	best := from
	bestDist := from.DistanceSquaredTo(to)

	for _, off := range r.Offsets() {
		pos := from.Add(off)
		if d := pos.DistanceSquaredTo(to); d < bestDist {
			best = pos
			bestDist = d
		}
	}
	return best
}
