package systems

import (
	"crawl-server/internal/domain"
)

// HasLineOfSight reports whether a straight line between two points is
// unobstructed. Integer Bresenham; intermediate tiles that block sight
// break the line, as does crossing a tall thin wall. The endpoints
// themselves never block.
func HasLineOfSight(m *domain.Map, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)
	err := dx - dy

	prev := p1
	for {
		cur := domain.Position{X: x0, Y: y0}

		if cur != p1 && cur != p2 {
			if m.BlocksSight(cur) {
				return false
			}
		}
		// A tall wall on the edge between consecutive cells blocks
		// sight even when both tiles are open.
		if cur != prev && m.WallBetween(prev, cur) == domain.WallTall {
			return false
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		prev = cur
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
