package systems

import (
	"crawl-server/internal/domain"
)

// AoeFill returns every position a sound starting at origin reaches
// within the given radius. Propagation is a breadth-first flood through
// non-blocked tiles, so noise bends around corners but never crosses
// solid walls. The result includes the origin and is in deterministic
// BFS order.
func AoeFill(m *domain.Map, origin domain.Position, radius int) []domain.Position {
	if radius < 0 || !m.InBounds(origin) {
		return nil
	}

	type node struct {
		pos  domain.Position
		dist int
	}

	dirs := [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}

	seen := map[domain.Position]bool{origin: true}
	queue := []node{{pos: origin, dist: 0}}
	var filled []domain.Position

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		filled = append(filled, cur.pos)

		if cur.dist == radius {
			continue
		}
		for _, d := range dirs {
			next := cur.pos.Shift(d[0], d[1])
			if seen[next] || m.IsBlocked(next) {
				continue
			}
			// Tall walls stop sound on the edge they cover.
			if m.WallBetween(cur.pos, next) == domain.WallTall {
				continue
			}
			seen[next] = true
			queue = append(queue, node{pos: next, dist: cur.dist + 1})
		}
	}

	return filled
}
