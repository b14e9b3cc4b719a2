package systems

import (
	"crawl-server/internal/domain"
)

// ThrowTarget walks the line from a thrower toward an aimed position
// and returns where a thrown projectile actually lands: at the aim
// point, at the maximum throw distance, on the tile of the first
// blocking entity hit, or on the last open tile before terrain stops
// it.
func ThrowTarget(data *domain.GameData, from, aim domain.Position, maxDist int) domain.Position {
	if from == aim || maxDist <= 0 {
		return from
	}

	x0, y0 := from.X, from.Y
	x1, y1 := aim.X, aim.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := from.DirectionTo(aim)
	err := dx - dy

	landing := from
	for {
		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}

		next := domain.Position{X: x0, Y: y0}
		if data.Map.IsBlocked(next) {
			break
		}
		if data.Map.WallBetween(landing, next) != domain.WallEmpty {
			break
		}

		landing = next

		// A body stops the stone on its tile.
		if data.Entities.BlockingEntityAt(next) != domain.NoEntity {
			break
		}
		if from.DistanceSquaredTo(landing) >= maxDist*maxDist {
			break
		}
	}

	return landing
}
