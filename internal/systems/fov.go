package systems

import (
	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Octant transforms for recursive shadowcasting.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles returns the set of positions visible from origin
// within the given radius, using recursive shadowcasting over the
// map's sight-blocking tiles.
func ComputeVisibleTiles(m *domain.Map, origin domain.Position, radius int) map[domain.Position]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := make(map[domain.Position]bool)
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visible
	}

	// The origin is always visible.
	visible[origin] = true

	for i := 0; i < 8; i++ {
		castLight(m, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete.")
	return visible
}

// RecomputeFOV clears the map's visibility marks and re-marks every
// tile visible from origin. Explored flags accumulate as a side
// effect of marking.
func RecomputeFOV(m *domain.Map, origin domain.Position, radius int) {
	m.ClearVisible()
	for pos := range ComputeVisibleTiles(m, origin, radius) {
		m.MarkVisible(pos)
	}
}

func castLight(m *domain.Map, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[domain.Position]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			pos := domain.Position{
				X: cx + dx*xx + dy*xy,
				Y: cy + dx*yx + dy*yy,
			}

			if m.InBounds(pos) && float64(dx*dx+dy*dy) < radiusSq {
				visible[pos] = true
			}

			if blocked {
				// Scanning along a run of wall.
				if m.BlocksSight(pos) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else {
				if m.BlocksSight(pos) && j < radius {
					blocked = true
					castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
