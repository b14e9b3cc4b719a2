package systems

import (
	"testing"

	"crawl-server/internal/domain"
)

func TestAoeFill(t *testing.T) {
	t.Run("Includes the origin", func(t *testing.T) {
		data := testWorld(12, 12)
		origin := domain.Position{X: 5, Y: 5}
		filled := AoeFill(data.Map, origin, 0)
		if len(filled) != 1 || filled[0] != origin {
			t.Errorf("expected only the origin for radius 0, got %v", filled)
		}
	})

	t.Run("Flood stays within radius", func(t *testing.T) {
		data := testWorld(20, 20)
		origin := domain.Position{X: 10, Y: 10}
		filled := AoeFill(data.Map, origin, 3)
		for _, pos := range filled {
			if origin.DistanceSquaredTo(pos) > 2*3*3 {
				t.Errorf("position %v too far from origin", pos)
			}
		}
		// Diagonal steps count as distance 1, so a radius-3 flood in
		// the open is a 7x7 block.
		if len(filled) != 49 {
			t.Errorf("expected 49 tiles, got %d", len(filled))
		}
	})

	t.Run("Sound bends around walls but does not cross them", func(t *testing.T) {
		data := testWorld(12, 12)
		// Vertical wall with a gap at the bottom.
		for y := 1; y <= 8; y++ {
			data.Map.Tiles[y][6].Blocked = true
		}
		origin := domain.Position{X: 4, Y: 4}
		filled := AoeFill(data.Map, origin, 3)

		has := func(p domain.Position) bool {
			for _, pos := range filled {
				if pos == p {
					return true
				}
			}
			return false
		}
		if has(domain.Position{X: 7, Y: 4}) {
			t.Error("expected wall to stop sound straight through")
		}
		if !has(domain.Position{X: 5, Y: 6}) {
			t.Error("expected sound to spread on the open side")
		}
	})

	t.Run("Out of bounds origin is empty", func(t *testing.T) {
		data := testWorld(12, 12)
		if filled := AoeFill(data.Map, domain.Position{X: -1, Y: 3}, 4); filled != nil {
			t.Errorf("expected nil, got %v", filled)
		}
	})
}
