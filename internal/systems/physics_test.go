package systems

import (
	"testing"

	"crawl-server/internal/domain"
)

func TestHasLineOfSight(t *testing.T) {
	data := testWorld(12, 12)

	t.Run("Identical points always see each other", func(t *testing.T) {
		p := domain.Position{X: 3, Y: 3}
		if !HasLineOfSight(data.Map, p, p) {
			t.Error("expected trivial visibility")
		}
	})

	t.Run("Clear corridor", func(t *testing.T) {
		if !HasLineOfSight(data.Map, domain.Position{X: 1, Y: 1}, domain.Position{X: 10, Y: 1}) {
			t.Error("expected clear line along open row")
		}
	})

	t.Run("Wall between breaks the line", func(t *testing.T) {
		blocked := testWorld(12, 12)
		blocked.Map.Tiles[5][5].BlockSight = true
		if HasLineOfSight(blocked.Map, domain.Position{X: 3, Y: 5}, domain.Position{X: 8, Y: 5}) {
			t.Error("expected wall to break line of sight")
		}
	})

	t.Run("Endpoints never block", func(t *testing.T) {
		blocked := testWorld(12, 12)
		blocked.Map.Tiles[5][8].BlockSight = true
		// Looking at a wall tile is allowed; looking through it is not.
		if !HasLineOfSight(blocked.Map, domain.Position{X: 5, Y: 5}, domain.Position{X: 8, Y: 5}) {
			t.Error("expected the target tile itself to be visible")
		}
	})

	t.Run("Tall thin wall blocks sight", func(t *testing.T) {
		thin := testWorld(12, 12)
		thin.Map.Tiles[5][6].LeftWall = domain.WallTall
		if HasLineOfSight(thin.Map, domain.Position{X: 4, Y: 5}, domain.Position{X: 8, Y: 5}) {
			t.Error("expected tall thin wall to block sight")
		}
	})

	t.Run("Short thin wall does not block sight", func(t *testing.T) {
		thin := testWorld(12, 12)
		thin.Map.Tiles[5][6].LeftWall = domain.WallShort
		if !HasLineOfSight(thin.Map, domain.Position{X: 4, Y: 5}, domain.Position{X: 8, Y: 5}) {
			t.Error("expected to see over a short wall")
		}
	})
}
