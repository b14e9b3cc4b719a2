package systems

import (
	"testing"

	"crawl-server/internal/domain"
)

func TestThrowTarget(t *testing.T) {
	t.Run("Clear throw reaches the aim point", func(t *testing.T) {
		data := testWorld(15, 15)
		got := ThrowTarget(data, domain.Position{X: 3, Y: 3}, domain.Position{X: 7, Y: 3}, 5)
		if got != (domain.Position{X: 7, Y: 3}) {
			t.Errorf("expected landing at (7,3), got %v", got)
		}
	})

	t.Run("Throw distance caps the flight", func(t *testing.T) {
		data := testWorld(15, 15)
		got := ThrowTarget(data, domain.Position{X: 2, Y: 3}, domain.Position{X: 12, Y: 3}, 4)
		if got != (domain.Position{X: 6, Y: 3}) {
			t.Errorf("expected landing at max distance (6,3), got %v", got)
		}
	})

	t.Run("Wall stops the stone short", func(t *testing.T) {
		data := testWorld(15, 15)
		data.Map.Tiles[3][6].Blocked = true
		got := ThrowTarget(data, domain.Position{X: 3, Y: 3}, domain.Position{X: 9, Y: 3}, 8)
		if got != (domain.Position{X: 5, Y: 3}) {
			t.Errorf("expected landing before the wall at (5,3), got %v", got)
		}
	})

	t.Run("A body stops the stone on its tile", func(t *testing.T) {
		data := testWorld(15, 15)
		spawnMonster(data, "gol", domain.Position{X: 6, Y: 3})
		got := ThrowTarget(data, domain.Position{X: 3, Y: 3}, domain.Position{X: 10, Y: 3}, 8)
		if got != (domain.Position{X: 6, Y: 3}) {
			t.Errorf("expected landing on the monster at (6,3), got %v", got)
		}
	})

	t.Run("Aiming at own tile goes nowhere", func(t *testing.T) {
		data := testWorld(15, 15)
		p := domain.Position{X: 3, Y: 3}
		if got := ThrowTarget(data, p, p, 5); got != p {
			t.Errorf("expected %v, got %v", p, got)
		}
	})
}
