package systems

import (
	"testing"

	"crawl-server/internal/domain"
)

func TestCalculateMove(t *testing.T) {
	t.Run("Open tile is a clear move", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 5, Y: 5})

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveMove {
			t.Fatalf("expected Move, got %v", res.Kind)
		}
		if res.Pos != (domain.Position{X: 6, Y: 5}) {
			t.Errorf("expected destination (6,5), got %v", res.Pos)
		}
	})

	t.Run("Terrain blocks into a collide", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 1, Y: 1})

		res := CalculateMove(data, id, -1, 0)
		if res.Kind != domain.MoveCollide {
			t.Fatalf("expected Collide, got %v", res.Kind)
		}
		if res.Pos != (domain.Position{X: 1, Y: 1}) {
			t.Errorf("expected to stay at (1,1), got %v", res.Pos)
		}
	})

	t.Run("Hostile fighter in the way is an attack", func(t *testing.T) {
		data := testWorld(10, 10)
		player := spawnPlayer(data, domain.Position{X: 5, Y: 5})
		gol := spawnMonster(data, "gol", domain.Position{X: 6, Y: 5})

		res := CalculateMove(data, player, 1, 0)
		if res.Kind != domain.MoveAttack {
			t.Fatalf("expected Attack, got %v", res.Kind)
		}
		if res.Target != gol {
			t.Errorf("expected target %v, got %v", gol, res.Target)
		}
		if res.Pos != (domain.Position{X: 5, Y: 5}) {
			t.Errorf("attacker should hold position, got %v", res.Pos)
		}
	})

	t.Run("Same-kind blocker is a collide, not an attack", func(t *testing.T) {
		data := testWorld(10, 10)
		a := spawnMonster(data, "gol", domain.Position{X: 4, Y: 4})
		spawnMonster(data, "elf", domain.Position{X: 5, Y: 4})

		res := CalculateMove(data, a, 1, 0)
		if res.Kind != domain.MoveCollide {
			t.Errorf("expected Collide between monsters, got %v", res.Kind)
		}
	})

	t.Run("Run reach covers two tiles", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 3, Y: 3})
		data.Entities.MoveModes[id] = domain.MoveRun

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveMove {
			t.Fatalf("expected Move, got %v", res.Kind)
		}
		if res.Pos != (domain.Position{X: 5, Y: 3}) {
			t.Errorf("expected run to reach (5,3), got %v", res.Pos)
		}
	})

	t.Run("Wall kick slides diagonally while running", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 4, Y: 4})
		data.Entities.Momentum[id].Set(1, 0)
		data.Map.Tiles[4][5].Blocked = true

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveWallKick {
			t.Fatalf("expected WallKick, got %v", res.Kind)
		}
		// First perpendicular candidate for an eastward kick is (+1, +1).
		if res.Pos != (domain.Position{X: 5, Y: 5}) {
			t.Errorf("expected slide to (5,5), got %v", res.Pos)
		}
	})

	t.Run("No wall kick without momentum", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 4, Y: 4})
		data.Map.Tiles[4][5].Blocked = true

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveCollide {
			t.Errorf("expected Collide when not running, got %v", res.Kind)
		}
	})

	t.Run("Short wall is vaulted with aligned momentum", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 4, Y: 4})
		data.Entities.Momentum[id].Set(1, 0)
		// Short wall on the west edge of the destination tile.
		data.Map.Tiles[4][5].LeftWall = domain.WallShort

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveJumpWall {
			t.Fatalf("expected JumpWall, got %v", res.Kind)
		}
		if res.Pos != (domain.Position{X: 5, Y: 4}) {
			t.Errorf("expected vault to (5,4), got %v", res.Pos)
		}
	})

	t.Run("Short wall blocks with contrary momentum", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 4, Y: 4})
		data.Entities.Momentum[id].Set(0, 1)
		data.Map.Tiles[4][5].LeftWall = domain.WallShort
		// Sideways momentum cannot carry a vault; the kick candidates
		// are walled off too.
		data.Map.Tiles[5][5].Blocked = true
		data.Map.Tiles[3][5].Blocked = true

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveCollide {
			t.Errorf("expected Collide, got %v", res.Kind)
		}
	})

	t.Run("Zero direction is a pass", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 4, Y: 4})
		if res := CalculateMove(data, id, 0, 0); res.Kind != domain.MovePass {
			t.Errorf("expected Pass, got %v", res.Kind)
		}
	})

	t.Run("Cardinal-only reach passes on diagonals", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnMonster(data, "gol", domain.Position{X: 4, Y: 4})
		data.Entities.Movement[id] = domain.Reach{Kind: domain.ReachHoriz, Dist: 1}

		if res := CalculateMove(data, id, 1, 1); res.Kind != domain.MovePass {
			t.Errorf("expected Pass for illegal diagonal, got %v", res.Kind)
		}
	})

	t.Run("Run halts short on a mid-path obstacle", func(t *testing.T) {
		data := testWorld(10, 10)
		id := spawnPlayer(data, domain.Position{X: 3, Y: 3})
		data.Entities.MoveModes[id] = domain.MoveRun
		data.Map.Tiles[3][5].Blocked = true

		res := CalculateMove(data, id, 1, 0)
		if res.Kind != domain.MoveCollide {
			t.Fatalf("expected Collide, got %v", res.Kind)
		}
		if res.Pos != (domain.Position{X: 4, Y: 3}) {
			t.Errorf("expected halt at (4,3), got %v", res.Pos)
		}
	})
}
