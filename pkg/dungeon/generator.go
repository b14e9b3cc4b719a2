package dungeon

import (
	"math/rand"

	"crawl-server/internal/domain"
)

// Generation constants.
const (
	MapWidth  = 40
	MapHeight = 25
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10
)

// Rect - a room candidate during generation.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate builds a complete level: rooms and corridors, thin walls,
// surface decoration, the player, monsters, traps, items, the goal,
// and the exit. All randomness comes from the passed rng, so the same
// rng state always yields the same level.
func Generate(cfg *domain.Config, rng *rand.Rand) (*domain.GameData, error) {
	return NewLevel(rng).
		WithSize(MapWidth, MapHeight).
		WithRooms(MaxRooms).
		WithThinWalls(4).
		WithSurfaces().
		SpawnPlayer(cfg).
		SpawnMonster("gol", cfg, 3).
		SpawnMonster("elf", cfg, 2).
		SpawnTraps(2, 2).
		SpawnStones(3).
		SpawnGoal().
		WithExit().
		Build()
}
