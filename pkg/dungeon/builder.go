package dungeon

import (
	"errors"
	"math/rand"

	"crawl-server/internal/domain"
)

// LevelBuilder provides a fluent API for assembling a level. Errors
// are deferred to Build so the chain stays readable.
type LevelBuilder struct {
	width  int
	height int
	rooms  []Rect
	m      *domain.Map
	ents   *domain.Store
	rng    *rand.Rand
	err    error
}

// NewLevel starts a builder drawing randomness from rng.
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:  MapWidth,
		height: MapHeight,
		ents:   domain.NewStore(),
		rng:    rng,
	}
}

// WithSize overrides the default map dimensions.
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms fills the map with solid rock, then carves up to maxRooms
// non-overlapping rooms connected by L-shaped corridors.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.m = domain.NewMap(b.width, b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			tile := &b.m.Tiles[y][x]
			tile.Blocked = true
			tile.BlockSight = true
			tile.Type = domain.TileWall
		}
	}

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, MaxSize)
		h := b.randRange(MinSize, MaxSize)
		x := b.randRange(1, b.width-w-1)
		y := b.randRange(1, b.height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)

		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.carveHCorridor(prevX, currX, prevY)
				b.carveVCorridor(prevY, currY, currX)
			} else {
				b.carveVCorridor(prevY, currY, prevX)
				b.carveHCorridor(prevX, currX, currY)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	if len(b.rooms) < 2 {
		b.err = errors.New("level generation produced fewer than two rooms")
	}
	return b
}

// WithThinWalls drops a few short walls on open floor edges. They
// block walking but not sight, and a running entity can vault them.
func (b *LevelBuilder) WithThinWalls(count int) *LevelBuilder {
	if b.err != nil {
		return b
	}
	for i := 0; i < count; i++ {
		pos, ok := b.randomFloor()
		if !ok {
			break
		}
		tile := b.m.At(pos)
		if b.rng.Intn(2) == 0 {
			tile.LeftWall = domain.WallShort
		} else {
			tile.BottomWall = domain.WallShort
		}
	}
	return b
}

// SpawnPlayer places the player at the center of the first room with
// one stone in hand.
func (b *LevelBuilder) SpawnPlayer(cfg *domain.Config) *LevelBuilder {
	if b.err != nil {
		return b
	}

	cx, cy := b.rooms[0].Center()
	createPlayer(b.ents, cfg, domain.Position{X: cx, Y: cy})
	return b
}

// SpawnMonster places count monsters of the named template in rooms
// other than the first.
func (b *LevelBuilder) SpawnMonster(name string, cfg *domain.Config, count int) *LevelBuilder {
	if b.err != nil {
		return b
	}
	template, ok := MonsterTemplates[name]
	if !ok {
		return b
	}

	for i := 0; i < count; i++ {
		roomIdx := b.rng.Intn(len(b.rooms)-1) + 1
		room := b.rooms[roomIdx]
		cx, cy := room.Center()
		pos := domain.Position{
			X: cx + b.randRange(-1, 1),
			Y: cy + b.randRange(-1, 1),
		}
		if b.m.IsBlocked(pos) || b.ents.BlockingEntityAt(pos) != domain.NoEntity {
			continue
		}
		template.Spawn(b.ents, cfg, pos, b.m.Width, b.m.Height)
	}
	return b
}

// SpawnTraps scatters spike and sound traps on open floor outside the
// first room.
func (b *LevelBuilder) SpawnTraps(spikes, sounds int) *LevelBuilder {
	if b.err != nil {
		return b
	}

	place := func(kind domain.TrapKind, name string, chr rune, count int) {
		for i := 0; i < count; i++ {
			pos, ok := b.randomFloorOutsideRoom(0)
			if !ok {
				return
			}
			id := b.ents.Insert(domain.KindTrap, name, chr, domain.Color{R: 200, G: 160, B: 40, A: 255}, pos, false)
			b.ents.Trap[id] = kind
		}
	}

	place(domain.TrapSpike, "spike trap", '^', spikes)
	place(domain.TrapSound, "sound trap", '_', sounds)
	return b
}

// SpawnStones drops throwable stones on random floor tiles.
func (b *LevelBuilder) SpawnStones(count int) *LevelBuilder {
	if b.err != nil {
		return b
	}
	for i := 0; i < count; i++ {
		pos, ok := b.randomFloor()
		if !ok {
			break
		}
		id := b.ents.Insert(domain.KindItem, "stone", 'o', domain.Color{R: 160, G: 160, B: 160, A: 255}, pos, false)
		b.ents.Item[id] = domain.ItemStone
	}
	return b
}

// SpawnGoal places the goal item in the last room, off-center so it
// never sits on the exit.
func (b *LevelBuilder) SpawnGoal() *LevelBuilder {
	if b.err != nil {
		return b
	}
	last := b.rooms[len(b.rooms)-1]
	cx, cy := last.Center()
	pos := domain.Position{X: cx + 1, Y: cy}
	if b.m.IsBlocked(pos) {
		pos = domain.Position{X: cx, Y: cy + 1}
	}
	if b.m.IsBlocked(pos) {
		pos = domain.Position{X: cx, Y: cy}
	}

	id := b.ents.Insert(domain.KindItem, "amulet", '*', domain.Color{R: 240, G: 200, B: 40, A: 255}, pos, false)
	b.ents.Item[id] = domain.ItemGoal
	return b
}

// WithExit marks the center of the last room as the exit stairs.
func (b *LevelBuilder) WithExit() *LevelBuilder {
	if b.err != nil {
		return b
	}
	cx, cy := b.rooms[len(b.rooms)-1].Center()
	b.m.At(domain.Position{X: cx, Y: cy}).Type = domain.TileExit
	return b
}

// Build finalizes the level.
func (b *LevelBuilder) Build() (*domain.GameData, error) {
	if b.err != nil {
		return nil, b.err
	}
	return domain.NewGameData(b.m, b.ents), nil
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// randomFloor picks an open tile inside a random room, retrying a
// bounded number of times.
func (b *LevelBuilder) randomFloor() (domain.Position, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		room := b.rooms[b.rng.Intn(len(b.rooms))]
		pos := domain.Position{
			X: room.X + 1 + b.rng.Intn(room.W-1),
			Y: room.Y + 1 + b.rng.Intn(room.H-1),
		}
		if !b.m.IsBlocked(pos) {
			return pos, true
		}
	}
	return domain.Position{}, false
}

func (b *LevelBuilder) randomFloorOutsideRoom(exclude int) (domain.Position, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		idx := b.rng.Intn(len(b.rooms))
		if idx == exclude {
			continue
		}
		room := b.rooms[idx]
		pos := domain.Position{
			X: room.X + 1 + b.rng.Intn(room.W-1),
			Y: room.Y + 1 + b.rng.Intn(room.H-1),
		}
		if !b.m.IsBlocked(pos) && b.ents.BlockingEntityAt(pos) == domain.NoEntity {
			return pos, true
		}
	}
	return domain.Position{}, false
}

func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			b.carveTile(x, y)
		}
	}
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	start, end := min(x1, x2), max(x1, x2)
	for x := start; x <= end; x++ {
		b.carveTile(x, y)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	start, end := min(y1, y2), max(y1, y2)
	for y := start; y <= end; y++ {
		b.carveTile(x, y)
	}
}

func (b *LevelBuilder) carveTile(x, y int) {
	tile := &b.m.Tiles[y][x]
	tile.Blocked = false
	tile.BlockSight = false
	tile.Type = domain.TileEmpty
	tile.Surface = domain.SurfaceFloor
}
