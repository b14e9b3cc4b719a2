package domain

// TileType - coarse classification of a tile.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileWall
	TileWater
	TileExit
)

// Wall - thin wall on a tile edge. Short walls can be vaulted while
// running; tall walls cannot.
type Wall uint8

const (
	WallEmpty Wall = iota
	WallShort
	WallTall
)

// Surface - floor covering, used for presentation and generation.
type Surface uint8

const (
	SurfaceFloor Surface = iota
	SurfaceGrass
	SurfaceRubble
)

// Tile - one map cell. LeftWall sits between this tile and its western
// neighbor, BottomWall between this tile and its southern neighbor.
type Tile struct {
	Blocked    bool     `json:"blocked"`
	BlockSight bool     `json:"blockSight"`
	Type       TileType `json:"type"`
	Surface    Surface  `json:"surface"`
	LeftWall   Wall     `json:"leftWall"`
	BottomWall Wall     `json:"bottomWall"`
	Visible    bool     `json:"visible"`
	Explored   bool     `json:"explored"`
}

// Map - the level grid. The core only reads and re-marks visibility;
// tile layout is owned by the generation collaborator.
type Map struct {
	Tiles  [][]Tile `json:"tiles"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// NewMap returns a map of empty floor tiles.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]Tile, width)
	}
	return &Map{Tiles: tiles, Width: width, Height: height}
}

// InBounds reports whether the position lies on the grid.
func (m *Map) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// At returns the tile at pos. Callers must bounds-check first.
func (m *Map) At(pos Position) *Tile {
	return &m.Tiles[pos.Y][pos.X]
}

// IsBlocked reports whether the tile blocks movement. Out of bounds
// counts as blocked.
func (m *Map) IsBlocked(pos Position) bool {
	if !m.InBounds(pos) {
		return true
	}
	return m.Tiles[pos.Y][pos.X].Blocked
}

// BlocksSight reports whether the tile blocks vision. Out of bounds
// counts as blocking.
func (m *Map) BlocksSight(pos Position) bool {
	if !m.InBounds(pos) {
		return true
	}
	return m.Tiles[pos.Y][pos.X].BlockSight
}

// WallBetween returns the thin wall crossed by a single cardinal step
// from a to b, or WallEmpty. Diagonal steps report the stronger of the
// two edge crossings.
func (m *Map) WallBetween(a, b Position) Wall {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx != 0 && dy != 0 {
		horiz := m.WallBetween(a, a.Shift(dx, 0))
		vert := m.WallBetween(a, a.Shift(0, dy))
		if horiz > vert {
			return horiz
		}
		return vert
	}

	switch {
	case dx > 0:
		if m.InBounds(b) {
			return m.At(b).LeftWall
		}
	case dx < 0:
		if m.InBounds(a) {
			return m.At(a).LeftWall
		}
	case dy > 0:
		if m.InBounds(a) {
			return m.At(a).BottomWall
		}
	case dy < 0:
		if m.InBounds(b) {
			return m.At(b).BottomWall
		}
	}
	return WallEmpty
}

// ClearVisible resets the visibility marks before an FOV pass.
func (m *Map) ClearVisible() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Tiles[y][x].Visible = false
		}
	}
}

// MarkVisible flags a tile visible and remembered.
func (m *Map) MarkVisible(pos Position) {
	if m.InBounds(pos) {
		tile := m.At(pos)
		tile.Visible = true
		tile.Explored = true
	}
}
