package api

import (
	"encoding/json"
)

// --- SERVER -> CLIENT ---

// ServerResponse is the root object the server sends to a client: a
// full snapshot of the world as seen after one resolved turn.
type ServerResponse struct {
	// Type is "INIT" for the first snapshot, "UPDATE" afterwards.
	Type string `json:"type"`

	// Turn is the number of resolved turns so far.
	Turn int `json:"turn"`

	// Depth is the current level number, starting at 1.
	Depth int `json:"depth"`

	// State reports the run outcome: PLAYING, WIN or LOSE.
	State string `json:"state"`

	// MyEntityID is the entity this client controls.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid carries the map dimensions so the client can size its
	// viewport.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map lists every visible or explored tile.
	Map []TileView `json:"map,omitempty"`

	// Entities lists the currently visible entities.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs carries the messages resolved during the last turn.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta holds the overall map size.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView is the DTO for one map tile.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsWall is true for impassable terrain.
	IsWall bool `json:"isWall"`

	// IsVisible is true inside the current field of view; such tiles
	// render bright.
	IsVisible bool `json:"isVisible"`

	// IsExplored is true once a tile has ever been seen. Explored but
	// not visible tiles render dim (fog of war).
	IsExplored bool `json:"isExplored"`
}

// EntityView is the DTO for a game entity.
type EntityView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // PLAYER, MONSTER, ITEM, TRAP
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// Stats may be omitted when the client has no right to see them.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView is the DTO for combat stats.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Power   int  `json:"power,omitempty"`
	Defense int  `json:"defense,omitempty"`
	IsDead  bool `json:"isDead"`
}

// LogEntry is one line of the game log.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object for every client message.
type ClientCommand struct {
	// Token identifies the client session; required on the first
	// message.
	Token string `json:"token,omitempty"`

	// Action names the command: INIT, MOVE, PASS, PICKUP, THROW,
	// YELL, FASTER, SLOWER, GOD.
	Action string `json:"action"`

	// Payload carries action-specific data; its shape depends on
	// Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload is used by direction-based actions (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // -1, 0 or 1
	Dy int `json:"dy"` // -1, 0 or 1
}

// PositionPayload is used by actions aimed at a map point (THROW).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TogglePayload is used by on/off admin commands (GOD).
type TogglePayload struct {
	Enabled bool `json:"enabled"`
}
