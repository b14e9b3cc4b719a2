package domain

// GameState - overall state of a run. Win and Lose are terminal for the
// turn loop; the surrounding game decides what happens next.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateWin
	StateLose
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateWin:
		return "WIN"
	case StateLose:
		return "LOSE"
	}
	return "UNKNOWN"
}

// GameSettings - mutable per-run state threaded through every turn.
// There is no ambient global; everything the turn needs travels in
// this bundle or in GameData.
type GameSettings struct {
	PreviousPlayerPos Position  `json:"previousPlayerPos"`
	TurnCount         int       `json:"turnCount"`
	GodMode           bool      `json:"godMode"`
	State             GameState `json:"state"`
	ChangeLevel       bool      `json:"changeLevel"`
	Depth             int       `json:"depth"`
}

func NewGameSettings() *GameSettings {
	return &GameSettings{
		PreviousPlayerPos: Position{X: -1, Y: -1},
		State:             StatePlaying,
		Depth:             1,
	}
}

// GameData bundles the entity store and the map: the two shared mutable
// resources a turn operates on.
type GameData struct {
	Entities *Store
	Map      *Map
}

func NewGameData(m *Map, entities *Store) *GameData {
	return &GameData{Entities: entities, Map: m}
}
