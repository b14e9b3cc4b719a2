package domain

// --- CAPABILITY VALUES ---
//
// Each type below is the value side of one capability mapping in the
// Store. An entity "has" a capability iff the mapping contains its ID.

// Color - RGBA display color for the client.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Fighter - combat stats. HP may go negative between a killing blow and
// the end-of-turn sweep; it never exceeds MaxHP.
type Fighter struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// TakeDamage applies damage. Returns true if HP dropped to zero or
// below. Non-positive damage has no effect.
func (f *Fighter) TakeDamage(amount int) bool {
	if amount > 0 {
		f.HP -= amount
	}
	return f.HP <= 0
}

// Heal restores HP up to MaxHP.
func (f *Fighter) Heal(amount int) {
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
}

// AIKind tags an entity as AI-driven. Only one brain exists for now.
type AIKind uint8

const (
	AIBasic AIKind = iota
)

// Item - carried item tag.
type Item uint8

const (
	ItemStone Item = iota
	ItemGoal
)

func (i Item) String() string {
	switch i {
	case ItemStone:
		return "stone"
	case ItemGoal:
		return "goal"
	}
	return "unknown"
}

// TrapKind distinguishes what a trap entity does when stepped on.
type TrapKind uint8

const (
	TrapSpike TrapKind = iota
	TrapSound
)

// EntityKind - coarse classification used by spawning, rendering and
// target selection. Behavior still keys off capabilities, not kinds.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindMonster
	KindItem
	KindTrap
	KindSound
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "PLAYER"
	case KindMonster:
		return "MONSTER"
	case KindItem:
		return "ITEM"
	case KindTrap:
		return "TRAP"
	case KindSound:
		return "SOUND"
	}
	return "UNKNOWN"
}

// MoveMode - how loudly and how far an entity covers ground.
type MoveMode uint8

const (
	MoveSneak MoveMode = iota
	MoveWalk
	MoveRun
)

// Increase steps the mode toward running.
func (m MoveMode) Increase() MoveMode {
	if m == MoveRun {
		return MoveRun
	}
	return m + 1
}

// Decrease steps the mode toward sneaking.
func (m MoveMode) Decrease() MoveMode {
	if m == MoveSneak {
		return MoveSneak
	}
	return m - 1
}

// MoveReach returns the movement shape for the mode. Running covers two
// tiles per action, the slower modes one.
func (m MoveMode) MoveReach() Reach {
	if m == MoveRun {
		return Reach{Kind: ReachSingle, Dist: 2}
	}
	return Reach{Kind: ReachSingle, Dist: 1}
}

func (m MoveMode) String() string {
	switch m {
	case MoveSneak:
		return "sneak"
	case MoveWalk:
		return "walk"
	case MoveRun:
		return "run"
	}
	return "unknown"
}
