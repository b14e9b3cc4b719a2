package domain

import "fmt"

// BehaviorKind - the closed set of AI behavior states.
type BehaviorKind uint8

const (
	BehaviorIdle BehaviorKind = iota
	BehaviorInvestigating
	BehaviorAttacking
)

// Behavior - tagged union driving AI decisions. An entity holds exactly
// one at a time. Pos is meaningful for Investigating (last believed
// player position), Target for Attacking.
type Behavior struct {
	Kind   BehaviorKind `json:"kind"`
	Pos    Position     `json:"pos"`
	Target EntityID     `json:"target"`
}

// Idle returns the idle behavior.
func Idle() Behavior {
	return Behavior{Kind: BehaviorIdle}
}

// Investigating returns a behavior chasing a believed position.
func Investigating(pos Position) Behavior {
	return Behavior{Kind: BehaviorInvestigating, Pos: pos}
}

// Attacking returns a behavior locked onto a target entity.
func Attacking(target EntityID) Behavior {
	return Behavior{Kind: BehaviorAttacking, Target: target}
}

func (b Behavior) String() string {
	switch b.Kind {
	case BehaviorIdle:
		return "Idle"
	case BehaviorInvestigating:
		return fmt.Sprintf("Investigating(%d,%d)", b.Pos.X, b.Pos.Y)
	case BehaviorAttacking:
		return fmt.Sprintf("Attacking(%s)", b.Target)
	}
	return "Unknown"
}
