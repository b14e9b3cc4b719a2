package domain

import (
	"fmt"
	"strings"
)

// ActionKind - internal numeric identifier for an action intent.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionPass
	ActionAttack
	ActionPickup
	ActionThrowStone
	ActionYell
	ActionStateChange
)

// Action - a single intended primitive action. Intents describe what an
// actor wants to do; the resolver decides what actually happens.
//
// Dir is set for Move and Attack, Pos for ThrowStone, Target for
// Attack, NewBehavior for StateChange.
type Action struct {
	Kind        ActionKind `json:"kind"`
	Dir         Position   `json:"dir,omitempty"`
	Pos         Position   `json:"pos,omitempty"`
	Target      EntityID   `json:"target,omitempty"`
	NewBehavior Behavior   `json:"behavior,omitempty"`
}

func NoAction() Action                    { return Action{Kind: ActionNone} }
func PassAction() Action                  { return Action{Kind: ActionPass} }
func YellAction() Action                  { return Action{Kind: ActionYell} }
func PickupAction() Action                { return Action{Kind: ActionPickup} }
func MoveAction(dx, dy int) Action        { return Action{Kind: ActionMove, Dir: Position{X: dx, Y: dy}} }
func ThrowStoneAction(pos Position) Action { return Action{Kind: ActionThrowStone, Pos: pos} }

func AttackAction(target EntityID, dx, dy int) Action {
	return Action{Kind: ActionAttack, Target: target, Dir: Position{X: dx, Y: dy}}
}

func StateChangeAction(b Behavior) Action {
	return Action{Kind: ActionStateChange, NewBehavior: b}
}

var actionStringToKind = map[string]ActionKind{
	"NONE":         ActionNone,
	"MOVE":         ActionMove,
	"PASS":         ActionPass,
	"ATTACK":       ActionAttack,
	"PICKUP":       ActionPickup,
	"THROW_STONE":  ActionThrowStone,
	"YELL":         ActionYell,
	"STATE_CHANGE": ActionStateChange,
}

var actionKindToString = map[ActionKind]string{
	ActionNone:        "NONE",
	ActionMove:        "MOVE",
	ActionPass:        "PASS",
	ActionAttack:      "ATTACK",
	ActionPickup:      "PICKUP",
	ActionThrowStone:  "THROW_STONE",
	ActionYell:        "YELL",
	ActionStateChange: "STATE_CHANGE",
}

// ParseActionKind converts a wire string into an ActionKind,
// case-insensitively. Unknown strings map to ActionNone.
func ParseActionKind(s string) ActionKind {
	if val, ok := actionStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionNone
}

func (k ActionKind) String() string {
	if val, ok := actionKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("MOVE(%d,%d)", a.Dir.X, a.Dir.Y)
	case ActionAttack:
		return fmt.Sprintf("ATTACK(%s)", a.Target)
	case ActionThrowStone:
		return fmt.Sprintf("THROW_STONE(%d,%d)", a.Pos.X, a.Pos.Y)
	case ActionStateChange:
		return fmt.Sprintf("STATE_CHANGE(%s)", a.NewBehavior)
	default:
		return a.Kind.String()
	}
}
