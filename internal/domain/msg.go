package domain

import "fmt"

// MsgKind - internal numeric identifier for a message.
type MsgKind uint8

const (
	MsgUnknown MsgKind = iota
	MsgAction
	MsgMoved
	MsgAttack
	MsgKilled
	MsgSpikeTrapTriggered
	MsgSoundTrapTriggered
	MsgStoneThrow
	MsgYell
	MsgChangeLevel
)

var msgKindToString = map[MsgKind]string{
	MsgAction:             "ACTION",
	MsgMoved:              "MOVED",
	MsgAttack:             "ATTACK",
	MsgKilled:             "KILLED",
	MsgSpikeTrapTriggered: "SPIKE_TRAP",
	MsgSoundTrapTriggered: "SOUND_TRAP",
	MsgStoneThrow:         "STONE_THROW",
	MsgYell:               "YELL",
	MsgChangeLevel:        "CHANGE_LEVEL",
}

func (k MsgKind) String() string {
	if val, ok := msgKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Msg - tagged union over everything that can happen during
// resolution. One handler exists per kind; the single vocabulary keeps
// all cascading effects visible in the turn log.
//
// Field use per kind:
//
//	Action:    Entity (actor), Action (intent)
//	Moved:     Entity, Movement (kind + resulting position)
//	Attack:    Entity (attacker), Target, Damage
//	Killed:    Entity (killer), Target (victim), Damage
//	SpikeTrap: Entity (trap), Target (victim)
//	SoundTrap: Entity (trap), Target (sound source)
//	StoneThrow: Entity (thrower), Target (stone), Pos (start), Dest (end)
//	Yell:      Pos
//	ChangeLevel: no fields
type Msg struct {
	Kind     MsgKind  `json:"kind"`
	Entity   EntityID `json:"entity,omitempty"`
	Target   EntityID `json:"target,omitempty"`
	Action   Action   `json:"action,omitempty"`
	Movement Movement `json:"movement,omitempty"`
	Pos      Position `json:"pos,omitempty"`
	Dest     Position `json:"dest,omitempty"`
	Damage   int      `json:"damage,omitempty"`
}

func ActionMsg(id EntityID, action Action) Msg {
	return Msg{Kind: MsgAction, Entity: id, Action: action}
}

func MovedMsg(id EntityID, movement Movement) Msg {
	return Msg{Kind: MsgMoved, Entity: id, Movement: movement, Pos: movement.Pos}
}

func AttackMsg(attacker, target EntityID, damage int) Msg {
	return Msg{Kind: MsgAttack, Entity: attacker, Target: target, Damage: damage}
}

func KilledMsg(killer, victim EntityID, damage int) Msg {
	return Msg{Kind: MsgKilled, Entity: killer, Target: victim, Damage: damage}
}

func SpikeTrapMsg(trap, victim EntityID) Msg {
	return Msg{Kind: MsgSpikeTrapTriggered, Entity: trap, Target: victim}
}

func SoundTrapMsg(trap, source EntityID) Msg {
	return Msg{Kind: MsgSoundTrapTriggered, Entity: trap, Target: source}
}

func StoneThrowMsg(thrower, stone EntityID, start, end Position) Msg {
	return Msg{Kind: MsgStoneThrow, Entity: thrower, Target: stone, Pos: start, Dest: end}
}

func YellMsg(pos Position) Msg {
	return Msg{Kind: MsgYell, Pos: pos}
}

func ChangeLevelMsg() Msg {
	return Msg{Kind: MsgChangeLevel}
}

// Line renders a human-readable log line, resolving names through the
// store when available.
func (m Msg) Line(store *Store) string {
	name := func(id EntityID) string {
		if n, ok := store.Name[id]; ok {
			return n
		}
		return id.String()
	}

	switch m.Kind {
	case MsgAction:
		return fmt.Sprintf("%s intends %s", name(m.Entity), m.Action)
	case MsgMoved:
		return fmt.Sprintf("%s %s to (%d,%d)", name(m.Entity), m.Movement.Kind, m.Pos.X, m.Pos.Y)
	case MsgAttack:
		return fmt.Sprintf("%s attacks %s for %d hit points", name(m.Entity), name(m.Target), m.Damage)
	case MsgKilled:
		return fmt.Sprintf("%s kills %s", name(m.Entity), name(m.Target))
	case MsgSpikeTrapTriggered:
		return fmt.Sprintf("%s steps on spikes", name(m.Target))
	case MsgSoundTrapTriggered:
		return fmt.Sprintf("a loud click echoes around %s", name(m.Target))
	case MsgStoneThrow:
		return fmt.Sprintf("%s throws a stone to (%d,%d)", name(m.Entity), m.Dest.X, m.Dest.Y)
	case MsgYell:
		return fmt.Sprintf("a yell rings out at (%d,%d)", m.Pos.X, m.Pos.Y)
	case MsgChangeLevel:
		return "the level changes"
	}
	return "unknown message"
}
