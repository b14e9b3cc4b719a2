package domain

// MovementKind classifies the outcome of an attempted move.
type MovementKind uint8

const (
	// MoveMove - destination empty, position changes.
	MoveMove MovementKind = iota
	// MoveAttack - destination holds a blocking hostile fighter.
	MoveAttack
	// MoveCollide - terrain blocks, position unchanged, momentum lost.
	MoveCollide
	// MoveWallKick - straight path blocked but a running entity slides
	// diagonally past the wall.
	MoveWallKick
	// MoveJumpWall - a thin wall is vaulted while running.
	MoveJumpWall
	// MovePass - the entity stayed in place on purpose.
	MovePass
)

func (k MovementKind) String() string {
	switch k {
	case MoveMove:
		return "MOVE"
	case MoveAttack:
		return "ATTACK"
	case MoveCollide:
		return "COLLIDE"
	case MoveWallKick:
		return "WALL_KICK"
	case MoveJumpWall:
		return "JUMP_WALL"
	case MovePass:
		return "PASS"
	}
	return "UNKNOWN"
}

// Movement - the positional result of an attempted move. Pos is where
// the entity ends up (for Collide and Pass it equals the current
// position). Target is set for Attack, Dir for WallKick.
type Movement struct {
	Kind   MovementKind `json:"kind"`
	Pos    Position     `json:"pos"`
	Target EntityID     `json:"target,omitempty"`
	Dir    Position     `json:"dir,omitempty"`
}
