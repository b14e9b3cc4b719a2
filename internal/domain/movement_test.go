package domain

import "testing"

func TestMovementKindString(t *testing.T) {
	cases := []struct {
		kind MovementKind
		want string
	}{
		{MoveMove, "MOVE"},
		{MoveAttack, "ATTACK"},
		{MoveCollide, "COLLIDE"},
		{MoveWallKick, "WALL_KICK"},
		{MoveJumpWall, "JUMP_WALL"},
		{MovePass, "PASS"},
		{MovementKind(99), "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("MovementKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
