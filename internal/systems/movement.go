package systems

import (
	"crawl-server/internal/domain"
)

// CalculateMove classifies an attempted move in direction (dx, dy) for
// the given entity. It inspects the world but never mutates it; the
// returned Movement is what the Moved handler applies.
//
// Classification, in order of checking along the path:
//   - Attack: a hostile fighter blocks the next tile.
//   - JumpWall: a short thin wall blocks the edge but the mover is
//     running with momentum aligned to the attempt, vaulting it.
//   - WallKick: terrain blocks a straight running move but a diagonal
//     slide around the obstacle is open.
//   - Collide: blocked with no escape. Position halts short.
//   - Move: the full reach was walked without obstruction.
//   - Pass: the attempt was empty or outside the entity's reach shape.
func CalculateMove(data *domain.GameData, id domain.EntityID, dx, dy int) domain.Movement {
	ents := data.Entities
	m := data.Map

	start := ents.Pos[id]
	dir := domain.Position{X: dx, Y: dy}

	if dx == 0 && dy == 0 {
		return domain.Movement{Kind: domain.MovePass, Pos: start}
	}

	reach := moveReach(ents, id)
	if !reach.Contains(dx, dy) {
		return domain.Movement{Kind: domain.MovePass, Pos: start}
	}

	mom := ents.Momentum[id]
	running := mom != nil && mom.Running()

	pos := start
	for step := 1; step <= reach.Dist; step++ {
		next := pos.Shift(dx, dy)
		wall := m.WallBetween(pos, next)
		terrain := m.IsBlocked(next)

		if terrain || wall != domain.WallEmpty {
			if wall == domain.WallShort && !terrain &&
				running && alignedWithMomentum(mom, dx, dy) &&
				ents.BlockingEntityAt(next) == domain.NoEntity {
				return domain.Movement{Kind: domain.MoveJumpWall, Pos: next, Dir: dir}
			}
			if running {
				if kick, ok := wallKickTile(data, id, pos, dx, dy); ok {
					return domain.Movement{Kind: domain.MoveWallKick, Pos: kick, Dir: dir}
				}
			}
			return domain.Movement{Kind: domain.MoveCollide, Pos: pos, Dir: dir}
		}

		if blocker := ents.BlockingEntityAt(next); blocker != domain.NoEntity && blocker != id {
			if hostile(ents, id, blocker) {
				return domain.Movement{Kind: domain.MoveAttack, Pos: pos, Target: blocker, Dir: dir}
			}
			return domain.Movement{Kind: domain.MoveCollide, Pos: pos, Dir: dir}
		}

		pos = next
	}

	return domain.Movement{Kind: domain.MoveMove, Pos: pos, Dir: dir}
}

// moveReach picks the entity's movement shape. A move mode, when
// present, overrides the static movement reach so running extends it.
func moveReach(ents *domain.Store, id domain.EntityID) domain.Reach {
	if mode, ok := ents.MoveModes[id]; ok {
		return mode.MoveReach()
	}
	if reach, ok := ents.Movement[id]; ok {
		return reach
	}
	return domain.Reach{Kind: domain.ReachSingle, Dist: 1}
}

// hostile reports whether a bump should resolve as an attack. Both
// sides must be fighters and of different kinds; same-kind entities
// simply block each other.
func hostile(ents *domain.Store, attacker, blocker domain.EntityID) bool {
	if _, ok := ents.Fighter[blocker]; !ok {
		return false
	}
	if _, ok := ents.Fighter[attacker]; !ok {
		return false
	}
	return ents.Kind[attacker] != ents.Kind[blocker]
}

// alignedWithMomentum reports whether the attempted direction agrees
// with the built-up momentum on every axis.
func alignedWithMomentum(mom *domain.Momentum, dx, dy int) bool {
	return domain.Sign(mom.Mx) == domain.Sign(dx) && domain.Sign(mom.My) == domain.Sign(dy)
}

// wallKickTile finds the diagonal slide tile for a blocked straight
// running move. Only cardinal attempts kick; the two perpendicular
// candidates are tried in a fixed order so the outcome is
// deterministic.
func wallKickTile(data *domain.GameData, id domain.EntityID, pos domain.Position, dx, dy int) (domain.Position, bool) {
	if dx != 0 && dy != 0 {
		return domain.Position{}, false
	}

	perps := [2][2]int{{-dy, dx}, {dy, -dx}}
	for _, p := range perps {
		diag := pos.Shift(dx+p[0], dy+p[1])
		if data.Map.IsBlocked(diag) {
			continue
		}
		if data.Map.WallBetween(pos, diag) != domain.WallEmpty {
			continue
		}
		if blocker := data.Entities.BlockingEntityAt(diag); blocker != domain.NoEntity && blocker != id {
			continue
		}
		return diag, true
	}
	return domain.Position{}, false
}
