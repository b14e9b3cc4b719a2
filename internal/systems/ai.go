package systems

import (
	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TakeTurn produces the turn-plan for one AI entity: an ordered list
// of intended actions derived from its behavior state, its awareness
// map, and what it can currently see and hear. The plan mutates
// nothing except the entity's own awareness grid; every world change
// goes through Action messages resolved elsewhere.
func TakeTurn(data *domain.GameData, cfg *domain.Config, id domain.EntityID) []domain.Action {
	ents := data.Entities

	behavior, ok := ents.Behavior[id]
	if !ok {
		return nil
	}

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_engine",
		"entity":    id.String(),
		"behavior":  behavior.String(),
	})

	player, err := ents.FindPlayer()
	if err != nil {
		return []domain.Action{domain.PassAction()}
	}
	if f, ok := ents.Fighter[player]; ok && f.HP <= 0 {
		// Nothing left to hunt.
		if behavior.Kind != domain.BehaviorIdle {
			return []domain.Action{domain.StateChangeAction(domain.Idle())}
		}
		return []domain.Action{domain.PassAction()}
	}

	npcPos := ents.Pos[id]
	playerPos := ents.Pos[player]

	canSee := npcPos.DistanceTo(playerPos) <= float64(cfg.FovRadiusMonster) &&
		HasLineOfSight(data.Map, npcPos, playerPos)

	if aware := ents.Awareness[id]; aware != nil {
		if canSee {
			aware.ExpectedPosition(playerPos)
		} else {
			aware.Disperse(data.Map, cfg.DisperseRate)
		}
	}

	heard, soundPos := hearsSound(ents, npcPos)

	switch behavior.Kind {
	case domain.BehaviorIdle:
		if canSee {
			aiLogger.WithField("player_pos", playerPos).Debug("Glimpsed the player, investigating.")
			return []domain.Action{domain.StateChangeAction(domain.Investigating(playerPos))}
		}
		if heard {
			aiLogger.WithField("sound_pos", soundPos).Debug("Heard something, investigating.")
			return []domain.Action{domain.StateChangeAction(domain.Investigating(soundPos))}
		}
		return []domain.Action{domain.PassAction()}

	case domain.BehaviorInvestigating:
		return investigate(data, cfg, id, behavior, player, canSee, heard, soundPos, aiLogger)

	case domain.BehaviorAttacking:
		return attackTurn(data, cfg, id, behavior, canSee, aiLogger)
	}

	return []domain.Action{domain.PassAction()}
}

func investigate(data *domain.GameData, cfg *domain.Config, id domain.EntityID, behavior domain.Behavior, player domain.EntityID, canSee, heard bool, soundPos domain.Position, aiLogger *logrus.Entry) []domain.Action {
	ents := data.Entities
	npcPos := ents.Pos[id]
	playerPos := ents.Pos[player]

	if canSee {
		dx := playerPos.X - npcPos.X
		dy := playerPos.Y - npcPos.Y
		if attackReach(ents, id).Contains(dx, dy) {
			aiLogger.Debug("Player in reach, switching to attack.")
			return []domain.Action{domain.StateChangeAction(domain.Attacking(player))}
		}
		// A sighting out of reach refreshes the lead and closes in.
		plan := []domain.Action{domain.StateChangeAction(domain.Investigating(playerPos))}
		if sx, sy := stepToward(data, id, playerPos); sx != 0 || sy != 0 {
			plan = append(plan, domain.MoveAction(sx, sy))
		}
		return plan
	}

	if heard && soundPos != behavior.Pos {
		return []domain.Action{domain.StateChangeAction(domain.Investigating(soundPos))}
	}

	target := behavior.Pos
	if aware := ents.Awareness[id]; aware != nil {
		if peak, weight := aware.Peak(); weight > cfg.InvestigateWeight {
			target = peak
		}
	}

	if npcPos == target {
		aiLogger.Debug("Lead exhausted, going idle.")
		return []domain.Action{domain.StateChangeAction(domain.Idle())}
	}

	sx, sy := stepToward(data, id, target)
	if sx == 0 && sy == 0 {
		// Lead unreachable.
		return []domain.Action{domain.StateChangeAction(domain.Idle())}
	}
	return []domain.Action{domain.MoveAction(sx, sy)}
}

func attackTurn(data *domain.GameData, cfg *domain.Config, id domain.EntityID, behavior domain.Behavior, canSee bool, aiLogger *logrus.Entry) []domain.Action {
	ents := data.Entities
	target := behavior.Target

	if !ents.Contains(target) {
		return []domain.Action{domain.StateChangeAction(domain.Idle())}
	}
	if f, ok := ents.Fighter[target]; ok && f.HP <= 0 {
		return []domain.Action{domain.StateChangeAction(domain.Idle())}
	}

	npcPos := ents.Pos[id]
	targetPos := ents.Pos[target]

	if !canSee {
		lastSeen := targetPos
		if aware := ents.Awareness[id]; aware != nil {
			if peak, weight := aware.Peak(); weight > 0 {
				lastSeen = peak
			}
		}
		aiLogger.WithField("last_seen", lastSeen).Debug("Lost sight of target, investigating.")
		return []domain.Action{domain.StateChangeAction(domain.Investigating(lastSeen))}
	}

	dx := targetPos.X - npcPos.X
	dy := targetPos.Y - npcPos.Y
	if attackReach(ents, id).Contains(dx, dy) {
		return []domain.Action{domain.AttackAction(target, domain.Sign(dx), domain.Sign(dy))}
	}

	// Close distance, then strike on a later turn.
	sx, sy := stepToward(data, id, targetPos)
	if sx == 0 && sy == 0 {
		return []domain.Action{domain.PassAction()}
	}
	return []domain.Action{domain.MoveAction(sx, sy)}
}

func attackReach(ents *domain.Store, id domain.EntityID) domain.Reach {
	if reach, ok := ents.Attack[id]; ok {
		return reach
	}
	return domain.Reach{Kind: domain.ReachSingle, Dist: 1}
}

// hearsSound reports whether a sound entity sits on the listener's own
// tile. Sounds whose origin is the listener's position are its own
// noise and are ignored.
func hearsSound(ents *domain.Store, npcPos domain.Position) (bool, domain.Position) {
	for _, id := range ents.IDs() {
		if ents.Kind[id] != domain.KindSound {
			continue
		}
		if ents.Pos[id] != npcPos {
			continue
		}
		origin := ents.SoundOrigin[id]
		if origin == npcPos {
			continue
		}
		return true, origin
	}
	return false, domain.Position{}
}

// stepToward picks a unit step from the entity toward goal: the direct
// diagonal first, then the longer axis, then the shorter one. Returns
// (0, 0) when every candidate is blocked.
func stepToward(data *domain.GameData, id domain.EntityID, goal domain.Position) (int, int) {
	pos := data.Entities.Pos[id]
	dxRaw := goal.X - pos.X
	dyRaw := goal.Y - pos.Y

	stepX := domain.Sign(dxRaw)
	stepY := domain.Sign(dyRaw)

	if stepX != 0 || stepY != 0 {
		if canStep(data, id, stepX, stepY) {
			return stepX, stepY
		}
	}

	tryXFirst := abs(dxRaw) > abs(dyRaw)
	if tryXFirst {
		if stepX != 0 && canStep(data, id, stepX, 0) {
			return stepX, 0
		}
		if stepY != 0 && canStep(data, id, 0, stepY) {
			return 0, stepY
		}
	} else {
		if stepY != 0 && canStep(data, id, 0, stepY) {
			return 0, stepY
		}
		if stepX != 0 && canStep(data, id, stepX, 0) {
			return stepX, 0
		}
	}

	return 0, 0
}

func canStep(data *domain.GameData, id domain.EntityID, dx, dy int) bool {
	return CalculateMove(data, id, dx, dy).Kind == domain.MoveMove
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
