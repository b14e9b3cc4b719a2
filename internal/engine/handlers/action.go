package handlers

import (
	"crawl-server/internal/domain"
	"crawl-server/internal/systems"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleAction interprets an entity's intent and dispatches it. Intents
// that change the world do so by enqueueing follow-on messages; the
// only direct mutations here are the ones with no observable
// intermediate state (behavior changes, pickups).
func HandleAction(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	actor := msg.Entity
	act := msg.Action

	if !ents.Contains(actor) {
		// The actor died earlier in this same turn.
		return nil
	}

	switch act.Kind {
	case domain.ActionNone, domain.ActionPass:
		return nil

	case domain.ActionMove:
		mv := systems.CalculateMove(ctx.Data, actor, act.Dir.X, act.Dir.Y)
		switch mv.Kind {
		case domain.MovePass:
			return nil
		case domain.MoveAttack:
			damage := systems.AttackDamage(ents, actor, mv.Target)
			ctx.Log.Log(domain.AttackMsg(actor, mv.Target, damage))
			return nil
		default:
			ctx.Log.Log(domain.MovedMsg(actor, mv))
			return nil
		}

	case domain.ActionAttack:
		if !ents.Contains(act.Target) {
			return nil
		}
		damage := systems.AttackDamage(ents, actor, act.Target)
		ctx.Log.Log(domain.AttackMsg(actor, act.Target, damage))
		return nil

	case domain.ActionPickup:
		if item, ok := systems.PickUp(ents, actor); ok {
			logger.Log.WithFields(logrus.Fields{
				"component": "resolver",
				"entity":    actor.String(),
				"item":      ents.Name[item],
			}).Debug("Item picked up.")
		}
		return nil

	case domain.ActionThrowStone:
		stone := carriedStone(ents, actor)
		if stone == domain.NoEntity {
			return nil
		}
		start := ents.Pos[actor]
		landing := systems.ThrowTarget(ctx.Data, start, act.Pos, ctx.Config.ThrowDist)
		if landing == start {
			return nil
		}
		ctx.Log.Log(domain.StoneThrowMsg(actor, stone, start, landing))
		return nil

	case domain.ActionYell:
		ctx.Log.Log(domain.YellMsg(ents.Pos[actor]))
		return nil

	case domain.ActionStateChange:
		ents.Behavior[actor] = act.NewBehavior
		return nil
	}

	return nil
}

func carriedStone(ents *domain.Store, holder domain.EntityID) domain.EntityID {
	for _, carried := range ents.Inventory[holder] {
		if tag, ok := ents.Item[carried]; ok && tag == domain.ItemStone {
			return carried
		}
	}
	return domain.NoEntity
}
