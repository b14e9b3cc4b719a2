package handlers

import (
	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleAttack applies pre-computed damage to the victim and emits
// Killed when the hit is lethal.
func HandleAttack(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	victim := msg.Target

	fighter, ok := ents.Fighter[victim]
	if !ok {
		return nil
	}

	damage := msg.Damage
	if ctx.Settings.GodMode && ents.Kind[victim] == domain.KindPlayer {
		damage = 0
	}

	died := fighter.TakeDamage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component": "resolver",
		"attacker":  msg.Entity.String(),
		"victim":    victim.String(),
		"damage":    damage,
		"hp_after":  fighter.HP,
	}).Debug("Attack applied.")

	if died {
		ctx.Log.Log(domain.KilledMsg(msg.Entity, victim, damage))
	}
	return nil
}
