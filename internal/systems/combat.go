package systems

import (
	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackDamage computes the damage of a melee strike: the attacker's
// power less the target's defense, floored at zero. Zero is a valid
// outcome; an over-armored target simply shrugs the hit off.
func AttackDamage(ents *domain.Store, attacker, target domain.EntityID) int {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"attacker":  attacker.String(),
		"target":    target.String(),
	})

	af, ok := ents.Fighter[attacker]
	if !ok {
		combatLogger.Warn("Attack by a non-fighter deals no damage.")
		return 0
	}
	tf, ok := ents.Fighter[target]
	if !ok {
		combatLogger.Warn("Attack against a non-fighter deals no damage.")
		return 0
	}

	damage := af.Power - tf.Defense
	if damage < 0 {
		damage = 0
	}

	combatLogger.WithFields(logrus.Fields{
		"power":   af.Power,
		"defense": tf.Defense,
		"damage":  damage,
	}).Debug("Strike resolved.")

	return damage
}
