package handlers

import (
	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleKilled finalizes a death. The corpse stays in the store as a
// passable glyph until the end-of-turn sweep removes it; the player's
// corpse is kept so the loss can be observed.
func HandleKilled(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	victim := msg.Target

	if !ents.Contains(victim) {
		return nil
	}

	ents.Alive[victim] = false
	ents.Blocks[victim] = false
	ents.Chr[victim] = '%'
	ents.Color[victim] = ctx.Config.ColorDead

	delete(ents.AI, victim)
	delete(ents.Behavior, victim)
	delete(ents.Awareness, victim)
	delete(ents.Momentum, victim)
	delete(ents.MoveModes, victim)

	if ents.Kind[victim] != domain.KindPlayer {
		delete(ents.Fighter, victim)
		ents.NeedsRemoval[victim] = true
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "resolver",
		"killer":    msg.Entity.String(),
		"victim":    victim.String(),
		"damage":    msg.Damage,
	}).Info("Entity killed.")

	return nil
}
