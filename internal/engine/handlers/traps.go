package handlers

import (
	"crawl-server/internal/domain"
)

// HandleSpikeTrap hurts whoever stepped on the spikes. Triggering
// spends the trap; the end-of-turn sweep removes it.
func HandleSpikeTrap(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	trap := msg.Entity
	victim := msg.Target

	ents.NeedsRemoval[trap] = true

	fighter, ok := ents.Fighter[victim]
	if !ok {
		return nil
	}

	damage := ctx.Config.SpikeDamage
	if ctx.Settings.GodMode && ents.Kind[victim] == domain.KindPlayer {
		damage = 0
	}

	if fighter.TakeDamage(damage) {
		ctx.Log.Log(domain.KilledMsg(msg.Entity, victim, damage))
	}
	return nil
}

// HandleSoundTrap rings a noise from the trap's tile, betraying the
// entity that sprang it.
func HandleSoundTrap(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	pos, ok := ents.Pos[msg.Entity]
	if !ok {
		return nil
	}
	spawnSound(ctx, pos, ctx.Config.SoundRadiusStone)
	return nil
}
