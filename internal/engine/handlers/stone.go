package handlers

import (
	"crawl-server/internal/domain"
	"crawl-server/internal/systems"
)

// HandleStoneThrow moves the stone from the thrower's inventory to its
// landing tile and raises a noise there.
func HandleStoneThrow(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	thrower := msg.Entity
	stone := msg.Target

	if !ents.Contains(thrower) || !ents.Contains(stone) {
		return nil
	}

	systems.DropAt(ents, thrower, stone, msg.Dest)
	spawnSound(ctx, msg.Dest, ctx.Config.SoundRadiusStone)
	return nil
}
