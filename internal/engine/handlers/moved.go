package handlers

import (
	"crawl-server/internal/domain"
)

// HandleMoved applies a classified movement: position, momentum,
// movement noise, and any traps on the destination tile.
func HandleMoved(ctx Context, msg domain.Msg) error {
	ents := ctx.Data.Entities
	actor := msg.Entity
	mv := msg.Movement

	if !ents.Contains(actor) {
		return nil
	}

	from := ents.Pos[actor]
	ents.Pos[actor] = mv.Pos

	if mom := ents.Momentum[actor]; mom != nil {
		switch mv.Kind {
		case domain.MoveCollide:
			mom.Clear()
		case domain.MoveMove, domain.MoveWallKick, domain.MoveJumpWall:
			mom.Moved(mv.Dir.X, mv.Dir.Y)
			if mom.AtMaximum() && ents.MoveModes[actor] == domain.MoveRun {
				mom.TookHalfTurn = true
			}
		}
	}

	if mv.Pos == from {
		return nil
	}

	// Footsteps. Loudness follows the mover's pace.
	mode := domain.MoveWalk
	if m, ok := ents.MoveModes[actor]; ok {
		mode = m
	}
	spawnSound(ctx, mv.Pos, ctx.Config.SoundRadius(mode))

	// Stepping on a trap springs it.
	for _, other := range ents.EntitiesAt(mv.Pos) {
		trap, ok := ents.Trap[other]
		if !ok || other == actor {
			continue
		}
		switch trap {
		case domain.TrapSpike:
			ctx.Log.Log(domain.SpikeTrapMsg(other, actor))
		case domain.TrapSound:
			ctx.Log.Log(domain.SoundTrapMsg(other, actor))
		}
	}

	// The player reaching the stairs ends the level.
	if ents.Kind[actor] == domain.KindPlayer && ctx.Data.Map.At(mv.Pos).Type == domain.TileExit {
		ctx.Log.Log(domain.ChangeLevelMsg())
	}

	return nil
}
