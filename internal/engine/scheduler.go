package engine

import (
	"fmt"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
	"crawl-server/internal/systems"
)

// stepLogic advances the world by one full turn: the player's action
// resolves to a fixed point, then every AI entity takes its turn in
// stable store order, then corpses and expired timers are swept and
// the player's field of view is refreshed.
func (g *Game) stepLogic(playerAction domain.Action) error {
	ents := g.Data.Entities
	ctx := g.handlerContext()

	player, err := ents.FindPlayer()
	if err != nil {
		return fmt.Errorf("step logic: %w", err)
	}

	g.Settings.TurnCount++
	prevPos := ents.Pos[player]

	if mom := ents.Momentum[player]; mom != nil {
		mom.TookHalfTurn = false
	}

	// Phase 1: the player acts first, and every knock-on effect
	// resolves before any AI sees the world.
	g.Log.Log(domain.ActionMsg(player, playerAction))
	if err := g.resolver.ResolveAll(ctx); err != nil {
		return err
	}

	// Phase 2: AI turns in stable insertion order, skipped entirely
	// once the player is dead. The order is a published contract; it
	// keeps runs reproducible for a seed. The ID list is snapshotted
	// because resolution can remove entities.
	if ents.Alive[player] {
		ids := append([]domain.EntityID(nil), ents.IDs()...)
		for _, id := range ids {
			if !ents.Contains(id) {
				continue
			}
			if _, ok := ents.AI[id]; !ok {
				continue
			}
			if _, ok := ents.Fighter[id]; !ok {
				continue
			}
			if !ents.Alive[id] {
				continue
			}

			for _, act := range systems.TakeTurn(g.Data, g.Config, id) {
				g.Log.Log(domain.ActionMsg(id, act))
			}
			if err := g.resolver.ResolveAll(ctx); err != nil {
				return err
			}
		}
	}

	// Phase 3: a dead player ends the run.
	if !ents.Alive[player] {
		g.Settings.State = domain.StateLose
	}

	// Phase 4: sweep countdowns and flagged corpses.
	g.sweep()

	// Phase 5: the player's view follows their movement.
	if pos := ents.Pos[player]; pos != prevPos {
		systems.RecomputeFOV(g.Data.Map, pos, g.Config.FovRadiusPlayer)
		g.Settings.PreviousPlayerPos = prevPos
	}

	return nil
}

// sweep decrements countdown timers and removes entities whose time is
// up or whose removal flag is set, as long as no animation still needs
// them. It snapshots the ID list itself so entities spawned at any
// point in the turn are covered.
func (g *Game) sweep() {
	ents := g.Data.Entities

	ids := append([]domain.EntityID(nil), ents.IDs()...)
	for _, id := range ids {
		if !ents.Contains(id) {
			continue
		}

		if cd, ok := ents.CountDown[id]; ok {
			cd--
			if cd <= 0 {
				ents.Remove(id)
				continue
			}
			ents.CountDown[id] = cd
		}

		if ents.NeedsRemoval[id] && ents.Animations[id] == 0 {
			ents.Remove(id)
		}
	}
}

func (g *Game) handlerContext() handlers.Context {
	return handlers.Context{
		Data:     g.Data,
		Settings: g.Settings,
		Config:   g.Config,
		Log:      g.Log,
		Rng:      g.Rng,
	}
}
