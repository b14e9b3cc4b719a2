package handlers

import (
	"crawl-server/internal/domain"
	"crawl-server/internal/systems"
)

// spawnSound floods a noise from origin and drops a short-lived sound
// entity on every reached tile. Each carries the origin so a listener
// knows where to investigate, and a countdown so the sweep removes it
// after a few turns.
func spawnSound(ctx Context, origin domain.Position, radius int) {
	ents := ctx.Data.Entities
	for _, pos := range systems.AoeFill(ctx.Data.Map, origin, radius) {
		id := ents.Insert(domain.KindSound, "sound", 0, domain.Color{}, pos, false)
		ents.SoundOrigin[id] = origin
		ents.CountDown[id] = ctx.Config.SoundCountDown
	}
}
