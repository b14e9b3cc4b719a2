package handlers

import (
	"crawl-server/internal/domain"
)

// HandleChangeLevel flags the level transition. Regeneration and the
// win check happen at the game layer once the turn resolves.
func HandleChangeLevel(ctx Context, msg domain.Msg) error {
	ctx.Settings.ChangeLevel = true
	return nil
}
