package handlers

import (
	"crawl-server/internal/domain"
)

// HandleYell raises a loud noise centered on the yell position.
func HandleYell(ctx Context, msg domain.Msg) error {
	spawnSound(ctx, msg.Pos, ctx.Config.YellRadius)
	return nil
}
