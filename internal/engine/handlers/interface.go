package handlers

import (
	"math/rand"

	"crawl-server/internal/domain"
)

// Context carries the shared mutable state a resolution handler works
// on. References are passed so handlers can mutate the world; all
// world mutation during a turn happens inside handlers.
type Context struct {
	Data     *domain.GameData
	Settings *domain.GameSettings
	Config   *domain.Config
	Log      *domain.MsgLog
	Rng      *rand.Rand
}

// HandlerFunc is the contract for resolving one message kind. A
// handler may enqueue follow-on messages on ctx.Log; the resolver
// keeps draining until the queue reaches a fixed point.
type HandlerFunc func(ctx Context, msg domain.Msg) error
