package engine

import (
	"fmt"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Resolver maps each message kind to its handler and drains the
// unresolved queue to a fixed point. Handlers enqueue follow-on
// messages freely; the loop runs until nothing is pending. There is no
// termination guard, so handlers must not emit unbounded cascades.
type Resolver struct {
	handlers map[domain.MsgKind]handlers.HandlerFunc
}

// NewResolver returns a resolver with every message kind wired.
func NewResolver() *Resolver {
	r := &Resolver{handlers: make(map[domain.MsgKind]handlers.HandlerFunc)}

	r.Register(domain.MsgAction, handlers.HandleAction)
	r.Register(domain.MsgMoved, handlers.HandleMoved)
	r.Register(domain.MsgAttack, handlers.HandleAttack)
	r.Register(domain.MsgKilled, handlers.HandleKilled)
	r.Register(domain.MsgSpikeTrapTriggered, handlers.HandleSpikeTrap)
	r.Register(domain.MsgSoundTrapTriggered, handlers.HandleSoundTrap)
	r.Register(domain.MsgStoneThrow, handlers.HandleStoneThrow)
	r.Register(domain.MsgYell, handlers.HandleYell)
	r.Register(domain.MsgChangeLevel, handlers.HandleChangeLevel)

	return r
}

// Register binds a handler to a message kind, replacing any previous
// binding.
func (r *Resolver) Register(kind domain.MsgKind, fn handlers.HandlerFunc) {
	r.handlers[kind] = fn
}

// ResolveAll pops and resolves pending messages one at a time until
// the queue is empty. Each successfully handled message moves to the
// turn record for observers.
func (r *Resolver) ResolveAll(ctx handlers.Context) error {
	for {
		msg, ok := ctx.Log.Pop()
		if !ok {
			return nil
		}

		fn, ok := r.handlers[msg.Kind]
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"component": "resolver",
				"kind":      msg.Kind.String(),
			}).Warn("No handler registered for message kind.")
			continue
		}

		if err := fn(ctx, msg); err != nil {
			return fmt.Errorf("resolve %s: %w", msg.Kind, err)
		}

		ctx.Log.Resolved(msg)
	}
}
