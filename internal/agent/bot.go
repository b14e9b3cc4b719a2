package agent

import (
	"encoding/json"
	"math/rand"

	"crawl-server/internal/engine"
	"crawl-server/pkg/api"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot is a headless autoplayer. It registers in the hub like any
// client, receives the same snapshots a human would, and answers with
// wire commands. It sees only what the snapshot shows; it never
// reaches into the engine's state.
//
// Lifecycle:
//  1. NewBot registers in the server hub and gets a private inbox.
//  2. Run, in its own goroutine, reacts to every snapshot.
//  3. decide picks the next command from the visible world alone.
type Bot struct {
	Token   string
	Service *engine.GameService
	Inbox   chan api.ServerResponse
	Rng     *rand.Rand
}

func NewBot(token string, service *engine.GameService, seed int64) *Bot {
	logger.Log.WithField("token", token).Info("Creating bot agent.")
	return &Bot{
		Token:   token,
		Service: service,
		Inbox:   service.Hub.Register(token),
		Rng:     rand.New(rand.NewSource(seed)),
	}
}

// Run drives the bot until its inbox closes. Must be started in a
// goroutine. The first INIT claims control if no human got there
// first.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.Token)

	b.Service.ProcessCommand(api.ClientCommand{Action: "INIT", Token: b.Token})

	for snapshot := range b.Inbox {
		if snapshot.State != "PLAYING" {
			logger.Log.WithFields(logrus.Fields{
				"token": b.Token,
				"state": snapshot.State,
			}).Info("Bot run finished.")
			return
		}
		b.decide(snapshot)
	}
}

// decide inspects the snapshot and sends the next command.
func (b *Bot) decide(snapshot api.ServerResponse) {
	me := b.findSelf(snapshot)
	if me == nil {
		b.send("PASS", nil)
		return
	}

	// Standing on an item: grab it.
	for _, e := range snapshot.Entities {
		if e.Kind == "ITEM" && e.Pos.X == me.Pos.X && e.Pos.Y == me.Pos.Y {
			b.send("PICKUP", nil)
			return
		}
	}

	// A visible live monster: walk into it. Adjacent steps resolve as
	// attacks on the server side.
	if target := b.nearestMonster(snapshot, me); target != nil {
		dx := sign(target.Pos.X - me.Pos.X)
		dy := sign(target.Pos.Y - me.Pos.Y)
		b.send("MOVE", api.DirectionPayload{Dx: dx, Dy: dy})
		return
	}

	// An explored exit: head for it.
	if exit := b.findExit(snapshot); exit != nil {
		dx := sign(exit.X - me.Pos.X)
		dy := sign(exit.Y - me.Pos.Y)
		if dx != 0 || dy != 0 {
			b.send("MOVE", api.DirectionPayload{Dx: dx, Dy: dy})
			return
		}
	}

	// Nothing interesting: wander.
	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	d := dirs[b.Rng.Intn(len(dirs))]
	b.send("MOVE", api.DirectionPayload{Dx: d[0], Dy: d[1]})
}

func (b *Bot) findSelf(snapshot api.ServerResponse) *api.EntityView {
	for i := range snapshot.Entities {
		if snapshot.Entities[i].ID == snapshot.MyEntityID {
			return &snapshot.Entities[i]
		}
	}
	return nil
}

func (b *Bot) nearestMonster(snapshot api.ServerResponse, me *api.EntityView) *api.EntityView {
	var best *api.EntityView
	bestDist := 1 << 30

	for i := range snapshot.Entities {
		e := &snapshot.Entities[i]
		if e.Kind != "MONSTER" {
			continue
		}
		if e.Stats != nil && e.Stats.IsDead {
			continue
		}
		dx, dy := e.Pos.X-me.Pos.X, e.Pos.Y-me.Pos.Y
		dist := dx*dx + dy*dy
		if dist < bestDist {
			bestDist = dist
			best = e
		}
	}
	return best
}

func (b *Bot) findExit(snapshot api.ServerResponse) *api.TileView {
	for i := range snapshot.Map {
		if snapshot.Map[i].Symbol == ">" {
			return &snapshot.Map[i]
		}
	}
	return nil
}

func (b *Bot) send(action string, payload interface{}) {
	cmd := api.ClientCommand{Action: action, Token: b.Token}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Log.WithError(err).Warn("Bot payload marshal failed.")
			return
		}
		cmd.Payload = raw
	}

	b.Service.ProcessCommand(cmd)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
