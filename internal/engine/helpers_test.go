package engine

import (
	"math/rand"

	"crawl-server/internal/domain"
)

// testGame builds a game on a hand-made open map instead of a
// generated level, so scenarios control exactly what is where.
func testGame(width, height int) *Game {
	m := domain.NewMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				m.Tiles[y][x].Blocked = true
				m.Tiles[y][x].BlockSight = true
				m.Tiles[y][x].Type = domain.TileWall
			}
		}
	}

	return &Game{
		Data:     domain.NewGameData(m, domain.NewStore()),
		Settings: domain.NewGameSettings(),
		Config:   domain.DefaultConfig(),
		Log:      domain.NewMsgLog(),
		Rng:      rand.New(rand.NewSource(1)),
		Seed:     1,
		resolver: NewResolver(),
	}
}

func addPlayer(g *Game, pos domain.Position) domain.EntityID {
	ents := g.Data.Entities
	id := ents.Insert(domain.KindPlayer, "player", '@', domain.Color{}, pos, true)
	ents.Fighter[id] = &domain.Fighter{MaxHP: 30, HP: 30, Power: 5, Defense: 2}
	ents.Alive[id] = true
	mom := domain.NewMomentum(2)
	ents.Momentum[id] = &mom
	ents.MoveModes[id] = domain.MoveWalk
	ents.Attack[id] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}
	return id
}

func addMonster(g *Game, name string, pos domain.Position) domain.EntityID {
	ents := g.Data.Entities
	id := ents.Insert(domain.KindMonster, name, 'g', domain.Color{}, pos, true)
	ents.Fighter[id] = &domain.Fighter{MaxHP: 10, HP: 10, Power: 4, Defense: 1}
	ents.Alive[id] = true
	ents.AI[id] = domain.AIBasic
	ents.Behavior[id] = domain.Idle()
	ents.Movement[id] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}
	ents.Attack[id] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}
	ents.Awareness[id] = domain.NewAwarenessMap(g.Data.Map.Width, g.Data.Map.Height)
	return id
}

func addSpikeTrap(g *Game, pos domain.Position) domain.EntityID {
	ents := g.Data.Entities
	id := ents.Insert(domain.KindTrap, "spike trap", '^', domain.Color{}, pos, false)
	ents.Trap[id] = domain.TrapSpike
	return id
}

func addGoalItem(g *Game, pos domain.Position) domain.EntityID {
	ents := g.Data.Entities
	id := ents.Insert(domain.KindItem, "amulet", '*', domain.Color{}, pos, false)
	ents.Item[id] = domain.ItemGoal
	return id
}

func countKind(g *Game, kind domain.EntityKind) int {
	n := 0
	for _, id := range g.Data.Entities.IDs() {
		if g.Data.Entities.Kind[id] == kind {
			n++
		}
	}
	return n
}
