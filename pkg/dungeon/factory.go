package dungeon

import (
	"crawl-server/internal/domain"
)

// createPlayer inserts the player entity with default starting gear:
// full health from the config, walking pace, and one stone to throw.
func createPlayer(ents *domain.Store, cfg *domain.Config, pos domain.Position) domain.EntityID {
	player := ents.Insert(domain.KindPlayer, "player", '@', cfg.ColorPlayer, pos, true)
	ents.Fighter[player] = &domain.Fighter{
		MaxHP:   cfg.PlayerHP,
		HP:      cfg.PlayerHP,
		Power:   cfg.PlayerPower,
		Defense: cfg.PlayerDefense,
	}
	ents.Alive[player] = true
	mom := domain.NewMomentum(cfg.MomentumMax)
	ents.Momentum[player] = &mom
	ents.MoveModes[player] = domain.MoveWalk
	ents.Attack[player] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}

	stone := ents.Insert(domain.KindItem, "stone", 'o', domain.Color{R: 160, G: 160, B: 160, A: 255}, domain.Position{}, false)
	delete(ents.Pos, stone)
	ents.Item[stone] = domain.ItemStone
	ents.Inventory[player] = append(ents.Inventory[player], stone)

	return player
}
