package dungeon

import (
	"crawl-server/internal/domain"
)

// MonsterTemplate describes one monster kind. Stats come from the
// gameplay config at spawn time so tuning lives in one place; the
// template fixes shape and appearance.
type MonsterTemplate struct {
	Name        string
	Chr         rune
	Color       domain.Color
	MoveReach   domain.Reach
	AttackReach domain.Reach
}

// MonsterTemplates is the monster bestiary. Gols lumber along the
// cardinal axes; elves skitter diagonally.
var MonsterTemplates = map[string]MonsterTemplate{
	"gol": {
		Name:        "gol",
		Chr:         'G',
		Color:       domain.Color{R: 220, G: 60, B: 60, A: 255},
		MoveReach:   domain.Reach{Kind: domain.ReachHoriz, Dist: 1},
		AttackReach: domain.Reach{Kind: domain.ReachHoriz, Dist: 1},
	},
	"elf": {
		Name:        "elf",
		Chr:         'e',
		Color:       domain.Color{R: 90, G: 200, B: 90, A: 255},
		MoveReach:   domain.Reach{Kind: domain.ReachDiag, Dist: 1},
		AttackReach: domain.Reach{Kind: domain.ReachDiag, Dist: 1},
	},
}

// Spawn inserts a monster from the template with stats drawn from the
// config. Every monster starts idle with a blank awareness map.
func (t MonsterTemplate) Spawn(ents *domain.Store, cfg *domain.Config, pos domain.Position, mapWidth, mapHeight int) domain.EntityID {
	hp, power, defense := cfg.GolHP, cfg.GolPower, cfg.GolDefense
	if t.Name == "elf" {
		hp, power, defense = cfg.ElfHP, cfg.ElfPower, cfg.ElfDefense
	}

	id := ents.Insert(domain.KindMonster, t.Name, t.Chr, t.Color, pos, true)
	ents.Fighter[id] = &domain.Fighter{MaxHP: hp, HP: hp, Power: power, Defense: defense}
	ents.Alive[id] = true
	ents.AI[id] = domain.AIBasic
	ents.Behavior[id] = domain.Idle()
	ents.Movement[id] = t.MoveReach
	ents.Attack[id] = t.AttackReach
	ents.Awareness[id] = domain.NewAwarenessMap(mapWidth, mapHeight)
	return id
}
