package systems

import (
	"crawl-server/internal/domain"
)

// testWorld builds an open map of the given size with a solid border
// wall, plus an empty entity store.
func testWorld(width, height int) *domain.GameData {
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
	return domain.NewGameData(m, domain.NewStore())
}

func spawnPlayer(data *domain.GameData, pos domain.Position) domain.EntityID {
	id := data.Entities.Insert(domain.KindPlayer, "player", '@', domain.Color{}, pos, true)
	data.Entities.Fighter[id] = &domain.Fighter{MaxHP: 30, HP: 30, Power: 5, Defense: 2}
	data.Entities.Alive[id] = true
	mom := domain.NewMomentum(2)
	data.Entities.Momentum[id] = &mom
	data.Entities.MoveModes[id] = domain.MoveWalk
	data.Entities.Attack[id] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}
	return id
}

func spawnMonster(data *domain.GameData, name string, pos domain.Position) domain.EntityID {
	id := data.Entities.Insert(domain.KindMonster, name, 'g', domain.Color{}, pos, true)
	data.Entities.Fighter[id] = &domain.Fighter{MaxHP: 10, HP: 10, Power: 4, Defense: 1}
	data.Entities.Alive[id] = true
	data.Entities.AI[id] = domain.AIBasic
	data.Entities.Behavior[id] = domain.Idle()
	data.Entities.Movement[id] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}
	data.Entities.Attack[id] = domain.Reach{Kind: domain.ReachSingle, Dist: 1}
	data.Entities.Awareness[id] = domain.NewAwarenessMap(data.Map.Width, data.Map.Height)
	return id
}
