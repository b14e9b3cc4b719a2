package engine

import (
	"fmt"
	"time"

	"crawl-server/internal/domain"
	"crawl-server/pkg/api"
	"crawl-server/pkg/utils"
)

// BuildState creates the wire snapshot of the current world: explored
// tiles, visible entities, and the messages of the last resolved turn.
// In god mode the whole map and every entity are exposed.
func (s *GameService) BuildState(snapshotType string) *api.ServerResponse {
	g := s.Game
	ents := g.Data.Entities
	m := g.Data.Map

	isGod := g.Settings.GodMode

	player, playerErr := ents.FindPlayer()

	// Map DTO: only tiles the player has ever seen.
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(domain.Position{X: x, Y: y})
			if !tile.Explored && !isGod {
				continue
			}

			symbol, color := renderTile(tile)
			mapDTO = append(mapDTO, api.TileView{
				X: x, Y: y,
				Symbol:     symbol,
				Color:      color,
				IsWall:     tile.Blocked,
				IsVisible:  tile.Visible || isGod,
				IsExplored: true,
			})
		}
	}

	// Entity DTO: the player always, the rest only on visible tiles.
	// Sound markers are bookkeeping entities and never rendered.
	var viewEntities []api.EntityView
	for _, id := range ents.IDs() {
		if ents.Kind[id] == domain.KindSound {
			continue
		}

		pos := ents.Pos[id]
		if id != player && !isGod && !m.At(pos).Visible {
			continue
		}

		viewEntities = append(viewEntities, s.toEntityView(id, id == player))
	}

	// Logs from the last resolved turn.
	var logs []api.LogEntry
	for _, msg := range g.Log.Turn() {
		line := msg.Line(ents)
		if line == "" {
			continue
		}
		logs = append(logs, api.LogEntry{
			ID:        utils.GenerateID(),
			Text:      line,
			Type:      logType(msg.Kind),
			Timestamp: time.Now().UnixMilli(),
		})
	}

	resp := &api.ServerResponse{
		Type:     snapshotType,
		Turn:     g.Settings.TurnCount,
		Depth:    g.Settings.Depth,
		State:    g.Settings.State.String(),
		Grid:     &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:      mapDTO,
		Entities: viewEntities,
		Logs:     logs,
	}
	if playerErr == nil {
		resp.MyEntityID = player.String()
	}
	return resp
}

// toEntityView converts one entity into its DTO. Full stats go out
// only for the player's own entity.
func (s *GameService) toEntityView(id domain.EntityID, isMine bool) api.EntityView {
	ents := s.Game.Data.Entities

	view := api.EntityView{
		ID:     id.String(),
		Kind:   ents.Kind[id].String(),
		Name:   ents.Name[id],
		Symbol: string(ents.Chr[id]),
		Color:  hexColor(ents.Color[id]),
	}
	view.Pos.X = ents.Pos[id].X
	view.Pos.Y = ents.Pos[id].Y

	if fighter, ok := ents.Fighter[id]; ok {
		stats := &api.StatsView{
			HP:     fighter.HP,
			MaxHP:  fighter.MaxHP,
			IsDead: !ents.Alive[id],
		}
		if isMine {
			stats.Power = fighter.Power
			stats.Defense = fighter.Defense
		}
		view.Stats = stats
	} else if !ents.Alive[id] && ents.Kind[id] == domain.KindMonster {
		view.Stats = &api.StatsView{IsDead: true}
	}

	return view
}

func renderTile(tile *domain.Tile) (string, string) {
	switch tile.Type {
	case domain.TileWall:
		return "#", "#666666"
	case domain.TileWater:
		return "~", "#3B82F6"
	case domain.TileExit:
		return ">", "#FACC15"
	}

	switch tile.Surface {
	case domain.SurfaceGrass:
		return "\"", "#4ADE80"
	case domain.SurfaceRubble:
		return ",", "#9CA3AF"
	}
	return ".", "#333333"
}

func logType(kind domain.MsgKind) string {
	switch kind {
	case domain.MsgAttack, domain.MsgKilled, domain.MsgSpikeTrapTriggered:
		return "COMBAT"
	default:
		return "INFO"
	}
}

func hexColor(c domain.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
