package engine

import (
	"fmt"
	"math/rand"

	"crawl-server/internal/domain"
	"crawl-server/internal/systems"
	"crawl-server/pkg/dungeon"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Game bundles one running simulation: the world, the per-run
// settings, the message log, and the seeded RNG everything
// deterministic flows from.
type Game struct {
	Data     *domain.GameData
	Settings *domain.GameSettings
	Config   *domain.Config
	Log      *domain.MsgLog
	Rng      *rand.Rand
	Seed     int64

	resolver *Resolver
}

// NewGame generates the first level and prepares the turn machinery.
// The same seed and config always produce the same game.
func NewGame(seed int64, cfg *domain.Config) (*Game, error) {
	rng := rand.New(rand.NewSource(seed))

	data, err := dungeon.Generate(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		Data:     data,
		Settings: domain.NewGameSettings(),
		Config:   cfg,
		Log:      domain.NewMsgLog(),
		Rng:      rng,
		Seed:     seed,
		resolver: NewResolver(),
	}

	player, err := data.Entities.FindPlayer()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	systems.RecomputeFOV(data.Map, data.Entities.Pos[player], cfg.FovRadiusPlayer)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      seed,
		"entities":  data.Entities.Len(),
	}).Info("Game created.")

	return g, nil
}

// StepGame advances the simulation by one turn driven by the player's
// input action, then applies the end-of-turn outcomes: losing, level
// transition, winning.
func (g *Game) StepGame(input domain.Action) (domain.GameState, error) {
	if g.Settings.State != domain.StatePlaying {
		return g.Settings.State, nil
	}

	g.Log.ClearTurn()

	if err := g.stepLogic(input); err != nil {
		return g.Settings.State, err
	}

	if g.Settings.ChangeLevel {
		g.Settings.ChangeLevel = false
		if g.WinConditionMet() {
			g.Settings.State = domain.StateWin
			logger.Log.WithField("component", "game").Info("Win condition met.")
		} else if err := g.descend(); err != nil {
			return g.Settings.State, err
		}
	}

	return g.Settings.State, nil
}

// WinConditionMet reports whether the player carries the goal item
// while standing on the exit tile.
func (g *Game) WinConditionMet() bool {
	ents := g.Data.Entities
	player, err := ents.FindPlayer()
	if err != nil {
		return false
	}
	if !ents.CarriesItem(player, domain.ItemGoal) {
		return false
	}
	return g.Data.Map.At(ents.Pos[player]).Type == domain.TileExit
}

// SetGodMode toggles player invulnerability.
func (g *Game) SetGodMode(enabled bool) {
	g.Settings.GodMode = enabled
	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"enabled":   enabled,
	}).Info("God mode toggled.")
}

// descend generates the next level with the run's RNG and carries the
// player's condition over: health, move mode, and the tags of carried
// items (the item entities themselves belong to the old store).
func (g *Game) descend() error {
	ents := g.Data.Entities
	oldPlayer, err := ents.FindPlayer()
	if err != nil {
		return fmt.Errorf("descend: %w", err)
	}

	hp := 0
	if f, ok := ents.Fighter[oldPlayer]; ok {
		hp = f.HP
	}
	mode := ents.MoveModes[oldPlayer]
	var carried []domain.Item
	for _, item := range ents.Inventory[oldPlayer] {
		if tag, ok := ents.Item[item]; ok {
			carried = append(carried, tag)
		}
	}

	data, err := dungeon.Generate(g.Config, g.Rng)
	if err != nil {
		return fmt.Errorf("descend: %w", err)
	}

	newEnts := data.Entities
	newPlayer, err := newEnts.FindPlayer()
	if err != nil {
		return fmt.Errorf("descend: %w", err)
	}

	if f, ok := newEnts.Fighter[newPlayer]; ok && hp > 0 {
		f.HP = hp
	}
	newEnts.MoveModes[newPlayer] = mode
	newEnts.Inventory[newPlayer] = nil
	for _, tag := range carried {
		item := newEnts.Insert(domain.KindItem, tag.String(), 'o', domain.Color{}, domain.Position{}, false)
		delete(newEnts.Pos, item)
		newEnts.Item[item] = tag
		newEnts.Inventory[newPlayer] = append(newEnts.Inventory[newPlayer], item)
	}

	g.Data.Map = data.Map
	g.Data.Entities = newEnts
	g.Settings.Depth++
	g.Settings.PreviousPlayerPos = domain.Position{X: -1, Y: -1}

	systems.RecomputeFOV(data.Map, newEnts.Pos[newPlayer], g.Config.FovRadiusPlayer)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"depth":     g.Settings.Depth,
	}).Info("Descended to a new level.")

	return nil
}
