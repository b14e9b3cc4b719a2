package engine

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"crawl-server/internal/domain"
	"crawl-server/internal/infrastructure/storage"
	"crawl-server/internal/network"
	"crawl-server/pkg/api"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameService runs one game and mediates between it and the outside
// world. All commands funnel through a single channel, so the game
// itself never needs locking.
type GameService struct {
	Game *Game
	Hub  *network.Broadcaster

	CommandChan chan api.ClientCommand

	Replays *storage.ReplayService
	Session *domain.ReplaySession

	// controller is the session token allowed to act for the player.
	// The first INIT claims it; everyone else spectates.
	controller string

	// recording is false during playback so replayed commands are not
	// written back out.
	recording bool
}

// NewService creates the game from the launch config and prepares the
// command plumbing.
func NewService(cfg Config) (*GameService, error) {
	gameplay, err := domain.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}

	game, err := NewGame(cfg.Seed, gameplay)
	if err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}

	return &GameService{
		Game:        game,
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan api.ClientCommand, 100),
		Replays:     storage.NewReplayService(cfg.ReplayDir),
		Session: &domain.ReplaySession{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
		},
		recording: true,
	}, nil
}

func (s *GameService) Start() {
	go s.RunGameLoop()
}

// ProcessCommand accepts a command from a transport (WebSocket, bot).
// It never blocks the caller for long; the game loop drains the
// channel.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	s.CommandChan <- cmd
}

// RunGameLoop drains the command channel until it closes. One command
// in, at most one turn out.
func (s *GameService) RunGameLoop() {
	logger.Log.WithField("component", "service").Info("Game loop started.")

	for cmd := range s.CommandChan {
		s.handleCommand(cmd)
	}
}

func (s *GameService) handleCommand(cmd api.ClientCommand) {
	action := strings.ToUpper(cmd.Action)

	// Free commands first. These never consume a turn.
	switch action {
	case "INIT":
		if s.controller == "" {
			s.controller = cmd.Token
			logger.Log.WithFields(logrus.Fields{
				"component": "service",
				"token":     cmd.Token,
			}).Info("Controller claimed.")
		}
		s.Hub.SendTo(cmd.Token, *s.BuildState("INIT"))
		return

	case "FASTER", "SLOWER":
		if cmd.Token != s.controller {
			return
		}
		s.changeSpeed(action == "FASTER")
		s.record(cmd)
		s.publishUpdate()
		return

	case "GOD":
		if cmd.Token != s.controller {
			return
		}
		var payload api.TogglePayload
		if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
			logger.Log.WithError(err).Warn("Bad GOD payload.")
			return
		}
		s.Game.SetGodMode(payload.Enabled)
		s.record(cmd)
		s.publishUpdate()
		return
	}

	if cmd.Token != s.controller {
		return
	}

	input, err := TranslateCommand(action, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "service",
			"action":    cmd.Action,
		}).WithError(err).Warn("Rejected command.")
		return
	}

	s.record(cmd)

	if _, err := s.Game.StepGame(input); err != nil {
		logger.Log.WithField("component", "service").WithError(err).Error("Turn failed.")
		return
	}

	s.publishUpdate()
}

// changeSpeed shifts the player one move mode up or down. Speed
// changes are free actions; monsters do not get a turn.
func (s *GameService) changeSpeed(faster bool) {
	ents := s.Game.Data.Entities
	player, err := ents.FindPlayer()
	if err != nil {
		return
	}

	mode := ents.MoveModes[player]
	if faster {
		ents.MoveModes[player] = mode.Increase()
	} else {
		ents.MoveModes[player] = mode.Decrease()
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"mode":      ents.MoveModes[player].String(),
	}).Debug("Move mode changed.")
}

func (s *GameService) record(cmd api.ClientCommand) {
	if !s.recording {
		return
	}
	s.Session.Actions = append(s.Session.Actions, domain.ReplayAction{
		Turn:    s.Game.Settings.TurnCount,
		Action:  strings.ToUpper(cmd.Action),
		Payload: cmd.Payload,
	})
}

// SaveReplay flushes the recorded session to disk. Safe to call on
// shutdown even if nothing happened.
func (s *GameService) SaveReplay() {
	if !s.recording || len(s.Session.Actions) == 0 {
		return
	}
	path, err := s.Replays.Save(s.Session)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to save replay.")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"path":      path,
		"actions":   len(s.Session.Actions),
	}).Info("Replay saved.")
}

// RunPlayback re-simulates a recorded session: a fresh game from the
// recorded seed, fed the recorded commands in order. Returns the final
// state.
func (s *GameService) RunPlayback(session *domain.ReplaySession, gameplay *domain.Config) (domain.GameState, error) {
	game, err := NewGame(session.Seed, gameplay)
	if err != nil {
		return domain.StatePlaying, fmt.Errorf("playback: %w", err)
	}

	s.Game = game
	s.recording = false
	s.controller = "playback"

	for i, act := range session.Actions {
		s.handleCommand(api.ClientCommand{
			Token:   "playback",
			Action:  act.Action,
			Payload: act.Payload,
		})

		if s.Game.Settings.State != domain.StatePlaying {
			logger.Log.WithFields(logrus.Fields{
				"component": "service",
				"state":     s.Game.Settings.State.String(),
				"actions":   i + 1,
			}).Info("Playback reached a terminal state.")
			break
		}
	}

	return s.Game.Settings.State, nil
}

// publishUpdate sends the current snapshot to every subscriber.
func (s *GameService) publishUpdate() {
	s.Hub.Broadcast(*s.BuildState("UPDATE"))
}
