package domain

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config - static numeric tunables consumed by resolution handlers and
// the AI. Defaults below are playable; a JSON file and environment
// variables may override them (env wins).
type Config struct {
	FovRadiusPlayer  int `json:"fovRadiusPlayer" env:"CRAWL_FOV_RADIUS_PLAYER"`
	FovRadiusMonster int `json:"fovRadiusMonster" env:"CRAWL_FOV_RADIUS_MONSTER"`

	SpikeDamage int `json:"spikeDamage" env:"CRAWL_SPIKE_DAMAGE"`

	SoundRadiusSneak int `json:"soundRadiusSneak" env:"CRAWL_SOUND_RADIUS_SNEAK"`
	SoundRadiusWalk  int `json:"soundRadiusWalk" env:"CRAWL_SOUND_RADIUS_WALK"`
	SoundRadiusRun   int `json:"soundRadiusRun" env:"CRAWL_SOUND_RADIUS_RUN"`
	SoundRadiusStone int `json:"soundRadiusStone" env:"CRAWL_SOUND_RADIUS_STONE"`
	YellRadius       int `json:"yellRadius" env:"CRAWL_YELL_RADIUS"`
	SoundCountDown   int `json:"soundCountDown" env:"CRAWL_SOUND_COUNT_DOWN"`

	MomentumMax       int     `json:"momentumMax" env:"CRAWL_MOMENTUM_MAX"`
	ThrowDist         int     `json:"throwDist" env:"CRAWL_THROW_DIST"`
	DisperseRate      float64 `json:"disperseRate" env:"CRAWL_DISPERSE_RATE"`
	InvestigateWeight float64 `json:"investigateWeight" env:"CRAWL_INVESTIGATE_WEIGHT"`

	PlayerHP      int `json:"playerHp" env:"CRAWL_PLAYER_HP"`
	PlayerPower   int `json:"playerPower" env:"CRAWL_PLAYER_POWER"`
	PlayerDefense int `json:"playerDefense" env:"CRAWL_PLAYER_DEFENSE"`

	GolHP      int `json:"golHp"`
	GolPower   int `json:"golPower"`
	GolDefense int `json:"golDefense"`

	ElfHP      int `json:"elfHp"`
	ElfPower   int `json:"elfPower"`
	ElfDefense int `json:"elfDefense"`

	ColorPlayer Color `json:"colorPlayer"`
	ColorRed    Color `json:"colorRed"`
	ColorDead   Color `json:"colorDead"`
}

// DefaultConfig returns the built-in tunables.
func DefaultConfig() *Config {
	return &Config{
		FovRadiusPlayer:  8,
		FovRadiusMonster: 7,

		SpikeDamage: 5,

		SoundRadiusSneak: 1,
		SoundRadiusWalk:  3,
		SoundRadiusRun:   5,
		SoundRadiusStone: 4,
		YellRadius:       6,
		SoundCountDown:   3,

		MomentumMax:       2,
		ThrowDist:         5,
		DisperseRate:      0.25,
		InvestigateWeight: 0.05,

		PlayerHP:      30,
		PlayerPower:   5,
		PlayerDefense: 2,

		GolHP:      10,
		GolPower:   4,
		GolDefense: 1,

		ElfHP:      8,
		ElfPower:   5,
		ElfDefense: 0,

		ColorPlayer: Color{R: 34, G: 211, B: 238, A: 255},
		ColorRed:    Color{R: 220, G: 60, B: 60, A: 255},
		ColorDead:   Color{R: 120, G: 120, B: 120, A: 255},
	}
}

// LoadConfig builds the tunables from defaults, an optional JSON file,
// then environment overrides, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config env overrides: %w", err)
	}

	return cfg, nil
}

// SoundRadius returns the noise radius for a movement mode.
func (c *Config) SoundRadius(mode MoveMode) int {
	switch mode {
	case MoveSneak:
		return c.SoundRadiusSneak
	case MoveRun:
		return c.SoundRadiusRun
	default:
		return c.SoundRadiusWalk
	}
}
