package domain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MomentumMax != 2 {
		t.Errorf("expected default momentum cap 2, got %d", cfg.MomentumMax)
	}
	if cfg.SoundRadius(MoveSneak) >= cfg.SoundRadius(MoveRun) {
		t.Error("expected sneaking to be quieter than running")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"spikeDamage": 99, "momentumMax": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpikeDamage != 99 {
		t.Errorf("expected file override 99, got %d", cfg.SpikeDamage)
	}
	if cfg.MomentumMax != 4 {
		t.Errorf("expected file override 4, got %d", cfg.MomentumMax)
	}
	// Untouched fields keep their defaults.
	if cfg.YellRadius != DefaultConfig().YellRadius {
		t.Errorf("expected default yell radius, got %d", cfg.YellRadius)
	}
}

func TestLoadConfigEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"spikeDamage": 7}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRAWL_SPIKE_DAMAGE", "11")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpikeDamage != 11 {
		t.Errorf("expected env to win over file, got %d", cfg.SpikeDamage)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.json"); err == nil {
		t.Error("expected error for missing config file")
	}
}
