package systems

import (
	"testing"

	"crawl-server/internal/domain"
)

func TestAttackDamage(t *testing.T) {
	data := testWorld(10, 10)
	player := spawnPlayer(data, domain.Position{X: 2, Y: 2})
	gol := spawnMonster(data, "gol", domain.Position{X: 3, Y: 2})

	t.Run("Power minus defense", func(t *testing.T) {
		// Player power 5 against monster defense 1.
		if got := AttackDamage(data.Entities, player, gol); got != 4 {
			t.Errorf("expected 4 damage, got %d", got)
		}
	})

	t.Run("Floored at zero", func(t *testing.T) {
		data.Entities.Fighter[gol].Defense = 9
		if got := AttackDamage(data.Entities, player, gol); got != 0 {
			t.Errorf("expected 0 damage, got %d", got)
		}
	})

	t.Run("Non-fighters deal and take nothing", func(t *testing.T) {
		stone := data.Entities.Insert(domain.KindItem, "stone", 'o', domain.Color{}, domain.Position{X: 4, Y: 2}, false)
		if got := AttackDamage(data.Entities, stone, gol); got != 0 {
			t.Errorf("expected 0 from non-fighter attacker, got %d", got)
		}
		if got := AttackDamage(data.Entities, player, stone); got != 0 {
			t.Errorf("expected 0 against non-fighter target, got %d", got)
		}
	})
}
