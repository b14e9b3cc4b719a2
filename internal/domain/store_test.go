package domain

import "testing"

func TestStoreInsertOrder(t *testing.T) {
	s := NewStore()

	a := s.Insert(KindMonster, "gol", 'g', Color{}, Position{X: 1, Y: 1}, true)
	b := s.Insert(KindMonster, "elf", 'e', Color{}, Position{X: 2, Y: 1}, true)
	c := s.Insert(KindItem, "stone", 'o', Color{}, Position{X: 3, Y: 1}, false)

	ids := s.IDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
	if ids[0] != a || ids[1] != b || ids[2] != c {
		t.Errorf("expected insertion order [%v %v %v], got %v", a, b, c, ids)
	}
}

func TestStoreRemovePurgesEverything(t *testing.T) {
	s := NewStore()
	id := s.Insert(KindMonster, "gol", 'g', Color{}, Position{X: 4, Y: 4}, true)
	s.Fighter[id] = &Fighter{MaxHP: 10, HP: 10, Power: 4, Defense: 1}
	s.Behavior[id] = Idle()
	mom := NewMomentum(2)
	s.Momentum[id] = &mom

	s.Remove(id)

	if s.Contains(id) {
		t.Error("expected id gone from the store")
	}
	if _, ok := s.Fighter[id]; ok {
		t.Error("expected fighter capability purged")
	}
	if _, ok := s.Behavior[id]; ok {
		t.Error("expected behavior capability purged")
	}
	if _, ok := s.Momentum[id]; ok {
		t.Error("expected momentum capability purged")
	}
	if _, ok := s.Pos[id]; ok {
		t.Error("expected position capability purged")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
}

func TestStoreIDsNeverReused(t *testing.T) {
	s := NewStore()
	a := s.Insert(KindItem, "stone", 'o', Color{}, Position{}, false)
	s.Remove(a)
	b := s.Insert(KindItem, "stone", 'o', Color{}, Position{}, false)
	if b == a {
		t.Errorf("expected a fresh id after removal, got %v twice", a)
	}
}

func TestStoreFindPlayer(t *testing.T) {
	s := NewStore()
	if _, err := s.FindPlayer(); err != ErrNoPlayer {
		t.Errorf("expected ErrNoPlayer, got %v", err)
	}

	s.Insert(KindMonster, "gol", 'g', Color{}, Position{}, true)
	want := s.Insert(KindPlayer, "player", '@', Color{}, Position{X: 2, Y: 3}, true)

	got, err := s.FindPlayer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected player id %v, got %v", want, got)
	}
}

func TestStoreBlockingEntityAt(t *testing.T) {
	s := NewStore()
	pos := Position{X: 5, Y: 5}
	s.Insert(KindItem, "stone", 'o', Color{}, pos, false)
	gol := s.Insert(KindMonster, "gol", 'g', Color{}, pos, true)

	if got := s.BlockingEntityAt(pos); got != gol {
		t.Errorf("expected blocking entity %v, got %v", gol, got)
	}
	if got := s.BlockingEntityAt(Position{X: 0, Y: 0}); got != NoEntity {
		t.Errorf("expected NoEntity on empty tile, got %v", got)
	}
}

func TestStoreCarriedEntitiesHaveNoTile(t *testing.T) {
	s := NewStore()
	origin := Position{X: 0, Y: 0}
	stone := s.Insert(KindItem, "stone", 'o', Color{}, Position{X: 4, Y: 4}, false)
	gol := s.Insert(KindMonster, "gol", 'g', Color{}, Position{X: 5, Y: 4}, true)

	// Picking things up strips the position capability entirely.
	delete(s.Pos, stone)
	delete(s.Pos, gol)

	if got := s.EntitiesAt(origin); len(got) != 0 {
		t.Errorf("expected no entities at %v, got %v", origin, got)
	}
	if got := s.BlockingEntityAt(origin); got != NoEntity {
		t.Errorf("expected NoEntity at %v, got %v", origin, got)
	}
}

func TestStoreInventory(t *testing.T) {
	s := NewStore()
	holder := s.Insert(KindPlayer, "player", '@', Color{}, Position{}, true)
	stone := s.Insert(KindItem, "stone", 'o', Color{}, Position{}, false)
	s.Item[stone] = ItemStone
	s.Inventory[holder] = append(s.Inventory[holder], stone)

	if !s.CarriesItem(holder, ItemStone) {
		t.Error("expected holder to carry a stone")
	}
	if s.CarriesItem(holder, ItemGoal) {
		t.Error("holder should not carry the goal")
	}

	got := s.RemoveFromInventory(holder, ItemStone)
	if got != stone {
		t.Errorf("expected removed stone %v, got %v", stone, got)
	}
	if s.CarriesItem(holder, ItemStone) {
		t.Error("expected stone gone from inventory")
	}
	if s.RemoveFromInventory(holder, ItemStone) != NoEntity {
		t.Error("expected NoEntity when nothing left to remove")
	}
}
