package domain

import "errors"

// ErrNoPlayer is returned when an operation requires the player entity
// and the store holds none.
var ErrNoPlayer = errors.New("no player entity in store")

// Store - arena of game objects as parallel capability tables. Each map
// holds the entities that have that capability; absence of an entry is
// the polymorphism mechanism ("has AI" == present in AI). Live IDs keep
// insertion order, which is a published contract: AI turn order follows
// it and reproducibility under a fixed seed depends on it.
//
// Mutating a capability of a live ID through the maps directly is fine;
// only Insert and Remove may touch the ID list.
type Store struct {
	ids  []EntityID
	next uint64

	Kind         map[EntityID]EntityKind
	Pos          map[EntityID]Position
	Name         map[EntityID]string
	Chr          map[EntityID]rune
	Color        map[EntityID]Color
	Blocks       map[EntityID]bool
	Alive        map[EntityID]bool
	Fighter      map[EntityID]*Fighter
	AI           map[EntityID]AIKind
	Behavior     map[EntityID]Behavior
	Item         map[EntityID]Item
	Trap         map[EntityID]TrapKind
	Momentum     map[EntityID]*Momentum
	MoveModes    map[EntityID]MoveMode
	Movement     map[EntityID]Reach
	Attack       map[EntityID]Reach
	Inventory    map[EntityID][]EntityID
	Animations   map[EntityID]int
	CountDown    map[EntityID]int
	NeedsRemoval map[EntityID]bool
	SoundOrigin  map[EntityID]Position
	Awareness    map[EntityID]*AwarenessMap
	Action       map[EntityID]Action
}

func NewStore() *Store {
	return &Store{
		Kind:         make(map[EntityID]EntityKind),
		Pos:          make(map[EntityID]Position),
		Name:         make(map[EntityID]string),
		Chr:          make(map[EntityID]rune),
		Color:        make(map[EntityID]Color),
		Blocks:       make(map[EntityID]bool),
		Alive:        make(map[EntityID]bool),
		Fighter:      make(map[EntityID]*Fighter),
		AI:           make(map[EntityID]AIKind),
		Behavior:     make(map[EntityID]Behavior),
		Item:         make(map[EntityID]Item),
		Trap:         make(map[EntityID]TrapKind),
		Momentum:     make(map[EntityID]*Momentum),
		MoveModes:    make(map[EntityID]MoveMode),
		Movement:     make(map[EntityID]Reach),
		Attack:       make(map[EntityID]Reach),
		Inventory:    make(map[EntityID][]EntityID),
		Animations:   make(map[EntityID]int),
		CountDown:    make(map[EntityID]int),
		NeedsRemoval: make(map[EntityID]bool),
		SoundOrigin:  make(map[EntityID]Position),
		Awareness:    make(map[EntityID]*AwarenessMap),
		Action:       make(map[EntityID]Action),
	}
}

// Insert allocates a fresh ID and registers the base attributes every
// entity carries. Capabilities are added by writing the capability maps
// afterwards.
func (s *Store) Insert(kind EntityKind, name string, chr rune, color Color, pos Position, blocks bool) EntityID {
	s.next++
	id := EntityID(s.next)

	s.ids = append(s.ids, id)
	s.Kind[id] = kind
	s.Name[id] = name
	s.Chr[id] = chr
	s.Color[id] = color
	s.Pos[id] = pos
	s.Blocks[id] = blocks
	s.Alive[id] = false

	return id
}

// Remove purges the entity from the live list and every capability
// table. The ID is never handed out again.
func (s *Store) Remove(id EntityID) {
	for i, other := range s.ids {
		if other == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}

	delete(s.Kind, id)
	delete(s.Pos, id)
	delete(s.Name, id)
	delete(s.Chr, id)
	delete(s.Color, id)
	delete(s.Blocks, id)
	delete(s.Alive, id)
	delete(s.Fighter, id)
	delete(s.AI, id)
	delete(s.Behavior, id)
	delete(s.Item, id)
	delete(s.Trap, id)
	delete(s.Momentum, id)
	delete(s.MoveModes, id)
	delete(s.Movement, id)
	delete(s.Attack, id)
	delete(s.Inventory, id)
	delete(s.Animations, id)
	delete(s.CountDown, id)
	delete(s.NeedsRemoval, id)
	delete(s.SoundOrigin, id)
	delete(s.Awareness, id)
	delete(s.Action, id)
}

// IDs returns live entity IDs in insertion order. The slice is owned by
// the store; callers iterate, they do not mutate.
func (s *Store) IDs() []EntityID {
	return s.ids
}

// Contains reports whether the ID is live.
func (s *Store) Contains(id EntityID) bool {
	_, ok := s.Kind[id]
	return ok
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.ids)
}

// FindPlayer returns the single player-tagged entity. Exactly one is
// assumed to exist during play; its absence is an invariant violation.
func (s *Store) FindPlayer() (EntityID, error) {
	for _, id := range s.ids {
		if s.Kind[id] == KindPlayer {
			return id, nil
		}
	}
	return NoEntity, ErrNoPlayer
}

// BlockingEntityAt returns the first live blocking entity on the tile,
// or NoEntity. Entities without a position (carried items) never
// match.
func (s *Store) BlockingEntityAt(pos Position) EntityID {
	for _, id := range s.ids {
		if p, ok := s.Pos[id]; ok && p == pos && s.Blocks[id] {
			return id
		}
	}
	return NoEntity
}

// EntitiesAt returns every live entity on the tile, in insertion
// order. Entities without a position (carried items) never match.
func (s *Store) EntitiesAt(pos Position) []EntityID {
	var out []EntityID
	for _, id := range s.ids {
		if p, ok := s.Pos[id]; ok && p == pos {
			out = append(out, id)
		}
	}
	return out
}

// CarriesItem reports whether the entity's inventory holds an item of
// the given tag.
func (s *Store) CarriesItem(id EntityID, item Item) bool {
	for _, carried := range s.Inventory[id] {
		if tag, ok := s.Item[carried]; ok && tag == item {
			return true
		}
	}
	return false
}

// RemoveFromInventory takes the first carried item with the given tag
// out of the inventory and returns its ID, or NoEntity.
func (s *Store) RemoveFromInventory(id EntityID, item Item) EntityID {
	inv := s.Inventory[id]
	for i, carried := range inv {
		if tag, ok := s.Item[carried]; ok && tag == item {
			s.Inventory[id] = append(inv[:i], inv[i+1:]...)
			return carried
		}
	}
	return NoEntity
}
