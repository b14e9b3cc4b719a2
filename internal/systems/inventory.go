package systems

import (
	"crawl-server/internal/domain"
)

// PickUp moves the first item lying on the holder's tile into the
// holder's inventory. A picked-up item loses its position but stays in
// the store; dropping it restores the position. Returns the item's ID
// and whether anything was picked up.
func PickUp(ents *domain.Store, holder domain.EntityID) (domain.EntityID, bool) {
	pos, ok := ents.Pos[holder]
	if !ok {
		return domain.NoEntity, false
	}

	for _, id := range ents.EntitiesAt(pos) {
		if id == holder || ents.Kind[id] != domain.KindItem {
			continue
		}
		delete(ents.Pos, id)
		ents.Inventory[holder] = append(ents.Inventory[holder], id)
		return id, true
	}
	return domain.NoEntity, false
}

// DropAt places a carried item back on the map at the given position.
func DropAt(ents *domain.Store, holder, item domain.EntityID, pos domain.Position) {
	inv := ents.Inventory[holder]
	for i, carried := range inv {
		if carried == item {
			ents.Inventory[holder] = append(inv[:i], inv[i+1:]...)
			break
		}
	}
	ents.Pos[item] = pos
}
