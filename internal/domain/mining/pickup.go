package mining

import (
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// CollectLoot moves every loot touching the ship into the hold as one raw unit.
// A full hold refuses pickup silently and the loot stays where it is.
// Returns the minerals collected, in pickup order.
func CollectLoot(loot []*world.Entity, ship world.Body, cargo *shared.Cargo) []shared.Mineral {
	var collected []shared.Mineral
	for _, l := range loot {
		if l.Kind != world.KindLoot || l.Deleted {
			continue
		}
		if l.Body.Pos.Distance(ship.Pos) >= ship.Radius+l.Body.Radius {
			continue
		}
		if cargo.IsFull() {
			continue
		}
		l.MarkDeleted()
		cargo.Add(l.Loot.Mineral, false, 1)
		collected = append(collected, l.Loot.Mineral)
	}
	return collected
}
