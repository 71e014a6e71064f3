package mining

import (
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// TractorForce is the velocity added each tick to loot inside the beam
const TractorForce = 0.4

// ApplyTractor pulls every loot within reach of the player toward it. The pull
// accumulates tick over tick; only ambient drag slows it. Loot out of reach is
// flagged as not attracted. Returns how many loot were pulled.
func ApplyTractor(loot []*world.Entity, player shared.Vector2, reach float64) int {
	pulled := 0
	for _, l := range loot {
		if l.Kind != world.KindLoot || l.Deleted {
			continue
		}
		if l.Body.Pos.Distance(player) < reach {
			dir := player.Sub(l.Body.Pos).Normalize()
			l.Body.Vel = l.Body.Vel.Add(dir.Scale(TractorForce))
			l.Loot.Attracted = true
			pulled++
		} else {
			l.Loot.Attracted = false
		}
	}
	return pulled
}

// ReleaseTractor clears the attracted flag on all loot
func ReleaseTractor(loot []*world.Entity) {
	for _, l := range loot {
		if l.Loot != nil {
			l.Loot.Attracted = false
		}
	}
}
