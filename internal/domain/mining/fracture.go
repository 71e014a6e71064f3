package mining

import (
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

const (
	// MinChildren and MaxChildren bound how many pieces a non-terminal asteroid breaks into
	MinChildren = 2
	MaxChildren = 4
	// ChildScatter is the per-axis offset range of child spawn positions
	ChildScatter = 10.0
	// BonusLootThreshold: a draw above it drops one extra loot on any fracture
	BonusLootThreshold = 0.8
	// DebrisCount is the number of white particles a fracture throws off
	DebrisCount = 5
	DebrisColor = "#ffffff"
)

// Fracture describes what one destroyed asteroid produced
type Fracture struct {
	Tier     world.Tier
	Mineral  shared.Mineral
	Children []*world.Entity
	Loot     []*world.Entity
}

// ExplosionSize names the blast for audio
func (f Fracture) ExplosionSize() string {
	return f.Tier.ExplosionSize()
}

// ShakeStrength is the screen shake the blast triggers
func (f Fracture) ShakeStrength() float64 {
	return f.Tier.ShakeStrength()
}

// BreakApart spawns the remains of a destroyed asteroid into store.
//
// Terminal asteroids drop exactly one loot of their mineral and no children.
// Larger ones split into 2-4 asteroids of the next tier scattered around the
// parent. Either way a draw above BonusLootThreshold adds one more loot.
func BreakApart(store *world.Store, parent *world.Entity, rng shared.RandomSource) Fracture {
	data := parent.Asteroid
	out := Fracture{Tier: data.Tier, Mineral: data.Mineral}
	origin := parent.Body.Pos

	store.SpawnParticles(origin, DebrisColor, DebrisCount)

	if data.Tier.IsTerminal() {
		out.Loot = append(out.Loot, store.SpawnLoot(origin, data.Mineral))
	} else {
		n := MinChildren + rng.IntN(MaxChildren-MinChildren+1)
		for i := 0; i < n; i++ {
			at := origin.Add(shared.Vec(
				shared.RandomRange(rng, -ChildScatter, ChildScatter),
				shared.RandomRange(rng, -ChildScatter, ChildScatter),
			))
			if child, ok := store.SpawnAsteroid(data.Tier.Next(), &at, origin); ok {
				out.Children = append(out.Children, child)
			}
		}
	}

	if rng.Float64() > BonusLootThreshold {
		out.Loot = append(out.Loot, store.SpawnLoot(origin, data.Mineral))
	}

	return out
}
