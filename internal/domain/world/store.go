package world

import (
	"math"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// Spawn tunables
const (
	PlayerExclusionRadius  = 500.0
	StationExclusionRadius = 400.0

	LootRadius   = 6.0
	LootMaxDrift = 1.0
	LootValue    = 1

	ParticleMaxDrift  = 2.0
	ParticleMinRadius = 1.0
	ParticleMaxRadius = 3.0
)

// Store owns every non-player entity.
//
// Entities are tombstoned with MarkDeleted and only dropped by RemoveMarked, so
// systems iterating mid-tick always see a stable set.
type Store struct {
	worldSize float64
	rng       shared.RandomSource
	entities  []*Entity
}

// NewStore creates an empty store for a square world of the given side length
func NewStore(worldSize float64, rng shared.RandomSource) *Store {
	return &Store{worldSize: worldSize, rng: rng}
}

// WorldSize returns the side length of the world
func (s *Store) WorldSize() float64 {
	return s.worldSize
}

// Len returns the number of stored entities, tombstoned ones included
func (s *Store) Len() int {
	return len(s.entities)
}

// Add inserts an entity built elsewhere
func (s *Store) Add(e *Entity) *Entity {
	s.entities = append(s.entities, e)
	return e
}

// Each visits every live entity present when the call started.
// Entities spawned by fn are kept but not visited in this pass.
func (s *Store) Each(fn func(e *Entity)) {
	n := len(s.entities)
	for i := 0; i < n; i++ {
		if e := s.entities[i]; !e.Deleted {
			fn(e)
		}
	}
}

func (s *Store) collect(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range s.entities {
		if e.Kind == kind && !e.Deleted {
			out = append(out, e)
		}
	}
	return out
}

// Asteroids returns the live asteroids
func (s *Store) Asteroids() []*Entity { return s.collect(KindAsteroid) }

// Loot returns the live loot
func (s *Store) Loot() []*Entity { return s.collect(KindLoot) }

// Stations returns every station
func (s *Store) Stations() []*Entity { return s.collect(KindStation) }

// Particles returns the live particles
func (s *Store) Particles() []*Entity { return s.collect(KindParticle) }

// Count returns how many live entities of kind exist
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == kind && !e.Deleted {
			n++
		}
	}
	return n
}

// RemoveMarked compacts the store, dropping tombstoned entities. Returns how many were dropped.
func (s *Store) RemoveMarked() int {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if !e.Deleted {
			kept = append(kept, e)
		}
	}
	removed := len(s.entities) - len(kept)
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
	return removed
}

// Snapshot returns deep copies of every live entity
func (s *Store) Snapshot() []Entity {
	out := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if !e.Deleted {
			out = append(out, e.Clone())
		}
	}
	return out
}

// SpawnAsteroid creates an asteroid of tier. With pos nil a random location is
// sampled and rejected (nil, false) when it lands within PlayerExclusionRadius of
// avoid or StationExclusionRadius of a station. Explicit positions are never rejected.
func (s *Store) SpawnAsteroid(tier Tier, pos *shared.Vector2, avoid shared.Vector2) (*Entity, bool) {
	var at shared.Vector2
	if pos != nil {
		at = *pos
	} else {
		at = shared.Vec(s.rng.Float64()*s.worldSize, s.rng.Float64()*s.worldSize)
		if at.Distance(avoid) < PlayerExclusionRadius {
			return nil, false
		}
		for _, st := range s.Stations() {
			if at.Distance(st.Body.Pos) < StationExclusionRadius {
				return nil, false
			}
		}
	}

	mineral := shared.RollMineral(s.rng.Float64())
	radius := tier.Radius()
	e := &Entity{
		ID:   NewEntityID("ast"),
		Kind: KindAsteroid,
		Body: Body{
			Pos: at,
			Vel: shared.Vec(
				shared.RandomRange(s.rng, -AsteroidMaxDrift, AsteroidMaxDrift),
				shared.RandomRange(s.rng, -AsteroidMaxDrift, AsteroidMaxDrift),
			),
			Radius:   radius,
			Rotation: s.rng.Float64() * 2 * math.Pi,
		},
		Asteroid: &AsteroidData{
			Tier:    tier,
			HP:      tier.MaxHP(),
			MaxHP:   tier.MaxHP(),
			Mineral: mineral,
			Outline: shared.GeneratePolygon(s.rng, radius, AsteroidOutlineSides, radius*AsteroidOutlineJitter),
		},
	}
	return s.Add(e), true
}

// SpawnLoot drops one unit of mineral at pos with a small random drift
func (s *Store) SpawnLoot(pos shared.Vector2, mineral shared.Mineral) *Entity {
	return s.Add(&Entity{
		ID:   NewEntityID("loot"),
		Kind: KindLoot,
		Body: Body{
			Pos: pos,
			Vel: shared.Vec(
				shared.RandomRange(s.rng, -LootMaxDrift, LootMaxDrift),
				shared.RandomRange(s.rng, -LootMaxDrift, LootMaxDrift),
			),
			Radius: LootRadius,
		},
		Loot: &LootData{Mineral: mineral, Value: LootValue},
	})
}

// SpawnParticles scatters count cosmetic particles around pos
func (s *Store) SpawnParticles(pos shared.Vector2, color string, count int) {
	for i := 0; i < count; i++ {
		s.Add(&Entity{
			ID:   NewEntityID("fx"),
			Kind: KindParticle,
			Body: Body{
				Pos: pos,
				Vel: shared.Vec(
					shared.RandomRange(s.rng, -ParticleMaxDrift, ParticleMaxDrift),
					shared.RandomRange(s.rng, -ParticleMaxDrift, ParticleMaxDrift),
				),
				Radius: shared.RandomRange(s.rng, ParticleMinRadius, ParticleMaxRadius),
			},
			Particle: &ParticleData{Life: 1, MaxLife: 1, Color: color},
		})
	}
}

// SpawnStation places a station from its definition
func (s *Store) SpawnStation(def StationDefinition) *Entity {
	return s.Add(&Entity{
		ID:   NewEntityID("stn"),
		Kind: KindStation,
		Body: Body{Pos: def.Pos, Radius: def.Radius()},
		Station: &StationData{
			Name:           def.Name,
			Type:           def.Type,
			Specialization: append([]shared.Mineral(nil), def.Specialization...),
		},
	})
}

// Populate places the stations then makes attempts random tier-1 spawns.
// Returns the number of asteroids actually placed.
func (s *Store) Populate(stations []StationDefinition, attempts int, avoid shared.Vector2) int {
	for _, def := range stations {
		s.SpawnStation(def)
	}
	placed := 0
	for i := 0; i < attempts; i++ {
		if _, ok := s.SpawnAsteroid(TierLarge, nil, avoid); ok {
			placed++
		}
	}
	return placed
}

// NearestStation returns the closest station whose docking range contains pos, or nil
func (s *Store) NearestStation(pos shared.Vector2) *Entity {
	var best *Entity
	bestDist := math.MaxFloat64
	for _, st := range s.Stations() {
		if !st.InDockingRange(pos) {
			continue
		}
		if d := st.Body.Pos.Distance(pos); d < bestDist {
			best, bestDist = st, d
		}
	}
	return best
}

// FindStation looks a station up by name
func (s *Store) FindStation(name string) *Entity {
	for _, st := range s.Stations() {
		if st.Station.Name == name {
			return st
		}
	}
	return nil
}
