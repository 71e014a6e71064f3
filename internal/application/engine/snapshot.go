package engine

import (
	"github.com/andrescamacho/spaceminer-go/internal/domain/physics"
	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Snapshot is a deep copy of everything a renderer or UI reads. Mutating it
// has no effect on the engine.
type Snapshot struct {
	Tick      uint64
	SessionID string
	Player    *player.Ship
	Entities  []world.Entity
	Camera    shared.Vector2
	Zoom      float64
	// LaserHit is where the beam struck this tick, nil when it hit nothing
	LaserHit       *shared.Vector2
	Shake          physics.Shake
	ShakeMagnitude float64
	NearbyStation  *StationView
	Intents        Intents
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Tick:           e.tick,
		SessionID:      e.sessionID,
		Player:         e.ship.Clone(),
		Entities:       e.store.Snapshot(),
		Camera:         e.camera,
		Zoom:           e.zoom.Current,
		Shake:          e.shake,
		ShakeMagnitude: e.shake.Magnitude(),
		NearbyStation:  stationView(e.nearby),
		Intents:        e.intents,
	}
	if e.laserHit != nil {
		hit := *e.laserHit
		snap.LaserHit = &hit
	}
	return snap
}

// Stations lists every station
func (s Snapshot) Stations() []world.Entity {
	return s.filter(world.KindStation)
}

// Asteroids lists the asteroids in the snapshot
func (s Snapshot) Asteroids() []world.Entity {
	return s.filter(world.KindAsteroid)
}

// Loot lists the loot in the snapshot
func (s Snapshot) Loot() []world.Entity {
	return s.filter(world.KindLoot)
}

func (s Snapshot) filter(kind world.Kind) []world.Entity {
	var out []world.Entity
	for _, e := range s.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
