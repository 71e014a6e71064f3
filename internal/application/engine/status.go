package engine

import (
	"math"

	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Status is the light per-frame view a controller steers by. Unlike Snapshot
// it does not copy the entity store.
type Status struct {
	Tick          uint64
	Player        *player.Ship
	NearbyStation *StationView
	Stations      []StationView
}

// Status copies the player and station state
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Status{
		Tick:          e.tick,
		Player:        e.ship.Clone(),
		NearbyStation: stationView(e.nearby),
	}
	for _, s := range e.store.Stations() {
		st.Stations = append(st.Stations, *stationView(s))
	}
	return st
}

// NearestAsteroid returns a copy of the closest asteroid to the ship whose
// centre lies within maxRange
func (e *Engine) NearestAsteroid(maxRange float64) (world.Entity, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var best *world.Entity
	bestDist := math.Inf(1)
	origin := e.ship.Body.Pos
	for _, a := range e.store.Asteroids() {
		d := a.Body.Pos.Distance(origin)
		if d <= maxRange && d < bestDist {
			best, bestDist = a, d
		}
	}
	if best == nil {
		return world.Entity{}, false
	}
	return best.Clone(), true
}
