package engine

import (
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/domain/mining"
	"github.com/andrescamacho/spaceminer-go/internal/domain/physics"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

const (
	// ExhaustColor tints thruster particles
	ExhaustColor = "#f97316"
	// ExhaustOffset is how far behind the ship exhaust appears
	ExhaustOffset = 15.0
	// ExhaustChance: a draw above it emits one exhaust particle while thrusting
	ExhaustChance = 0.5
)

// Tick advances the simulation one frame. Motion is per tick; dt only drives
// wall-time effects such as screen shake and is deliberately not clamped.
//
// Order: physics, laser, tractor, pickup, refinery jobs, events, compaction.
func (e *Engine) Tick(dt time.Duration) {
	started := time.Now()
	var fx outbox

	e.mu.Lock()
	now := e.clock.Now()
	in := e.intents
	ship := e.ship
	var changed StatsField

	e.cueTransitions(&fx, in)
	e.shake.Decay(dt)
	e.zoom.Step()
	e.laserHit = nil

	physics.StepPlayer(&ship.Body, ship.EnginePower, physics.PlayerInput{Thrust: in.Thrust, LookAngle: in.LookAngle}, e.worldSize)
	e.camera = physics.Camera(ship.Body.Pos, e.viewport)
	if in.Thrust && e.rng.Float64() > ExhaustChance {
		behind := ship.Body.Vel.Normalize().Scale(-ExhaustOffset)
		e.store.SpawnParticles(ship.Body.Pos.Add(behind), ExhaustColor, 1)
	}
	physics.StepEntities(e.store)

	if in.Fire {
		e.fireLaser(&fx)
	}

	if in.Tractor {
		mining.ApplyTractor(e.store.Loot(), ship.Body.Pos, ship.TractorRange)
	}

	if collected := mining.CollectLoot(e.store.Loot(), ship.Body, ship.Cargo); len(collected) > 0 {
		changed |= StatsCargo
		for _, m := range collected {
			e.metrics.RecordPickup(m.String())
			fx.add(e.audio.Collect)
		}
	}

	if completed := ship.Account.Tick(now); len(completed) > 0 {
		changed |= StatsRefinery
		for _, job := range completed {
			e.metrics.RecordJobCompleted(job.Mineral.String(), job.Quantity)
			e.logger.Info("refining job completed",
				"job_id", job.ID,
				"mineral", job.Mineral,
				"quantity", job.Quantity,
				"tier", job.Tier)
		}
	}

	e.nearby = e.store.NearestStation(ship.Body.Pos)
	view := stationView(e.nearby)
	for _, fn := range e.proximityListeners {
		fn := fn
		fx.add(func() { fn(view) })
	}
	e.statsEvent(&fx, changed)

	e.store.RemoveMarked()
	e.tick++
	entities := e.store.Len()
	e.mu.Unlock()

	e.metrics.RecordTick(time.Since(started), entities)
	fx.flush()
}

func (e *Engine) fireLaser(fx *outbox) {
	ship := e.ship
	hit, ok := mining.CastLaser(ship.Body.Pos, ship.Facing(), mining.LaserRange, e.store.Asteroids())
	if !ok {
		return
	}

	point := hit.Point
	e.laserHit = &point
	ast := hit.Target.Asteroid
	destroyed := mining.Damage(hit.Target, ship.MiningPower)
	e.store.SpawnParticles(point, ast.Mineral.Color(), 1)
	if !destroyed {
		return
	}

	result := mining.BreakApart(e.store, hit.Target, e.rng)
	e.shake.Trigger(result.ShakeStrength())
	size := result.ExplosionSize()
	fx.add(func() { e.audio.Explosion(size) })
	e.metrics.RecordFracture(int(result.Tier), result.Mineral.String())
	e.logger.Debug("asteroid fractured",
		"tier", int(result.Tier),
		"mineral", result.Mineral,
		"children", len(result.Children),
		"loot", len(result.Loot))
}

// cueTransitions reports held-intent changes to audio and releases the
// tractor flag on loot when the beam switches off
func (e *Engine) cueTransitions(fx *outbox, in Intents) {
	prev := e.cues
	if in.Thrust != prev.Thrust {
		on := in.Thrust
		fx.add(func() { e.audio.Thruster(on) })
	}
	if in.Fire != prev.Fire {
		on := in.Fire
		fx.add(func() { e.audio.Laser(on) })
	}
	if in.Tractor != prev.Tractor {
		on := in.Tractor
		fx.add(func() { e.audio.Tractor(on) })
		if !on {
			mining.ReleaseTractor(e.store.Loot())
		}
	}
	e.cues = in
}

// Viewport returns the screen size the camera is centred for
func (e *Engine) Viewport() shared.Vector2 {
	return e.viewport
}
