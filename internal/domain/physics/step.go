package physics

import (
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Motion constants. All of them apply per tick; none is scaled by dt.
const (
	// Friction damps the player ship
	Friction = 0.98
	// EntityDrag damps every non-station entity
	EntityDrag = 0.99
	// TurnSpeed is the fraction of the remaining heading error closed each tick
	TurnSpeed = 0.08
	// ParticleDecay is the life a particle loses each tick
	ParticleDecay = 0.02
)

// StepEntity integrates one world entity: position moves by velocity, drag
// applies to everything except stations, stations spin and particles age.
func StepEntity(e *world.Entity) {
	e.Body.Pos = e.Body.Pos.Add(e.Body.Vel)

	switch e.Kind {
	case world.KindStation:
		e.Body.Rotation += world.StationSpin
	case world.KindParticle:
		e.Body.Vel = e.Body.Vel.Scale(EntityDrag)
		e.Particle.Life -= ParticleDecay
		if e.Particle.Life <= 0 {
			e.MarkDeleted()
		}
	default:
		e.Body.Vel = e.Body.Vel.Scale(EntityDrag)
	}
}

// StepEntities integrates every live entity in the store
func StepEntities(store *world.Store) {
	store.Each(StepEntity)
}

// TurnToward eases rotation toward target along the shortest arc
func TurnToward(rotation, target float64) float64 {
	return rotation + shared.WrapAngle(target-rotation)*TurnSpeed
}

// PlayerInput is the subset of intents physics consumes
type PlayerInput struct {
	Thrust    bool
	LookAngle float64
}

// StepPlayer moves the player ship one tick: thrust along the current heading,
// turn toward the look angle, integrate, apply friction and clamp into the world.
func StepPlayer(body *world.Body, enginePower float64, in PlayerInput, worldSize float64) {
	if in.Thrust {
		body.Vel = body.Vel.Add(shared.FromAngle(body.Rotation, enginePower))
	}
	body.Rotation = TurnToward(body.Rotation, in.LookAngle)
	body.Pos = body.Pos.Add(body.Vel)
	body.Vel = body.Vel.Scale(Friction)
	body.Pos = body.Pos.Clamp(0, worldSize)
}

// Camera returns the top-left world position of a viewport centred on focus
func Camera(focus, viewport shared.Vector2) shared.Vector2 {
	return focus.Sub(viewport.Scale(0.5))
}

// LookAngle derives the heading toward a pointer given in screen coordinates
func LookAngle(pointer, viewport shared.Vector2) float64 {
	return pointer.Sub(viewport.Scale(0.5)).Angle()
}
