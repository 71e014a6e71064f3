package world

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// Kind discriminates the entity variants
type Kind int

const (
	KindPlayer Kind = iota
	KindAsteroid
	KindLoot
	KindParticle
	KindStation
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAsteroid:
		return "asteroid"
	case KindLoot:
		return "loot"
	case KindParticle:
		return "particle"
	case KindStation:
		return "station"
	default:
		return "unknown"
	}
}

// EntityID uniquely identifies an entity for its lifetime
type EntityID string

// NewEntityID generates a fresh identifier
func NewEntityID(prefix string) EntityID {
	return EntityID(prefix + "-" + uuid.NewString())
}

// Body is the kinematic state shared by every entity, the player included
type Body struct {
	Pos      shared.Vector2
	Vel      shared.Vector2
	Radius   float64
	Rotation float64
}

// Entity is a closed tagged variant. Exactly one payload pointer is set and it matches Kind.
// Systems dispatch with a switch on Kind.
type Entity struct {
	ID      EntityID
	Kind    Kind
	Body    Body
	Deleted bool

	Asteroid *AsteroidData
	Loot     *LootData
	Particle *ParticleData
	Station  *StationData
}

// AsteroidData is the asteroid payload. Outline is generated at spawn and never changes.
type AsteroidData struct {
	Tier    Tier
	HP      float64
	MaxHP   float64
	Mineral shared.Mineral
	Outline []shared.Vector2
}

// LootData is the loot payload
type LootData struct {
	Mineral   shared.Mineral
	Value     int
	Attracted bool
}

// ParticleData is the cosmetic particle payload
type ParticleData struct {
	Life    float64
	MaxLife float64
	Color   string
}

// StationData is the station payload
type StationData struct {
	Name           string
	Type           StationType
	Specialization []shared.Mineral
}

// MarkDeleted tombstones the entity; the store drops it at the end of the tick
func (e *Entity) MarkDeleted() {
	e.Deleted = true
}

// Clone returns a deep copy suitable for handing to renderers
func (e *Entity) Clone() Entity {
	out := *e
	if e.Asteroid != nil {
		a := *e.Asteroid
		a.Outline = append([]shared.Vector2(nil), e.Asteroid.Outline...)
		out.Asteroid = &a
	}
	if e.Loot != nil {
		l := *e.Loot
		out.Loot = &l
	}
	if e.Particle != nil {
		p := *e.Particle
		out.Particle = &p
	}
	if e.Station != nil {
		s := *e.Station
		s.Specialization = append([]shared.Mineral(nil), e.Station.Specialization...)
		out.Station = &s
	}
	return out
}
