package player

import (
	"math"

	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Starting loadout
const (
	StartRadius       = 15.0
	StartMaxCargo     = 12
	StartCredits      = 500
	StartHealth       = 100.0
	StartMiningPower  = 1.0
	StartTractorRange = 200.0
	StartEnginePower  = 0.2
	// StartOffsetY places the ship just below the central refinery
	StartOffsetY = 300.0
)

// Ship is the single player entity plus its economy state.
//
// Invariants:
// - Credits >= 0
// - Cargo.Units() <= Cargo.Capacity (the max cargo)
// - Health is tracked but no rule reduces it
type Ship struct {
	ID           world.EntityID
	Body         world.Body
	Cargo        *shared.Cargo
	Account      *refinery.Account
	Credits      int
	Health       float64
	MaxHealth    float64
	MiningPower  float64
	TractorRange float64
	EnginePower  float64
	// UpgradeLevels counts purchases per upgrade kind, for quoting escalated prices
	UpgradeLevels map[string]int
}

// NewShip creates the starting ship for a world of worldSize, facing up
func NewShip(worldSize float64) *Ship {
	cargo, _ := shared.NewCargo(StartMaxCargo)
	return &Ship{
		ID: world.NewEntityID("player"),
		Body: world.Body{
			Pos:      shared.Vec(worldSize/2, worldSize/2+StartOffsetY),
			Radius:   StartRadius,
			Rotation: -math.Pi / 2,
		},
		Cargo:         cargo,
		Account:       refinery.NewAccount(),
		Credits:       StartCredits,
		Health:        StartHealth,
		MaxHealth:     StartHealth,
		MiningPower:   StartMiningPower,
		TractorRange:  StartTractorRange,
		EnginePower:   StartEnginePower,
		UpgradeLevels: make(map[string]int),
	}
}

// MaxCargo returns the hold capacity
func (s *Ship) MaxCargo() int {
	return s.Cargo.Capacity
}

// Facing returns the unit vector the ship points along
func (s *Ship) Facing() shared.Vector2 {
	return shared.FromAngle(s.Body.Rotation, 1)
}

// Clone returns a deep copy for snapshots
func (s *Ship) Clone() *Ship {
	out := *s
	out.Cargo = s.Cargo.Clone()
	out.Account = s.Account.Clone()
	out.UpgradeLevels = make(map[string]int, len(s.UpgradeLevels))
	for k, v := range s.UpgradeLevels {
		out.UpgradeLevels[k] = v
	}
	return &out
}
