package world

import (
	"slices"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// StationType distinguishes refineries from trade hubs
type StationType int

const (
	StationRefinery StationType = iota
	StationTrade
)

func (t StationType) String() string {
	if t == StationRefinery {
		return "refinery"
	}
	return "trade"
}

// Station radii and docking reach
const (
	RefineryRadius = 80.0
	TradeRadius    = 60.0
	// DockingMargin is added to a station's radius to get its proximity range
	DockingMargin = 100.0
	// StationSpin is the station rotation per tick (radians)
	StationSpin = 0.0015
)

// StationDefinition is a fixed station placement
type StationDefinition struct {
	Name           string
	Type           StationType
	Pos            shared.Vector2
	Specialization []shared.Mineral
}

// DefaultStations returns the five stations laid out around the world centre
func DefaultStations(worldSize float64) []StationDefinition {
	c := worldSize / 2
	return []StationDefinition{
		{
			Name: "The Forge",
			Type: StationRefinery,
			Pos:  shared.Vec(c, c),
		},
		{
			Name:           "Nexus-7",
			Type:           StationTrade,
			Pos:            shared.Vec(c+5000, c-5000),
			Specialization: []shared.Mineral{shared.MineralSilicon, shared.MineralQuantum},
		},
		{
			Name:           "Outpost Zeta",
			Type:           StationTrade,
			Pos:            shared.Vec(c-6000, c+4000),
			Specialization: []shared.Mineral{shared.MineralFerroNickel, shared.MineralCobalt},
		},
		{
			Name:           "Void Monastery",
			Type:           StationTrade,
			Pos:            shared.Vec(c-3000, c-7000),
			Specialization: []shared.Mineral{shared.MineralAetherium},
		},
		{
			Name: "Cinder Works",
			Type: StationRefinery,
			Pos:  shared.Vec(c+7000, c+6000),
		},
	}
}

// Radius returns the station body radius for its type
func (d StationDefinition) Radius() float64 {
	if d.Type == StationRefinery {
		return RefineryRadius
	}
	return TradeRadius
}

// Specializes reports whether the station pays the trade bonus for mineral
func (s *StationData) Specializes(mineral shared.Mineral) bool {
	return slices.Contains(s.Specialization, mineral)
}

// InDockingRange reports whether pos is within the station's proximity range
func (e *Entity) InDockingRange(pos shared.Vector2) bool {
	return e.Kind == KindStation && e.Body.Pos.Distance(pos) < e.Body.Radius+DockingMargin
}
