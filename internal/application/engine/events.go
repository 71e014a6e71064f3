package engine

import (
	"strings"

	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// StatsField is a bitset of player-visible fields
type StatsField uint16

const (
	StatsCargo StatsField = 1 << iota
	StatsCredits
	StatsRefinery
	StatsMaxCargo
	StatsMiningPower
	StatsTractorRange
	StatsEnginePower
)

var statsFieldNames = []string{"cargo", "credits", "refinery", "maxCargo", "miningPower", "tractorRange", "enginePower"}

// Has reports whether every bit of f is set
func (s StatsField) Has(f StatsField) bool {
	return s&f == f
}

func (s StatsField) String() string {
	var names []string
	for i, name := range statsFieldNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// StatsUpdate is emitted after anything player-visible changes. Player is a
// private copy; listeners may keep it.
type StatsUpdate struct {
	Changed StatsField
	Player  *player.Ship
}

// StationView is a read-only description of a station
type StationView struct {
	ID             world.EntityID
	Name           string
	Type           world.StationType
	Pos            shared.Vector2
	Radius         float64
	Specialization []shared.Mineral
}

// Specializes reports whether the station pays a bonus for mineral
func (v *StationView) Specializes(mineral shared.Mineral) bool {
	for _, m := range v.Specialization {
		if m == mineral {
			return true
		}
	}
	return false
}

func stationView(e *world.Entity) *StationView {
	if e == nil || e.Station == nil {
		return nil
	}
	return &StationView{
		ID:             e.ID,
		Name:           e.Station.Name,
		Type:           e.Station.Type,
		Pos:            e.Body.Pos,
		Radius:         e.Body.Radius,
		Specialization: append([]shared.Mineral(nil), e.Station.Specialization...),
	}
}

// StatsListener is called after player-visible fields change
type StatsListener func(StatsUpdate)

// ProximityListener is called every tick with the station in docking range, or nil
type ProximityListener func(*StationView)
