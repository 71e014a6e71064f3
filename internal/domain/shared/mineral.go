package shared

import (
	"fmt"
	"strings"
	"unicode"
)

// Mineral identifies a kind of ore. The same mineral exists raw and refined.
type Mineral string

const (
	MineralFerroNickel Mineral = "Ferro-Nickel"
	MineralSilicon     Mineral = "Silicon Crystal"
	MineralCobalt      Mineral = "Cobalt Ore"
	MineralAetherium   Mineral = "Aetherium Dust"
	MineralQuantum     Mineral = "Quantum Fluid"
)

// RefinedValueMultiplier converts a raw base value into a refined one
const RefinedValueMultiplier = 5

var mineralBaseValues = map[Mineral]int{
	MineralFerroNickel: 10,
	MineralSilicon:     25,
	MineralCobalt:      60,
	MineralAetherium:   150,
	MineralQuantum:     500,
}

var mineralColors = map[Mineral]string{
	MineralFerroNickel: "#7a828e",
	MineralSilicon:     "#2dd4bf",
	MineralCobalt:      "#7e22ce",
	MineralAetherium:   "#fbbf24",
	MineralQuantum:     "#ffffff",
}

// AllMinerals returns every mineral in rarity order (most common first)
func AllMinerals() []Mineral {
	return []Mineral{
		MineralFerroNickel,
		MineralSilicon,
		MineralCobalt,
		MineralAetherium,
		MineralQuantum,
	}
}

// IsValid checks if the mineral is known
func (m Mineral) IsValid() bool {
	_, ok := mineralBaseValues[m]
	return ok
}

// BaseValue returns the raw unit value of the mineral
func (m Mineral) BaseValue() int {
	return mineralBaseValues[m]
}

// Color returns the display color tag of the mineral
func (m Mineral) Color() string {
	return mineralColors[m]
}

func (m Mineral) String() string {
	return string(m)
}

var mineralKeys = map[string]Mineral{
	"ferronickel": MineralFerroNickel,
	"silicon":     MineralSilicon,
	"cobalt":      MineralCobalt,
	"aetherium":   MineralAetherium,
	"quantum":     MineralQuantum,
}

// mineralKey folds a name to lower case and drops separators, so
// "Ferro-Nickel", "FERRO_NICKEL" and "ferro nickel" share one key
func mineralKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// ParseMineral accepts the display name or the short name (Ferronickel,
// Silicon, Cobalt, Aetherium, Quantum) in any case
func ParseMineral(s string) (Mineral, error) {
	if m := Mineral(s); m.IsValid() {
		return m, nil
	}
	key := mineralKey(s)
	if m, ok := mineralKeys[key]; ok {
		return m, nil
	}
	for _, m := range AllMinerals() {
		if mineralKey(string(m)) == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mineral: %s", s)
}

// RollMineral maps a uniform draw in [0,1) onto the rarity ladder.
// Each threshold overrides the previous one, so rarer minerals are strictly rarer.
func RollMineral(draw float64) Mineral {
	mineral := MineralFerroNickel
	if draw > 0.60 {
		mineral = MineralSilicon
	}
	if draw > 0.85 {
		mineral = MineralCobalt
	}
	if draw > 0.95 {
		mineral = MineralAetherium
	}
	if draw > 0.99 {
		mineral = MineralQuantum
	}
	return mineral
}
