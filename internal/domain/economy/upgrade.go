package economy

import (
	"fmt"
	"math"
)

// UpgradeKind names a permanent ship upgrade
type UpgradeKind string

const (
	UpgradeCargo   UpgradeKind = "cargo"
	UpgradeMining  UpgradeKind = "mining"
	UpgradeTractor UpgradeKind = "tractor"
	UpgradeEngine  UpgradeKind = "engine"
)

// Upgrade effects. They compound and have no cap.
const (
	CargoUpgradeSlots    = 4
	MiningUpgradeFactor  = 1.25
	TractorUpgradeFactor = 1.3
	EngineUpgradeFactor  = 1.2
)

// UpgradeSpec is a catalog entry
type UpgradeSpec struct {
	Kind           UpgradeKind
	Name           string
	Description    string
	BaseCost       int
	CostMultiplier float64
}

var catalog = []UpgradeSpec{
	{Kind: UpgradeCargo, Name: "Cargo Hold", Description: "+4 cargo slots", BaseCost: 500, CostMultiplier: 1.5},
	{Kind: UpgradeMining, Name: "Mining Laser", Description: "+25% mining power", BaseCost: 750, CostMultiplier: 1.4},
	{Kind: UpgradeTractor, Name: "Tractor Beam", Description: "+30% tractor range", BaseCost: 400, CostMultiplier: 1.3},
	{Kind: UpgradeEngine, Name: "Engine", Description: "+20% thrust", BaseCost: 600, CostMultiplier: 1.4},
}

// Catalog returns every upgrade in display order
func Catalog() []UpgradeSpec {
	return append([]UpgradeSpec(nil), catalog...)
}

// Lookup returns the catalog entry for kind
func Lookup(kind UpgradeKind) (UpgradeSpec, bool) {
	for _, spec := range catalog {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return UpgradeSpec{}, false
}

// IsValid checks if the kind is in the catalog
func (k UpgradeKind) IsValid() bool {
	_, ok := Lookup(k)
	return ok
}

func (k UpgradeKind) String() string {
	return string(k)
}

// ParseUpgradeKind parses a string into an UpgradeKind
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	k := UpgradeKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid upgrade kind: %s", s)
	}
	return k, nil
}

// Quote prices the next purchase of kind after level previous ones.
// Purchases themselves always trust the caller's cost; Quote is what a UI offers.
func Quote(kind UpgradeKind, level int) int {
	spec, ok := Lookup(kind)
	if !ok {
		return 0
	}
	if level < 0 {
		level = 0
	}
	return int(math.Floor(float64(spec.BaseCost) * math.Pow(spec.CostMultiplier, float64(level))))
}
