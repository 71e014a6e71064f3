package world

import "fmt"

// Tier is the asteroid size class; 1 is the largest and 3 is terminal
type Tier int

const (
	TierLarge  Tier = 1
	TierMedium Tier = 2
	TierSmall  Tier = 3
)

const (
	// AsteroidOutlineSides is the number of points in an asteroid silhouette
	AsteroidOutlineSides = 8
	// AsteroidOutlineJitter is the fraction of the radius each point may deviate by
	AsteroidOutlineJitter = 0.3
	// AsteroidMaxDrift bounds the spawn velocity on each axis
	AsteroidMaxDrift = 0.5
)

var tierRadius = map[Tier]float64{TierLarge: 50, TierMedium: 25, TierSmall: 12}
var tierMaxHP = map[Tier]float64{TierLarge: 300, TierMedium: 150, TierSmall: 50}

// IsValid checks that the tier is 1, 2 or 3
func (t Tier) IsValid() bool {
	return t >= TierLarge && t <= TierSmall
}

// Radius returns the collision radius of the tier
func (t Tier) Radius() float64 {
	return tierRadius[t]
}

// MaxHP returns the starting integrity of the tier
func (t Tier) MaxHP() float64 {
	return tierMaxHP[t]
}

// IsTerminal reports whether the tier breaks into loot instead of children
func (t Tier) IsTerminal() bool {
	return t == TierSmall
}

// Next returns the tier of fracture children
func (t Tier) Next() Tier {
	if t.IsTerminal() {
		return t
	}
	return t + 1
}

// ExplosionSize names the fracture size for audio cues
func (t Tier) ExplosionSize() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	default:
		return "small"
	}
}

// ShakeStrength is the screen-shake amplitude a fracture of this tier triggers
func (t Tier) ShakeStrength() float64 {
	switch t {
	case TierLarge:
		return 15
	case TierMedium:
		return 8
	default:
		return 4
	}
}

// ParseTier validates an integer tier
func ParseTier(n int) (Tier, error) {
	t := Tier(n)
	if !t.IsValid() {
		return 0, fmt.Errorf("invalid asteroid tier: %d", n)
	}
	return t, nil
}
