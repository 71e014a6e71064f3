package economy

import (
	"math"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// SpecializationBonus multiplies refined prices at a station specializing in the mineral
const SpecializationBonus = 1.1

// RefinedUnitPrice is what a trade station pays per refined unit
func RefinedUnitPrice(mineral shared.Mineral, specialized bool) int {
	price := float64(mineral.BaseValue() * shared.RefinedValueMultiplier)
	if specialized {
		price *= SpecializationBonus
	}
	return int(math.Floor(price))
}
