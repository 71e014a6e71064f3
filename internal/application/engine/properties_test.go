package engine_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Cargo never exceeds capacity whatever mix of pickups, withdrawals and
// economy requests happens between ticks.
func TestProperty_CargoNeverExceedsCapacity(t *testing.T) {
	minerals := shared.AllMinerals()

	rapid.Check(t, func(rt *rapid.T) {
		clock := shared.NewMockClock(time.Time{})
		e := engine.New(engine.Options{
			InitialAsteroids: engine.NoAsteroids,
			Stations:         []world.StationDefinition{},
			Clock:            clock,
			Random:           shared.NewRandomSource(rapid.Uint64Min(1).Draw(rt, "seed")),
		})
		ship := e.Ship()
		ship.Credits = rapid.IntRange(0, 5000).Draw(rt, "credits")

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			m := minerals[rapid.IntRange(0, len(minerals)-1).Draw(rt, "mineral")]
			q := rapid.IntRange(1, 8).Draw(rt, "quantity")

			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				for n := 0; n < q; n++ {
					e.Store().SpawnLoot(ship.Body.Pos, m)
				}
			case 1:
				e.DepositOre(m, q)
			case 2:
				e.StartRefiningJob(m, q, refinery.JobTierPriority)
			case 3:
				e.WithdrawRefined(m, q)
			case 4:
				e.SellRefinedMineral(m, q, economy.RefinedUnitPrice(m, false))
			case 5:
				e.BuyUpgrade(economy.UpgradeCargo, rapid.IntRange(0, 600).Draw(rt, "cost"))
			case 6:
				clock.Advance(time.Duration(rapid.IntRange(0, 120).Draw(rt, "seconds")) * time.Second)
			}
			e.Tick(16 * time.Millisecond)

			snap := e.Snapshot()
			if units, max := snap.Player.Cargo.Units(), snap.Player.MaxCargo(); units > max {
				rt.Fatalf("cargo %d exceeds capacity %d", units, max)
			}
			if snap.Player.Credits < 0 {
				rt.Fatalf("credits went negative: %d", snap.Player.Credits)
			}
		}
	})
}
