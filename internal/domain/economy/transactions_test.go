package economy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

func newShip() *player.Ship {
	return player.NewShip(40000)
}

func TestDepositThenRefine_RestoresRawAndQueuesOneJob(t *testing.T) {
	// Arrange
	ship := newShip()
	clock := shared.NewMockClock(time.Time{})
	ship.Cargo.Add(shared.MineralCobalt, false, 10)
	rawBefore := ship.Account.RawBalance(shared.MineralCobalt)

	// Act
	require.NoError(t, economy.DepositOre(ship, shared.MineralCobalt, 10))
	job, err := economy.StartRefiningJob(ship, shared.MineralCobalt, 10, refinery.JobTierPriority, clock.Now())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, rawBefore, ship.Account.RawBalance(shared.MineralCobalt))
	require.Len(t, ship.Account.Jobs, 1)
	assert.Equal(t, job, ship.Account.Jobs[0])
	assert.Equal(t, refinery.JobTierPriority.Duration(), job.Duration)
	assert.Equal(t, 250, player.StartCredits-ship.Credits)
	assert.Equal(t, 0, ship.Cargo.Units())
}

func TestDepositOre_InsufficientCargo(t *testing.T) {
	// Arrange
	ship := newShip()
	ship.Cargo.Add(shared.MineralSilicon, false, 2)
	ship.Cargo.Add(shared.MineralSilicon, true, 5)

	// Act
	err := economy.DepositOre(ship, shared.MineralSilicon, 3)

	// Assert
	var cargoErr *shared.InsufficientCargoError
	require.True(t, errors.As(err, &cargoErr))
	assert.False(t, cargoErr.Refined)
	assert.Equal(t, 2, ship.Cargo.Quantity(shared.MineralSilicon, false))
	assert.Equal(t, 0, ship.Account.RawBalance(shared.MineralSilicon))
}

func TestStartRefiningJob_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		raw     int
		credits int
		wantErr interface{}
	}{
		{"raw one short", 9, 500, &shared.InsufficientBalanceError{}},
		{"credits one short", 10, 99, &shared.InsufficientCreditsError{}},
		{"exactly enough", 10, 100, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ship := newShip()
			ship.Credits = tt.credits
			ship.Account.CreditRaw(shared.MineralFerroNickel, tt.raw)

			// Act
			job, err := economy.StartRefiningJob(ship, shared.MineralFerroNickel, 10, refinery.JobTierStandard, time.Now())

			// Assert
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, job)
				assert.Equal(t, 0, ship.Credits)
				assert.Equal(t, tt.raw-10, ship.Account.RawBalance(shared.MineralFerroNickel))
				return
			}
			require.Error(t, err)
			assert.IsType(t, tt.wantErr, err)
			assert.Nil(t, job)
			assert.Equal(t, tt.credits, ship.Credits)
			assert.Equal(t, tt.raw, ship.Account.RawBalance(shared.MineralFerroNickel))
			assert.Empty(t, ship.Account.Jobs)
		})
	}
}

func TestRoundTrip_DepositRefineCompleteWithdraw(t *testing.T) {
	// Arrange
	ship := newShip()
	clock := shared.NewMockClock(time.Time{})
	ship.Cargo.Add(shared.MineralAetherium, false, 6)

	// Act
	require.NoError(t, economy.DepositOre(ship, shared.MineralAetherium, 6))
	_, err := economy.StartRefiningJob(ship, shared.MineralAetherium, 6, refinery.JobTierStandard, clock.Now())
	require.NoError(t, err)
	ship.Account.Tick(clock.Advance(refinery.JobTierStandard.Duration()))
	err = economy.WithdrawRefined(ship, shared.MineralAetherium, 6)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, ship.Cargo.Quantity(shared.MineralAetherium, true))
	assert.Equal(t, 0, ship.Account.RawBalance(shared.MineralAetherium))
	assert.Equal(t, 0, ship.Account.RefinedBalance(shared.MineralAetherium))
}

func TestWithdrawRefined_RespectsCapacity(t *testing.T) {
	// Arrange
	ship := newShip()
	ship.Cargo.Add(shared.MineralFerroNickel, false, 10)
	ship.Account.CreditRefined(shared.MineralQuantum, 3)

	// Act
	err := economy.WithdrawRefined(ship, shared.MineralQuantum, 3)

	// Assert
	var capErr *shared.CargoCapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 2, capErr.Free)
	assert.Equal(t, 3, ship.Account.RefinedBalance(shared.MineralQuantum))
	assert.Equal(t, 10, ship.Cargo.Units())

	// Act: a withdrawal that exactly fills the hold is fine
	require.NoError(t, economy.WithdrawRefined(ship, shared.MineralQuantum, 2))
	assert.True(t, ship.Cargo.IsFull())
}

func TestSellRefinedMineral(t *testing.T) {
	// Arrange
	ship := newShip()
	ship.Cargo.Add(shared.MineralSilicon, true, 4)
	ship.Cargo.Add(shared.MineralSilicon, false, 4)

	// Act
	revenue, err := economy.SellRefinedMineral(ship, shared.MineralSilicon, 4, 137)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 548, revenue)
	assert.Equal(t, 500+548, ship.Credits)
	assert.Nil(t, ship.Cargo.Find(shared.MineralSilicon, true))
	assert.Equal(t, 4, ship.Cargo.Quantity(shared.MineralSilicon, false), "raw ore is never sold")

	// Act: nothing refined left
	_, err = economy.SellRefinedMineral(ship, shared.MineralSilicon, 1, 137)
	assert.Error(t, err)
	assert.Equal(t, 500+548, ship.Credits)
}

func TestBuyUpgrade_EndToEnd(t *testing.T) {
	// Arrange
	ship := newShip()

	// Act
	err := economy.BuyUpgrade(ship, economy.UpgradeCargo, 500)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, ship.Credits)
	assert.Equal(t, 16, ship.MaxCargo())

	// Act
	err = economy.BuyUpgrade(ship, economy.UpgradeCargo, 1)

	// Assert
	var creditErr *shared.InsufficientCreditsError
	require.True(t, errors.As(err, &creditErr))
	assert.Equal(t, 16, ship.MaxCargo())
	assert.Equal(t, 1, ship.UpgradeLevels["cargo"])
}

func TestBuyUpgrade_EffectsCompound(t *testing.T) {
	ship := newShip()
	ship.Credits = 10000

	require.NoError(t, economy.BuyUpgrade(ship, economy.UpgradeMining, 0))
	require.NoError(t, economy.BuyUpgrade(ship, economy.UpgradeMining, 0))
	require.NoError(t, economy.BuyUpgrade(ship, economy.UpgradeTractor, 0))
	require.NoError(t, economy.BuyUpgrade(ship, economy.UpgradeEngine, 0))

	assert.InDelta(t, 1.5625, ship.MiningPower, 1e-12)
	assert.InDelta(t, 260, ship.TractorRange, 1e-9)
	assert.InDelta(t, 0.24, ship.EnginePower, 1e-12)
}

func TestValidation_RejectsBadInput(t *testing.T) {
	ship := newShip()

	var v *shared.ValidationError
	assert.True(t, errors.As(economy.DepositOre(ship, shared.MineralCobalt, -1), &v))
	assert.True(t, errors.As(economy.DepositOre(ship, "Unobtainium", 1), &v))
	assert.True(t, errors.As(economy.BuyUpgrade(ship, "shields", 1), &v))
	_, err := economy.StartRefiningJob(ship, shared.MineralCobalt, 1, "express", time.Now())
	assert.True(t, errors.As(err, &v))
	assert.Equal(t, player.StartCredits, ship.Credits)
}

func TestPricingAndQuotes(t *testing.T) {
	assert.Equal(t, 300, economy.RefinedUnitPrice(shared.MineralCobalt, false))
	assert.Equal(t, 330, economy.RefinedUnitPrice(shared.MineralCobalt, true))
	assert.Equal(t, 137, economy.RefinedUnitPrice(shared.MineralSilicon, true))

	assert.Equal(t, 500, economy.Quote(economy.UpgradeCargo, 0))
	assert.Equal(t, 750, economy.Quote(economy.UpgradeCargo, 1))
	assert.Equal(t, 1125, economy.Quote(economy.UpgradeCargo, 2))
	assert.Len(t, economy.Catalog(), 4)
}
