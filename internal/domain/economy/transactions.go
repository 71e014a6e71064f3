package economy

import (
	"fmt"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// Every operation here validates completely before it mutates anything, so a
// returned error always means the ship is exactly as it was.

func validateStack(mineral shared.Mineral, quantity int) error {
	if !mineral.IsValid() {
		return shared.NewValidationError("mineral", fmt.Sprintf("unknown mineral %q", mineral))
	}
	if quantity <= 0 {
		return shared.NewValidationError("quantity", "must be positive")
	}
	return nil
}

// DepositOre moves raw ore from the hold into the refinery's raw balance
func DepositOre(ship *player.Ship, mineral shared.Mineral, quantity int) error {
	if err := validateStack(mineral, quantity); err != nil {
		return err
	}
	if have := ship.Cargo.Quantity(mineral, false); have < quantity {
		return shared.NewInsufficientCargoError(mineral, false, quantity, have)
	}

	ship.Cargo.Remove(mineral, false, quantity)
	ship.Account.CreditRaw(mineral, quantity)
	return nil
}

// StartRefiningJob charges the tier's fee, takes quantity from the raw balance
// and queues a job started at now
func StartRefiningJob(ship *player.Ship, mineral shared.Mineral, quantity int, tier refinery.JobTier, now time.Time) (*refinery.Job, error) {
	if err := validateStack(mineral, quantity); err != nil {
		return nil, err
	}
	job, err := refinery.NewJob(mineral, quantity, tier, now)
	if err != nil {
		return nil, err
	}
	if ship.Credits < job.Cost {
		return nil, shared.NewInsufficientCreditsError(job.Cost, ship.Credits)
	}
	if have := ship.Account.RawBalance(mineral); have < quantity {
		return nil, shared.NewInsufficientBalanceError(mineral, false, quantity, have)
	}

	ship.Credits -= job.Cost
	_ = ship.Account.DebitRaw(mineral, quantity)
	ship.Account.Enqueue(job)
	return job, nil
}

// WithdrawRefined moves refined goods from the refinery into the hold
func WithdrawRefined(ship *player.Ship, mineral shared.Mineral, quantity int) error {
	if err := validateStack(mineral, quantity); err != nil {
		return err
	}
	if have := ship.Account.RefinedBalance(mineral); have < quantity {
		return shared.NewInsufficientBalanceError(mineral, true, quantity, have)
	}
	if !ship.Cargo.CanFit(quantity) {
		return shared.NewCargoCapacityError(quantity, ship.Cargo.AvailableCapacity())
	}

	_ = ship.Account.DebitRefined(mineral, quantity)
	ship.Cargo.Add(mineral, true, quantity)
	return nil
}

// SellRefinedMineral sells refined goods from the hold at the caller's unit
// price and returns the revenue. The price is trusted, not recomputed.
func SellRefinedMineral(ship *player.Ship, mineral shared.Mineral, quantity, unitPrice int) (int, error) {
	if err := validateStack(mineral, quantity); err != nil {
		return 0, err
	}
	if unitPrice < 0 {
		return 0, shared.NewValidationError("unit_price", "cannot be negative")
	}
	if have := ship.Cargo.Quantity(mineral, true); have < quantity {
		return 0, shared.NewInsufficientCargoError(mineral, true, quantity, have)
	}

	revenue := quantity * unitPrice
	ship.Cargo.Remove(mineral, true, quantity)
	ship.Credits += revenue
	return revenue, nil
}

// BuyUpgrade charges cost and applies the upgrade's single effect
func BuyUpgrade(ship *player.Ship, kind UpgradeKind, cost int) error {
	if !kind.IsValid() {
		return shared.NewValidationError("kind", fmt.Sprintf("unknown upgrade %q", kind))
	}
	if cost < 0 {
		return shared.NewValidationError("cost", "cannot be negative")
	}
	if ship.Credits < cost {
		return shared.NewInsufficientCreditsError(cost, ship.Credits)
	}

	ship.Credits -= cost
	switch kind {
	case UpgradeCargo:
		ship.Cargo.Capacity += CargoUpgradeSlots
	case UpgradeMining:
		ship.MiningPower *= MiningUpgradeFactor
	case UpgradeTractor:
		ship.TractorRange *= TractorUpgradeFactor
	case UpgradeEngine:
		ship.EnginePower *= EngineUpgradeFactor
	}
	ship.UpgradeLevels[string(kind)]++
	return nil
}
