package engine

import (
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// Request operations are synchronous and atomic with respect to Tick. Each one
// returns false and leaves every balance untouched when it is refused.

// DepositOre moves raw ore from the hold into the refinery account
func (e *Engine) DepositOre(mineral shared.Mineral, quantity int) bool {
	return e.request("deposit_ore", func() (StatsField, error) {
		if err := economy.DepositOre(e.ship, mineral, quantity); err != nil {
			return 0, err
		}
		return StatsCargo | StatsRefinery, nil
	})
}

// StartRefiningJob queues a job of the given tier, charging its fee
func (e *Engine) StartRefiningJob(mineral shared.Mineral, quantity int, tier refinery.JobTier) bool {
	return e.request("start_refining_job", func() (StatsField, error) {
		before := e.ship.Credits
		job, err := economy.StartRefiningJob(e.ship, mineral, quantity, tier, e.clock.Now())
		if err != nil {
			return 0, err
		}
		e.record(ledger.Entry{
			Type:          ledger.TransactionTypeRefiningFee,
			Amount:        -job.Cost,
			BalanceBefore: before,
			Description:   fmt.Sprintf("%s refining of %d %s", job.Tier, job.Quantity, job.Mineral),
			Mineral:       job.Mineral.String(),
			Quantity:      job.Quantity,
			Reference:     job.ID,
		})
		return StatsCredits | StatsRefinery, nil
	})
}

// WithdrawRefined moves refined goods from the refinery into the hold
func (e *Engine) WithdrawRefined(mineral shared.Mineral, quantity int) bool {
	return e.request("withdraw_refined", func() (StatsField, error) {
		if err := economy.WithdrawRefined(e.ship, mineral, quantity); err != nil {
			return 0, err
		}
		return StatsCargo | StatsRefinery, nil
	})
}

// SellRefinedMineral sells refined goods at the caller's unit price
func (e *Engine) SellRefinedMineral(mineral shared.Mineral, quantity, unitPrice int) bool {
	return e.request("sell_refined", func() (StatsField, error) {
		before := e.ship.Credits
		revenue, err := economy.SellRefinedMineral(e.ship, mineral, quantity, unitPrice)
		if err != nil {
			return 0, err
		}
		e.record(ledger.Entry{
			Type:          ledger.TransactionTypeSellRefined,
			Amount:        revenue,
			BalanceBefore: before,
			Description:   fmt.Sprintf("sold %d refined %s at %d", quantity, mineral, unitPrice),
			Mineral:       mineral.String(),
			Quantity:      quantity,
		})
		return StatsCargo | StatsCredits, nil
	})
}

// BuyUpgrade buys a permanent upgrade for cost credits
func (e *Engine) BuyUpgrade(kind economy.UpgradeKind, cost int) bool {
	return e.request("buy_upgrade", func() (StatsField, error) {
		before := e.ship.Credits
		if err := economy.BuyUpgrade(e.ship, kind, cost); err != nil {
			return 0, err
		}
		e.record(ledger.Entry{
			Type:          ledger.TransactionTypeBuyUpgrade,
			Amount:        -cost,
			BalanceBefore: before,
			Description:   fmt.Sprintf("%s upgrade level %d", kind, e.ship.UpgradeLevels[string(kind)]),
			Reference:     string(kind),
		})
		return StatsCredits | upgradeField(kind), nil
	})
}

func upgradeField(kind economy.UpgradeKind) StatsField {
	switch kind {
	case economy.UpgradeCargo:
		return StatsMaxCargo
	case economy.UpgradeMining:
		return StatsMiningPower
	case economy.UpgradeTractor:
		return StatsTractorRange
	default:
		return StatsEnginePower
	}
}

// request runs op under the lock, logs refusals and emits the stats event
func (e *Engine) request(operation string, op func() (StatsField, error)) bool {
	var fx outbox

	e.mu.Lock()
	changed, err := op()
	if err != nil {
		e.logger.Debug("request refused", "operation", operation, "reason", err)
	} else {
		e.statsEvent(&fx, changed)
	}
	credits := e.ship.Credits
	e.mu.Unlock()

	e.metrics.RecordRequest(operation, err == nil)
	if err == nil && changed.Has(StatsCredits) {
		e.metrics.RecordCredits(credits)
	}
	fx.flush()
	return err == nil
}

// record stamps and forwards a journal entry. Zero-credit movements are skipped.
func (e *Engine) record(entry ledger.Entry) {
	if entry.Amount == 0 {
		return
	}
	entry.SessionID = e.sessionID
	entry.Timestamp = e.clock.Now()
	e.journal.Record(entry)
}
