package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/cucumber/godog"
)

type refineryEconomyContext struct {
	clock     *shared.MockClock
	ship      *player.Ship
	before    *player.Ship
	job       *refinery.Job
	completed []*refinery.Job
	revenue   int
	err       error
}

func (ec *refineryEconomyContext) reset() {
	ec.clock = shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ec.ship = player.NewShip(40000)
	ec.before = nil
	ec.job = nil
	ec.completed = nil
	ec.revenue = 0
	ec.err = nil
}

// snapshot remembers the ship so a refused operation can be checked for side effects
func (ec *refineryEconomyContext) snapshot() {
	ec.before = ec.ship.Clone()
}

// Given steps

func (ec *refineryEconomyContext) aShipWithCredits(credits int) error {
	ec.ship.Credits = credits
	return nil
}

func (ec *refineryEconomyContext) theHoldCarries(quantity int, kind, mineral string) error {
	m, err := shared.ParseMineral(mineral)
	if err != nil {
		return err
	}
	ec.ship.Cargo.Add(m, kind == "refined", quantity)
	return nil
}

func (ec *refineryEconomyContext) theRefineryHolds(quantity int, kind, mineral string) error {
	m, err := shared.ParseMineral(mineral)
	if err != nil {
		return err
	}
	if kind == "refined" {
		ec.ship.Account.CreditRefined(m, quantity)
	} else {
		ec.ship.Account.CreditRaw(m, quantity)
	}
	return nil
}

func (ec *refineryEconomyContext) theHoldCapacityIs(capacity int) error {
	ec.ship.Cargo.Capacity = capacity
	return nil
}

// When steps

func (ec *refineryEconomyContext) iDepositOre(quantity int, mineral string) error {
	ec.snapshot()
	ec.err = economy.DepositOre(ec.ship, shared.Mineral(mineral), quantity)
	return nil
}

func (ec *refineryEconomyContext) iStartARefiningJob(tier string, quantity int, mineral string) error {
	ec.snapshot()
	ec.job, ec.err = economy.StartRefiningJob(ec.ship, shared.Mineral(mineral), quantity, refinery.JobTier(tier), ec.clock.Now())
	return nil
}

func (ec *refineryEconomyContext) minutesPass(minutes int) error {
	ec.clock.Advance(time.Duration(minutes) * time.Minute)
	ec.completed = append(ec.completed, ec.ship.Account.Tick(ec.clock.Now())...)
	return nil
}

func (ec *refineryEconomyContext) iWithdrawRefined(quantity int, mineral string) error {
	ec.snapshot()
	ec.err = economy.WithdrawRefined(ec.ship, shared.Mineral(mineral), quantity)
	return nil
}

func (ec *refineryEconomyContext) iSellRefined(quantity int, mineral string, unitPrice int) error {
	ec.snapshot()
	ec.revenue, ec.err = economy.SellRefinedMineral(ec.ship, shared.Mineral(mineral), quantity, unitPrice)
	return nil
}

func (ec *refineryEconomyContext) iSellRefinedAtStation(quantity int, mineral, specialized string) error {
	m, err := shared.ParseMineral(mineral)
	if err != nil {
		return err
	}
	price := economy.RefinedUnitPrice(m, specialized == "a specialized")
	return ec.iSellRefined(quantity, mineral, price)
}

func (ec *refineryEconomyContext) iBuyTheUpgrade(kind string, cost int) error {
	ec.snapshot()
	ec.err = economy.BuyUpgrade(ec.ship, economy.UpgradeKind(kind), cost)
	return nil
}

func (ec *refineryEconomyContext) iBuyTheUpgradeAtItsQuotedPrice(kind string) error {
	k, err := economy.ParseUpgradeKind(kind)
	if err != nil {
		return err
	}
	return ec.iBuyTheUpgrade(kind, economy.Quote(k, ec.ship.UpgradeLevels[kind]))
}

// Then steps

func (ec *refineryEconomyContext) theOperationShouldSucceed() error {
	if ec.err != nil {
		return fmt.Errorf("expected success, got: %w", ec.err)
	}
	return nil
}

func (ec *refineryEconomyContext) theOperationShouldFailWith(fragment string) error {
	if ec.err == nil {
		return fmt.Errorf("expected failure containing %q, got success", fragment)
	}
	if !strings.Contains(ec.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got %q", fragment, ec.err.Error())
	}
	return nil
}

func (ec *refineryEconomyContext) theShipShouldBeUnchanged() error {
	if ec.before == nil {
		return fmt.Errorf("no operation was attempted")
	}
	if ec.ship.Credits != ec.before.Credits {
		return fmt.Errorf("credits changed from %d to %d", ec.before.Credits, ec.ship.Credits)
	}
	if ec.ship.Cargo.String() != ec.before.Cargo.String() {
		return fmt.Errorf("hold changed from %s to %s", ec.before.Cargo, ec.ship.Cargo)
	}
	if len(ec.ship.Account.Jobs) != len(ec.before.Account.Jobs) {
		return fmt.Errorf("job queue changed from %d to %d", len(ec.before.Account.Jobs), len(ec.ship.Account.Jobs))
	}
	for _, m := range shared.AllMinerals() {
		if ec.ship.Account.RawBalance(m) != ec.before.Account.RawBalance(m) ||
			ec.ship.Account.RefinedBalance(m) != ec.before.Account.RefinedBalance(m) {
			return fmt.Errorf("refinery balance for %s changed", m)
		}
	}
	if ec.ship.Cargo.Capacity != ec.before.Cargo.Capacity || ec.ship.MiningPower != ec.before.MiningPower {
		return fmt.Errorf("ship stats changed")
	}
	return nil
}

func (ec *refineryEconomyContext) theShipShouldHaveCredits(credits int) error {
	if ec.ship.Credits != credits {
		return fmt.Errorf("expected %d credits, got %d", credits, ec.ship.Credits)
	}
	return nil
}

func (ec *refineryEconomyContext) theHoldShouldCarry(quantity int, kind, mineral string) error {
	got := ec.ship.Cargo.Quantity(shared.Mineral(mineral), kind == "refined")
	if got != quantity {
		return fmt.Errorf("expected %d %s %s in hold, got %d", quantity, kind, mineral, got)
	}
	return nil
}

func (ec *refineryEconomyContext) theRefineryShouldHold(quantity int, kind, mineral string) error {
	m := shared.Mineral(mineral)
	got := ec.ship.Account.RawBalance(m)
	if kind == "refined" {
		got = ec.ship.Account.RefinedBalance(m)
	}
	if got != quantity {
		return fmt.Errorf("expected refinery to hold %d %s %s, got %d", quantity, kind, mineral, got)
	}
	return nil
}

func (ec *refineryEconomyContext) jobsShouldBePending(count int) error {
	if got := len(ec.ship.Account.Jobs); got != count {
		return fmt.Errorf("expected %d pending jobs, got %d", count, got)
	}
	return nil
}

func (ec *refineryEconomyContext) jobsShouldHaveCompleted(count int) error {
	if len(ec.completed) != count {
		return fmt.Errorf("expected %d completed jobs, got %d", count, len(ec.completed))
	}
	return nil
}

func (ec *refineryEconomyContext) theJobShouldBeReadyIn(minutes int) error {
	if ec.job == nil {
		return fmt.Errorf("no job was started")
	}
	want := time.Duration(minutes) * time.Minute
	if got := ec.job.Remaining(ec.clock.Now()); got != want {
		return fmt.Errorf("expected job ready in %s, got %s", want, got)
	}
	return nil
}

func (ec *refineryEconomyContext) theSaleShouldEarn(revenue int) error {
	if ec.revenue != revenue {
		return fmt.Errorf("expected revenue %d, got %d", revenue, ec.revenue)
	}
	return nil
}

func (ec *refineryEconomyContext) theHoldCapacityShouldBe(capacity int) error {
	if ec.ship.MaxCargo() != capacity {
		return fmt.Errorf("expected hold capacity %d, got %d", capacity, ec.ship.MaxCargo())
	}
	return nil
}

func InitializeRefineryEconomyScenario(ctx *godog.ScenarioContext) {
	ec := &refineryEconomyContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a ship with (\d+) credits$`, ec.aShipWithCredits)
	ctx.Step(`^the hold carries (\d+) (raw|refined) "([^"]*)"$`, ec.theHoldCarries)
	ctx.Step(`^the refinery holds (\d+) (raw|refined) "([^"]*)"$`, ec.theRefineryHolds)
	ctx.Step(`^the hold capacity is (\d+)$`, ec.theHoldCapacityIs)

	// When steps
	ctx.Step(`^I deposit (-?\d+) "([^"]*)" ore$`, ec.iDepositOre)
	ctx.Step(`^I start a (\w+) refining job for (-?\d+) "([^"]*)"$`, ec.iStartARefiningJob)
	ctx.Step(`^(\d+) minutes pass$`, ec.minutesPass)
	ctx.Step(`^I withdraw (-?\d+) refined "([^"]*)"$`, ec.iWithdrawRefined)
	ctx.Step(`^I sell (-?\d+) refined "([^"]*)" at (-?\d+) credits each$`, ec.iSellRefined)
	ctx.Step(`^I sell (\d+) refined "([^"]*)" at (a specialized|an ordinary) station$`, ec.iSellRefinedAtStation)
	ctx.Step(`^I buy the "([^"]*)" upgrade for (-?\d+) credits$`, ec.iBuyTheUpgrade)
	ctx.Step(`^I buy the "([^"]*)" upgrade at its quoted price$`, ec.iBuyTheUpgradeAtItsQuotedPrice)

	// Then steps
	ctx.Step(`^the operation should succeed$`, ec.theOperationShouldSucceed)
	ctx.Step(`^the operation should fail with "([^"]*)"$`, ec.theOperationShouldFailWith)
	ctx.Step(`^the ship should be unchanged$`, ec.theShipShouldBeUnchanged)
	ctx.Step(`^the ship should have (\d+) credits$`, ec.theShipShouldHaveCredits)
	ctx.Step(`^the hold should carry (\d+) (raw|refined) "([^"]*)"$`, ec.theHoldShouldCarry)
	ctx.Step(`^the refinery should hold (\d+) (raw|refined) "([^"]*)"$`, ec.theRefineryShouldHold)
	ctx.Step(`^(\d+) refining jobs? should be pending$`, ec.jobsShouldBePending)
	ctx.Step(`^(\d+) refining jobs? should have completed$`, ec.jobsShouldHaveCompleted)
	ctx.Step(`^the job should be ready in (\d+) minutes$`, ec.theJobShouldBeReadyIn)
	ctx.Step(`^the sale should earn (\d+) credits$`, ec.theSaleShouldEarn)
	ctx.Step(`^the hold capacity should be (\d+)$`, ec.theHoldCapacityShouldBe)
}
