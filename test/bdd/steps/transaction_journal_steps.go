package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceminer-go/internal/application/economy/commands"
	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	appledger "github.com/andrescamacho/spaceminer-go/internal/application/ledger"
	ledgercmd "github.com/andrescamacho/spaceminer-go/internal/application/ledger/commands"
	"github.com/andrescamacho/spaceminer-go/internal/application/ledger/queries"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/database"
	"github.com/cucumber/godog"
	"gorm.io/gorm"
)

type transactionJournalContext struct {
	db       *gorm.DB
	clock    *shared.MockClock
	mediator mediator.Mediator
	writer   *appledger.JournalWriter
	engine   *engine.Engine
	accepted bool
	err      error
	list     *queries.GetTransactionsResponse
}

func (jc *transactionJournalContext) reset() {
	if jc.db != nil {
		_ = database.Close(jc.db)
	}
	jc.db = nil
	jc.clock = nil
	jc.mediator = nil
	jc.writer = nil
	jc.engine = nil
	jc.accepted = false
	jc.err = nil
	jc.list = nil
}

// Given steps

func (jc *transactionJournalContext) aSessionJournalingToAnInMemoryLedger() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}
	jc.db = db
	jc.clock = shared.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	repo := persistence.NewGormTransactionRepository(db)
	m := mediator.NewMediator()
	if err := mediator.RegisterHandler[*ledgercmd.RecordTransactionCommand](m, ledgercmd.NewRecordTransactionHandler(repo, jc.clock, nil)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*queries.GetTransactionsQuery](m, queries.NewGetTransactionsHandler(repo)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*queries.GetProfitLossQuery](m, queries.NewGetProfitLossHandler(repo)); err != nil {
		return err
	}

	jc.writer = appledger.NewJournalWriter(m, 0, nil)
	jc.engine = engine.New(engine.Options{
		InitialAsteroids: engine.NoAsteroids,
		Clock:            jc.clock,
		Journal:          jc.writer,
	})
	if err := commands.Register(m, jc.engine); err != nil {
		return err
	}
	jc.mediator = m
	return nil
}

// When steps

func (jc *transactionJournalContext) iBuyUpgradeThroughTheCommandBus(kind string, cost int) error {
	resp, err := jc.mediator.Send(context.Background(), &commands.BuyUpgradeCommand{Kind: kind, Cost: cost})
	jc.err = err
	if err == nil {
		jc.accepted = resp.(*commands.EconomyResponse).Accepted
	}
	return nil
}

func (jc *transactionJournalContext) iSellThroughTheCommandBus(quantity int, mineral string, unitPrice int) error {
	resp, err := jc.mediator.Send(context.Background(), &commands.SellRefinedMineralCommand{
		Mineral:   mineral,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	jc.err = err
	if err == nil {
		jc.accepted = resp.(*commands.EconomyResponse).Accepted
	}
	return nil
}

func (jc *transactionJournalContext) iRecordATransaction(txType string, amount, balanceBefore int) error {
	jc.clock.Advance(time.Second)
	_, jc.err = jc.mediator.Send(context.Background(), &ledgercmd.RecordTransactionCommand{
		SessionID:       jc.engine.SessionID(),
		TransactionType: txType,
		Amount:          amount,
		BalanceBefore:   balanceBefore,
		Description:     "recorded by hand",
	})
	return nil
}

func (jc *transactionJournalContext) theJournalIsFlushed() error {
	// Run drains the queue and returns once its context is done
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return jc.writer.Run(ctx)
}

// Then steps

func (jc *transactionJournalContext) theCommandShouldBe(outcome string) error {
	if jc.err != nil {
		return fmt.Errorf("command failed: %w", jc.err)
	}
	if want := outcome == "accepted"; jc.accepted != want {
		return fmt.Errorf("expected command to be %s, accepted=%v", outcome, jc.accepted)
	}
	return nil
}

func (jc *transactionJournalContext) theBusShouldRejectWith(fragment string) error {
	if jc.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", fragment)
	}
	if !strings.Contains(jc.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got %q", fragment, jc.err.Error())
	}
	return nil
}

func (jc *transactionJournalContext) theSessionLedgerShouldList(count int) error {
	resp, err := jc.mediator.Send(context.Background(), &queries.GetTransactionsQuery{SessionID: jc.engine.SessionID()})
	if err != nil {
		return err
	}
	jc.list = resp.(*queries.GetTransactionsResponse)
	if jc.list.Total != count {
		return fmt.Errorf("expected %d transactions, got %d", count, jc.list.Total)
	}
	return nil
}

func (jc *transactionJournalContext) theLatestTransactionShouldBe(txType string, amount, balanceAfter int) error {
	if jc.list == nil || len(jc.list.Transactions) == 0 {
		return fmt.Errorf("no transactions listed")
	}
	latest := jc.list.Transactions[0]
	if latest.Type != txType {
		return fmt.Errorf("expected latest type %s, got %s", txType, latest.Type)
	}
	if latest.Amount != amount {
		return fmt.Errorf("expected latest amount %d, got %d", amount, latest.Amount)
	}
	if latest.BalanceAfter != balanceAfter {
		return fmt.Errorf("expected balance after %d, got %d", balanceAfter, latest.BalanceAfter)
	}
	return nil
}

func (jc *transactionJournalContext) theProfitAndLossShouldShow(revenue, expenses, net int) error {
	resp, err := jc.mediator.Send(context.Background(), &queries.GetProfitLossQuery{SessionID: jc.engine.SessionID()})
	if err != nil {
		return err
	}
	pl := resp.(*queries.GetProfitLossResponse)
	if pl.TotalRevenue != revenue || pl.TotalExpenses != expenses || pl.NetProfit != net {
		return fmt.Errorf("expected revenue %d, expenses %d, net %d; got %d, %d, %d",
			revenue, expenses, net, pl.TotalRevenue, pl.TotalExpenses, pl.NetProfit)
	}
	return nil
}

func (jc *transactionJournalContext) recordingShouldFailWith(fragment string) error {
	return jc.theBusShouldRejectWith(fragment)
}

func (jc *transactionJournalContext) noEntriesShouldBeDropped() error {
	if n := jc.writer.Dropped(); n != 0 {
		return fmt.Errorf("expected no dropped entries, got %d", n)
	}
	return nil
}

func InitializeTransactionJournalScenario(ctx *godog.ScenarioContext) {
	jc := &transactionJournalContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		jc.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		jc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a session journaling to an in-memory ledger$`, jc.aSessionJournalingToAnInMemoryLedger)

	// When steps
	ctx.Step(`^I buy the "([^"]*)" upgrade through the command bus for (-?\d+) credits$`, jc.iBuyUpgradeThroughTheCommandBus)
	ctx.Step(`^I sell (-?\d+) refined "([^"]*)" through the command bus at (-?\d+) credits each$`, jc.iSellThroughTheCommandBus)
	ctx.Step(`^I record a "([^"]*)" transaction of (-?\d+) credits from a balance of (-?\d+)$`, jc.iRecordATransaction)
	ctx.Step(`^the journal is flushed$`, jc.theJournalIsFlushed)

	// Then steps
	ctx.Step(`^the command should be (accepted|refused)$`, jc.theCommandShouldBe)
	ctx.Step(`^the command bus should reject it with "([^"]*)"$`, jc.theBusShouldRejectWith)
	ctx.Step(`^the session ledger should list (\d+) transactions?$`, jc.theSessionLedgerShouldList)
	ctx.Step(`^the latest transaction should be a "([^"]*)" of (-?\d+) leaving (-?\d+)$`, jc.theLatestTransactionShouldBe)
	ctx.Step(`^the profit and loss should show revenue (\d+), expenses (\d+) and net (-?\d+)$`, jc.theProfitAndLossShouldShow)
	ctx.Step(`^recording should fail with "([^"]*)"$`, jc.recordingShouldFailWith)
	ctx.Step(`^no journal entries should be dropped$`, jc.noEntriesShouldBeDropped)
}
