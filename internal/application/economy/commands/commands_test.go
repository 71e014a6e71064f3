package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/application/economy/commands"
	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// fakeEconomy records the last call and answers with accept
type fakeEconomy struct {
	accept bool
	calls  []string
	tier   refinery.JobTier
	price  int
}

func (f *fakeEconomy) DepositOre(m shared.Mineral, q int) bool {
	f.calls = append(f.calls, "deposit:"+m.String())
	return f.accept
}

func (f *fakeEconomy) StartRefiningJob(m shared.Mineral, q int, tier refinery.JobTier) bool {
	f.calls = append(f.calls, "refine:"+m.String())
	f.tier = tier
	return f.accept
}

func (f *fakeEconomy) WithdrawRefined(m shared.Mineral, q int) bool {
	f.calls = append(f.calls, "withdraw:"+m.String())
	return f.accept
}

func (f *fakeEconomy) SellRefinedMineral(m shared.Mineral, q, price int) bool {
	f.calls = append(f.calls, "sell:"+m.String())
	f.price = price
	return f.accept
}

func (f *fakeEconomy) BuyUpgrade(kind economy.UpgradeKind, cost int) bool {
	f.calls = append(f.calls, "upgrade:"+string(kind))
	return f.accept
}

func newMediator(t *testing.T, e commands.Economy) mediator.Mediator {
	m := mediator.NewMediator()
	require.NoError(t, commands.Register(m, e))
	return m
}

func TestHandlers_ForwardValidCommands(t *testing.T) {
	// Arrange
	fake := &fakeEconomy{accept: true}
	m := newMediator(t, fake)
	ctx := context.Background()
	reqs := []mediator.Request{
		&commands.DepositOreCommand{Mineral: "Cobalt", Quantity: 3},
		&commands.StartRefiningJobCommand{Mineral: "Cobalt", Quantity: 3, Tier: "priority"},
		&commands.WithdrawRefinedCommand{Mineral: "Cobalt", Quantity: 3},
		&commands.SellRefinedMineralCommand{Mineral: "Cobalt", Quantity: 3, UnitPrice: 330},
		&commands.BuyUpgradeCommand{Kind: "tractor", Cost: 400},
	}

	// Act & Assert
	for _, req := range reqs {
		resp, err := m.Send(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.(*commands.EconomyResponse).Accepted)
	}
	assert.Equal(t, []string{
		"deposit:Cobalt Ore",
		"refine:Cobalt Ore",
		"withdraw:Cobalt Ore",
		"sell:Cobalt Ore",
		"upgrade:tractor",
	}, fake.calls)
	assert.Equal(t, refinery.JobTierPriority, fake.tier)
	assert.Equal(t, 330, fake.price)
}

func TestHandlers_ResolveMineralNamesToDisplayNames(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Cobalt Ore", "deposit:Cobalt Ore"},
		{"Cobalt", "deposit:Cobalt Ore"},
		{"quantum", "deposit:Quantum Fluid"},
		{"FERRO_NICKEL", "deposit:Ferro-Nickel"},
		{"silicon crystal", "deposit:Silicon Crystal"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			// Arrange
			fake := &fakeEconomy{accept: true}
			m := newMediator(t, fake)

			// Act
			_, err := m.Send(context.Background(), &commands.DepositOreCommand{Mineral: tt.input, Quantity: 1})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, fake.calls)
		})
	}
}

func TestHandlers_RejectInvalidCommandsBeforeTheEngine(t *testing.T) {
	tests := []struct {
		name string
		req  mediator.Request
	}{
		{"unknown mineral", &commands.DepositOreCommand{Mineral: "Unobtainium", Quantity: 1}},
		{"empty mineral", &commands.SellRefinedMineralCommand{Mineral: "", Quantity: 1, UnitPrice: 10}},
		{"zero quantity", &commands.WithdrawRefinedCommand{Mineral: "Silicon Crystal", Quantity: 0}},
		{"unknown tier", &commands.StartRefiningJobCommand{Mineral: "Silicon Crystal", Quantity: 1, Tier: "express"}},
		{"negative price", &commands.SellRefinedMineralCommand{Mineral: "Silicon Crystal", Quantity: 1, UnitPrice: -1}},
		{"unknown upgrade", &commands.BuyUpgradeCommand{Kind: "shields", Cost: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEconomy{accept: true}
			m := newMediator(t, fake)

			_, err := m.Send(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestHandlers_ReportRefusal(t *testing.T) {
	m := newMediator(t, &fakeEconomy{accept: false})

	resp, err := m.Send(context.Background(), &commands.DepositOreCommand{Mineral: "Quantum", Quantity: 2})

	require.NoError(t, err)
	assert.False(t, resp.(*commands.EconomyResponse).Accepted)
}

func TestBuyUpgrade_AgainstEngine(t *testing.T) {
	// Arrange
	e := engine.New(engine.Options{InitialAsteroids: engine.NoAsteroids, Random: shared.NewRandomSource(7)})
	m := newMediator(t, e)

	// Act
	first, err := m.Send(context.Background(), &commands.BuyUpgradeCommand{Kind: "cargo", Cost: economy.Quote(economy.UpgradeCargo, 0)})
	require.NoError(t, err)
	second, err := m.Send(context.Background(), &commands.BuyUpgradeCommand{Kind: "cargo", Cost: economy.Quote(economy.UpgradeCargo, 1)})
	require.NoError(t, err)

	// Assert
	assert.True(t, first.(*commands.EconomyResponse).Accepted)
	assert.False(t, second.(*commands.EconomyResponse).Accepted, "500 starting credits only cover the first level")
	status := e.Status()
	assert.Equal(t, 16, status.Player.MaxCargo())
	assert.Equal(t, 0, status.Player.Credits)
}
