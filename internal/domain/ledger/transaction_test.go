package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
)

func TestNewTransaction_DerivesCategoryAndBalance(t *testing.T) {
	// Arrange
	entry := ledger.Entry{
		SessionID:     "session-1",
		Timestamp:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:          ledger.TransactionTypeRefiningFee,
		Amount:        -250,
		BalanceBefore: 500,
		Mineral:       "Cobalt Ore",
		Quantity:      10,
		Reference:     "job-1",
	}

	// Act
	tx, err := ledger.NewTransaction(entry)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID())
	assert.Equal(t, ledger.CategoryRefiningCosts, tx.Category())
	assert.Equal(t, 250, tx.BalanceAfter())
	assert.False(t, tx.IsIncome())
	assert.Equal(t, "job-1", tx.Reference())
}

func TestNewTransaction_Rejects(t *testing.T) {
	base := ledger.Entry{
		SessionID:     "s",
		Timestamp:     time.Now(),
		Type:          ledger.TransactionTypeBuyUpgrade,
		Amount:        -500,
		BalanceBefore: 500,
	}

	tests := []struct {
		name   string
		mutate func(e *ledger.Entry)
		field  string
	}{
		{"zero amount", func(e *ledger.Entry) { e.Amount = 0 }, "amount"},
		{"missing session", func(e *ledger.Entry) { e.SessionID = "" }, "session_id"},
		{"unknown type", func(e *ledger.Entry) { e.Type = "REFUEL" }, "transaction_type"},
		{"overdraft", func(e *ledger.Entry) { e.Amount = -501 }, "balance_after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			tt.mutate(&e)

			_, err := ledger.NewTransaction(e)

			var invalid *ledger.ErrInvalidTransaction
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestReconstructTransaction_ValidateCatchesDrift(t *testing.T) {
	tx := ledger.ReconstructTransaction("id", "s", time.Now(), ledger.TransactionTypeSellRefined,
		ledger.CategoryTradingRevenue, 100, 0, 90, "", "", 0, "")

	var violation *ledger.ErrBalanceInvariantViolation
	assert.True(t, errors.As(tx.Validate(), &violation))
}
