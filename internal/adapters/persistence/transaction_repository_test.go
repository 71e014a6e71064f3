package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
	"github.com/andrescamacho/spaceminer-go/test/helpers"
)

func newTransaction(t *testing.T, session string, at time.Time, typ ledger.TransactionType, amount, before int) *ledger.Transaction {
	tx, err := ledger.NewTransaction(ledger.Entry{
		SessionID:     session,
		Timestamp:     at,
		Type:          typ,
		Amount:        amount,
		BalanceBefore: before,
		Mineral:       "Quantum",
		Quantity:      2,
		Reference:     "job-1",
	})
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	// Arrange
	repo := helpers.NewTestJournal(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tx := newTransaction(t, "session-a", at, ledger.TransactionTypeSellRefined, 1000, 500)

	// Act
	require.NoError(t, repo.Create(ctx, tx))
	found, err := repo.FindByID(ctx, tx.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "session-a", found.SessionID())
	assert.Equal(t, ledger.CategoryTradingRevenue, found.Category())
	assert.Equal(t, 1500, found.BalanceAfter())
	assert.Equal(t, "Quantum", found.Mineral())
	assert.Equal(t, 2, found.Quantity())
	assert.Equal(t, "job-1", found.Reference())
	assert.True(t, at.Equal(found.Timestamp()))
	assert.NoError(t, found.Validate())
}

func TestTransactionRepository_FindByID_NotFound(t *testing.T) {
	repo := helpers.NewTestJournal(t)

	_, err := repo.FindByID(context.Background(), "missing")

	var notFound *ledger.ErrTransactionNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestTransactionRepository_FindBySession_PagesAndFilters(t *testing.T) {
	// Arrange
	repo := helpers.NewTestJournal(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newTransaction(t, "session-b", base.Add(time.Duration(i)*time.Minute), ledger.TransactionTypeRefiningFee, -100, 1000)))
	}
	require.NoError(t, repo.Create(ctx, newTransaction(t, "other", base, ledger.TransactionTypeRefiningFee, -100, 1000)))
	since := base.Add(2 * time.Minute)

	// Act
	page, err := repo.FindBySession(ctx, "session-b", ledger.QueryOptions{Limit: 2, Offset: 1})
	require.NoError(t, err)
	recent, err := repo.CountBySession(ctx, "session-b", ledger.QueryOptions{Since: &since})
	require.NoError(t, err)
	all, err := repo.CountBySession(ctx, "session-b", ledger.QueryOptions{})
	require.NoError(t, err)

	// Assert
	require.Len(t, page, 2)
	assert.True(t, page[0].Timestamp().After(page[1].Timestamp()), "default order is newest first")
	assert.True(t, base.Add(3*time.Minute).Equal(page[0].Timestamp()))
	assert.Equal(t, 3, recent)
	assert.Equal(t, 5, all)
}

func TestTransactionRepository_Sessions(t *testing.T) {
	// Arrange
	repo := helpers.NewTestJournal(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newTransaction(t, "old", base, ledger.TransactionTypeRefiningFee, -100, 500)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, "new", base.Add(time.Hour), ledger.TransactionTypeRefiningFee, -100, 500)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, "new", base.Add(2*time.Hour), ledger.TransactionTypeSellRefined, 900, 400)))

	// Act
	sessions, err := repo.Sessions(ctx, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].SessionID)
	assert.Equal(t, 2, sessions[0].Transactions)
	assert.Equal(t, 1300, sessions[0].FinalBalance)
	assert.Equal(t, "old", sessions[1].SessionID)
}
