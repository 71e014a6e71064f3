package refinery_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

func TestJobTier_CostAndDuration(t *testing.T) {
	assert.Equal(t, 100, refinery.JobTierStandard.Cost())
	assert.Equal(t, 5*time.Minute, refinery.JobTierStandard.Duration())
	assert.Equal(t, 250, refinery.JobTierPriority.Cost())
	assert.Equal(t, time.Minute, refinery.JobTierPriority.Duration())

	_, err := refinery.ParseJobTier("express")
	assert.Error(t, err)
}

func TestNewJob_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := refinery.NewJob(shared.MineralCobalt, 0, refinery.JobTierStandard, time.Now())

	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "quantity", validationErr.Field)
}

func TestJob_Remaining(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Time{})
	job, err := refinery.NewJob(shared.MineralSilicon, 10, refinery.JobTierPriority, clock.Now())
	require.NoError(t, err)

	// Act & Assert
	assert.Equal(t, time.Minute, job.Remaining(clock.Now()))
	assert.Equal(t, 45*time.Second, job.Remaining(clock.Advance(15*time.Second)))
	assert.InDelta(t, 0.25, job.Progress(clock.Now()), 1e-9)
	assert.Equal(t, time.Duration(0), job.Remaining(clock.Advance(time.Hour)))
}

func TestAccount_TickCompletesDueJobsOnce(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Time{})
	account := refinery.NewAccount()
	fast, _ := refinery.NewJob(shared.MineralCobalt, 10, refinery.JobTierPriority, clock.Now())
	slow, _ := refinery.NewJob(shared.MineralCobalt, 5, refinery.JobTierStandard, clock.Now())
	account.Enqueue(fast)
	account.Enqueue(slow)

	// Act
	now := clock.Advance(time.Minute)
	first := account.Tick(now)
	second := account.Tick(now)

	// Assert
	require.Len(t, first, 1)
	assert.Equal(t, fast.ID, first[0].ID)
	assert.Equal(t, refinery.JobStatusReady, first[0].Status)
	assert.Empty(t, second, "ticking with an unchanged clock is a no-op")
	assert.Equal(t, 10, account.RefinedBalance(shared.MineralCobalt))
	require.Len(t, account.Jobs, 1)
	assert.Equal(t, slow.ID, account.Jobs[0].ID)
}

func TestAccount_TickBeforeDueDoesNothing(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	account := refinery.NewAccount()
	job, _ := refinery.NewJob(shared.MineralQuantum, 3, refinery.JobTierStandard, clock.Now())
	account.Enqueue(job)

	completed := account.Tick(clock.Advance(299 * time.Second))

	assert.Empty(t, completed)
	assert.Equal(t, 0, account.RefinedBalance(shared.MineralQuantum))
	assert.Equal(t, 3, account.PendingQuantity(shared.MineralQuantum))
}

func TestAccount_DebitRawInsufficient(t *testing.T) {
	// Arrange
	account := refinery.NewAccount()
	account.CreditRaw(shared.MineralSilicon, 9)

	// Act
	err := account.DebitRaw(shared.MineralSilicon, 10)

	// Assert
	var balanceErr *shared.InsufficientBalanceError
	require.True(t, errors.As(err, &balanceErr))
	assert.Equal(t, 10, balanceErr.Required)
	assert.Equal(t, 9, balanceErr.Available)
	assert.Equal(t, 9, account.RawBalance(shared.MineralSilicon))
}

func TestAccount_DebitToZeroDropsEntry(t *testing.T) {
	account := refinery.NewAccount()
	account.CreditRefined(shared.MineralAetherium, 4)

	require.NoError(t, account.DebitRefined(shared.MineralAetherium, 4))

	assert.NotContains(t, account.Refined, shared.MineralAetherium)
}

func TestAccount_CloneIsIndependent(t *testing.T) {
	account := refinery.NewAccount()
	account.CreditRaw(shared.MineralCobalt, 2)
	job, _ := refinery.NewJob(shared.MineralCobalt, 2, refinery.JobTierStandard, time.Now())
	account.Enqueue(job)

	clone := account.Clone()
	clone.CreditRaw(shared.MineralCobalt, 5)
	clone.Jobs[0].Quantity = 99

	assert.Equal(t, 2, account.RawBalance(shared.MineralCobalt))
	assert.Equal(t, 2, account.Jobs[0].Quantity)
}
