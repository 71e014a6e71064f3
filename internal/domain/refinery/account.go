package refinery

import (
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// Account holds a player's refinery-side balances and active jobs.
//
// Invariants:
// - every balance is >= 0; zero entries are deleted
// - Jobs keeps creation order
// - a job's quantity is credited to Refined exactly once
type Account struct {
	Raw     map[shared.Mineral]int
	Refined map[shared.Mineral]int
	Jobs    []*Job
}

// NewAccount creates an empty account
func NewAccount() *Account {
	return &Account{
		Raw:     make(map[shared.Mineral]int),
		Refined: make(map[shared.Mineral]int),
	}
}

// RawBalance returns the raw units of mineral held
func (a *Account) RawBalance(mineral shared.Mineral) int {
	return a.Raw[mineral]
}

// RefinedBalance returns the refined units of mineral held
func (a *Account) RefinedBalance(mineral shared.Mineral) int {
	return a.Refined[mineral]
}

// CreditRaw adds raw units
func (a *Account) CreditRaw(mineral shared.Mineral, quantity int) {
	credit(a.Raw, mineral, quantity)
}

// DebitRaw removes raw units. Fails without change when the balance is short.
func (a *Account) DebitRaw(mineral shared.Mineral, quantity int) error {
	if have := a.Raw[mineral]; have < quantity {
		return shared.NewInsufficientBalanceError(mineral, false, quantity, have)
	}
	debit(a.Raw, mineral, quantity)
	return nil
}

// CreditRefined adds refined units
func (a *Account) CreditRefined(mineral shared.Mineral, quantity int) {
	credit(a.Refined, mineral, quantity)
}

// DebitRefined removes refined units. Fails without change when the balance is short.
func (a *Account) DebitRefined(mineral shared.Mineral, quantity int) error {
	if have := a.Refined[mineral]; have < quantity {
		return shared.NewInsufficientBalanceError(mineral, true, quantity, have)
	}
	debit(a.Refined, mineral, quantity)
	return nil
}

// Enqueue appends a job
func (a *Account) Enqueue(job *Job) {
	a.Jobs = append(a.Jobs, job)
}

// Tick completes every job due at now: it is marked ready, its quantity is
// credited to the refined balance and it is removed from Jobs. Returns the
// completed jobs in creation order. A second call with the same now is a no-op.
func (a *Account) Tick(now time.Time) []*Job {
	var completed []*Job
	remaining := a.Jobs[:0]
	for _, job := range a.Jobs {
		if job.IsPending() && job.IsDue(now) {
			_ = job.MarkReady()
			a.CreditRefined(job.Mineral, job.Quantity)
			completed = append(completed, job)
			continue
		}
		remaining = append(remaining, job)
	}
	for i := len(remaining); i < len(a.Jobs); i++ {
		a.Jobs[i] = nil
	}
	a.Jobs = remaining
	return completed
}

// PendingQuantity returns the raw units locked in active jobs for mineral
func (a *Account) PendingQuantity(mineral shared.Mineral) int {
	total := 0
	for _, job := range a.Jobs {
		if job.Mineral == mineral {
			total += job.Quantity
		}
	}
	return total
}

// Clone returns a deep copy of the account
func (a *Account) Clone() *Account {
	out := NewAccount()
	for m, q := range a.Raw {
		out.Raw[m] = q
	}
	for m, q := range a.Refined {
		out.Refined[m] = q
	}
	out.Jobs = make([]*Job, 0, len(a.Jobs))
	for _, job := range a.Jobs {
		copied := *job
		out.Jobs = append(out.Jobs, &copied)
	}
	return out
}

func credit(balances map[shared.Mineral]int, mineral shared.Mineral, quantity int) {
	if quantity <= 0 {
		return
	}
	balances[mineral] += quantity
}

func debit(balances map[shared.Mineral]int, mineral shared.Mineral, quantity int) {
	balances[mineral] -= quantity
	if balances[mineral] <= 0 {
		delete(balances, mineral)
	}
}
