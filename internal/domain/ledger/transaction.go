package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction is one immutable credit movement in a play session's journal.
//
// Invariants:
// - amount != 0 (positive is income)
// - balanceAfter == balanceBefore + amount
// - balanceAfter >= 0
type Transaction struct {
	id              string
	sessionID       string
	timestamp       time.Time
	transactionType TransactionType
	category        Category
	amount          int
	balanceBefore   int
	balanceAfter    int
	description     string
	mineral         string
	quantity        int
	reference       string
}

// Entry is the input for recording a transaction
type Entry struct {
	SessionID     string
	Timestamp     time.Time
	Type          TransactionType
	Amount        int
	BalanceBefore int
	Description   string
	// Mineral and Quantity describe goods sold or refined, when any
	Mineral  string
	Quantity int
	// Reference is the refining job ID or upgrade kind behind the movement
	Reference string
}

// NewTransaction validates e and creates a transaction with a fresh ID
func NewTransaction(e Entry) (*Transaction, error) {
	if e.SessionID == "" {
		return nil, &ErrInvalidTransaction{Field: "session_id", Reason: "session_id cannot be empty"}
	}
	if e.Timestamp.IsZero() {
		return nil, &ErrInvalidTransaction{Field: "timestamp", Reason: "timestamp is required"}
	}
	category, err := e.Type.ToCategory()
	if err != nil {
		return nil, &ErrInvalidTransaction{Field: "transaction_type", Reason: err.Error()}
	}

	t := &Transaction{
		id:              uuid.NewString(),
		sessionID:       e.SessionID,
		timestamp:       e.Timestamp,
		transactionType: e.Type,
		category:        category,
		amount:          e.Amount,
		balanceBefore:   e.BalanceBefore,
		balanceAfter:    e.BalanceBefore + e.Amount,
		description:     e.Description,
		mineral:         e.Mineral,
		quantity:        e.Quantity,
		reference:       e.Reference,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a stored transaction without re-validating it
func ReconstructTransaction(
	id, sessionID string,
	timestamp time.Time,
	transactionType TransactionType,
	category Category,
	amount, balanceBefore, balanceAfter int,
	description, mineral string,
	quantity int,
	reference string,
) *Transaction {
	return &Transaction{
		id:              id,
		sessionID:       sessionID,
		timestamp:       timestamp,
		transactionType: transactionType,
		category:        category,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		mineral:         mineral,
		quantity:        quantity,
		reference:       reference,
	}
}

// Validate checks the invariants
func (t *Transaction) Validate() error {
	if t.amount == 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "amount cannot be zero"}
	}
	if t.balanceAfter != t.balanceBefore+t.amount {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: t.balanceBefore,
			Amount:        t.amount,
			BalanceAfter:  t.balanceAfter,
		}
	}
	if t.balanceAfter < 0 {
		return &ErrInvalidTransaction{Field: "balance_after", Reason: "credits cannot go negative"}
	}
	return nil
}

func (t *Transaction) ID() string                       { return t.id }
func (t *Transaction) SessionID() string                { return t.sessionID }
func (t *Transaction) Timestamp() time.Time             { return t.timestamp }
func (t *Transaction) TransactionType() TransactionType { return t.transactionType }
func (t *Transaction) Category() Category               { return t.category }
func (t *Transaction) Amount() int                      { return t.amount }
func (t *Transaction) BalanceBefore() int               { return t.balanceBefore }
func (t *Transaction) BalanceAfter() int                { return t.balanceAfter }
func (t *Transaction) Description() string              { return t.description }
func (t *Transaction) Mineral() string                  { return t.mineral }
func (t *Transaction) Quantity() int                    { return t.quantity }
func (t *Transaction) Reference() string                { return t.reference }

// IsIncome returns true for credit-increasing transactions
func (t *Transaction) IsIncome() bool {
	return t.amount > 0
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, type=%s, amount=%d, balance=%d->%d]",
		t.id, t.transactionType, t.amount, t.balanceBefore, t.balanceAfter)
}
