package ledger

import "fmt"

// ErrInvalidTransaction is a field-level validation failure
type ErrInvalidTransaction struct {
	Field  string
	Reason string
}

func (e *ErrInvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction: %s - %s", e.Field, e.Reason)
}

// ErrBalanceInvariantViolation means balance_after != balance_before + amount
type ErrBalanceInvariantViolation struct {
	BalanceBefore int
	Amount        int
	BalanceAfter  int
}

func (e *ErrBalanceInvariantViolation) Error() string {
	return fmt.Sprintf("balance invariant violated: %d %+d should give %d, got %d",
		e.BalanceBefore, e.Amount, e.BalanceBefore+e.Amount, e.BalanceAfter)
}

// ErrTransactionNotFound is returned by repositories for unknown IDs
type ErrTransactionNotFound struct {
	ID        string
	SessionID string
}

func (e *ErrTransactionNotFound) Error() string {
	return fmt.Sprintf("transaction not found: id=%s, session=%s", e.ID, e.SessionID)
}
