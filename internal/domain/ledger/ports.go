package ledger

import (
	"context"
	"time"
)

// TransactionRepository persists the journal. It is append-only: nothing the
// game does reads it back.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, id string) (*Transaction, error)
	FindBySession(ctx context.Context, sessionID string, opts QueryOptions) ([]*Transaction, error)
	CountBySession(ctx context.Context, sessionID string, opts QueryOptions) (int, error)
}

// QueryOptions filters and pages journal reads
type QueryOptions struct {
	Since           *time.Time
	TransactionType *TransactionType
	Category        *Category

	Limit  int
	Offset int

	// OrderBy is "timestamp ASC" or "timestamp DESC"
	OrderBy string
}

// DefaultQueryOptions returns the newest 50 entries
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:   50,
		OrderBy: "timestamp DESC",
	}
}
