package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
)

// GetTransactionsQuery represents a query to retrieve a session's journal
type GetTransactionsQuery struct {
	SessionID       string
	Since           *time.Time
	Category        *string
	TransactionType *string
	Limit           int
	Offset          int
	OrderBy         string
}

// GetTransactionsResponse represents the result of the query
type GetTransactionsResponse struct {
	Transactions []*TransactionDTO
	Total        int
}

// TransactionDTO represents a transaction data transfer object
type TransactionDTO struct {
	ID            string
	SessionID     string
	Timestamp     time.Time
	Type          string
	Category      string
	Amount        int
	BalanceBefore int
	BalanceAfter  int
	Description   string
	Mineral       string
	Quantity      int
	Reference     string
}

// GetTransactionsHandler handles the GetTransactions query
type GetTransactionsHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetTransactionsHandler creates a new GetTransactionsHandler
func NewGetTransactionsHandler(transactionRepo ledger.TransactionRepository) *GetTransactionsHandler {
	return &GetTransactionsHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetTransactions query
func (h *GetTransactionsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetTransactionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTransactionsQuery")
	}
	if query.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	opts, err := h.buildQueryOptions(query)
	if err != nil {
		return nil, err
	}

	transactions, err := h.transactionRepo.FindBySession(ctx, query.SessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	total, err := h.transactionRepo.CountBySession(ctx, query.SessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	dtos := make([]*TransactionDTO, len(transactions))
	for i, tx := range transactions {
		dtos[i] = toDTO(tx)
	}

	return &GetTransactionsResponse{
		Transactions: dtos,
		Total:        total,
	}, nil
}

func (h *GetTransactionsHandler) buildQueryOptions(query *GetTransactionsQuery) (ledger.QueryOptions, error) {
	opts := ledger.DefaultQueryOptions()
	opts.Since = query.Since

	if query.Category != nil {
		category, err := ledger.ParseCategory(*query.Category)
		if err != nil {
			return opts, fmt.Errorf("invalid category: %w", err)
		}
		opts.Category = &category
	}

	if query.TransactionType != nil {
		txType, err := ledger.ParseTransactionType(*query.TransactionType)
		if err != nil {
			return opts, fmt.Errorf("invalid transaction type: %w", err)
		}
		opts.TransactionType = &txType
	}

	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Offset = query.Offset

	if query.OrderBy != "" {
		opts.OrderBy = query.OrderBy
	}

	return opts, nil
}

func toDTO(tx *ledger.Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:            tx.ID(),
		SessionID:     tx.SessionID(),
		Timestamp:     tx.Timestamp(),
		Type:          tx.TransactionType().String(),
		Category:      tx.Category().String(),
		Amount:        tx.Amount(),
		BalanceBefore: tx.BalanceBefore(),
		BalanceAfter:  tx.BalanceAfter(),
		Description:   tx.Description(),
		Mineral:       tx.Mineral(),
		Quantity:      tx.Quantity(),
		Reference:     tx.Reference(),
	}
}
