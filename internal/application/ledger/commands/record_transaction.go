package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// RecordTransactionCommand records one credit movement in the journal
type RecordTransactionCommand struct {
	SessionID       string
	TransactionType string
	Amount          int // Positive for income, negative for expenses
	BalanceBefore   int
	Description     string
	Mineral         string
	Quantity        int
	Reference       string
	Timestamp       *time.Time // Optional: defaults to the handler's clock
}

// RecordTransactionResponse represents the result of recording a transaction
type RecordTransactionResponse struct {
	TransactionID string
	Timestamp     time.Time
	BalanceAfter  int
}

// TransactionMetrics observes recorded transactions
type TransactionMetrics interface {
	RecordTransaction(transactionType, category string, amount, balanceAfter int)
}

// RecordTransactionHandler handles the RecordTransaction command
type RecordTransactionHandler struct {
	transactionRepo ledger.TransactionRepository
	clock           shared.Clock
	metrics         TransactionMetrics
}

// NewRecordTransactionHandler creates a new RecordTransactionHandler.
// clock and metrics may be nil.
func NewRecordTransactionHandler(
	transactionRepo ledger.TransactionRepository,
	clock shared.Clock,
	metrics TransactionMetrics,
) *RecordTransactionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &RecordTransactionHandler{
		transactionRepo: transactionRepo,
		clock:           clock,
		metrics:         metrics,
	}
}

// Handle executes the RecordTransaction command
func (h *RecordTransactionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RecordTransactionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordTransactionCommand")
	}

	transactionType, err := ledger.ParseTransactionType(cmd.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type: %w", err)
	}

	timestamp := h.clock.Now()
	if cmd.Timestamp != nil {
		timestamp = *cmd.Timestamp
	}

	transaction, err := ledger.NewTransaction(ledger.Entry{
		SessionID:     cmd.SessionID,
		Timestamp:     timestamp,
		Type:          transactionType,
		Amount:        cmd.Amount,
		BalanceBefore: cmd.BalanceBefore,
		Description:   cmd.Description,
		Mineral:       cmd.Mineral,
		Quantity:      cmd.Quantity,
		Reference:     cmd.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := h.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	if h.metrics != nil {
		h.metrics.RecordTransaction(
			transaction.TransactionType().String(),
			transaction.Category().String(),
			transaction.Amount(),
			transaction.BalanceAfter(),
		)
	}

	return &RecordTransactionResponse{
		TransactionID: transaction.ID(),
		Timestamp:     transaction.Timestamp(),
		BalanceAfter:  transaction.BalanceAfter(),
	}, nil
}

// FromEntry builds the command for an engine journal entry
func FromEntry(e ledger.Entry) *RecordTransactionCommand {
	ts := e.Timestamp
	return &RecordTransactionCommand{
		SessionID:       e.SessionID,
		TransactionType: e.Type.String(),
		Amount:          e.Amount,
		BalanceBefore:   e.BalanceBefore,
		Description:     e.Description,
		Mineral:         e.Mineral,
		Quantity:        e.Quantity,
		Reference:       e.Reference,
		Timestamp:       &ts,
	}
}
