package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
)

// GetProfitLossQuery summarises a session's journal
type GetProfitLossQuery struct {
	SessionID string
}

// GetProfitLossResponse represents the profit & loss statement result
type GetProfitLossResponse struct {
	SessionID        string
	TotalRevenue     int
	TotalExpenses    int
	NetProfit        int
	RevenueBreakdown map[string]int // category -> amount
	ExpenseBreakdown map[string]int // category -> amount, positive
	Transactions     int
}

// GetProfitLossHandler handles the GetProfitLoss query
type GetProfitLossHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetProfitLossHandler creates a new GetProfitLossHandler
func NewGetProfitLossHandler(transactionRepo ledger.TransactionRepository) *GetProfitLossHandler {
	return &GetProfitLossHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetProfitLoss query
func (h *GetProfitLossHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetProfitLossQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetProfitLossQuery")
	}

	// Limit 0 reads the whole session
	transactions, err := h.transactionRepo.FindBySession(ctx, query.SessionID, ledger.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return calculateProfitLoss(query.SessionID, transactions), nil
}

func calculateProfitLoss(sessionID string, transactions []*ledger.Transaction) *GetProfitLossResponse {
	resp := &GetProfitLossResponse{
		SessionID:        sessionID,
		RevenueBreakdown: make(map[string]int),
		ExpenseBreakdown: make(map[string]int),
		Transactions:     len(transactions),
	}

	for _, tx := range transactions {
		category := tx.Category().String()
		if tx.IsIncome() {
			resp.RevenueBreakdown[category] += tx.Amount()
			resp.TotalRevenue += tx.Amount()
		} else {
			resp.ExpenseBreakdown[category] -= tx.Amount()
			resp.TotalExpenses -= tx.Amount()
		}
	}
	resp.NetProfit = resp.TotalRevenue - resp.TotalExpenses
	return resp
}
