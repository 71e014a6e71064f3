package persistence

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *ledger.Transaction) error {
	result := r.db.WithContext(ctx).Create(r.transactionToModel(transaction))
	if result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id string) (*ledger.Transaction, error) {
	var model TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &ledger.ErrTransactionNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find transaction: %w", result.Error)
	}
	return r.modelToTransaction(&model)
}

// FindBySession retrieves a session's transactions with optional filtering
func (r *GormTransactionRepository) FindBySession(ctx context.Context, sessionID string, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID)
	query = r.applyFilters(query, opts)

	orderBy := "timestamp DESC"
	if opts.OrderBy == "timestamp ASC" {
		orderBy = opts.OrderBy
	}
	query = query.Order(orderBy)

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []TransactionModel
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", result.Error)
	}

	transactions := make([]*ledger.Transaction, len(models))
	for i := range models {
		tx, err := r.modelToTransaction(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction model: %w", err)
		}
		transactions[i] = tx
	}
	return transactions, nil
}

// CountBySession returns the count of transactions matching the criteria
func (r *GormTransactionRepository) CountBySession(ctx context.Context, sessionID string, opts ledger.QueryOptions) (int, error) {
	query := r.db.WithContext(ctx).Model(&TransactionModel{}).Where("session_id = ?", sessionID)
	query = r.applyFilters(query, opts)

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", result.Error)
	}
	return int(count), nil
}

func (r *GormTransactionRepository) applyFilters(query *gorm.DB, opts ledger.QueryOptions) *gorm.DB {
	if opts.Since != nil {
		query = query.Where("timestamp >= ?", *opts.Since)
	}
	if opts.Category != nil {
		query = query.Where("category = ?", opts.Category.String())
	}
	if opts.TransactionType != nil {
		query = query.Where("transaction_type = ?", opts.TransactionType.String())
	}
	return query
}

func (r *GormTransactionRepository) modelToTransaction(model *TransactionModel) (*ledger.Transaction, error) {
	transactionType, err := ledger.ParseTransactionType(model.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type in database: %w", err)
	}
	category, err := ledger.ParseCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in database: %w", err)
	}

	return ledger.ReconstructTransaction(
		model.ID,
		model.SessionID,
		model.Timestamp,
		transactionType,
		category,
		model.Amount,
		model.BalanceBefore,
		model.BalanceAfter,
		model.Description,
		model.Mineral,
		model.Quantity,
		model.Reference,
	), nil
}

func (r *GormTransactionRepository) transactionToModel(tx *ledger.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              tx.ID(),
		SessionID:       tx.SessionID(),
		Timestamp:       tx.Timestamp(),
		TransactionType: tx.TransactionType().String(),
		Category:        tx.Category().String(),
		Amount:          tx.Amount(),
		BalanceBefore:   tx.BalanceBefore(),
		BalanceAfter:    tx.BalanceAfter(),
		Description:     tx.Description(),
		Mineral:         tx.Mineral(),
		Quantity:        tx.Quantity(),
		Reference:       tx.Reference(),
	}
}

// SessionSummary describes one play session found in the journal
type SessionSummary struct {
	SessionID    string
	Transactions int
	FirstSeen    time.Time
	LastSeen     time.Time
	FinalBalance int
}

// Sessions lists journalled sessions, most recently active first
func (r *GormTransactionRepository) Sessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	var rows []struct {
		SessionID string
		Count     int
	}
	err := r.db.WithContext(ctx).Model(&TransactionModel{}).
		Select("session_id, COUNT(*) AS count").
		Group("session_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(rows))
	for _, row := range rows {
		var first, last TransactionModel
		db := r.db.WithContext(ctx).Where("session_id = ?", row.SessionID).Session(&gorm.Session{})
		if err := db.Order("timestamp ASC").First(&first).Error; err != nil {
			return nil, fmt.Errorf("failed to read session start: %w", err)
		}
		if err := db.Order("timestamp DESC").First(&last).Error; err != nil {
			return nil, fmt.Errorf("failed to read session end: %w", err)
		}
		out = append(out, SessionSummary{
			SessionID:    row.SessionID,
			Transactions: row.Count,
			FirstSeen:    first.Timestamp,
			LastSeen:     last.Timestamp,
			FinalBalance: last.BalanceAfter,
		})
	}

	slices.SortFunc(out, func(a, b SessionSummary) int {
		return b.LastSeen.Compare(a.LastSeen)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
