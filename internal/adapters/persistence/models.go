package persistence

import (
	"time"
)

// TransactionModel represents the transactions table (the economy journal)
type TransactionModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	SessionID       string    `gorm:"column:session_id;not null;index:idx_transactions_session_time"`
	Timestamp       time.Time `gorm:"column:timestamp;not null;index:idx_transactions_session_time"`
	TransactionType string    `gorm:"column:transaction_type;not null"`
	Category        string    `gorm:"column:category;not null"`
	Amount          int       `gorm:"column:amount;not null"`
	BalanceBefore   int       `gorm:"column:balance_before;not null"`
	BalanceAfter    int       `gorm:"column:balance_after;not null"`
	Description     string    `gorm:"column:description"`
	Mineral         string    `gorm:"column:mineral"`
	Quantity        int       `gorm:"column:quantity"`
	Reference       string    `gorm:"column:reference"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}
