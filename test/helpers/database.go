// Package helpers holds fixtures shared by package tests and the BDD suite.
package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrescamacho/spaceminer-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory journal that is closed when t ends
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	require.NoError(t, err, "failed to create test journal")
	t.Cleanup(func() { _ = database.Close(db) })

	return db
}

// NewTestJournal returns a transaction repository over a fresh in-memory journal
func NewTestJournal(t testing.TB) *persistence.GormTransactionRepository {
	t.Helper()
	return persistence.NewGormTransactionRepository(NewTestDB(t))
}
