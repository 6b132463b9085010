// internal/services/service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chiosco/pos-backend/internal/models"
)

// setupTestDB opens an isolated in-memory store with foreign keys enforced,
// so cascade and rollback behavior matches the production database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see a different in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, nome string, prezzo float64) *models.Product {
	t.Helper()

	product := &models.Product{Nome: nome, Prezzo: prezzo, Categoria: "Cibo"}
	require.NoError(t, db.Create(product).Error)
	return product
}

func floatPtr(v float64) *float64 {
	return &v
}
