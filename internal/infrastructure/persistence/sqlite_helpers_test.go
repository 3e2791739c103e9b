package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteDB opens an in-memory database with every table migrated.
// A single connection keeps the in-memory database shared by transactions.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.EmployeeModel{},
		&models.PayrollRunModel{},
		&models.PayslipModel{},
		&models.ExpenseModel{},
		&models.InvestmentModel{},
		&models.DocumentModel{},
		&models.AuditEntryModel{},
	))
	return db
}

func baseModel(createdAt time.Time) models.BaseModel {
	return models.BaseModel{ID: uuid.New(), CreatedAt: createdAt, UpdatedAt: createdAt}
}
