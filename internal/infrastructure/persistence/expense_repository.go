package persistence

import (
	"context"
	"fmt"

	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// List returns one page of expenses matching the filter
func (r *GormExpenseRepository) List(ctx context.Context, filter finance.ExpenseFilter) (shared.ListResult[finance.Expense], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.ExpenseModel{}).Scopes(expenseFilterScope(filter))
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, ExpenseSortFields, "spent_on"),
		func(m *models.ExpenseModel) finance.Expense { return *m.ToDomain() })
}

type expenseTotalsRow struct {
	Count int64
	Total decimal.Decimal
}

type expenseCategoryRow struct {
	Category string
	Total    decimal.Decimal
}

// Totals returns the count and sum of matching expenses, with a per-category
// breakdown ordered by category. ByCategory is empty, not nil, when nothing matches.
func (r *GormExpenseRepository) Totals(ctx context.Context, filter finance.ExpenseFilter) (*finance.ExpenseTotals, error) {
	var head expenseTotalsRow
	err := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Scopes(expenseFilterScope(filter)).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&head).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	totals := &finance.ExpenseTotals{
		Count:      head.Count,
		Total:      head.Total,
		ByCategory: []finance.CategoryTotal{},
	}
	if head.Count == 0 {
		return totals, nil
	}

	var rows []expenseCategoryRow
	err = r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Scopes(expenseFilterScope(filter)).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses by category: %w", err)
	}
	for _, row := range rows {
		totals.ByCategory = append(totals.ByCategory, finance.CategoryTotal{
			Category: finance.ExpenseCategory(row.Category),
			Total:    row.Total,
		})
	}
	return totals, nil
}

func expenseFilterScope(filter finance.ExpenseFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.SubmittedBy != nil {
			db = db.Where("submitted_by = ?", *filter.SubmittedBy)
		}
		if filter.SpentFrom != nil {
			db = db.Where("spent_on >= ?", *filter.SpentFrom)
		}
		if filter.SpentTo != nil {
			db = db.Where("spent_on < ?", *filter.SpentTo)
		}
		return db
	}
}
