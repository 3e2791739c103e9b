package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements sales.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID with its line items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("product_name ASC") }).
		First(&model, "id = ?", id).Error
	if err != nil {
		return nil, translateFindError(err, "Order")
	}
	if model.Items == nil {
		model.Items = []models.OrderItemModel{}
	}
	return model.ToDomain(), nil
}

// List returns one page of orders matching the filter, without line items
func (r *GormOrderRepository) List(ctx context.Context, filter sales.OrderFilter) (shared.ListResult[sales.Order], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.OrderModel{}).Scopes(orderFilterScope(filter))
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, OrderSortFields, "placed_at"),
		func(m *models.OrderModel) sales.Order { return *m.ToDomain() })
}

type orderTotalsRow struct {
	Count    int64
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Totals sums the money columns over every order matching the filter.
// Paging and sorting in the filter are ignored.
func (r *GormOrderRepository) Totals(ctx context.Context, filter sales.OrderFilter) (*sales.OrderTotals, error) {
	var row orderTotalsRow
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Scopes(orderFilterScope(filter)).
		Select("COUNT(*) AS count, " +
			"COALESCE(SUM(subtotal), 0) AS subtotal, " +
			"COALESCE(SUM(discount), 0) AS discount, " +
			"COALESCE(SUM(tax), 0) AS tax, " +
			"COALESCE(SUM(total), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total orders: %w", err)
	}
	return &sales.OrderTotals{
		Count:    row.Count,
		Subtotal: row.Subtotal,
		Discount: row.Discount,
		Tax:      row.Tax,
		Total:    row.Total,
	}, nil
}

func orderFilterScope(filter sales.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.CustomerID != nil {
			db = db.Where("customer_id = ?", *filter.CustomerID)
		}
		if filter.PaymentMethod != "" {
			db = db.Where("payment_method = ?", filter.PaymentMethod)
		}
		if filter.PlacedFrom != nil {
			db = db.Where("placed_at >= ?", *filter.PlacedFrom)
		}
		if filter.PlacedTo != nil {
			db = db.Where("placed_at < ?", *filter.PlacedTo)
		}
		return db
	}
}
