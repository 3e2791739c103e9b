package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a catalog item
type Product struct {
	shared.BaseEntity
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity,string"`
	ImageKey      string          `json:"image_key"`
	Active        bool            `json:"active"`
}

// ProductFilter selects products for listing
type ProductFilter struct {
	Search string
	Active *bool
	Page   shared.Page
	Sort   shared.Sort
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, filter ProductFilter) (shared.ListResult[Product], error)
}
