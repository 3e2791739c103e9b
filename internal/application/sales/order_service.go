package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// OrderService serves order lists, details and totals
type OrderService struct {
	orders sales.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orders sales.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// List returns one page of orders without line items
func (s *OrderService) List(ctx context.Context, filter sales.OrderFilter) (shared.ListResult[sales.Order], error) {
	if err := checkPlacedRange(filter); err != nil {
		return shared.ListResult[sales.Order]{}, err
	}
	return s.orders.List(ctx, filter)
}

// GetByID returns one order with its line items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Totals sums every order matching the filter
func (s *OrderService) Totals(ctx context.Context, filter sales.OrderFilter) (*sales.OrderTotals, error) {
	if err := checkPlacedRange(filter); err != nil {
		return nil, err
	}
	return s.orders.Totals(ctx, filter)
}

func checkPlacedRange(filter sales.OrderFilter) error {
	if filter.PlacedFrom != nil && filter.PlacedTo != nil && !filter.PlacedFrom.Before(*filter.PlacedTo) {
		return shared.NewValidationError("placed_from must be before placed_to")
	}
	return nil
}

// ProductService serves the product catalogue
type ProductService struct {
	products sales.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products sales.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns one page of products
func (s *ProductService) List(ctx context.Context, filter sales.ProductFilter) (shared.ListResult[sales.Product], error) {
	return s.products.List(ctx, filter)
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*sales.Product, error) {
	return s.products.FindByID(ctx, id)
}
