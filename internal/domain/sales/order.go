package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// IsValid reports whether the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod is how an order was paid
type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodStoreCredit    PaymentMethod = "store_credit"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
)

// IsValid reports whether the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCashOnDelivery, PaymentMethodStoreCredit, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// Order is a customer purchase. Items are only loaded on detail reads.
type Order struct {
	shared.BaseEntity
	Number        string          `json:"number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PlacedAt      time.Time       `json:"placed_at"`
	Items         []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity,string"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderFilter selects orders for listing and totals
type OrderFilter struct {
	Status        OrderStatus
	CustomerID    *uuid.UUID
	PaymentMethod PaymentMethod
	PlacedFrom    *time.Time
	PlacedTo      *time.Time
	Page          shared.Page
	Sort          shared.Sort
}

// OrderTotals aggregates the money columns of the orders matching a filter
type OrderTotals struct {
	Count    int64           `json:"count,string"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, filter OrderFilter) (shared.ListResult[Order], error)
	// Totals sums the orders matching the filter; paging and sort are ignored
	Totals(ctx context.Context, filter OrderFilter) (*OrderTotals, error)
}
