package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValid reports whether the status is a known value
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer is a buyer account with a prepaid balance and payment-method flags
type Customer struct {
	shared.BaseEntity
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Balance             decimal.Decimal `json:"balance"`
	CreditLimit         decimal.Decimal `json:"credit_limit"`
	AllowCashOnDelivery bool            `json:"allow_cash_on_delivery"`
	AllowStoreCredit    bool            `json:"allow_store_credit"`
	Status              CustomerStatus  `json:"status"`
}

// AdjustBalance adds a signed amount to the prepaid balance.
// A negative amount is a debit; zero is rejected.
func (c *Customer) AdjustBalance(amount decimal.Decimal) error {
	if amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be zero")
	}
	c.Balance = c.Balance.Add(amount)
	c.UpdatedAt = time.Now()
	return nil
}

// PaymentMethodChange is a partial update of the payment-method flags
type PaymentMethodChange struct {
	AllowCashOnDelivery *bool
	AllowStoreCredit    *bool
}

// IsEmpty reports whether the change touches no flag
func (p PaymentMethodChange) IsEmpty() bool {
	return p.AllowCashOnDelivery == nil && p.AllowStoreCredit == nil
}

// SetPaymentMethods applies the flags that are set in change
func (c *Customer) SetPaymentMethods(change PaymentMethodChange) error {
	if change.IsEmpty() {
		return shared.NewValidationError("At least one payment method flag is required")
	}
	if change.AllowCashOnDelivery != nil {
		c.AllowCashOnDelivery = *change.AllowCashOnDelivery
	}
	if change.AllowStoreCredit != nil {
		c.AllowStoreCredit = *change.AllowStoreCredit
	}
	c.UpdatedAt = time.Now()
	return nil
}

// CustomerFilter selects customers for listing
type CustomerFilter struct {
	Search string
	Status CustomerStatus
	Page   shared.Page
	Sort   shared.Sort
}

// CustomerMutation changes a customer loaded inside a write transaction
type CustomerMutation func(c *Customer) error

// AuditRecorder builds the audit entry for a customer change from its before and after state
type AuditRecorder func(before, after Customer) (*audit.Entry, error)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// List returns one page of customers matching the filter and the total match count
	List(ctx context.Context, filter CustomerFilter) (shared.ListResult[Customer], error)

	// Mutate locks the customer row, applies fn and stores the result together
	// with the audit entry returned by record, all in one transaction.
	Mutate(ctx context.Context, id uuid.UUID, fn CustomerMutation, record AuditRecorder) (*Customer, error)
}
