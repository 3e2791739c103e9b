package sales

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdjustBalanceInput is a signed change to a customer's prepaid balance
type AdjustBalanceInput struct {
	Amount decimal.Decimal
	Reason string
}

// PaymentMethodsInput changes a customer's payment-method flags
type PaymentMethodsInput struct {
	Change sales.PaymentMethodChange
	Reason string
}

// CustomerService handles customer reads and the audited customer writes
type CustomerService struct {
	customers sales.CustomerRepository
	audits    audit.Repository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers sales.CustomerRepository, audits audit.Repository) *CustomerService {
	return &CustomerService{customers: customers, audits: audits}
}

// List returns one page of customers
func (s *CustomerService) List(ctx context.Context, filter sales.CustomerFilter) (shared.ListResult[sales.Customer], error) {
	return s.customers.List(ctx, filter)
}

// GetByID returns one customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// AdjustBalance adds input.Amount to the customer's balance and records the
// before and after state in the audit log in the same transaction.
func (s *CustomerService) AdjustBalance(ctx context.Context, session *auth.Session, id uuid.UUID, input AdjustBalanceInput) (*sales.Customer, error) {
	if input.Amount.IsZero() {
		return nil, shared.NewValidationError("amount must be non-zero")
	}
	reason, err := checkReason(input.Reason)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "customer", "adjust_balance",
		telemetry.SpanAttrCustomerID, id.String(),
		telemetry.SpanAttrActorID, session.UserID,
		telemetry.SpanAttrAction, audit.ActionBalanceAdjusted,
	)
	defer span.End()

	updated, err := s.customers.Mutate(ctx, id,
		func(c *sales.Customer) error { return c.AdjustBalance(input.Amount) },
		recorder(session, audit.ActionBalanceAdjusted, reason),
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	logger.L(ctx).Info("Customer balance adjusted",
		zap.String("customer_id", id.String()),
		zap.String("amount", input.Amount.String()),
		zap.String("balance", updated.Balance.String()),
	)
	return updated, nil
}

// SetPaymentMethods updates the payment-method flags named in input.Change
// and records the change in the audit log in the same transaction.
func (s *CustomerService) SetPaymentMethods(ctx context.Context, session *auth.Session, id uuid.UUID, input PaymentMethodsInput) (*sales.Customer, error) {
	if input.Change.IsEmpty() {
		return nil, shared.NewValidationError("At least one payment method flag is required")
	}
	reason, err := checkReason(input.Reason)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "customer", "set_payment_methods",
		telemetry.SpanAttrCustomerID, id.String(),
		telemetry.SpanAttrActorID, session.UserID,
		telemetry.SpanAttrAction, audit.ActionPaymentMethodsChanged,
	)
	defer span.End()

	updated, err := s.customers.Mutate(ctx, id,
		func(c *sales.Customer) error { return c.SetPaymentMethods(input.Change) },
		recorder(session, audit.ActionPaymentMethodsChanged, reason),
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	logger.L(ctx).Info("Customer payment methods changed",
		zap.String("customer_id", id.String()),
		zap.Bool("allow_cash_on_delivery", updated.AllowCashOnDelivery),
		zap.Bool("allow_store_credit", updated.AllowStoreCredit),
	)
	return updated, nil
}

// ListAudit returns one page of audit entries, newest first
func (s *CustomerService) ListAudit(ctx context.Context, filter audit.Filter) (shared.ListResult[audit.Entry], error) {
	return s.audits.List(ctx, filter)
}

func recorder(session *auth.Session, action, reason string) sales.AuditRecorder {
	actor := audit.Actor{ID: session.UserID, Role: string(session.Role)}
	return func(before, after sales.Customer) (*audit.Entry, error) {
		return audit.NewEntry(actor, action, audit.EntityCustomer, before.ID, before, after, reason)
	}
}

func checkReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", shared.NewValidationError("reason is required")
	}
	if len(reason) > audit.MaxReasonLength {
		return "", shared.NewValidationError("reason cannot exceed 500 characters")
	}
	return reason, nil
}
