package sales

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of sales.CustomerRepository.
// Mutate applies fn and record to the customer passed to OnMutate, the way
// the real repository does inside its transaction.
type MockCustomerRepository struct {
	mock.Mock
	lastEntry *audit.Entry
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, filter sales.CustomerFilter) (shared.ListResult[sales.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[sales.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) Mutate(ctx context.Context, id uuid.UUID, fn sales.CustomerMutation, record sales.AuditRecorder) (*sales.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	before := *args.Get(0).(*sales.Customer)
	after := before
	if err := fn(&after); err != nil {
		return nil, err
	}
	entry, err := record(before, after)
	if err != nil {
		return nil, err
	}
	m.lastEntry = entry
	return &after, args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) List(ctx context.Context, filter audit.Filter) (shared.ListResult[audit.Entry], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[audit.Entry]), args.Error(1)
}

func adminSession() *auth.Session {
	return &auth.Session{UserID: "user-1", Role: auth.RoleAdmin, TokenID: "jti-1"}
}

func customerFixture(balance string) *sales.Customer {
	return &sales.Customer{
		BaseEntity: shared.NewBaseEntity(),
		Code:       "C-001",
		Name:       "Acme",
		Balance:    decimal.RequireFromString(balance),
		Status:     sales.CustomerStatusActive,
	}
}

func TestCustomerService_AdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the amount and records before and after", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, new(MockAuditRepository))
		customer := customerFixture("100.25")
		repo.On("Mutate", mock.Anything, customer.ID).Return(customer, nil)

		updated, err := svc.AdjustBalance(ctx, adminSession(), customer.ID, AdjustBalanceInput{
			Amount: decimal.RequireFromString("-25.5"),
			Reason: "  refund for damaged item  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "74.75", updated.Balance.String())

		entry := repo.lastEntry
		require.NotNil(t, entry)
		assert.Equal(t, audit.ActionBalanceAdjusted, entry.Action)
		assert.Equal(t, "user-1", entry.ActorID)
		assert.Equal(t, "admin", entry.ActorRole)
		assert.Equal(t, customer.ID, entry.EntityID)
		assert.Equal(t, "refund for damaged item", entry.Reason)

		var before, after map[string]any
		require.NoError(t, json.Unmarshal(entry.BeforeState, &before))
		require.NoError(t, json.Unmarshal(entry.AfterState, &after))
		assert.Equal(t, "100.25", before["balance"])
		assert.Equal(t, "74.75", after["balance"])
		repo.AssertExpectations(t)
	})

	t.Run("zero amount is rejected before the repository", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, new(MockAuditRepository))

		_, err := svc.AdjustBalance(ctx, adminSession(), uuid.New(), AdjustBalanceInput{Amount: decimal.Zero, Reason: "x"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.KindValidation, domainErr.Kind)
		repo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
	})

	t.Run("blank reason is rejected before the repository", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, new(MockAuditRepository))

		_, err := svc.AdjustBalance(ctx, adminSession(), uuid.New(), AdjustBalanceInput{Amount: decimal.NewFromInt(5), Reason: "   "})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, new(MockAuditRepository))
		id := uuid.New()
		repo.On("Mutate", mock.Anything, id).Return(nil, shared.NewNotFoundError("Customer"))

		_, err := svc.AdjustBalance(ctx, adminSession(), id, AdjustBalanceInput{Amount: decimal.NewFromInt(5), Reason: "top-up"})
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestCustomerService_SetPaymentMethods(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the named flags", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, new(MockAuditRepository))
		customer := customerFixture("0")
		customer.AllowStoreCredit = true
		repo.On("Mutate", mock.Anything, customer.ID).Return(customer, nil)

		enable := true
		updated, err := svc.SetPaymentMethods(ctx, adminSession(), customer.ID, PaymentMethodsInput{
			Change: sales.PaymentMethodChange{AllowCashOnDelivery: &enable},
			Reason: "approved by finance",
		})
		require.NoError(t, err)
		assert.True(t, updated.AllowCashOnDelivery)
		assert.True(t, updated.AllowStoreCredit)
		assert.Equal(t, audit.ActionPaymentMethodsChanged, repo.lastEntry.Action)
	})

	t.Run("empty change is rejected", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, new(MockAuditRepository))

		_, err := svc.SetPaymentMethods(ctx, adminSession(), uuid.New(), PaymentMethodsInput{Reason: "noop"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_ListAudit(t *testing.T) {
	audits := new(MockAuditRepository)
	svc := NewCustomerService(new(MockCustomerRepository), audits)
	filter := audit.Filter{EntityType: audit.EntityCustomer}
	audits.On("List", mock.Anything, filter).Return(shared.ListResult[audit.Entry]{}, errors.New("db down"))

	_, err := svc.ListAudit(context.Background(), filter)
	assert.EqualError(t, err, "db down")
}
