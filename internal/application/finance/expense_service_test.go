package finance

import (
	"context"
	"testing"
	"time"

	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) List(ctx context.Context, filter finance.ExpenseFilter) (shared.ListResult[finance.Expense], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[finance.Expense]), args.Error(1)
}

func (m *MockExpenseRepository) Totals(ctx context.Context, filter finance.ExpenseFilter) (*finance.ExpenseTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseTotals), args.Error(1)
}

type MockEmployeeLookup struct {
	mock.Mock
}

func (m *MockEmployeeLookup) FindByUserID(ctx context.Context, userID string) (*staff.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func TestExpenseService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("own-only scope filters by submitter", func(t *testing.T) {
		expenses, employees := new(MockExpenseRepository), new(MockEmployeeLookup)
		self := &staff.Employee{BaseEntity: shared.NewBaseEntity(), UserID: "idp|bob"}
		employees.On("FindByUserID", mock.Anything, "idp|bob").Return(self, nil)
		expenses.On("List", mock.Anything, mock.MatchedBy(func(f finance.ExpenseFilter) bool {
			return f.SubmittedBy != nil && *f.SubmittedBy == self.ID && f.Category == finance.ExpenseCategoryTravel
		})).Return(shared.ListResult[finance.Expense]{Items: []finance.Expense{}}, nil)

		svc := NewExpenseService(expenses, employees)
		_, err := svc.List(ctx, &auth.Session{UserID: "idp|bob", Role: auth.RoleEmployee},
			finance.ExpenseFilter{Category: finance.ExpenseCategoryTravel})
		require.NoError(t, err)
		expenses.AssertExpectations(t)
	})

	t.Run("managers see all expenses", func(t *testing.T) {
		expenses, employees := new(MockExpenseRepository), new(MockEmployeeLookup)
		expenses.On("List", mock.Anything, finance.ExpenseFilter{}).Return(shared.ListResult[finance.Expense]{Total: 4}, nil)

		svc := NewExpenseService(expenses, employees)
		result, err := svc.List(ctx, &auth.Session{UserID: "mgr", Role: auth.RoleManager}, finance.ExpenseFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.Total)
		employees.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		to := from.Add(-time.Hour)

		svc := NewExpenseService(expenses, new(MockEmployeeLookup))
		_, err := svc.Totals(ctx, finance.ExpenseFilter{SpentFrom: &from, SpentTo: &to})
		assert.Error(t, err)
		expenses.AssertNotCalled(t, "Totals", mock.Anything, mock.Anything)
	})
}
