package finance

import (
	"context"

	"github.com/shopadmin/backend/internal/application/staff"
	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
)

// ExpenseService serves expense lists and totals
type ExpenseService struct {
	expenses  finance.ExpenseRepository
	employees staff.EmployeeLookup
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenses finance.ExpenseRepository, employees staff.EmployeeLookup) *ExpenseService {
	return &ExpenseService{expenses: expenses, employees: employees}
}

// List returns one page of expenses. Sessions without expenses:read only see
// the expenses they submitted.
func (s *ExpenseService) List(ctx context.Context, session *auth.Session, filter finance.ExpenseFilter) (shared.ListResult[finance.Expense], error) {
	if err := checkSpentRange(filter); err != nil {
		return shared.ListResult[finance.Expense]{}, err
	}
	if auth.OwnRecordsScope(session, auth.CapExpensesRead).OwnOnly {
		self, ok, err := staff.SelfEmployeeID(ctx, s.employees, session)
		if err != nil {
			return shared.ListResult[finance.Expense]{}, err
		}
		if !ok {
			return shared.EmptyListResult[finance.Expense](filter.Page), nil
		}
		filter.SubmittedBy = &self
	}
	return s.expenses.List(ctx, filter)
}

// Totals sums every expense matching the filter with a per-category breakdown
func (s *ExpenseService) Totals(ctx context.Context, filter finance.ExpenseFilter) (*finance.ExpenseTotals, error) {
	if err := checkSpentRange(filter); err != nil {
		return nil, err
	}
	return s.expenses.Totals(ctx, filter)
}

func checkSpentRange(filter finance.ExpenseFilter) error {
	if filter.SpentFrom != nil && filter.SpentTo != nil && !filter.SpentFrom.Before(*filter.SpentTo) {
		return shared.NewValidationError("spent_from must be before spent_to")
	}
	return nil
}
