package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
)

// PayrollService serves payroll runs and payslips
type PayrollService struct {
	payroll   staff.PayrollRepository
	employees EmployeeLookup
}

// NewPayrollService creates a new PayrollService
func NewPayrollService(payroll staff.PayrollRepository, employees EmployeeLookup) *PayrollService {
	return &PayrollService{payroll: payroll, employees: employees}
}

// ListRuns returns one page of payroll runs
func (s *PayrollService) ListRuns(ctx context.Context, filter staff.PayrollRunFilter) (shared.ListResult[staff.PayrollRun], error) {
	return s.payroll.ListRuns(ctx, filter)
}

// GetRun returns one payroll run
func (s *PayrollService) GetRun(ctx context.Context, id uuid.UUID) (*staff.PayrollRun, error) {
	return s.payroll.FindRunByID(ctx, id)
}

// ListPayslips returns one page of payslips. Sessions without payroll:read
// only see their own; a caller with no linked employee record sees none.
func (s *PayrollService) ListPayslips(ctx context.Context, session *auth.Session, filter staff.PayslipFilter) (shared.ListResult[staff.Payslip], error) {
	if auth.OwnRecordsScope(session, auth.CapPayrollRead).OwnOnly {
		self, ok, err := SelfEmployeeID(ctx, s.employees, session)
		if err != nil {
			return shared.ListResult[staff.Payslip]{}, err
		}
		if !ok {
			return shared.EmptyListResult[staff.Payslip](filter.Page), nil
		}
		filter.EmployeeID = &self
	}
	return s.payroll.ListPayslips(ctx, filter)
}

