package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PayrollStatus represents the state of a payroll run
type PayrollStatus string

const (
	PayrollStatusDraft    PayrollStatus = "draft"
	PayrollStatusApproved PayrollStatus = "approved"
	PayrollStatusPaid     PayrollStatus = "paid"
)

// IsValid reports whether the status is a known value
func (s PayrollStatus) IsValid() bool {
	return s == PayrollStatusDraft || s == PayrollStatusApproved || s == PayrollStatusPaid
}

// PayrollRun is one pay period
type PayrollRun struct {
	shared.BaseEntity
	Period     string          `json:"period"`
	Status     PayrollStatus   `json:"status"`
	TotalGross decimal.Decimal `json:"total_gross"`
	TotalNet   decimal.Decimal `json:"total_net"`
	PaidAt     *time.Time      `json:"paid_at"`
}

// Payslip is one employee's pay for a run
type Payslip struct {
	shared.BaseEntity
	PayrollRunID uuid.UUID       `json:"payroll_run_id"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	Gross        decimal.Decimal `json:"gross"`
	Deductions   decimal.Decimal `json:"deductions"`
	Net          decimal.Decimal `json:"net"`
	DocumentKey  string          `json:"document_key"`
}

// PayrollRunFilter selects payroll runs for listing
type PayrollRunFilter struct {
	Period string
	Status PayrollStatus
	Page   shared.Page
	Sort   shared.Sort
}

// PayslipFilter selects payslips for listing. EmployeeID set restricts the
// result to one employee's payslips.
type PayslipFilter struct {
	PayrollRunID *uuid.UUID
	EmployeeID   *uuid.UUID
	Page         shared.Page
	Sort         shared.Sort
}

// PayrollRepository defines the interface for payroll persistence
type PayrollRepository interface {
	FindRunByID(ctx context.Context, id uuid.UUID) (*PayrollRun, error)
	ListRuns(ctx context.Context, filter PayrollRunFilter) (shared.ListResult[PayrollRun], error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (shared.ListResult[Payslip], error)
}
