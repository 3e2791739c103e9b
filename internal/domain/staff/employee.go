// Package staff holds employees and their payroll.
package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus represents the employment state
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

// IsValid reports whether the status is a known value
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusOnLeave, EmployeeStatusTerminated:
		return true
	}
	return false
}

// Compensation fields are withheld from callers without compensation access
const (
	FieldSalary      = "salary"
	FieldBankAccount = "bank_account"
)

// CompensationFields lists the wire names of redactable employee fields
var CompensationFields = []string{FieldSalary, FieldBankAccount}

// Employee is a staff member. UserID links the record to the identity
// provider subject so sessions can be matched to their own payroll data.
type Employee struct {
	shared.BaseEntity
	Code        string          `json:"code"`
	UserID      string          `json:"user_id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	Department  string          `json:"department"`
	Position    string          `json:"position"`
	Salary      decimal.Decimal `json:"salary"`
	BankAccount string          `json:"bank_account"`
	Status      EmployeeStatus  `json:"status"`
	HiredAt     time.Time       `json:"hired_at"`
}

// EmployeeFilter selects employees for listing
type EmployeeFilter struct {
	Search     string
	Department string
	Status     EmployeeStatus
	Page       shared.Page
	Sort       shared.Sort
}

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	// FindByUserID finds the employee linked to an identity subject
	FindByUserID(ctx context.Context, userID string) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) (shared.ListResult[Employee], error)
}
