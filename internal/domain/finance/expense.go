// Package finance holds company expenses and investment holdings.
package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an expense
type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "rent"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategoryOffice      ExpenseCategory = "office"
	ExpenseCategoryTravel      ExpenseCategory = "travel"
	ExpenseCategoryMarketing   ExpenseCategory = "marketing"
	ExpenseCategoryEquipment   ExpenseCategory = "equipment"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryTax         ExpenseCategory = "tax"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryUtilities, ExpenseCategoryOffice,
		ExpenseCategoryTravel, ExpenseCategoryMarketing, ExpenseCategoryEquipment,
		ExpenseCategoryMaintenance, ExpenseCategoryTax, ExpenseCategoryOther:
		return true
	}
	return false
}

// ExpenseStatus represents the approval state of an expense
type ExpenseStatus string

const (
	ExpenseStatusSubmitted  ExpenseStatus = "submitted"
	ExpenseStatusApproved   ExpenseStatus = "approved"
	ExpenseStatusRejected   ExpenseStatus = "rejected"
	ExpenseStatusReimbursed ExpenseStatus = "reimbursed"
)

// IsValid reports whether the status is a known value
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusSubmitted, ExpenseStatusApproved, ExpenseStatusRejected, ExpenseStatusReimbursed:
		return true
	}
	return false
}

// Expense is a spend submitted by an employee
type Expense struct {
	shared.BaseEntity
	Number      string          `json:"number"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SpentOn     time.Time       `json:"spent_on"`
	ReceiptKey  string          `json:"receipt_key"`
	SubmittedBy uuid.UUID       `json:"submitted_by"`
	Status      ExpenseStatus   `json:"status"`
}

// ExpenseFilter selects expenses for listing and totals. SubmittedBy set
// restricts the result to one employee's expenses.
type ExpenseFilter struct {
	Category    ExpenseCategory
	Status      ExpenseStatus
	SubmittedBy *uuid.UUID
	SpentFrom   *time.Time
	SpentTo     *time.Time
	Page        shared.Page
	Sort        shared.Sort
}

// CategoryTotal is the summed amount of one expense category
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseTotals aggregates the expenses matching a filter
type ExpenseTotals struct {
	Count      int64           `json:"count,string"`
	Total      decimal.Decimal `json:"total"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	List(ctx context.Context, filter ExpenseFilter) (shared.ListResult[Expense], error)
	Totals(ctx context.Context, filter ExpenseFilter) (*ExpenseTotals, error)
}
