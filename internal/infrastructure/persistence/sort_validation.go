package persistence

import (
	"strings"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// orderClause renders a whitelisted ORDER BY with id as the tiebreaker so
// pages stay stable when the sort column has duplicates.
func orderClause(sort shared.Sort, allowed map[string]bool, defaultField string) string {
	field := ValidateSortField(sort.Field, allowed, defaultField)
	clause := field + " " + ValidateSortOrder(string(sort.Direction))
	if field == "id" {
		return clause
	}
	return clause + ", id ASC"
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"code":         true,
	"name":         true,
	"email":        true,
	"status":       true,
	"balance":      true,
	"credit_limit": true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"sku":            true,
	"name":           true,
	"price":          true,
	"stock_quantity": true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"number":     true,
	"status":     true,
	"total":      true,
	"placed_at":  true,
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"code":       true,
	"full_name":  true,
	"department": true,
	"status":     true,
	"hired_at":   true,
}

// PayrollRunSortFields contains allowed sort fields for payroll runs
var PayrollRunSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"period":      true,
	"status":      true,
	"total_gross": true,
	"paid_at":     true,
}

// PayslipSortFields contains allowed sort fields for payslips
var PayslipSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"gross":      true,
	"net":        true,
}

// ExpenseSortFields contains allowed sort fields for expenses
var ExpenseSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"number":     true,
	"category":   true,
	"amount":     true,
	"spent_on":   true,
	"status":     true,
}

// InvestmentSortFields contains allowed sort fields for investments
var InvestmentSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"symbol":       true,
	"name":         true,
	"asset_class":  true,
	"market_value": true,
	"acquired_at":  true,
}
