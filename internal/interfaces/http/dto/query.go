package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// ListQuery holds the paging and ordering parameters shared by list endpoints
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// PageOf returns the normalized page
func (q ListQuery) PageOf() shared.Page {
	return shared.NewPage(q.Page, q.PageSize)
}

// SortBy returns the sort for field; an empty field leaves the repository default
func (q ListQuery) SortBy(field string) shared.Sort {
	dir := shared.SortDesc
	if strings.EqualFold(q.Order, "asc") {
		dir = shared.SortAsc
	}
	return shared.Sort{Field: field, Direction: dir}
}

// CustomerQuery filters GET /customers
type CustomerQuery struct {
	ListQuery
	Search string `form:"search" binding:"omitempty,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	Sort   string `form:"sort" binding:"omitempty,oneof=id created_at updated_at code name email status balance credit_limit"`
}

// ToFilter converts the query to a repository filter
func (q CustomerQuery) ToFilter() sales.CustomerFilter {
	return sales.CustomerFilter{
		Search: strings.TrimSpace(q.Search),
		Status: sales.CustomerStatus(q.Status),
		Page:   q.PageOf(),
		Sort:   q.SortBy(q.Sort),
	}
}

// ProductQuery filters GET /products
type ProductQuery struct {
	ListQuery
	Search string `form:"search" binding:"omitempty,max=100"`
	Active *bool  `form:"active"`
	Sort   string `form:"sort" binding:"omitempty,oneof=id created_at updated_at sku name price stock_quantity"`
}

// ToFilter converts the query to a repository filter
func (q ProductQuery) ToFilter() sales.ProductFilter {
	return sales.ProductFilter{
		Search: strings.TrimSpace(q.Search),
		Active: q.Active,
		Page:   q.PageOf(),
		Sort:   q.SortBy(q.Sort),
	}
}

// OrderQuery filters GET /orders and GET /orders/total
type OrderQuery struct {
	ListQuery
	Status        string `form:"status" binding:"omitempty,oneof=pending paid shipped completed cancelled refunded"`
	CustomerID    string `form:"customer_id" binding:"omitempty,uuid"`
	PaymentMethod string `form:"payment_method" binding:"omitempty,oneof=card cash_on_delivery store_credit bank_transfer"`
	PlacedFrom    string `form:"placed_from"`
	PlacedTo      string `form:"placed_to"`
	Sort          string `form:"sort" binding:"omitempty,oneof=id created_at number status total placed_at"`
}

// ToFilter converts the query to a repository filter
func (q OrderQuery) ToFilter() (sales.OrderFilter, error) {
	filter := sales.OrderFilter{
		Status:        sales.OrderStatus(q.Status),
		PaymentMethod: sales.PaymentMethod(q.PaymentMethod),
		Page:          q.PageOf(),
		Sort:          q.SortBy(q.Sort),
	}
	var err error
	if filter.CustomerID, err = parseUUIDParam("customer_id", q.CustomerID); err != nil {
		return filter, err
	}
	if filter.PlacedFrom, err = parseTimeParam("placed_from", q.PlacedFrom); err != nil {
		return filter, err
	}
	if filter.PlacedTo, err = parseTimeParam("placed_to", q.PlacedTo); err != nil {
		return filter, err
	}
	return filter, nil
}

// EmployeeQuery filters GET /employees
type EmployeeQuery struct {
	ListQuery
	Search     string `form:"search" binding:"omitempty,max=100"`
	Department string `form:"department" binding:"omitempty,max=100"`
	Status     string `form:"status" binding:"omitempty,oneof=active on_leave terminated"`
	Sort       string `form:"sort" binding:"omitempty,oneof=id created_at code full_name department status hired_at"`
}

// ToFilter converts the query to a repository filter
func (q EmployeeQuery) ToFilter() staff.EmployeeFilter {
	return staff.EmployeeFilter{
		Search:     strings.TrimSpace(q.Search),
		Department: strings.TrimSpace(q.Department),
		Status:     staff.EmployeeStatus(q.Status),
		Page:       q.PageOf(),
		Sort:       q.SortBy(q.Sort),
	}
}

// PayrollRunQuery filters GET /payroll/runs
type PayrollRunQuery struct {
	ListQuery
	Period string `form:"period" binding:"omitempty,datetime=2006-01"`
	Status string `form:"status" binding:"omitempty,oneof=draft approved paid"`
	Sort   string `form:"sort" binding:"omitempty,oneof=id created_at period status total_gross paid_at"`
}

// ToFilter converts the query to a repository filter
func (q PayrollRunQuery) ToFilter() staff.PayrollRunFilter {
	return staff.PayrollRunFilter{
		Period: q.Period,
		Status: staff.PayrollStatus(q.Status),
		Page:   q.PageOf(),
		Sort:   q.SortBy(q.Sort),
	}
}

// PayslipQuery filters GET /payroll/payslips
type PayslipQuery struct {
	ListQuery
	PayrollRunID string `form:"payroll_run_id" binding:"omitempty,uuid"`
	EmployeeID   string `form:"employee_id" binding:"omitempty,uuid"`
	Sort         string `form:"sort" binding:"omitempty,oneof=id created_at gross net"`
}

// ToFilter converts the query to a repository filter
func (q PayslipQuery) ToFilter() (staff.PayslipFilter, error) {
	filter := staff.PayslipFilter{Page: q.PageOf(), Sort: q.SortBy(q.Sort)}
	var err error
	if filter.PayrollRunID, err = parseUUIDParam("payroll_run_id", q.PayrollRunID); err != nil {
		return filter, err
	}
	if filter.EmployeeID, err = parseUUIDParam("employee_id", q.EmployeeID); err != nil {
		return filter, err
	}
	return filter, nil
}

// ExpenseQuery filters GET /expenses and GET /expenses/total
type ExpenseQuery struct {
	ListQuery
	Category    string `form:"category" binding:"omitempty,oneof=rent utilities office travel marketing equipment maintenance tax other"`
	Status      string `form:"status" binding:"omitempty,oneof=submitted approved rejected reimbursed"`
	SubmittedBy string `form:"submitted_by" binding:"omitempty,uuid"`
	SpentFrom   string `form:"spent_from"`
	SpentTo     string `form:"spent_to"`
	Sort        string `form:"sort" binding:"omitempty,oneof=id created_at number category amount spent_on status"`
}

// ToFilter converts the query to a repository filter
func (q ExpenseQuery) ToFilter() (finance.ExpenseFilter, error) {
	filter := finance.ExpenseFilter{
		Category: finance.ExpenseCategory(q.Category),
		Status:   finance.ExpenseStatus(q.Status),
		Page:     q.PageOf(),
		Sort:     q.SortBy(q.Sort),
	}
	var err error
	if filter.SubmittedBy, err = parseUUIDParam("submitted_by", q.SubmittedBy); err != nil {
		return filter, err
	}
	if filter.SpentFrom, err = parseTimeParam("spent_from", q.SpentFrom); err != nil {
		return filter, err
	}
	if filter.SpentTo, err = parseTimeParam("spent_to", q.SpentTo); err != nil {
		return filter, err
	}
	return filter, nil
}

// InvestmentQuery filters GET /investments and GET /investments/total
type InvestmentQuery struct {
	ListQuery
	Search     string `form:"search" binding:"omitempty,max=100"`
	AssetClass string `form:"asset_class" binding:"omitempty,oneof=equity bond fund cash alternative"`
	Sort       string `form:"sort" binding:"omitempty,oneof=id created_at symbol name asset_class market_value acquired_at"`
}

// ToFilter converts the query to a repository filter
func (q InvestmentQuery) ToFilter() finance.InvestmentFilter {
	return finance.InvestmentFilter{
		Search:     strings.TrimSpace(q.Search),
		AssetClass: finance.AssetClass(q.AssetClass),
		Page:       q.PageOf(),
		Sort:       q.SortBy(q.Sort),
	}
}

// AuditQuery filters GET /audit
type AuditQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	EntityType string `form:"entity_type" binding:"omitempty,oneof=customer"`
	EntityID   string `form:"entity_id" binding:"omitempty,uuid"`
	ActorID    string `form:"actor_id" binding:"omitempty,max=255"`
}

// ToFilter converts the query to a repository filter
func (q AuditQuery) ToFilter() (audit.Filter, error) {
	filter := audit.Filter{
		EntityType: q.EntityType,
		ActorID:    strings.TrimSpace(q.ActorID),
		Page:       shared.NewPage(q.Page, q.PageSize),
	}
	var err error
	filter.EntityID, err = parseUUIDParam("entity_id", q.EntityID)
	return filter, err
}

// FileQuery selects the stored object for GET /files
type FileQuery struct {
	Key string `form:"key" binding:"required,storagekey"`
}

// AdjustBalanceRequest is the body of POST /customers/:id/balance-adjustments.
// Amount is a decimal string so no precision is lost in transit.
type AdjustBalanceRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,max=500"`
}

// ParsedAmount returns Amount as a decimal
func (r AdjustBalanceRequest) ParsedAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, shared.NewValidationError("amount must be a decimal string")
	}
	return amount, nil
}

// PaymentMethodsRequest is the body of PATCH /customers/:id/payment-methods.
// Absent flags are left unchanged.
type PaymentMethodsRequest struct {
	AllowCashOnDelivery *bool  `json:"allow_cash_on_delivery"`
	AllowStoreCredit    *bool  `json:"allow_store_credit"`
	Reason              string `json:"reason" binding:"required,max=500"`
}

// ToChange converts the request to a domain change
func (r PaymentMethodsRequest) ToChange() sales.PaymentMethodChange {
	return sales.PaymentMethodChange{
		AllowCashOnDelivery: r.AllowCashOnDelivery,
		AllowStoreCredit:    r.AllowStoreCredit,
	}
}

// timeLayouts are the accepted formats of date range parameters
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02"}

func parseTimeParam(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, shared.NewValidationError(fmt.Sprintf("%s must be an RFC 3339 timestamp or YYYY-MM-DD date", name))
}

func parseUUIDParam(name, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("%s must be a UUID", name))
	}
	return &id, nil
}
