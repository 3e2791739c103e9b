package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence model for the expenses table
type ExpenseModel struct {
	BaseModel
	Number      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Category    string          `gorm:"type:varchar(30);not null;index"`
	Description string          `gorm:"type:varchar(500)"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	SpentOn     time.Time       `gorm:"not null;index"`
	ReceiptKey  string          `gorm:"type:varchar(512)"`
	SubmittedBy uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:  m.BaseModel.ToDomain(),
		Number:      m.Number,
		Category:    finance.ExpenseCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		SpentOn:     m.SpentOn,
		ReceiptKey:  m.ReceiptKey,
		SubmittedBy: m.SubmittedBy,
		Status:      finance.ExpenseStatus(m.Status),
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		Number:      e.Number,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		SpentOn:     e.SpentOn,
		ReceiptKey:  e.ReceiptKey,
		SubmittedBy: e.SubmittedBy,
		Status:      string(e.Status),
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// InvestmentModel is the persistence model for the investments table.
// Shares is an unbounded integer stored as numeric(38,0).
type InvestmentModel struct {
	BaseModel
	Symbol       string             `gorm:"type:varchar(20);not null;index"`
	Name         string             `gorm:"type:varchar(200);not null"`
	AssetClass   string             `gorm:"type:varchar(20);not null;index"`
	Shares       valueobject.BigInt `gorm:"type:numeric(38,0);not null"`
	CostBasis    decimal.Decimal    `gorm:"type:numeric(20,4);not null"`
	MarketValue  decimal.Decimal    `gorm:"type:numeric(20,4);not null"`
	AcquiredAt   time.Time          `gorm:"not null"`
	StatementKey string             `gorm:"type:varchar(512)"`
}

// TableName returns the table name for GORM
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToDomain converts the persistence model to a domain Investment
func (m *InvestmentModel) ToDomain() *finance.Investment {
	return &finance.Investment{
		BaseEntity:   m.BaseModel.ToDomain(),
		Symbol:       m.Symbol,
		Name:         m.Name,
		AssetClass:   finance.AssetClass(m.AssetClass),
		Shares:       m.Shares,
		CostBasis:    m.CostBasis,
		MarketValue:  m.MarketValue,
		AcquiredAt:   m.AcquiredAt,
		StatementKey: m.StatementKey,
	}
}

// InvestmentModelFromDomain creates a persistence model from a domain Investment
func InvestmentModelFromDomain(i *finance.Investment) *InvestmentModel {
	m := &InvestmentModel{
		Symbol:       i.Symbol,
		Name:         i.Name,
		AssetClass:   string(i.AssetClass),
		Shares:       i.Shares,
		CostBasis:    i.CostBasis,
		MarketValue:  i.MarketValue,
		AcquiredAt:   i.AcquiredAt,
		StatementKey: i.StatementKey,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}
