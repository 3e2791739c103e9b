package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// AssetClass groups investment holdings
type AssetClass string

const (
	AssetClassEquity      AssetClass = "equity"
	AssetClassBond        AssetClass = "bond"
	AssetClassFund        AssetClass = "fund"
	AssetClassCash        AssetClass = "cash"
	AssetClassAlternative AssetClass = "alternative"
)

// IsValid reports whether the asset class is a known value
func (a AssetClass) IsValid() bool {
	switch a {
	case AssetClassEquity, AssetClassBond, AssetClassFund, AssetClassCash, AssetClassAlternative:
		return true
	}
	return false
}

// Investment is a company holding. Share counts can exceed 64 bits.
type Investment struct {
	shared.BaseEntity
	Symbol       string             `json:"symbol"`
	Name         string             `json:"name"`
	AssetClass   AssetClass         `json:"asset_class"`
	Shares       valueobject.BigInt `json:"shares"`
	CostBasis    decimal.Decimal    `json:"cost_basis"`
	MarketValue  decimal.Decimal    `json:"market_value"`
	AcquiredAt   time.Time          `json:"acquired_at"`
	StatementKey string             `json:"statement_key"`
}

// UnrealizedGain is market value minus cost basis
func (i *Investment) UnrealizedGain() decimal.Decimal {
	return i.MarketValue.Sub(i.CostBasis)
}

// InvestmentFilter selects investments for listing and totals
type InvestmentFilter struct {
	Search     string
	AssetClass AssetClass
	Page       shared.Page
	Sort       shared.Sort
}

// InvestmentTotals aggregates the holdings matching a filter
type InvestmentTotals struct {
	Holdings       int64              `json:"holdings,string"`
	Shares         valueobject.BigInt `json:"shares"`
	CostBasis      decimal.Decimal    `json:"cost_basis"`
	MarketValue    decimal.Decimal    `json:"market_value"`
	UnrealizedGain decimal.Decimal    `json:"unrealized_gain"`
}

// InvestmentRepository defines the interface for investment persistence
type InvestmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Investment, error)
	List(ctx context.Context, filter InvestmentFilter) (shared.ListResult[Investment], error)
	Totals(ctx context.Context, filter InvestmentFilter) (*InvestmentTotals, error)
}
