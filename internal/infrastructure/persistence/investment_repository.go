package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/shared/valueobject"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvestmentRepository implements finance.InvestmentRepository using GORM
type GormInvestmentRepository struct {
	db *gorm.DB
}

// NewGormInvestmentRepository creates a new GormInvestmentRepository
func NewGormInvestmentRepository(db *gorm.DB) *GormInvestmentRepository {
	return &GormInvestmentRepository{db: db}
}

// FindByID finds an investment holding by its ID
func (r *GormInvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Investment, error) {
	var model models.InvestmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateFindError(err, "Investment")
	}
	return model.ToDomain(), nil
}

// List returns one page of holdings matching the filter
func (r *GormInvestmentRepository) List(ctx context.Context, filter finance.InvestmentFilter) (shared.ListResult[finance.Investment], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.InvestmentModel{}).Scopes(investmentFilterScope(filter))
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, InvestmentSortFields, "symbol"),
		func(m *models.InvestmentModel) finance.Investment { return *m.ToDomain() })
}

type investmentTotalsRow struct {
	Holdings    int64
	Shares      valueobject.BigInt
	CostBasis   decimal.Decimal
	MarketValue decimal.Decimal
}

// Totals aggregates the portfolio. Share counts are summed in the database
// as numeric so totals beyond 64 bits stay exact.
func (r *GormInvestmentRepository) Totals(ctx context.Context, filter finance.InvestmentFilter) (*finance.InvestmentTotals, error) {
	var row investmentTotalsRow
	err := r.db.WithContext(ctx).Model(&models.InvestmentModel{}).
		Scopes(investmentFilterScope(filter)).
		Select("COUNT(*) AS holdings, " +
			"COALESCE(SUM(shares), 0) AS shares, " +
			"COALESCE(SUM(cost_basis), 0) AS cost_basis, " +
			"COALESCE(SUM(market_value), 0) AS market_value").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total investments: %w", err)
	}
	return &finance.InvestmentTotals{
		Holdings:       row.Holdings,
		Shares:         row.Shares,
		CostBasis:      row.CostBasis,
		MarketValue:    row.MarketValue,
		UnrealizedGain: row.MarketValue.Sub(row.CostBasis),
	}, nil
}

func investmentFilterScope(filter finance.InvestmentFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			p := containsPattern(filter.Search)
			db = db.Where(`(LOWER(symbol) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\')`, p, p)
		}
		if filter.AssetClass != "" {
			db = db.Where("asset_class = ?", filter.AssetClass)
		}
		return db
	}
}
