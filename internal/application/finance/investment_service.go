package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// InvestmentService serves the investment portfolio
type InvestmentService struct {
	investments finance.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(investments finance.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investments: investments}
}

// List returns one page of holdings
func (s *InvestmentService) List(ctx context.Context, filter finance.InvestmentFilter) (shared.ListResult[finance.Investment], error) {
	return s.investments.List(ctx, filter)
}

// GetByID returns one holding
func (s *InvestmentService) GetByID(ctx context.Context, id uuid.UUID) (*finance.Investment, error) {
	return s.investments.FindByID(ctx, id)
}

// Totals aggregates the holdings matching the filter
func (s *InvestmentService) Totals(ctx context.Context, filter finance.InvestmentFilter) (*finance.InvestmentTotals, error) {
	return s.investments.Totals(ctx, filter)
}
