package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
)

// EmployeeService serves the employee directory
type EmployeeService struct {
	repo staff.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(repo staff.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// List returns one page of employees. Compensation redaction is applied by
// the caller from the session's auth.Scope.
func (s *EmployeeService) List(ctx context.Context, filter staff.EmployeeFilter) (shared.ListResult[staff.Employee], error) {
	return s.repo.List(ctx, filter)
}

// GetByID returns one employee
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	return s.repo.FindByID(ctx, id)
}
