package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPayrollRepository implements staff.PayrollRepository using GORM
type GormPayrollRepository struct {
	db *gorm.DB
}

// NewGormPayrollRepository creates a new GormPayrollRepository
func NewGormPayrollRepository(db *gorm.DB) *GormPayrollRepository {
	return &GormPayrollRepository{db: db}
}

// FindRunByID finds a payroll run by its ID
func (r *GormPayrollRepository) FindRunByID(ctx context.Context, id uuid.UUID) (*staff.PayrollRun, error) {
	var model models.PayrollRunModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateFindError(err, "Payroll run")
	}
	return model.ToDomain(), nil
}

// ListRuns returns one page of payroll runs, newest period first by default
func (r *GormPayrollRepository) ListRuns(ctx context.Context, filter staff.PayrollRunFilter) (shared.ListResult[staff.PayrollRun], error) {
	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&models.PayrollRunModel{})
		if filter.Period != "" {
			db = db.Where("period = ?", filter.Period)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, PayrollRunSortFields, "period"),
		func(m *models.PayrollRunModel) staff.PayrollRun { return *m.ToDomain() })
}

// ListPayslips returns one page of payslips. EmployeeID restricts the result
// to one employee's payslips.
func (r *GormPayrollRepository) ListPayslips(ctx context.Context, filter staff.PayslipFilter) (shared.ListResult[staff.Payslip], error) {
	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&models.PayslipModel{})
		if filter.PayrollRunID != nil {
			db = db.Where("payroll_run_id = ?", *filter.PayrollRunID)
		}
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		return db
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, PayslipSortFields, "created_at"),
		func(m *models.PayslipModel) staff.Payslip { return *m.ToDomain() })
}
