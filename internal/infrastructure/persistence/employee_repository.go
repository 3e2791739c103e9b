package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements staff.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateFindError(err, "Employee")
	}
	return model.ToDomain(), nil
}

// FindByUserID finds the employee linked to an identity provider subject
func (r *GormEmployeeRepository) FindByUserID(ctx context.Context, userID string) (*staff.Employee, error) {
	if userID == "" {
		return nil, shared.NewNotFoundError("Employee")
	}
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, translateFindError(err, "Employee")
	}
	return model.ToDomain(), nil
}

// List returns one page of employees matching the filter
func (r *GormEmployeeRepository) List(ctx context.Context, filter staff.EmployeeFilter) (shared.ListResult[staff.Employee], error) {
	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&models.EmployeeModel{})
		if filter.Search != "" {
			p := containsPattern(filter.Search)
			db = db.Where(`(LOWER(full_name) LIKE ? ESCAPE '\' OR LOWER(code) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, p, p, p)
		}
		if filter.Department != "" {
			db = db.Where("department = ?", filter.Department)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, EmployeeSortFields, "full_name"),
		func(m *models.EmployeeModel) staff.Employee { return *m.ToDomain() })
}
