package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements sales.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateFindError(err, "Product")
	}
	return model.ToDomain(), nil
}

// List returns one page of products matching the filter
func (r *GormProductRepository) List(ctx context.Context, filter sales.ProductFilter) (shared.ListResult[sales.Product], error) {
	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&models.ProductModel{})
		if filter.Search != "" {
			p := containsPattern(filter.Search)
			db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(sku) LIKE ? ESCAPE '\')`, p, p)
		}
		if filter.Active != nil {
			db = db.Where("active = ?", *filter.Active)
		}
		return db
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, ProductSortFields, "created_at"),
		func(m *models.ProductModel) sales.Product { return *m.ToDomain() })
}
