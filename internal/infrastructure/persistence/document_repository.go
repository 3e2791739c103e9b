package persistence

import (
	"context"

	"github.com/shopadmin/backend/internal/domain/document"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDocumentRepository implements document.Repository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByKey finds the registry entry for a storage key
func (r *GormDocumentRepository) FindByKey(ctx context.Context, key string) (*document.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&model).Error; err != nil {
		return nil, translateFindError(err, "Document")
	}
	return model.ToDomain(), nil
}
