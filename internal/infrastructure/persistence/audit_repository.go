package persistence

import (
	"context"

	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAuditRepository implements audit.Repository using GORM
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// List returns audit entries, newest first
func (r *GormAuditRepository) List(ctx context.Context, filter audit.Filter) (shared.ListResult[audit.Entry], error) {
	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&models.AuditEntryModel{})
		if filter.EntityType != "" {
			db = db.Where("entity_type = ?", filter.EntityType)
		}
		if filter.EntityID != nil {
			db = db.Where("entity_id = ?", *filter.EntityID)
		}
		if filter.ActorID != "" {
			db = db.Where("actor_id = ?", filter.ActorID)
		}
		return db
	}
	return findPage(query, filter.Page, "created_at DESC, id DESC",
		func(m *models.AuditEntryModel) audit.Entry { return *m.ToDomain() })
}
