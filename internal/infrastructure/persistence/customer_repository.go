package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements sales.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateFindError(err, "Customer")
	}
	return model.ToDomain(), nil
}

// List returns one page of customers matching the filter
func (r *GormCustomerRepository) List(ctx context.Context, filter sales.CustomerFilter) (shared.ListResult[sales.Customer], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.CustomerModel{}).Scopes(customerFilterScope(filter))
	}
	return findPage(query, filter.Page, orderClause(filter.Sort, CustomerSortFields, "created_at"),
		func(m *models.CustomerModel) sales.Customer { return *m.ToDomain() })
}

func customerFilterScope(filter sales.CustomerFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			p := containsPattern(filter.Search)
			db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(code) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, p, p, p)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}
}

// Mutate locks the customer row with SELECT ... FOR UPDATE, applies fn, and
// persists the new state together with the audit entry in one transaction.
// Any error from fn or record rolls everything back.
func (r *GormCustomerRepository) Mutate(ctx context.Context, id uuid.UUID, fn sales.CustomerMutation, record sales.AuditRecorder) (*sales.Customer, error) {
	var result *sales.Customer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.CustomerModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, "id = ?", id).Error; err != nil {
			return translateFindError(err, "Customer")
		}

		before := *model.ToDomain()
		after := model.ToDomain()
		if err := fn(after); err != nil {
			return err
		}

		entry, err := record(before, *after)
		if err != nil {
			return err
		}
		if entry == nil {
			return errors.New("audited customer change produced no audit entry")
		}

		updated := models.CustomerModelFromDomain(after)
		if err := tx.Model(updated).
			Select("balance", "allow_cash_on_delivery", "allow_store_credit", "status", "updated_at").
			Updates(updated).Error; err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		if err := tx.Create(models.AuditEntryModelFromDomain(entry)).Error; err != nil {
			return fmt.Errorf("failed to write audit entry: %w", err)
		}

		result = updated.ToDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
