package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/document"
)

// DocumentModel is the persistence model for the documents table
type DocumentModel struct {
	BaseModel
	StorageKey      string     `gorm:"type:varchar(512);not null;uniqueIndex"`
	Category        string     `gorm:"type:varchar(30);not null"`
	ContentType     string     `gorm:"type:varchar(100)"`
	OwnerEmployeeID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the persistence model to a domain Document
func (m *DocumentModel) ToDomain() *document.Document {
	return &document.Document{
		BaseEntity:      m.BaseModel.ToDomain(),
		StorageKey:      m.StorageKey,
		Category:        document.Category(m.Category),
		ContentType:     m.ContentType,
		OwnerEmployeeID: m.OwnerEmployeeID,
	}
}

// DocumentModelFromDomain creates a persistence model from a domain Document
func DocumentModelFromDomain(d *document.Document) *DocumentModel {
	m := &DocumentModel{
		StorageKey:      d.StorageKey,
		Category:        string(d.Category),
		ContentType:     d.ContentType,
		OwnerEmployeeID: d.OwnerEmployeeID,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// AuditEntryModel is the persistence model for the audit_entries table.
// Snapshots are stored as JSON text in jsonb columns.
type AuditEntryModel struct {
	BaseModel
	ActorID     string    `gorm:"type:varchar(100);not null;index"`
	ActorRole   string    `gorm:"type:varchar(30);not null"`
	Action      string    `gorm:"type:varchar(100);not null"`
	EntityType  string    `gorm:"type:varchar(50);not null;index:idx_audit_entity"`
	EntityID    uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_entity"`
	BeforeState string    `gorm:"type:jsonb"`
	AfterState  string    `gorm:"type:jsonb"`
	Reason      string    `gorm:"type:varchar(500);not null"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts the persistence model to a domain audit Entry
func (m *AuditEntryModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		BaseEntity:  m.BaseModel.ToDomain(),
		ActorID:     m.ActorID,
		ActorRole:   m.ActorRole,
		Action:      m.Action,
		EntityType:  m.EntityType,
		EntityID:    m.EntityID,
		BeforeState: rawJSON(m.BeforeState),
		AfterState:  rawJSON(m.AfterState),
		Reason:      m.Reason,
	}
}

// AuditEntryModelFromDomain creates a persistence model from a domain audit Entry
func AuditEntryModelFromDomain(e *audit.Entry) *AuditEntryModel {
	m := &AuditEntryModel{
		ActorID:     e.ActorID,
		ActorRole:   e.ActorRole,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		BeforeState: string(e.BeforeState),
		AfterState:  string(e.AfterState),
		Reason:      e.Reason,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

func rawJSON(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(s)
}
