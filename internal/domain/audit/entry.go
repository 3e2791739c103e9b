// Package audit records who changed what on back-office data and why.
package audit

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Actions recorded by the admin API
const (
	ActionBalanceAdjusted       = "customer.balance_adjusted"
	ActionPaymentMethodsChanged = "customer.payment_methods_changed"
)

// Entity types that carry audit history
const (
	EntityCustomer = "customer"
)

// MaxReasonLength bounds the free-text justification of an entry
const MaxReasonLength = 500

// Entry is an append-only record of a change made through the admin API
type Entry struct {
	shared.BaseEntity
	ActorID     string          `json:"actor_id"`
	ActorRole   string          `json:"actor_role"`
	Action      string          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    uuid.UUID       `json:"entity_id"`
	BeforeState json.RawMessage `json:"before_state"`
	AfterState  json.RawMessage `json:"after_state"`
	Reason      string          `json:"reason"`
}

// Actor identifies who made a change
type Actor struct {
	ID   string
	Role string
}

// NewEntry creates an audit entry, snapshotting before and after as JSON
func NewEntry(actor Actor, action, entityType string, entityID uuid.UUID, before, after any, reason string) (*Entry, error) {
	if actor.ID == "" {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Audit actor is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewValidationError("Reason is required")
	}
	if len(reason) > MaxReasonLength {
		return nil, shared.NewValidationError("Reason cannot exceed 500 characters")
	}

	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}

	return &Entry{
		BaseEntity:  shared.NewBaseEntity(),
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		BeforeState: beforeJSON,
		AfterState:  afterJSON,
		Reason:      reason,
	}, nil
}

// Filter selects audit entries for listing
type Filter struct {
	EntityType string
	EntityID   *uuid.UUID
	ActorID    string
	Page       shared.Page
}

// Repository reads the audit log. Entries are written by the repositories
// that own the audited change, inside the same transaction.
type Repository interface {
	List(ctx context.Context, filter Filter) (shared.ListResult[Entry], error)
}
