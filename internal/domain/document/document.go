// Package document is the registry of objects kept in blob storage.
package document

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Category classifies a stored object and decides who may fetch it
type Category string

const (
	CategoryProductImage Category = "product_image"
	CategoryReceipt      Category = "receipt"
	CategoryPayslip      Category = "payslip"
	CategoryStatement    Category = "statement"
	CategoryGeneral      Category = "general"
)

// IsValid reports whether the category is a known value
func (c Category) IsValid() bool {
	switch c {
	case CategoryProductImage, CategoryReceipt, CategoryPayslip, CategoryStatement, CategoryGeneral:
		return true
	}
	return false
}

// MaxKeyLength is the longest storage key accepted
const MaxKeyLength = 512

// KeyPrefixes are the storage key prefixes served through the file endpoint
var KeyPrefixes = []string{"products/", "receipts/", "payslips/", "statements/", "documents/"}

// ErrInvalidKey is returned for storage keys that fail ValidateKey
var ErrInvalidKey = shared.NewValidationError("Invalid storage key")

// ValidateKey checks a caller-supplied storage key before it reaches the
// registry or the URL signer.
func ValidateKey(key string) error {
	if key == "" {
		return shared.NewValidationError("key is required")
	}
	if len(key) > MaxKeyLength || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	// keys are stored in text columns and signed into URLs
	if !utf8.ValidString(key) {
		return ErrInvalidKey
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return ErrInvalidKey
		}
	}
	for _, prefix := range KeyPrefixes {
		if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
			return nil
		}
	}
	return ErrInvalidKey
}

// Document is a registered stored object
type Document struct {
	shared.BaseEntity
	StorageKey      string     `json:"storage_key"`
	Category        Category   `json:"category"`
	ContentType     string     `json:"content_type"`
	OwnerEmployeeID *uuid.UUID `json:"owner_employee_id"`
}

// IsOwnedBy reports whether the document belongs to the given employee
func (d *Document) IsOwnedBy(employeeID uuid.UUID) bool {
	return d.OwnerEmployeeID != nil && *d.OwnerEmployeeID == employeeID
}

// Repository defines the interface for document registry lookups
type Repository interface {
	// FindByKey finds a document by storage key
	FindByKey(ctx context.Context, key string) (*Document, error)
}
