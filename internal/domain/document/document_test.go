package document

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "receipt", key: "receipts/2024/03/r-1.pdf"},
		{name: "product image", key: "products/sku-1/front.jpg"},
		{name: "empty", key: "", wantErr: true},
		{name: "prefix only", key: "receipts/", wantErr: true},
		{name: "leading slash", key: "/receipts/a.pdf", wantErr: true},
		{name: "traversal", key: "receipts/../secrets/key", wantErr: true},
		{name: "control char", key: "receipts/a\x00.pdf", wantErr: true},
		{name: "invalid utf8", key: "products/\xff\xfe.png", wantErr: true},
		{name: "truncated utf8 sequence", key: "documents/caf\xc3", wantErr: true},
		{name: "multibyte utf8", key: "documents/café-menü.pdf", wantErr: false},
		{name: "unknown prefix", key: "backups/db.sql", wantErr: true},
		{name: "too long", key: "documents/" + strings.Repeat("a", MaxKeyLength), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocument_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	doc := &Document{OwnerEmployeeID: &owner}

	assert.True(t, doc.IsOwnedBy(owner))
	assert.False(t, doc.IsOwnedBy(uuid.New()))
	assert.False(t, (&Document{}).IsOwnedBy(owner))
}
