package audit

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	actor := Actor{ID: "user-1", Role: "admin"}
	entityID := uuid.New()

	t.Run("snapshots state", func(t *testing.T) {
		entry, err := NewEntry(actor, ActionBalanceAdjusted, EntityCustomer, entityID,
			map[string]string{"balance": "10"}, map[string]string{"balance": "15"}, "  refund  ")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, "refund", entry.Reason)
		assert.JSONEq(t, `{"balance":"10"}`, string(entry.BeforeState))
		assert.JSONEq(t, `{"balance":"15"}`, string(entry.AfterState))
	})

	t.Run("requires reason", func(t *testing.T) {
		_, err := NewEntry(actor, ActionBalanceAdjusted, EntityCustomer, entityID, nil, nil, " ")
		assert.Error(t, err)
	})

	t.Run("bounds reason length", func(t *testing.T) {
		_, err := NewEntry(actor, ActionBalanceAdjusted, EntityCustomer, entityID, nil, nil, strings.Repeat("x", MaxReasonLength+1))
		assert.Error(t, err)
	})

	t.Run("requires actor", func(t *testing.T) {
		_, err := NewEntry(Actor{}, ActionBalanceAdjusted, EntityCustomer, entityID, nil, nil, "refund")
		assert.Error(t, err)
	})
}
