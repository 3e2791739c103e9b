package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindQuery(t *testing.T, rawQuery string, obj any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c.ShouldBindQuery(obj)
}

func TestCustomerQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var q CustomerQuery
		require.NoError(t, bindQuery(t, "", &q))
		f := q.ToFilter()
		assert.Equal(t, shared.Page{Number: 1, Size: shared.DefaultPageSize}, f.Page)
		assert.Equal(t, shared.Sort{Field: "", Direction: shared.SortDesc}, f.Sort)
	})

	t.Run("whitelisted sort", func(t *testing.T) {
		var q CustomerQuery
		require.NoError(t, bindQuery(t, "sort=balance&order=asc&page=2&page_size=5&search=+acme+", &q))
		f := q.ToFilter()
		assert.Equal(t, "acme", f.Search)
		assert.Equal(t, shared.Sort{Field: "balance", Direction: shared.SortAsc}, f.Sort)
		assert.Equal(t, 5, f.Page.Offset())
	})

	t.Run("last allowed page", func(t *testing.T) {
		var q CustomerQuery
		require.NoError(t, bindQuery(t, "page=100000&page_size=100", &q))
		f := q.ToFilter()
		assert.Equal(t, shared.MaxPageNumber, f.Page.Number)
		assert.Equal(t, 9999900, f.Page.Offset())
	})

	t.Run("rejects", func(t *testing.T) {
		for _, raw := range []string{
			"sort=balance%20DESC",
			"order=sideways",
			"status=deleted",
			"page=0",
			"page=100001",
			"page=9223372036854775807",
			"page_size=101",
		} {
			var q CustomerQuery
			assert.Error(t, bindQuery(t, raw, &q), raw)
		}
	})
}

func TestOrderQuery_ToFilter(t *testing.T) {
	var q OrderQuery
	require.NoError(t, bindQuery(t,
		"status=paid&customer_id=7f1c1a52-4c5e-4a1e-9d0e-3c1b2f1e8a10&placed_from=2024-01-01&placed_to=2024-02-01T12:00:00Z", &q))

	f, err := q.ToFilter()
	require.NoError(t, err)
	require.NotNil(t, f.CustomerID)
	assert.Equal(t, "7f1c1a52-4c5e-4a1e-9d0e-3c1b2f1e8a10", f.CustomerID.String())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.PlacedFrom)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), *f.PlacedTo)

	bad := OrderQuery{PlacedFrom: "yesterday"}
	_, err = bad.ToFilter()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.KindValidation, domainErr.Kind)

	var malformed OrderQuery
	assert.Error(t, bindQuery(t, "customer_id=not-a-uuid", &malformed))
}

func TestPayrollRunQuery_Period(t *testing.T) {
	var ok PayrollRunQuery
	require.NoError(t, bindQuery(t, "period=2024-03", &ok))
	assert.Equal(t, "2024-03", ok.ToFilter().Period)

	var bad PayrollRunQuery
	assert.Error(t, bindQuery(t, "period=March", &bad))
}

func TestFileQuery_StorageKey(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"key=payslips/2024-03/e1.pdf", false},
		{"key=products/sku-1.png", false},
		{"", true},
		{"key=../etc/passwd", true},
		{"key=%2Fpayslips%2Fa.pdf", true},
		{"key=secrets/a.pdf", true},
		{"key=documents/a%0Ab.pdf", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var q FileQuery
			err := bindQuery(t, tt.raw, &q)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdjustBalanceRequest_ParsedAmount(t *testing.T) {
	amount, err := AdjustBalanceRequest{Amount: " -12.3400 "}.ParsedAmount()
	require.NoError(t, err)
	assert.Equal(t, "-12.34", amount.String())

	_, err = AdjustBalanceRequest{Amount: "12,34"}.ParsedAmount()
	assert.Error(t, err)
}
