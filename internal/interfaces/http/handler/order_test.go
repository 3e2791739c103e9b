package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	salesapp "github.com/shopadmin/backend/internal/application/sales"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderRouter() (http.Handler, *MockOrderRepository) {
	orders := new(MockOrderRepository)
	h := NewOrderHandler(salesapp.NewOrderService(orders))

	r := newTestRouter(sessionFor(auth.RoleManager))
	r.GET("/orders", h.List)
	r.GET("/orders/total", h.Total)
	r.GET("/orders/:id", h.GetByID)
	return r, orders
}

func TestOrderHandler_Total(t *testing.T) {
	r, orders := setupOrderRouter()
	orders.On("Totals", mock.Anything, mock.MatchedBy(func(f sales.OrderFilter) bool {
		return f.Status == sales.OrderStatusPaid && f.PlacedFrom != nil && f.PlacedFrom.Day() == 1
	})).Return(&sales.OrderTotals{
		Count:    3,
		Subtotal: decimal.RequireFromString("9999999999999999.99"),
		Discount: decimal.Zero,
		Tax:      decimal.RequireFromString("0.01"),
		Total:    decimal.RequireFromString("10000000000000000"),
	}, nil)

	w := perform(r, http.MethodGet, "/orders/total?status=paid&placed_from=2026-03-01", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"count": "3",
		"subtotal": "9999999999999999.99",
		"discount": "0",
		"tax": "0.01",
		"total": "10000000000000000"
	}`, w.Body.String())
}

func TestOrderHandler_List(t *testing.T) {
	t.Run("bad date is rejected before the repository", func(t *testing.T) {
		r, orders := setupOrderRouter()

		w := perform(r, http.MethodGet, "/orders?placed_from=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("inverted range", func(t *testing.T) {
		r, orders := setupOrderRouter()

		w := perform(r, http.MethodGet, "/orders?placed_from=2026-03-02&placed_to=2026-03-01", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		r, orders := setupOrderRouter()

		w := perform(r, http.MethodGet, "/orders?payment_method=bitcoin", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	r, orders := setupOrderRouter()
	order := &sales.Order{
		BaseEntity: shared.NewBaseEntity(),
		Number:     "SO-1",
		Status:     sales.OrderStatusShipped,
		Total:      decimal.RequireFromString("12.5"),
		Items: []sales.OrderItem{{
			ID:          uuid.New(),
			ProductName: "Widget",
			Quantity:    9007199254740993,
			UnitPrice:   decimal.RequireFromString("0.5"),
		}},
	}
	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	w := perform(r, http.MethodGet, "/orders/"+order.ID.String(), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"12.5"`)
	assert.Contains(t, w.Body.String(), `"quantity":"9007199254740993"`)
}
