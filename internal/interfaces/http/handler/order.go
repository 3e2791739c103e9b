package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	salesapp "github.com/shopadmin/backend/internal/application/sales"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order reads and order totals
type OrderHandler struct {
	BaseHandler
	orderService *salesapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *salesapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List serves GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	var q dto.OrderQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}

// GetByID serves GET /orders/:id; the order includes its items
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, order)
}

// Total serves GET /orders/total over the same filter as List
func (h *OrderHandler) Total(c *gin.Context) {
	var q dto.OrderQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	totals, err := h.orderService.Totals(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, totals)
}
