package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	financeapp "github.com/shopadmin/backend/internal/application/finance"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// InvestmentHandler handles investment holding reads and portfolio totals
type InvestmentHandler struct {
	BaseHandler
	investmentService *financeapp.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *financeapp.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// List serves GET /investments
func (h *InvestmentHandler) List(c *gin.Context) {
	var q dto.InvestmentQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.investmentService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}

// GetByID serves GET /investments/:id
func (h *InvestmentHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	investment, err := h.investmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, investment)
}

// Total serves GET /investments/total
func (h *InvestmentHandler) Total(c *gin.Context) {
	var q dto.InvestmentQuery
	if !h.BindQuery(c, &q) {
		return
	}

	totals, err := h.investmentService.Totals(c.Request.Context(), q.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, totals)
}
