package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	financeapp "github.com/shopadmin/backend/internal/application/finance"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// ExpenseHandler handles expense reads and expense totals
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List serves GET /expenses. Sessions holding only expenses:read_own see
// the expenses they submitted.
func (h *ExpenseHandler) List(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var q dto.ExpenseQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.expenseService.List(c.Request.Context(), session, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}

// Total serves GET /expenses/total
func (h *ExpenseHandler) Total(c *gin.Context) {
	var q dto.ExpenseQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	totals, err := h.expenseService.Totals(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, totals)
}
