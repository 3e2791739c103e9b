package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	salesapp "github.com/shopadmin/backend/internal/application/sales"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// CustomerHandler handles customer reads, the audited customer writes and
// the audit log
type CustomerHandler struct {
	BaseHandler
	customerService *salesapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *salesapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List serves GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	var q dto.CustomerQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.customerService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}

// GetByID serves GET /customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, customer)
}

// SetPaymentMethods serves PATCH /customers/:id/payment-methods
func (h *CustomerHandler) SetPaymentMethods(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.PaymentMethodsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.SetPaymentMethods(c.Request.Context(), session, id, salesapp.PaymentMethodsInput{
		Change: req.ToChange(),
		Reason: req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, customer)
}

// AdjustBalance serves POST /customers/:id/balance-adjustments
func (h *CustomerHandler) AdjustBalance(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.AdjustBalanceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	amount, err := req.ParsedAmount()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	customer, err := h.customerService.AdjustBalance(c.Request.Context(), session, id, salesapp.AdjustBalanceInput{
		Amount: amount,
		Reason: req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, customer)
}

// ListAudit serves GET /audit
func (h *CustomerHandler) ListAudit(c *gin.Context) {
	var q dto.AuditQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.customerService.ListAudit(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}
