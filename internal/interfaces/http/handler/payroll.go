package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	staffapp "github.com/shopadmin/backend/internal/application/staff"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// PayrollHandler handles payroll run and payslip reads
type PayrollHandler struct {
	BaseHandler
	payrollService *staffapp.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(payrollService *staffapp.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// ListRuns serves GET /payroll/runs
func (h *PayrollHandler) ListRuns(c *gin.Context) {
	var q dto.PayrollRunQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.payrollService.ListRuns(c.Request.Context(), q.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}

// GetRun serves GET /payroll/runs/:id
func (h *PayrollHandler) GetRun(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	run, err := h.payrollService.GetRun(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, run)
}

// ListPayslips serves GET /payroll/payslips. Sessions holding only
// payroll:read_own see their own payslips.
func (h *PayrollHandler) ListPayslips(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var q dto.PayslipQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.payrollService.ListPayslips(c.Request.Context(), session, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}
