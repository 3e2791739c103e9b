package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	staffapp "github.com/shopadmin/backend/internal/application/staff"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"github.com/shopadmin/backend/internal/interfaces/http/serializer"
)

// EmployeeHandler handles employee reads. Compensation fields are removed
// for sessions without employees:read_compensation.
type EmployeeHandler struct {
	BaseHandler
	employeeService *staffapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *staffapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List serves GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var q dto.EmployeeQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.employeeService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result, redactFor(session))
}

// GetByID serves GET /employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, employee, redactFor(session))
}

func redactFor(session *auth.Session) serializer.Option {
	return serializer.Omit(auth.EmployeeScope(session).HiddenFields...)
}
