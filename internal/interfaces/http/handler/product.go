package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	salesapp "github.com/shopadmin/backend/internal/application/sales"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product catalog reads
type ProductHandler struct {
	BaseHandler
	productService *salesapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *salesapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List serves GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var q dto.ProductQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.productService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendList(&h.BaseHandler, c, result)
}

// GetByID serves GET /products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Record(c, http.StatusOK, product)
}
