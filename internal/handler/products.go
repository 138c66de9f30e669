package handler

import (
	"net/http"

	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductsHandler serves the admin product endpoints.
type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create POST /admin/products — persists the product with a freshly
// synthesized content bundle.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /admin/products/:id — partial update, or full content
// regeneration when the regenerate flag is set.
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuickUpdate PATCH /admin/products/:id/field — single-field update from the
// enumerated allow-list.
func (h *ProductsHandler) QuickUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.QuickUpdateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.QuickUpdate(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /admin/products/:id
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
