package handler

import (
	"net/http"
	"strconv"

	"github.com/Chinmaytikole/DiscoverCart/internal/apierror"
	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/service"

	"github.com/gin-gonic/gin"
)

// SectionsHandler serves the admin section endpoints.
type SectionsHandler struct {
	svc      service.SectionService
	products service.ProductService
}

func NewSectionsHandler(svc service.SectionService, products service.ProductService) *SectionsHandler {
	return &SectionsHandler{svc: svc, products: products}
}

// Overview GET /admin/overview — all sections and all products, newest first.
func (h *SectionsHandler) Overview(c *gin.Context) {
	sections, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	products, err := h.products.All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminOverviewResponse{Sections: sections, Products: products})
}

// Create POST /admin/sections
func (h *SectionsHandler) Create(c *gin.Context) {
	var req dto.CreateSectionRequest
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

// Delete DELETE /admin/sections/:id — refused while the section owns products.
func (h *SectionsHandler) Delete(c *gin.Context) {
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

// parseID reads the :id path parameter; writes a 400 and returns false on bad input.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}
