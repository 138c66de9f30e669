package handler

import (
	"net/http"
	"strings"

	"github.com/Chinmaytikole/DiscoverCart/internal/apierror"
	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated storefront read surface.
type PublicHandler struct {
	sections service.SectionService
	products service.ProductService
}

func NewPublicHandler(sections service.SectionService, products service.ProductService) *PublicHandler {
	return &PublicHandler{sections: sections, products: products}
}

// Home GET / — all sections plus the six most recent products.
func (h *PublicHandler) Home(c *gin.Context) {
	sections, err := h.sections.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	featured, err := h.products.Recent(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HomeResponse{Sections: sections, Featured: featured})
}

// Section GET /section/:slug — the section and its products, newest first.
func (h *PublicHandler) Section(c *gin.Context) {
	resp, err := h.sections.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Product GET /product/:slug — full product detail with decoded pros/cons.
func (h *PublicHandler) Product(c *gin.Context) {
	resp, err := h.products.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search GET /search?q= — case-insensitive substring search. A blank query is
// "no search": rejected here rather than passed down.
func (h *PublicHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Search query is required"))
		return
	}
	products, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Query: query, Count: len(products), Products: products})
}
