package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Chinmaytikole/DiscoverCart/internal/content"
	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// newCatalog wires stub repositories and a fallback-only synthesizer.
func newCatalog() (service.SectionService, service.ProductService, *stubSectionRepo, *stubProductRepo) {
	products := newStubProductRepo()
	sections := newStubSectionRepo(products)
	synth := content.NewSynthesizer(nil)
	return service.NewSectionService(sections, products, synth),
		service.NewProductService(products, sections, synth),
		sections, products
}

func TestCreateSection(t *testing.T) {
	svc, _, _, _ := newCatalog()

	resp, err := svc.Create(context.Background(), dto.CreateSectionRequest{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, "Home & Garden", resp.Name)
	assert.Equal(t, "home-garden", resp.Slug)
	assert.Contains(t, resp.Description, "Home & Garden")
}

func TestCreateSectionBlankNameRejected(t *testing.T) {
	svc, _, _, _ := newCatalog()

	_, err := svc.Create(context.Background(), dto.CreateSectionRequest{Name: "   "})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateSectionDuplicateSlugRejected(t *testing.T) {
	svc, _, _, _ := newCatalog()
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateSectionRequest{Name: "Electronics"})
	require.NoError(t, err)

	// different display name, same slug
	_, err = svc.Create(ctx, dto.CreateSectionRequest{Name: "electronics!!"})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestDeleteSectionWithProductsBlocked(t *testing.T) {
	sections, products, sectionRepo, productRepo := newCatalog()
	ctx := context.Background()

	sec, err := sections.Create(ctx, dto.CreateSectionRequest{Name: "Electronics"})
	require.NoError(t, err)

	prod, err := products.Create(ctx, dto.CreateProductRequest{
		Name:          "Wireless Mouse X2",
		AffiliateLink: "https://example.com/aff/1",
		SectionID:     sec.ID,
	})
	require.NoError(t, err)

	// blocked while the product exists, and nothing is mutated
	err = sections.Delete(ctx, sec.ID)
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Contains(t, sectionRepo.sections, sec.ID)
	assert.Contains(t, productRepo.products, prod.ID)

	// after deleting the product, the section goes too
	require.NoError(t, products.Delete(ctx, prod.ID))
	require.NoError(t, sections.Delete(ctx, sec.ID))
	assert.NotContains(t, sectionRepo.sections, sec.ID)
}

func TestDeleteSectionNotFound(t *testing.T) {
	svc, _, _, _ := newCatalog()
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), service.ErrNotFound)
}

func TestSectionBySlugListsProductsNewestFirst(t *testing.T) {
	sections, products, _, _ := newCatalog()
	ctx := context.Background()

	sec, err := sections.Create(ctx, dto.CreateSectionRequest{Name: "Electronics"})
	require.NoError(t, err)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := products.Create(ctx, dto.CreateProductRequest{
			Name: name, AffiliateLink: "https://example.com/a", SectionID: sec.ID,
		})
		require.NoError(t, err)
	}

	detail, err := sections.BySlug(ctx, "electronics")
	require.NoError(t, err)
	require.Len(t, detail.Products, 3)
	assert.Equal(t, "Gamma", detail.Products[0].Name)
	assert.Equal(t, "Alpha", detail.Products[2].Name)

	_, err = sections.BySlug(ctx, "no-such-section")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
