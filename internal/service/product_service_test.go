package service_test

import (
	"context"
	"testing"

	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSection(t *testing.T, sections service.SectionService, name string) dto.SectionResponse {
	t.Helper()
	sec, err := sections.Create(context.Background(), dto.CreateSectionRequest{Name: name})
	require.NoError(t, err)
	return sec
}

func TestCreateProductSlugDerivation(t *testing.T) {
	sections, products, _, _ := newCatalog()
	ctx := context.Background()
	sec := seedSection(t, sections, "Electronics")

	first, err := products.Create(ctx, dto.CreateProductRequest{
		Name:          "Wireless Mouse X2!!",
		AffiliateLink: "https://example.com/aff/1",
		SectionID:     sec.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "wireless-mouse-x2", first.Slug)

	second, err := products.Create(ctx, dto.CreateProductRequest{
		Name:          "Wireless Mouse X2!!",
		AffiliateLink: "https://example.com/aff/2",
		SectionID:     sec.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "wireless-mouse-x2-1", second.Slug)
}

func TestCreateProductContentBundle(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")

	resp, err := products.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Wireless Mouse X2",
		AffiliateLink: "https://example.com/aff/1",
		SectionID:     sec.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ShortDescription)
	assert.Contains(t, resp.FullReview, "https://example.com/aff/1")
	assert.Len(t, resp.Pros, 4)
	assert.Len(t, resp.Cons, 2)
	assert.NotEmpty(t, resp.SEOTitle)
	assert.NotEmpty(t, resp.MetaDescription)
}

func TestCreateProductMissingFields(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	var verr *service.ValidationError
	_, err := products.Create(ctx, dto.CreateProductRequest{AffiliateLink: "https://x", SectionID: sec.ID})
	assert.ErrorAs(t, err, &verr)

	_, err = products.Create(ctx, dto.CreateProductRequest{Name: "Thing", SectionID: sec.ID})
	assert.ErrorAs(t, err, &verr)

	// section must exist at assignment time
	_, err = products.Create(ctx, dto.CreateProductRequest{Name: "Thing", AffiliateLink: "https://x", SectionID: 999})
	assert.ErrorAs(t, err, &verr)
}

func TestCreateProductDiscountCoercion(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	cases := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"not-a-number", 0},
		{"15", 15},
		{"12.5", 12.5},
	}
	for _, tc := range cases {
		resp, err := products.Create(ctx, dto.CreateProductRequest{
			Name:          "Gadget " + tc.raw,
			AffiliateLink: "https://example.com/a",
			SectionID:     sec.ID,
			Discount:      tc.raw,
		})
		require.NoError(t, err, "discount %q", tc.raw)
		assert.Equal(t, tc.want, resp.DiscountPct, "discount %q", tc.raw)
	}

	// parsed but out of range is a rejection, not a coercion
	var verr *service.ValidationError
	_, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Overdiscounted", AffiliateLink: "https://example.com/a", SectionID: sec.ID, Discount: "250",
	})
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateProductPartial(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Wireless Mouse X2", AffiliateLink: "https://example.com/a", SectionID: sec.ID,
	})
	require.NoError(t, err)

	short := "Hand-written summary."
	empty := ""
	updated, err := products.Update(ctx, created.ID, dto.UpdateProductRequest{
		ShortDescription: &short,
		SEOTitle:         &empty, // empty replacement is ignored, prior value kept
	})
	require.NoError(t, err)

	assert.Equal(t, short, updated.ShortDescription)
	assert.Equal(t, created.SEOTitle, updated.SEOTitle)
	assert.Equal(t, created.FullReview, updated.FullReview)
	assert.Equal(t, created.Slug, updated.Slug, "slug unchanged when name unchanged")
}

func TestUpdateProductRegenerateIgnoresManualContent(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Wireless Mouse X2", AffiliateLink: "https://example.com/a", SectionID: sec.ID,
	})
	require.NoError(t, err)

	manual := "This manual text must be ignored."
	updated, err := products.Update(ctx, created.ID, dto.UpdateProductRequest{
		Regenerate:       true,
		ShortDescription: &manual,
	})
	require.NoError(t, err)

	assert.NotEqual(t, manual, updated.ShortDescription)
	assert.Contains(t, updated.FullReview, "https://example.com/a")
}

func TestUpdateProductNameRederivesSlug(t *testing.T) {
	sections, products, _, productRepo := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Wireless Mouse X2", AffiliateLink: "https://example.com/a", SectionID: sec.ID,
	})
	require.NoError(t, err)

	name := "Ergo Keyboard K9"
	updated, err := products.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "ergo-keyboard-k9", updated.Slug)

	// re-submitting the same name keeps the slug (own record excluded)
	again, err := products.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "ergo-keyboard-k9", again.Slug)
	assert.Equal(t, "ergo-keyboard-k9", productRepo.products[created.ID].Slug)
}

func TestUpdateProductRollbackOnError(t *testing.T) {
	sections, products, _, productRepo := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Wireless Mouse X2", AffiliateLink: "https://example.com/a", SectionID: sec.ID,
	})
	require.NoError(t, err)

	// a mid-update validation failure must leave the record untouched
	name := "Renamed Mouse"
	bad := "250"
	_, err = products.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &name, Discount: &bad})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)

	stored := productRepo.products[created.ID]
	assert.Equal(t, "Wireless Mouse X2", stored.Name)
	assert.Equal(t, "wireless-mouse-x2", stored.Slug)
	assert.Equal(t, float64(0), stored.DiscountPct)
}

func TestUpdateProductNotFound(t *testing.T) {
	_, products, _, _ := newCatalog()
	_, err := products.Update(context.Background(), 404, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestQuickUpdateAllowList(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Wireless Mouse X2", AffiliateLink: "https://example.com/a", SectionID: sec.ID,
	})
	require.NoError(t, err)

	resp, err := products.QuickUpdate(ctx, created.ID, dto.QuickUpdateRequest{Field: "price", Value: "49.90"})
	require.NoError(t, err)
	require.NotNil(t, resp.Price)
	assert.True(t, resp.Price.Equal(decimal.RequireFromString("49.90")))

	resp, err = products.QuickUpdate(ctx, created.ID, dto.QuickUpdateRequest{Field: "name", Value: "Laser Mouse Z1"})
	require.NoError(t, err)
	assert.Equal(t, "laser-mouse-z1", resp.Slug)

	resp, err = products.QuickUpdate(ctx, created.ID, dto.QuickUpdateRequest{Field: "discount_percentage", Value: "oops"})
	require.NoError(t, err)
	assert.Equal(t, float64(0), resp.DiscountPct)

	_, err = products.QuickUpdate(ctx, created.ID, dto.QuickUpdateRequest{Field: "slug", Value: "hand-picked"})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSearchMatchesAcrossContentFields(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	_, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Wireless Mouse X2", AffiliateLink: "https://example.com/a", SectionID: sec.ID,
	})
	require.NoError(t, err)

	// name match, case-insensitive
	found, err := products.Search(ctx, "wIrElEsS")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// fallback review mentions the section name
	found, err = products.Search(ctx, "Electronics category")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = products.Search(ctx, "no such thing anywhere")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRecentLimitsToSix(t *testing.T) {
	sections, products, _, _ := newCatalog()
	sec := seedSection(t, sections, "Electronics")
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for _, n := range names {
		_, err := products.Create(ctx, dto.CreateProductRequest{
			Name: "Product " + n, AffiliateLink: "https://example.com/a", SectionID: sec.ID,
		})
		require.NoError(t, err)
	}

	recent, err := products.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 6)
	assert.Equal(t, "Product H", recent[0].Name)
}
