package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string           `json:"name"           validate:"required,max=200"`
	AffiliateLink string           `json:"affiliate_link" validate:"required"`
	SectionID     uint             `json:"section_id"     validate:"required"`
	Price         *decimal.Decimal `json:"price"`
	// Discount arrives as free text; non-numeric input coerces to 0.
	Discount string `json:"discount"`
	ImageURL string `json:"image_url"`
}

// UpdateProductRequest supports two mutually exclusive modes: when Regenerate
// is set, every content field is replaced by a fresh synthesis call and any
// manually supplied content values are ignored; otherwise each content field
// is applied only when a non-empty replacement was given.
type UpdateProductRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,max=200"`
	AffiliateLink *string          `json:"affiliate_link"`
	Price         *decimal.Decimal `json:"price"`
	Discount      *string          `json:"discount"`
	ImageURL      *string          `json:"image_url"`

	ShortDescription *string  `json:"short_description"`
	FullReview       *string  `json:"full_review"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	SEOTitle         *string  `json:"seo_title"`
	MetaDescription  *string  `json:"meta_description"`

	Regenerate bool `json:"regenerate"`
}

// QuickUpdateRequest updates a single field from an enumerated allow-list.
type QuickUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID               uint             `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	AffiliateLink    string           `json:"affiliate_link"`
	Price            *decimal.Decimal `json:"price"`
	DiscountPct      float64          `json:"discount_percentage"`
	ImageURL         string           `json:"image_url"`
	ShortDescription string           `json:"short_description"`
	FullReview       string           `json:"full_review"`
	Pros             []string         `json:"pros"`
	Cons             []string         `json:"cons"`
	SEOTitle         string           `json:"seo_title"`
	MetaDescription  string           `json:"meta_description"`
	SectionID        uint             `json:"section_id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// HomeResponse backs the storefront homepage: every section plus the six most
// recently added products.
type HomeResponse struct {
	Sections []SectionResponse `json:"sections"`
	Featured []ProductResponse `json:"featured_products"`
}

type SearchResponse struct {
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}

// AdminOverviewResponse backs the admin panel: all sections and all products,
// newest first.
type AdminOverviewResponse struct {
	Sections []SectionResponse `json:"sections"`
	Products []ProductResponse `json:"products"`
}
