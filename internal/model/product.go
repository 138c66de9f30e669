package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry pointing at an affiliate target. The content
// fields (short description, review, pros/cons, SEO) are synthesized by the
// content service at creation time and may later be edited or regenerated.
type Product struct {
	ID            uint             `gorm:"primaryKey"`
	Name          string           `gorm:"size:200;index;not null"`
	Slug          string           `gorm:"size:200;uniqueIndex;not null"`
	AffiliateLink string           `gorm:"type:text;not null"`
	Price         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	DiscountPct   float64          `gorm:"not null;default:0"`
	ImageURL      string           `gorm:"type:text"`

	// Synthesized content bundle. Pros and Cons are stored as JSON arrays;
	// decoding a malformed value yields an empty list rather than an error.
	ShortDescription string `gorm:"type:text"`
	FullReview       string `gorm:"type:text"`
	Pros             string `gorm:"type:text"`
	Cons             string `gorm:"type:text"`
	SEOTitle         string `gorm:"size:200"`
	MetaDescription  string `gorm:"type:text"`

	SectionID uint    `gorm:"index;not null"`
	Section   Section `gorm:"foreignKey:SectionID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
