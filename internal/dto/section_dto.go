package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSectionRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SectionResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SectionDetailResponse is the per-section listing: the section plus its
// products, newest first.
type SectionDetailResponse struct {
	Section  SectionResponse   `json:"section"`
	Products []ProductResponse `json:"products"`
}
