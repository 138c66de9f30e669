// Package content synthesizes product and section marketing copy through a
// generative text service, with deterministic template fallbacks so callers
// always receive usable content.
package content

import "encoding/json"

// Bundle is the structured content attached to a product.
type Bundle struct {
	ShortDescription string   `json:"short_description"`
	FullReview       string   `json:"full_review"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	SEOTitle         string   `json:"seo_title"`
	MetaDescription  string   `json:"meta_description"`
}

// EncodeList serializes an ordered pros/cons list for storage.
func EncodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeList parses a stored pros/cons list. Malformed input decodes to an
// empty list — stored garbage is recoverable-to-empty, never an error.
func DecodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
