// Package slug derives URL-safe identifiers from display names and resolves
// collisions against the set of identifiers already in use.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators   = regexp.MustCompile(`[\s-]+`)
)

// Make normalizes text into a slug: lowercase, strip everything that is not
// alphanumeric, whitespace or hyphen, collapse separator runs into a single
// hyphen, and trim leading/trailing hyphens. The result may be empty when the
// input contains no usable characters; Resolve still handles that case.
func Make(text string) string {
	s := invalidChars.ReplaceAllString(strings.ToLower(text), "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExistsFunc reports whether a candidate slug is already taken. Callers that
// are updating an existing record should exclude that record's own slug.
type ExistsFunc func(slug string) (bool, error)

// Resolve returns base unchanged if it is free, otherwise the first free
// numbered variant (base-1, base-2, …). The existence-check domain is finite
// at call time, so the loop terminates.
func Resolve(base string, exists ExistsFunc) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
