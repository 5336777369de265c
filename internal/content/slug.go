// Package content holds the pure computations behind the read models:
// slug derivation, reading-time estimates, cover placeholders and the
// trending ranking.
package content

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lowercase,
// non-alphanumeric runs collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
