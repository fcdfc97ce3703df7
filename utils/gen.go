package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lowercases and dash-joins a name for URL use.
func Slugify(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			switch {
			case unicode.IsLetter(r) || unicode.IsDigit(r):
				b.WriteRune(r)
			case r == ' ' || r == '-' || r == '_' || r == '/':
				b.WriteRune('-')
			}
		}
		b.WriteRune('-')
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}

// NewSKU returns a farm stock keeping unit like FARM-3F2A9C01.
func NewSKU() string {
	return "FARM-" + strings.ToUpper(uuid.NewString()[:8])
}

// NewOrderNumber returns an order number like AG20250817A1B2C3.
// The random suffix comes from a v4 UUID; uniqueness is still enforced by
// the orders table index, with one regeneration on collision.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("AG%s%s", now.Format("20060102"), suffix)
}

// NewCartToken identifies a guest cart session.
func NewCartToken() string {
	return uuid.NewString()
}
