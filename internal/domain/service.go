package domain

import (
	"strings"
	"time"
	"unicode"
)

// Service represents an offered photography package.
// Reference data: seeded by migration, read-only at runtime.
type Service struct {
	ID          int64
	Title       string
	Subtitle    *string
	Description string // may contain line breaks

	// Display price string as shown on the site, e.g. "₱ 20,000".
	// The numeric amount is derived from it at booking time.
	Price string

	Image     *string
	CreatedAt time.Time
}

// ParseDisplayPrice extracts the numeric amount from a display price string:
// thousands separators are stripped and the first run of digits is taken.
// Returns 0 when the string contains no digits.
func ParseDisplayPrice(price string) int64 {
	cleaned := strings.ReplaceAll(price, ",", "")

	var amount int64
	found := false
	for _, r := range cleaned {
		if unicode.IsDigit(r) {
			found = true
			amount = amount*10 + int64(r-'0')
			continue
		}
		if found {
			break
		}
	}

	if !found {
		return 0
	}
	return amount
}

// FindServiceByTitle resolves a service by exact title match.
// Returns nil when no service matches.
func FindServiceByTitle(services []*Service, title string) *Service {
	for _, s := range services {
		if s.Title == title {
			return s
		}
	}
	return nil
}
