package models

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// slugFallback is used when a title normalizes to nothing (e.g. all punctuation).
const slugFallback = "article"

// TokenSource produces the random suffix appended to every slug. It is
// injected so tests can generate deterministic slugs.
type TokenSource func() string

// DefaultTokenSource returns the first 8 characters of a random UUID.
func DefaultTokenSource() string {
	return uuid.NewString()[:8]
}

// Slugify normalizes a title into a URL-safe base: Unicode-decomposed,
// diacritics stripped, lowercased, limited to [a-z0-9-] with single hyphens
// between words and no leading or trailing hyphen. Returns "" when nothing
// survives normalization.
func Slugify(title string) string {
	decomposed := norm.NFD.String(title)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	return strings.Join(words, "-")
}

// NewSlug derives the final slug for a title: the normalized base plus a
// random suffix. Collisions are left to the negligible odds of the token
// source, with the database unique index as the final arbiter.
func NewSlug(title string, token TokenSource) string {
	base := Slugify(title)
	if base == "" {
		base = slugFallback
	}
	return base + "-" + token()
}
