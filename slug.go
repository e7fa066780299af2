package uwdocs

import (
	"strconv"
	"strings"
)

// Slug derives the file and URL name for a display name: lowercase, spaces
// become hyphens, and anything outside [A-Za-z0-9-] is dropped.
// Slug is idempotent: Slug(Slug(s)) == Slug(s).
func Slug(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ':
			sb.WriteByte('-')
		case r == '-', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SlugSet hands out unique slugs within one namespace (cards, locations or
// factions). The first name to claim a slug keeps it; later names whose slug
// collides get a numeric suffix (-1, -2, ...).
type SlugSet struct {
	fallback string
	taken    map[string]bool
	counts   map[string]int
}

// NewSlugSet returns an empty SlugSet. Names that slugify to the empty string
// use fallback as their base.
func NewSlugSet(fallback string) *SlugSet {
	return &SlugSet{
		fallback: fallback,
		taken:    make(map[string]bool),
		counts:   make(map[string]int),
	}
}

// Claim reserves and returns a unique slug for name.
func (s *SlugSet) Claim(name string) string {
	base := Slug(name)
	if base == "" {
		base = s.fallback
	}

	slug := base
	for s.taken[slug] {
		s.counts[base]++
		slug = base + "-" + strconv.Itoa(s.counts[base])
	}
	s.taken[slug] = true
	return slug
}
