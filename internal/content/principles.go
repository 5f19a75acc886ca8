package content

import (
	"sort"
	"strconv"
	"strings"
)

// Principle is the presentation-layer view of a content record.
type Principle struct {
	ID         string
	Slug       string
	Title      string
	Summary    string
	EstMinutes int
	BadgeID    string
}

// defaultEstMinutes is the reading-time estimate used when nothing
// better is known about a principle.
const defaultEstMinutes = 45

// defaultBadges maps well-known principle slugs to their badge IDs.
// Slugs not listed here get a badge ID generated from the slug.
var defaultBadges = map[string]string{
	"missionary-nature-of-god":     "badge_missio_dei",
	"the-missionary-nature-of-god": "badge_missio_dei",
	"missio-dei":                   "badge_missio_dei",
	"incarnational-mission":        "badge_incarnation",
	"vocation":                     "badge_vocation",
	"multiplication":               "badge_multiplication",
	"teams":                        "badge_teams",
	"place":                        "badge_place",
	"post-christendom":             "badge_post_christendom",
}

// Principles maps every loadable content record to the presentation
// view model, sorted by declared order with order-less principles last.
// IDs are assigned from discovery (slug-lexicographic) position so they
// stay stable across re-sorts.
func (s *Store) Principles() []Principle {
	type ordered struct {
		p     Principle
		order *int
	}

	var items []ordered
	for i, slug := range s.ListSlugs() {
		rec, err := s.LoadBySlug(slug)
		if err != nil || rec == nil || !rec.HasContent {
			continue
		}

		items = append(items, ordered{
			p: Principle{
				ID:         strconv.Itoa(i + 1),
				Slug:       rec.Slug,
				Title:      rec.Title,
				Summary:    rec.Summary,
				EstMinutes: defaultEstMinutes,
				BadgeID:    badgeFor(rec.Slug),
			},
			order: rec.Order,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].order, items[j].order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	principles := make([]Principle, len(items))
	for i, it := range items {
		principles[i] = it.p
	}
	return principles
}

func badgeFor(slug string) string {
	if badge, ok := defaultBadges[slug]; ok {
		return badge
	}
	return "badge_" + strings.ReplaceAll(slug, "-", "_")
}
