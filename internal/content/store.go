package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JoshuaShepherd/rethink-content/internal/logger"
)

// candidateFilenames is the explicit priority list tried when resolving
// the primary unit for a slug: first match wins.
var candidateFilenames = []string{primaryBase + unitExt, alternateBase + unitExt}

// Record is the in-memory, fully-resolved form of a content unit.
// Missing metadata is filled in by heuristics at load time; records are
// never mutated after construction.
type Record struct {
	Slug         string
	Title        string
	Summary      string
	Body         string
	Order        *int
	HasContent   bool
	KeyTakeaways []string
	HasOverview  bool
	HasEbook     bool
}

// Store reads content units from a directory tree, one subdirectory
// per slug. All operations are safe against an absent or empty root:
// they return empty results rather than failing the caller.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// ListSlugs returns every slug directory under the content root,
// sorted lexicographically. An absent root yields an empty list.
func (s *Store) ListSlugs() []string {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil
	}

	var slugs []string
	for _, e := range entries {
		if e.IsDir() {
			slugs = append(slugs, e.Name())
		}
	}
	sort.Strings(slugs)
	return slugs
}

// LoadBySlug resolves and parses the primary content unit for a slug.
// A slug with no unit returns (nil, nil) — absence is not an error.
// A malformed unit returns an error so callers can skip it and move on.
func (s *Store) LoadBySlug(slug string) (*Record, error) {
	dir := filepath.Join(s.Root, slug)
	if _, err := os.Stat(dir); err != nil {
		return nil, nil
	}

	hasOverview := fileExists(filepath.Join(dir, primaryBase+unitExt))
	hasEbook := fileExists(filepath.Join(dir, alternateBase+unitExt))

	var path string
	for _, name := range candidateFilenames {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fm, body, err := ParseUnit(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	title := fm.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}

	summary := fm.Summary
	if summary == "" {
		summary = deriveSummary(body)
	}

	order := fm.Order
	if order == nil {
		order = deriveOrder(title)
	}

	return &Record{
		Slug:         slug,
		Title:        title,
		Summary:      summary,
		Body:         body,
		Order:        order,
		HasContent:   strings.TrimSpace(body) != "",
		KeyTakeaways: deriveTakeaways(body),
		HasOverview:  hasOverview,
		HasEbook:     hasEbook,
	}, nil
}

// LoadAll loads every slug, drops units with empty bodies, and sorts by
// declared order. Records without an order sort after all records with
// one, keeping slug-lexicographic discovery order as the tiebreak.
// Malformed units are skipped with a warning; one bad file never aborts
// the batch.
func (s *Store) LoadAll() []*Record {
	var records []*Record
	for _, slug := range s.ListSlugs() {
		rec, err := s.LoadBySlug(slug)
		if err != nil {
			logger.Warn("skipping %s: %v", slug, err)
			continue
		}
		if rec == nil || !rec.HasContent {
			continue
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Order, records[j].Order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	return records
}
