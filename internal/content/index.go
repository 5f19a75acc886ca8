package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// IndexEntry is one row of the aggregated lookup table consumed by the
// presentation layer.
type IndexEntry struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	HasContent bool   `json:"hasContent"`
}

// Index maps slug to aggregated content. It is regenerated from the
// on-disk units by `rethinkctl build` and must be treated as
// disposable: rebuild it, never hand-edit it.
type Index map[string]IndexEntry

// BuildIndex aggregates every content unit with a non-empty body into
// a lookup table.
func BuildIndex(s *Store) Index {
	ix := make(Index)
	for _, rec := range s.LoadAll() {
		ix[rec.Slug] = IndexEntry{
			Title:      rec.Title,
			Content:    strings.TrimSpace(rec.Body),
			HasContent: true,
		}
	}
	return ix
}

// HasContentForSlug reports whether the index holds content for slug.
func (ix Index) HasContentForSlug(slug string) bool {
	return ix[slug].HasContent
}

// GetContentForSlug returns the content for slug, with ok false when
// the slug is unknown or empty.
func (ix Index) GetContentForSlug(slug string) (string, bool) {
	entry, ok := ix[slug]
	if !ok || !entry.HasContent {
		return "", false
	}
	return entry.Content, true
}

// GetTitleForSlug returns the display title for slug, with ok false
// when the slug is unknown.
func (ix Index) GetTitleForSlug(slug string) (string, bool) {
	entry, ok := ix[slug]
	if !ok {
		return "", false
	}
	return entry.Title, true
}

// WriteIndex serializes the index to path as indented JSON.
func WriteIndex(ix Index, path string) error {
	data, err := json.MarshalIndent(ix, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// ReadIndex loads a previously generated index from path.
func ReadIndex(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var ix Index
	if err := json.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return ix, nil
}
