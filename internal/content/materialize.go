package content

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoshuaShepherd/rethink-content/internal/ebook"
	"github.com/JoshuaShepherd/rethink-content/internal/logger"
)

const (
	// primaryBase is the canonical filename for the first unit written
	// for a slug; alternateBase marks a later edition of the same topic.
	primaryBase   = "overview"
	alternateBase = "ebook"

	unitExt = ".md"

	// wholeDocumentSlug holds the single fallback section when the
	// splitter found no headings at all.
	wholeDocumentSlug = "rethink-ebook"
)

// MaterializeResult reports what a materializer run did, for display.
type MaterializeResult struct {
	Written []string
	Skipped []string
}

// Materialize persists each section as a content unit under root,
// one directory per slug. Previously materialized primaries are never
// overwritten: an existing target is skipped with a warning, so
// repeated or interrupted runs are idempotent.
func Materialize(root string, sections []ebook.Section) (MaterializeResult, error) {
	var res MaterializeResult

	if err := os.MkdirAll(root, 0o755); err != nil {
		return res, fmt.Errorf("creating content root: %w", err)
	}

	if len(sections) == 1 {
		return materializeWholeDocument(root, sections[0])
	}

	// Collision counts are per-run state, passed through rather than
	// kept at package level.
	counts := make(map[string]int)

	for _, sec := range sections {
		slug := Slugify(StripPrincipleLabel(sec.Title))
		if slug == "" {
			if sec.Order > 0 {
				slug = fmt.Sprintf("principle-%d", sec.Order)
			} else {
				slug = "principle-x"
			}
		}

		dir := filepath.Join(root, slug)
		count := counts[slug]
		counts[slug]++

		if count == 0 {
			if _, err := os.Stat(dir); err == nil {
				logger.Warn("directory exists, skipping: %s", dir)
				res.Skipped = append(res.Skipped, dir)
				continue
			}
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("creating %s: %w", dir, err)
		}

		base := primaryBase
		if fileExists(filepath.Join(dir, primaryBase+unitExt)) {
			base = alternateBase
		}

		name := base + unitExt
		if count > 0 {
			name = fmt.Sprintf("%s-%d%s", base, count+1, unitExt)
		}

		path := filepath.Join(dir, name)
		if err := writeUnit(path, sec); err != nil {
			return res, err
		}
		res.Written = append(res.Written, path)
	}

	return res, nil
}

// materializeWholeDocument handles the single-section fallback: the
// whole document lands in one fixed directory instead of a derived slug.
func materializeWholeDocument(root string, sec ebook.Section) (MaterializeResult, error) {
	var res MaterializeResult

	dir := filepath.Join(root, wholeDocumentSlug)
	if _, err := os.Stat(dir); err == nil {
		logger.Warn("directory exists, skipping: %s", dir)
		res.Skipped = append(res.Skipped, dir)
		return res, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, primaryBase+unitExt)
	if err := writeUnit(path, sec); err != nil {
		return res, err
	}
	res.Written = append(res.Written, path)
	return res, nil
}

func writeUnit(path string, sec ebook.Section) error {
	fm := Frontmatter{Title: sec.Title}
	if sec.Order > 0 {
		order := sec.Order
		fm.Order = &order
	}

	if err := os.WriteFile(path, []byte(EncodeUnit(fm, sec.Body)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote %s", path)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
