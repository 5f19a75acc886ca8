package content

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshuaShepherd/rethink-content/internal/logger"
)

// Lesson is an individual lesson unit living alongside a principle's
// primary content, in files named lesson-<n>.md.
type Lesson struct {
	Slug          string
	PrincipleSlug string
	Title         string
	Order         int
	Body          string
	KeyTakeaways  []string
}

var lessonNumber = regexp.MustCompile(`lesson-(\d+)`)

// LoadLessons reads the lesson files for a principle, sorted by order.
// The order comes from frontmatter when present, else from the number
// in the filename.
func (s *Store) LoadLessons(principleSlug string) []Lesson {
	dir := filepath.Join(s.Root, principleSlug)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var lessons []Lesson
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "lesson-") || !strings.HasSuffix(name, unitExt) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping lesson %s: %v", name, err)
			continue
		}

		fm, body, err := ParseUnit(string(raw))
		if err != nil {
			logger.Warn("skipping lesson %s: %v", name, err)
			continue
		}

		slug := strings.TrimSuffix(name, unitExt)
		title := fm.Title
		if title == "" {
			title = TitleFromSlug(slug)
		}

		order := extractLessonNumber(name)
		if fm.Order != nil {
			order = *fm.Order
		}

		lessons = append(lessons, Lesson{
			Slug:          slug,
			PrincipleSlug: principleSlug,
			Title:         title,
			Order:         order,
			Body:          body,
			KeyTakeaways:  deriveTakeaways(body),
		})
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Order < lessons[j].Order
	})
	return lessons
}

func extractLessonNumber(filename string) int {
	m := lessonNumber.FindStringSubmatch(filename)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}
