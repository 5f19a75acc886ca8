package content

import (
	"regexp"
	"strconv"
	"strings"
)

// Heuristics for filling in metadata the frontmatter does not carry.
// Each is a pure function over the literal body or title text so the
// behavior stays pinned down by unit tests.

const (
	summaryMinLine  = 20
	summaryMaxLen   = 150
	fallbackSummary = "Explore this principle in depth."
	maxTakeaways    = 4
	excludedHeading = "What This Means"
	minTakeawayLen  = 10
	minHeadingLen   = 5
	maxHeadingLen   = 100
)

var (
	orderInTitle   = regexp.MustCompile(`(?i)(?:principle\s+)?(\d+)(?:\s*:|\s|$)`)
	boldBullet     = regexp.MustCompile(`^(?:[-*]\s*|\d+\.\s*)\*\*(.*?)\*\*`)
	headingMarkers = regexp.MustCompile(`^#+\s*`)
)

// deriveOrder extracts a display order from a "Principle N: ..." style
// title. Nil when the title carries no number; such records sort last.
func deriveOrder(title string) *int {
	m := orderInTitle.FindStringSubmatch(title)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// deriveSummary synthesizes a summary from the first qualifying body
// line: non-heading, non-delimiter, longer than 20 characters. Long
// candidates are truncated to 150 characters plus an ellipsis.
func deriveSummary(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "---") {
			continue
		}
		if len([]rune(trimmed)) <= summaryMinLine {
			continue
		}
		if runes := []rune(trimmed); len(runes) > summaryMaxLen {
			return strings.TrimSpace(string(runes[:summaryMaxLen])) + "..."
		}
		return trimmed
	}
	return fallbackSummary
}

// deriveTakeaways extracts up to four bullet-like statements. First
// pass: list items whose text is wrapped in bold markup. Second pass,
// only when the first finds nothing: second-level headings, minus the
// boilerplate "What This Means" sections.
func deriveTakeaways(body string) []string {
	lines := strings.Split(body, "\n")

	var takeaways []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if m := boldBullet.FindStringSubmatch(trimmed); m != nil {
			text := strings.TrimSpace(m[1])
			if len(text) > minTakeawayLen {
				takeaways = append(takeaways, text)
			}
		}
	}

	if len(takeaways) == 0 {
		for _, line := range lines {
			if !strings.HasPrefix(line, "##") || strings.Contains(line, excludedHeading) {
				continue
			}
			heading := strings.TrimSpace(headingMarkers.ReplaceAllString(line, ""))
			if len(heading) > minHeadingLen && len(heading) < maxHeadingLen {
				takeaways = append(takeaways, heading)
			}
		}
	}

	if len(takeaways) > maxTakeaways {
		takeaways = takeaways[:maxTakeaways]
	}
	return takeaways
}
