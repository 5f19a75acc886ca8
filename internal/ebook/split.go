// Package ebook turns a raw source document into an ordered sequence of
// labeled sections, one per detected "Principle N:" heading.
package ebook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Section is one labeled slice of the source document. Sections
// partition the document text completely and in original order; the
// heading line itself is excluded from the body.
type Section struct {
	Order int
	Title string
	Body  string
}

// DefaultTitle is used for the single fallback section when no headings
// are detected in the source document.
const DefaultTitle = "Rethink 12 Principles"

// headingPattern matches lines like "Principle 1: Title",
// "PRINCIPLE Seven - Title". A line that matches is always a section
// boundary, even mid-paragraph; disambiguating false positives is a
// known limitation.
var headingPattern = regexp.MustCompile(`(?i)^\s*principle\s+(\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s*[:\-]\s*(.+)$`)

var ordinalWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

type headingMatch struct {
	line  int
	num   string
	title string
}

// Split scans the document text for principle headings and returns one
// section per heading, in document order. When no headings are found it
// returns a single section covering the whole document rather than
// failing on an unrecognized format.
func Split(fullText string) []Section {
	text := normalizeLineEndings(fullText)
	lines := strings.Split(text, "\n")

	var matches []headingMatch
	for i, line := range lines {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			matches = append(matches, headingMatch{line: i, num: m[1], title: strings.TrimSpace(m[2])})
		}
	}

	if len(matches) == 0 {
		return []Section{{
			Order: 1,
			Title: DefaultTitle,
			Body:  strings.TrimSpace(text),
		}}
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		start := m.line + 1
		end := len(lines)
		if i+1 < len(matches) {
			end = matches[i+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))

		order := resolveOrder(m.num, i)
		sections = append(sections, Section{
			Order: order,
			Title: fmt.Sprintf("Principle %d: %s", order, m.title),
			Body:  body,
		})
	}

	return sections
}

// resolveOrder converts a heading's number-or-word to an integer,
// falling back to the 1-based match position.
func resolveOrder(num string, matchIndex int) int {
	if n, err := strconv.Atoi(num); err == nil {
		return n
	}
	if n, ok := ordinalWords[strings.ToLower(num)]; ok {
		return n
	}
	return matchIndex + 1
}

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
