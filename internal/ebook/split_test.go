package ebook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTwoPrinciples(t *testing.T) {
	doc := "Principle 2: Rethink Place\n\nBody text here.\n\nPrinciple 3: Rethink Vocation\n\nMore text."

	sections := Split(doc)
	require.Len(t, sections, 2)

	assert.Equal(t, 2, sections[0].Order)
	assert.Equal(t, "Principle 2: Rethink Place", sections[0].Title)
	assert.Equal(t, "Body text here.", sections[0].Body)

	assert.Equal(t, 3, sections[1].Order)
	assert.Equal(t, "Principle 3: Rethink Vocation", sections[1].Title)
	assert.Equal(t, "More text.", sections[1].Body)
}

func TestSplitNoHeadingsFallback(t *testing.T) {
	doc := "Just a plain document.\n\nWith two paragraphs but no headings.\n"

	sections := Split(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, 1, sections[0].Order)
	assert.Equal(t, DefaultTitle, sections[0].Title)
	assert.Equal(t, strings.TrimSpace(doc), sections[0].Body)
}

func TestSplitHeadingVariants(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOrder int
		wantTitle string
	}{
		{"uppercase label", "PRINCIPLE 4: Rethink Missio Dei", 4, "Principle 4: Rethink Missio Dei"},
		{"ordinal word", "Principle Seven: Rethink Vocation", 7, "Principle 7: Rethink Vocation"},
		{"lowercase ordinal", "principle twelve - Rethink Scorecards", 12, "Principle 12: Rethink Scorecards"},
		{"hyphen separator", "Principle 6 - Rethink Place", 6, "Principle 6: Rethink Place"},
		{"leading whitespace", "   Principle 9: Rethink Teams", 9, "Principle 9: Rethink Teams"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Split(tt.line + "\nsome body\n")
			require.Len(t, sections, 1)
			assert.Equal(t, tt.wantOrder, sections[0].Order)
			assert.Equal(t, tt.wantTitle, sections[0].Title)
			assert.Equal(t, "some body", sections[0].Body)
		})
	}
}

func TestSplitCRLFNormalization(t *testing.T) {
	doc := "Principle 1: Rethink Flow\r\n\r\nWindows body.\r\n"

	sections := Split(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, "Windows body.", sections[0].Body)
}

func TestSplitSectionCountMatchesHeadings(t *testing.T) {
	doc := strings.Join([]string{
		"Principle 1: Rethink the Missionary Nature of God",
		"First body.",
		"Principle 2: Rethink Place",
		"Second body.",
		"",
		"Principle Three: Incarnational Mission",
		"Third body.",
	}, "\n")

	sections := Split(doc)
	assert.Len(t, sections, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{sections[0].Order, sections[1].Order, sections[2].Order})
}

// Bodies plus the stripped heading lines reconstruct every non-blank
// line of the document exactly once, in order.
func TestSplitPartitionsDocument(t *testing.T) {
	doc := strings.Join([]string{
		"Principle 1: Rethink Teams",
		"Alpha line.",
		"",
		"Beta line.",
		"Principle 2: Rethink Flow",
		"Gamma line.",
	}, "\n")

	sections := Split(doc)
	require.Len(t, sections, 2)

	var got []string
	for _, sec := range sections {
		got = append(got, sec.Title)
		for _, line := range strings.Split(sec.Body, "\n") {
			if strings.TrimSpace(line) != "" {
				got = append(got, line)
			}
		}
	}

	want := []string{
		"Principle 1: Rethink Teams",
		"Alpha line.",
		"Beta line.",
		"Principle 2: Rethink Flow",
		"Gamma line.",
	}
	assert.Equal(t, want, got)
}

// A body sentence that happens to match the heading pattern still
// starts a new section. Documented limitation, not a bug.
func TestSplitMidParagraphFalsePositive(t *testing.T) {
	doc := "Principle 1: Rethink Place\nIntro text.\nPrinciple 7: a phrase inside prose\nTrailing text.\n"

	sections := Split(doc)
	require.Len(t, sections, 2)
	assert.Equal(t, 7, sections[1].Order)
	assert.Equal(t, "Trailing text.", sections[1].Body)
}
