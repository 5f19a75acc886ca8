package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the delimited key-value header block at the top of a
// content unit. The contract is deliberately closed: only these keys
// are recognized, anything else in the block is ignored.
type Frontmatter struct {
	Title   string `yaml:"title"`
	Order   *int   `yaml:"order"`
	Summary string `yaml:"summary"`
}

const frontmatterDelimiter = "---"

// ParseUnit splits a content unit file into its frontmatter and body.
// A file without a leading delimiter is all body with an empty header.
// An opening delimiter without a closing one is malformed.
func ParseUnit(raw string) (Frontmatter, string, error) {
	var fm Frontmatter

	lines := strings.Split(normalizeNewlines(raw), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelimiter {
		return fm, raw, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return fm, "", fmt.Errorf("unterminated frontmatter block")
	}

	block := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return Frontmatter{}, "", fmt.Errorf("parsing frontmatter: %w", err)
	}

	body := strings.Join(lines[closing+1:], "\n")
	body = strings.TrimPrefix(body, "\n")
	return fm, body, nil
}

// EncodeUnit renders a content unit file: the header block, a blank
// line, the body, and a trailing newline. The title is quote-escaped;
// order is written as a bare integer only when known.
func EncodeUnit(fm Frontmatter, body string) string {
	var b strings.Builder
	b.WriteString(frontmatterDelimiter + "\n")
	fmt.Fprintf(&b, "title: %q\n", fm.Title)
	if fm.Order != nil {
		fmt.Fprintf(&b, "order: %d\n", *fm.Order)
	}
	if fm.Summary != "" {
		fmt.Fprintf(&b, "summary: %q\n", fm.Summary)
	}
	b.WriteString(frontmatterDelimiter + "\n\n")
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n")
	return b.String()
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
