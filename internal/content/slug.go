// Package content materializes document sections as on-disk content
// units and loads them back as fully-resolved records for the
// presentation layer.
package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	rethinkPrefix   = regexp.MustCompile(`(?i)^re[-\s]?think\s+`)
	principlePrefix = regexp.MustCompile(`(?i)^principle\s+\d+\s*:\s*`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	hyphenRun       = regexp.MustCompile(`-+`)
)

// Slugify derives a stable, URL-safe identifier from a title. The
// leading "Rethink " prefix is stripped so that "Rethink Vocation" and
// "Vocation" map to the same slug. Deterministic: the same title always
// yields the same slug.
func Slugify(title string) string {
	s := strings.TrimSpace(title)
	s = rethinkPrefix.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	s = stripDiacritics(s)

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '-' || r == '\t' || r == '\n' {
			b.WriteRune(r)
		}
	}

	s = strings.TrimSpace(b.String())
	s = whitespaceRun.ReplaceAllString(s, "-")
	return hyphenRun.ReplaceAllString(s, "-")
}

// StripPrincipleLabel removes a leading "Principle N:" label from a
// section title, leaving the bare topic text.
func StripPrincipleLabel(title string) string {
	return strings.TrimSpace(principlePrefix.ReplaceAllString(title, ""))
}

// TitleFromSlug reverses slugification well enough for display:
// hyphen-separated words, each capitalized.
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// stripDiacritics decomposes to NFKD and drops combining marks, so
// "café" slugifies to "cafe".
func stripDiacritics(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
