// Package textutil cleans generated itinerary text for display and PDF
// export: it strips embedded markup, hashtag tokens, and stray symbols, and
// regroups the text into blank-line-separated sections.
package textutil

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// stripPolicy removes every HTML element, leaving only text content.
	stripPolicy = bluemonday.StrictPolicy()

	hashtagRE    = regexp.MustCompile(`#\w+`)
	symbolRE     = regexp.MustCompile(`[^\w\s.,!?-]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Clean removes HTML tags, hashtags, and symbols outside word characters and
// basic punctuation, then collapses runs of whitespace to single spaces.
func Clean(text string) string {
	// Sanitize entity-escapes its output, so unescape to recover plain text
	// before the symbol pass.
	text = html.UnescapeString(stripPolicy.Sanitize(text))
	text = hashtagRE.ReplaceAllString(text, "")
	text = symbolRE.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// SplitSections splits content on blank lines into groups of cleaned,
// non-empty lines, each group joined back with newlines. Lines that clean
// down to nothing act as group separators.
func SplitSections(content string) []string {
	var sections []string
	var current []string

	for _, line := range strings.Split(content, "\n") {
		line = Clean(strings.TrimSpace(line))
		if line == "" {
			if len(current) > 0 {
				sections = append(sections, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		sections = append(sections, strings.Join(current, "\n"))
	}
	return sections
}
