package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// CleanText strips all HTML/XML markup from user-submitted text and trims
// surrounding whitespace. Form fields are plain text; anything that looks
// like markup is hostile or accidental either way. Entities are unescaped
// after stripping so "Tours &amp; Treks" round-trips as readable text.
func CleanText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.ContainsAny(input, "<>&") {
		return input
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(input)))
}
