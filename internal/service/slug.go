package service

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases text and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slugify(text string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "-")
	return strings.Trim(slug, "-")
}
