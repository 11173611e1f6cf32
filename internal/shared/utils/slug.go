package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugMultiHyphen  = regexp.MustCompile(`-+`)
)

// GenerateSlug builds a URL-safe slug from a display name
// "Silk Midi Dress" → "silk-midi-dress"
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugMultiHyphen.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
