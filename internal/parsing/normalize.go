// Package parsing provides text normalization and tokenization for
// queries and article bodies.
package parsing

import (
	"regexp"
	"strings"
)

var (
	urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern = regexp.MustCompile(`<[^>]*>`)
)

// tokenCutset is trimmed from both ends of a token. Interior punctuation
// (e.g. "L&T", "S&P") is preserved.
const tokenCutset = ".,!?;:'\"()[]{}«»‘’“”"

// Normalize removes URL patterns and markup tags and collapses repeated
// whitespace to single spaces. Original casing is preserved; use Fold for
// matching. Empty input returns the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = urlPattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Fold lowercases text for case-insensitive matching.
func Fold(text string) string {
	return strings.ToLower(text)
}

// Tokenize splits folded text into tokens, trimming surrounding
// punctuation from each.
func Tokenize(text string) []string {
	fields := strings.Fields(Fold(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.Trim(f, tokenCutset)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
