// Package types provides type definitions for structured data used throughout the newssense engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// dateLayouts are the accepted article date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Article represents a news article produced by the scraping collaborator.
// The engine never mutates an Article; it only derives scores from it.
type Article struct {
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	Source     string `json:"source"`
	Date       string `json:"date"` // RFC 3339 or ISO date string
	URL        string `json:"url"`
	SourceFile string `json:"source_file,omitempty"`
}

// ParsedDate parses the article date. The second return value reports
// whether the date was parseable; callers skip recency handling when it
// is false.
func (a Article) ParsedDate() (time.Time, bool) {
	if a.Date == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, a.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MatchResult is the outcome of scoring one article against a processed
// query. Results with no matched terms are non-relevant and are filtered
// by the ranker, not the scorer.
type MatchResult struct {
	Article        Article  `json:"article"`
	MatchedTerms   []string `json:"matched_terms"`
	RelevanceScore float64  `json:"relevance_score"`
	ExactMatch     bool     `json:"exact_match"`
}
