// Package ranking scores a candidate article pool against a processed
// query and selects a bounded, ordered list of relevant sources.
package ranking

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/newssense/internal/scoring"
	"github.com/jonathan/newssense/internal/types"
)

// Defaults for Options. The minimum-relevance floor and the non-exact
// cap are heuristic; they are exposed as options rather than hardcoded
// so callers can tune them.
const (
	DefaultTopN        = 5
	DefaultMinScore    = 5.0
	DefaultMaxNonExact = 2
)

// parallelThreshold is the pool size above which scoring is sharded
// across goroutines.
const parallelThreshold = 64

// scoringShards is the number of goroutines used for sharded scoring.
const scoringShards = 4

// Options tunes ranking behavior. The zero value selects the defaults.
type Options struct {
	// TopN caps the result list length.
	TopN int
	// MinScore is the minimum relevance score for non-exact matches.
	MinScore float64
	// MaxNonExact caps how many non-exact results may follow the exact
	// matches in two-tier selection.
	MaxNonExact int
}

func (o Options) withDefaults() Options {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	if o.MaxNonExact <= 0 {
		o.MaxNonExact = DefaultMaxNonExact
	}
	return o
}

// Rank scores every candidate article against the query, discards
// non-relevant and low-confidence results, and returns the ordered,
// bounded selection using the current time for recency.
func Rank(articles []types.Article, info types.QueryInfo, opts Options) []types.MatchResult {
	return RankAt(articles, info, time.Now(), opts)
}

// RankAt is Rank with an explicit reference time. Every article of one
// call is scored against the same now, so results are comparable and a
// call is deterministic for fixed inputs.
func RankAt(articles []types.Article, info types.QueryInfo, now time.Time, opts Options) []types.MatchResult {
	opts = opts.withDefaults()

	candidates := dedupByURL(articles)
	results := scoreAll(candidates, info, now)

	kept := results[:0]
	for _, r := range results {
		if len(r.MatchedTerms) == 0 {
			continue
		}
		if !r.ExactMatch && r.RelevanceScore < opts.MinScore {
			continue
		}
		kept = append(kept, r)
	}

	sortResults(kept)
	return selectTwoTier(kept, opts)
}

// dedupByURL drops articles whose URL was already seen. First occurrence
// wins. Articles without a URL are kept.
func dedupByURL(articles []types.Article) []types.Article {
	seen := make(map[string]bool, len(articles))
	result := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		if a.URL != "" && seen[a.URL] {
			continue
		}
		if a.URL != "" {
			seen[a.URL] = true
		}
		result = append(result, a)
	}
	return result
}

// scoreAll scores candidates in input order. Large pools are sharded
// across goroutines; each shard writes to its own index range, so the
// output order is identical to the sequential path.
func scoreAll(articles []types.Article, info types.QueryInfo, now time.Time) []types.MatchResult {
	results := make([]types.MatchResult, len(articles))

	if len(articles) < parallelThreshold {
		for i, a := range articles {
			results[i] = scoring.ScoreAt(a, info, now)
		}
		return results
	}

	var g errgroup.Group
	chunk := (len(articles) + scoringShards - 1) / scoringShards
	for start := 0; start < len(articles); start += chunk {
		end := start + chunk
		if end > len(articles) {
			end = len(articles)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = scoring.ScoreAt(articles[i], info, now)
			}
			return nil
		})
	}
	_ = g.Wait() // scoring never fails
	return results
}

// sortResults orders results by (exactMatch desc, relevanceScore desc,
// date desc). The sort is stable so equal results keep input order and
// ranking stays deterministic.
func sortResults(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.ExactMatch != b.ExactMatch {
			return a.ExactMatch
		}
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		da, _ := a.Article.ParsedDate() // unparseable dates sort last
		db, _ := b.Article.ParsedDate()
		return da.After(db)
	})
}

// selectTwoTier applies exact-match-priority selection: when any exact
// match survived, all exact matches come first, followed by at most
// MaxNonExact of the best non-exact results, truncated to TopN.
// Otherwise the top TopN results are returned as sorted.
func selectTwoTier(sorted []types.MatchResult, opts Options) []types.MatchResult {
	exactCount := 0
	for _, r := range sorted {
		if !r.ExactMatch {
			break // sorted: exact matches are a prefix
		}
		exactCount++
	}

	selected := sorted
	if exactCount > 0 {
		cut := exactCount + opts.MaxNonExact
		if cut < len(sorted) {
			selected = sorted[:cut]
		}
	}
	if len(selected) > opts.TopN {
		selected = selected[:opts.TopN]
	}

	// Copy so callers do not alias the scratch slice.
	out := make([]types.MatchResult, len(selected))
	copy(out, selected)
	return out
}
