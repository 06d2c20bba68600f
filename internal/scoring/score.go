// Package scoring scores a single article against a processed query.
// Scoring is a pure function: no I/O, no shared state, and it never
// fails — malformed article data degrades to a weaker match.
package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/newssense/internal/parsing"
	"github.com/jonathan/newssense/internal/types"
)

// Scoring constants. Title hits count three times as much as content
// hits; only company entities carry the exact-match bonus.
const (
	companyWeight = 10.0
	indexWeight   = 8.0
	sectorWeight  = 6.0

	titleMultiplier   = 3.0
	contentMultiplier = 1.0

	exactMatchBonus = 20.0

	phraseTitleScore   = 8.0
	phraseContentScore = 4.0

	intentBoost = 1.2
)

// Recency multipliers by article age in whole days.
const (
	recencySameDayBoost = 1.5 // <= 1 day
	recencyRecentBoost  = 1.3 // <= 3 days
	recencyWeekBoost    = 1.1 // <= 7 days
)

// movementTitleTerms and explanationTitleTerms gate the intent boost.
var (
	movementTitleTerms    = []string{"up", "down", "rise", "fall", "gain", "loss"}
	explanationTitleTerms = []string{"why", "because", "reason", "due to"}
)

// Score scores an article against a processed query using the current
// time for recency.
func Score(article types.Article, info types.QueryInfo) types.MatchResult {
	return ScoreAt(article, info, time.Now())
}

// ScoreAt scores an article against a processed query, computing article
// age relative to now. The ranker passes a single now to every article
// of one call so results are comparable.
//
// A result is always returned; one with no matched terms is
// non-relevant and is filtered by the ranker.
func ScoreAt(article types.Article, info types.QueryInfo, now time.Time) types.MatchResult {
	title := parsing.Fold(article.Title)
	content := parsing.Fold(article.Content) // missing content folds to ""

	score := 0.0
	exact := false
	matched := make(map[string]bool)

	// Query entity names are handled in the entity passes below; the
	// key-term pass must not count them again.
	entityTerms := make(map[string]bool)

	for _, company := range info.Entities.Companies {
		folded := parsing.Fold(company)
		entityTerms[folded] = true
		if strings.Contains(title, folded) {
			score += companyWeight*titleMultiplier + exactMatchBonus
			exact = true
			matched[company] = true
		} else if strings.Contains(content, folded) {
			score += companyWeight * contentMultiplier
			matched[company] = true
		}
	}

	for _, index := range info.Entities.Indices {
		folded := parsing.Fold(index)
		entityTerms[folded] = true
		if strings.Contains(title, folded) {
			score += indexWeight * titleMultiplier
			matched[index] = true
		} else if strings.Contains(content, folded) {
			score += indexWeight * contentMultiplier
			matched[index] = true
		}
	}

	for _, sector := range info.Entities.Sectors {
		folded := parsing.Fold(sector)
		entityTerms[folded] = true
		if strings.Contains(title, folded) {
			score += sectorWeight * titleMultiplier
			matched[sector] = true
		} else if strings.Contains(content, folded) {
			score += sectorWeight * contentMultiplier
			matched[sector] = true
		}
	}

	for _, phrase := range info.Phrases {
		if strings.Contains(title, phrase) {
			score += phraseTitleScore
			matched[phrase] = true
		} else if strings.Contains(content, phrase) {
			score += phraseContentScore
			matched[phrase] = true
		}
	}

	for term, weight := range info.KeyTerms {
		if entityTerms[term] {
			continue
		}
		if strings.Contains(title, term) {
			score += weight * titleMultiplier
			matched[term] = true
		} else if strings.Contains(content, term) {
			score += weight * contentMultiplier
			matched[term] = true
		}
	}

	score *= recencyMultiplier(article, now)
	score *= intentMultiplier(info.Intent, title)

	return types.MatchResult{
		Article:        article,
		MatchedTerms:   sortedTerms(matched),
		RelevanceScore: score,
		ExactMatch:     exact,
	}
}

// recencyMultiplier returns the boost for article age. An unparseable
// date yields 1.0; the boost is skipped silently.
func recencyMultiplier(article types.Article, now time.Time) float64 {
	published, ok := article.ParsedDate()
	if !ok {
		return 1.0
	}
	daysOld := int(now.Sub(published).Hours() / 24)
	switch {
	case daysOld <= 1:
		return recencySameDayBoost
	case daysOld <= 3:
		return recencyRecentBoost
	case daysOld <= 7:
		return recencyWeekBoost
	default:
		return 1.0
	}
}

// intentMultiplier boosts titles whose wording matches the question's
// intent (movement or explanation).
func intentMultiplier(intent types.Intent, foldedTitle string) float64 {
	switch intent {
	case types.IntentMovement:
		if containsAny(foldedTitle, movementTitleTerms) {
			return intentBoost
		}
	case types.IntentExplanation:
		if containsAny(foldedTitle, explanationTitleTerms) {
			return intentBoost
		}
	}
	return 1.0
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// sortedTerms returns the matched term set as a sorted slice so results
// are deterministic and comparable in tests.
func sortedTerms(set map[string]bool) []string {
	terms := make([]string, 0, len(set))
	for t := range set {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
