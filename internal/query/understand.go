// Package query turns a free-text financial question into the processed
// form consumed by the relevance scorer: entities, intent, phrases and
// weighted key terms.
package query

import (
	"strings"

	"github.com/jonathan/newssense/internal/extraction"
	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/parsing"
	"github.com/jonathan/newssense/internal/types"
)

// Entity term weights for relevance ranking.
const (
	companyWeight = 10.0
	indexWeight   = 8.0
	sectorWeight  = 6.0
	keywordWeight = 2.0
)

// minPhraseWordLen is the minimum length of the outer words of a phrase
// window.
const minPhraseWordLen = 3

// intentRule maps an intent to its trigger substrings. Rules are checked
// in order and the first hit wins, so overlapping questions ("why is X
// down") resolve to the higher-priority intent.
type intentRule struct {
	intent   types.Intent
	triggers []string
}

var intentRules = []intentRule{
	{types.IntentInformation, []string{"what is", "tell me about", "describe", "explain"}},
	{types.IntentExplanation, []string{"why", "reason", "cause"}},
	{types.IntentAnalysis, []string{"how", "trend", "movement", "performance"}},
	{types.IntentMovement, []string{"up", "down", "increase", "decrease", "rise", "fall"}},
	{types.IntentPrediction, []string{"forecast", "future", "will", "expect"}},
	{types.IntentComparison, []string{"compare", "versus", "vs", "difference", "between"}},
}

// Understander processes incoming questions. Safe for concurrent use.
type Understander struct {
	gaz       *gazetteer.Gazetteer
	extractor *extraction.Extractor
}

// New builds an Understander over the given gazetteer.
func New(gaz *gazetteer.Gazetteer) *Understander {
	return &Understander{gaz: gaz, extractor: extraction.New(gaz)}
}

// Understand normalizes the question, extracts entities, classifies
// intent, and derives phrases and weighted key terms. It always returns
// a valid QueryInfo; a question with no recognizable entities simply
// yields empty entity sets.
func (u *Understander) Understand(question string) types.QueryInfo {
	cleaned := parsing.Normalize(question)
	entities := u.extractor.Extract(cleaned)

	return types.QueryInfo{
		OriginalQuery: question,
		CleanedQuery:  cleaned,
		Entities:      entities,
		Intent:        ClassifyIntent(cleaned),
		Phrases:       ExtractPhrases(cleaned),
		KeyTerms:      u.keyTerms(cleaned, entities),
	}
}

// ClassifyIntent returns the first intent whose trigger substrings match
// the folded question, or IntentGeneral.
func ClassifyIntent(question string) types.Intent {
	folded := parsing.Fold(question)
	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(folded, trigger) {
				return rule.intent
			}
		}
	}
	return types.IntentGeneral
}

// ExtractPhrases builds the adjacent 2- and 3-word windows of the
// question. Two-word windows require both words to be non-stopwords
// longer than two characters; three-word windows only constrain the
// outer words, so "results for TCS" survives.
func ExtractPhrases(question string) []string {
	words := parsing.Tokenize(question)
	phrases := []string{}

	for i := 0; i+1 < len(words); i++ {
		if phraseWord(words[i]) && phraseWord(words[i+1]) {
			phrases = append(phrases, words[i]+" "+words[i+1])
		}
	}
	for i := 0; i+2 < len(words); i++ {
		if phraseWord(words[i]) && phraseWord(words[i+2]) {
			phrases = append(phrases, words[i]+" "+words[i+1]+" "+words[i+2])
		}
	}
	return phrases
}

func phraseWord(w string) bool {
	return len(w) >= minPhraseWordLen && !parsing.IsStopWord(w)
}

// keyTerms accumulates the term->weight map used by the scorer. Entity
// weights are assigned first (companies, indices, sectors, then residual
// keywords); a later assignment to the same folded term overwrites the
// earlier one. Raw question tokens found in the domain term table
// contribute their tabulated weight when not already present.
func (u *Understander) keyTerms(question string, entities types.EntityMatch) map[string]float64 {
	terms := make(map[string]float64)

	for _, company := range entities.Companies {
		terms[parsing.Fold(company)] = companyWeight
	}
	for _, index := range entities.Indices {
		terms[parsing.Fold(index)] = indexWeight
	}
	for _, sector := range entities.Sectors {
		terms[parsing.Fold(sector)] = sectorWeight
	}
	for _, keyword := range entities.Keywords {
		terms[parsing.Fold(keyword)] = keywordWeight
	}

	for _, token := range parsing.Tokenize(question) {
		if _, present := terms[token]; present {
			continue
		}
		if u.gaz.HasDomainTerm(token) {
			terms[token] = u.gaz.DomainWeight(token)
		}
	}
	return terms
}
