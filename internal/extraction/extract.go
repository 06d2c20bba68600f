// Package extraction applies the gazetteer to free text to produce typed
// entity sets.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/parsing"
	"github.com/jonathan/newssense/internal/types"
)

// minKeywordLen is the minimum length of a residual keyword token.
const minKeywordLen = 4

// Extractor recognizes gazetteer entities in text. It is safe for
// concurrent use once constructed.
type Extractor struct {
	gaz            *gazetteer.Gazetteer
	symbolPatterns map[string]*regexp.Regexp
}

// New builds an Extractor over the given gazetteer. Symbol patterns are
// precompiled so Extract stays cheap per call.
func New(gaz *gazetteer.Gazetteer) *Extractor {
	patterns := make(map[string]*regexp.Regexp)
	for _, symbol := range gaz.Symbols() {
		patterns[symbol] = regexp.MustCompile(`\b` + regexp.QuoteMeta(symbol) + `\b`)
	}
	return &Extractor{gaz: gaz, symbolPatterns: patterns}
}

// Extract returns the typed entities found in text. Companies, sectors
// and indices carry canonical gazetteer names; keywords are residual
// non-stopword tokens in their original order. Absence of entities
// yields empty sets, never an error.
func (e *Extractor) Extract(text string) types.EntityMatch {
	match := types.EntityMatch{
		Companies: []string{},
		Sectors:   []string{},
		Indices:   []string{},
		Keywords:  []string{},
	}
	if text == "" {
		return match
	}

	folded := parsing.Fold(text)
	seenCompanies := make(map[string]bool)

	// Company names: any lowercased variant as a substring. First variant
	// hit wins; the canonical name is recorded, never the variant.
	for _, company := range e.gaz.Companies() {
		for _, variant := range e.gaz.VariantsOf(company) {
			if strings.Contains(folded, variant) {
				if !seenCompanies[company] {
					seenCompanies[company] = true
					match.Companies = append(match.Companies, company)
				}
				break
			}
		}
	}

	// Ticker symbols: word-boundary match against the original-case text.
	// Substring matching would false-positive on short symbols ("IT"
	// inside "ITC"), and symbols are conventionally written uppercase.
	for _, symbol := range e.gaz.Symbols() {
		if e.symbolPatterns[symbol].MatchString(text) {
			if company, ok := e.gaz.CompanyForSymbol(symbol); ok && !seenCompanies[company] {
				seenCompanies[company] = true
				match.Companies = append(match.Companies, company)
			}
		}
	}

	for _, sector := range e.gaz.Sectors() {
		if strings.Contains(folded, parsing.Fold(sector)) {
			match.Sectors = append(match.Sectors, sector)
		}
	}

	for _, index := range e.gaz.Indices() {
		if strings.Contains(folded, parsing.Fold(index)) {
			match.Indices = append(match.Indices, index)
		}
	}

	match.Keywords = e.residualKeywords(text, match)
	return match
}

// residualKeywords returns the non-stopword tokens that are not already
// covered by a typed entity, preserving token order.
func (e *Extractor) residualKeywords(text string, match types.EntityMatch) []string {
	entityNames := make(map[string]bool)
	for _, group := range [][]string{match.Companies, match.Sectors, match.Indices} {
		for _, name := range group {
			entityNames[parsing.Fold(name)] = true
		}
	}

	seen := make(map[string]bool)
	keywords := []string{}
	for _, token := range parsing.Tokenize(text) {
		if len(token) < minKeywordLen {
			continue
		}
		if parsing.IsStopWord(token) || parsing.IsFinancialStopWord(token) {
			continue
		}
		if entityNames[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}
	return keywords
}
