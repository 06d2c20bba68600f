// Package contextgen assembles the textual context handed to the
// answer-generation collaborator: one block per selected article plus a
// numeric block of recent price data for the query's entities.
package contextgen

import (
	"fmt"
	"strings"

	"github.com/jonathan/newssense/internal/finance"
	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/types"
)

// Sentinel is returned when nothing relevant was found. Downstream
// consumers detect this exact string, so it must not change.
const Sentinel = "No specific information found relevant to the query."

// maxContentLen caps how much of an article's body is quoted per block.
const maxContentLen = 1000

// Placeholders for missing article metadata.
const (
	unknownTitle  = "Unknown Title"
	unknownSource = "Unknown Source"
	unknownDate   = "Unknown Date"
)

// Builder assembles context strings. The finance provider may be
// finance.None when no price data is configured.
type Builder struct {
	gaz      *gazetteer.Gazetteer
	provider finance.Provider
}

// New builds a context Builder.
func New(gaz *gazetteer.Gazetteer, provider finance.Provider) *Builder {
	if provider == nil {
		provider = finance.None{}
	}
	return &Builder{gaz: gaz, provider: provider}
}

// Build renders the selected articles and the query's financial data
// into one context string. With no articles and no financial data it
// returns the sentinel.
func (b *Builder) Build(results []types.MatchResult, entities types.EntityMatch) string {
	parts := []string{}

	for i, r := range results {
		parts = append(parts, articleHeader(i+1, r.Article))
		if content := truncate(r.Article.Content); content != "" {
			parts = append(parts, content)
		}
	}

	if financial := b.financialBlock(entities); financial != "" {
		parts = append(parts, financial)
	}

	if len(parts) == 0 {
		return Sentinel
	}
	return strings.Join(parts, "\n\n")
}

func articleHeader(n int, a types.Article) string {
	title, source, date := a.Title, a.Source, a.Date
	if title == "" {
		title = unknownTitle
	}
	if source == "" {
		source = unknownSource
	}
	if date == "" {
		date = unknownDate
	}
	return fmt.Sprintf("Article %d: '%s' from %s on %s", n, title, source, date)
}

func truncate(content string) string {
	if len(content) > maxContentLen {
		return content[:maxContentLen] + "..."
	}
	return content
}

// financialBlock renders recent price data for the query's companies and
// indices. Entities the provider has no data for are skipped.
func (b *Builder) financialBlock(entities types.EntityMatch) string {
	blocks := []string{}

	for _, company := range entities.Companies {
		symbol, ok := b.gaz.SymbolForCompany(company)
		if !ok {
			continue
		}
		series, ok := b.provider.SeriesFor(symbol)
		if !ok {
			continue
		}
		latest, ok := series.Latest()
		if !ok {
			continue
		}
		change, hasChange := series.FiveDayChange()

		var sb strings.Builder
		fmt.Fprintf(&sb, "Financial Data for %s:\n", company)
		fmt.Fprintf(&sb, "Latest Close Price: %.2f\n", latest.Close)
		if hasChange {
			fmt.Fprintf(&sb, "5-Day Price Change: %.2f%%\n", change)
		}
		fmt.Fprintf(&sb, "Latest Trading Volume: %d\n", latest.Volume)
		blocks = append(blocks, sb.String())
	}

	for _, index := range entities.Indices {
		series, ok := b.provider.SeriesFor(index)
		if !ok {
			continue
		}
		latest, ok := series.Latest()
		if !ok {
			continue
		}
		change, hasChange := series.FiveDayChange()

		var sb strings.Builder
		fmt.Fprintf(&sb, "Financial Data for %s:\n", index)
		fmt.Fprintf(&sb, "Latest Close Value: %.2f\n", latest.Close)
		if hasChange {
			fmt.Fprintf(&sb, "5-Day Change: %.2f%%\n", change)
		}
		blocks = append(blocks, sb.String())
	}

	return strings.Join(blocks, "\n")
}
