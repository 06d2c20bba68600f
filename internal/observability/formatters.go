// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/newssense/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQueryInfo outputs a human-readable summary of the processed query.
func (p *Printer) PrintQueryInfo(info *types.QueryInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Query:   %s\n", info.CleanedQuery))
	sb.WriteString(fmt.Sprintf("Intent:  %s\n", info.Intent))
	sb.WriteString("\n")

	writeEntityList(&sb, "Companies", info.Entities.Companies)
	writeEntityList(&sb, "Sectors", info.Entities.Sectors)
	writeEntityList(&sb, "Indices", info.Entities.Indices)
	writeEntityList(&sb, "Keywords", info.Entities.Keywords)

	if len(info.Phrases) > 0 {
		phrases := strings.Join(info.Phrases, ", ")
		if len(phrases) > 45 {
			phrases = phrases[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Phrases: %s\n", phrases))
	}

	p.printBox("PROCESSED QUERY", strings.TrimSuffix(sb.String(), "\n"))
}

func writeEntityList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	joined := strings.Join(items, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%-10s %s\n", label+":", joined))
}

// PrintRankedSources outputs the top N ranked articles with scores and
// matched terms.
func (p *Printer) PrintRankedSources(results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("RANKED SOURCES", "No relevant articles found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Relevant articles: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		title := r.Article.Title
		if len(title) > 48 {
			title = title[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", r.RelevanceScore))
		if r.ExactMatch {
			sb.WriteString(" (exact)")
		}
		sb.WriteString("\n")
		if len(r.MatchedTerms) > 0 {
			terms := strings.Join(r.MatchedTerms, ", ")
			if len(terms) > 40 {
				terms = terms[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Terms: %s\n", terms))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more articles", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED SOURCES", sb.String())
}

// PrintSourceFiles outputs the data files the selected articles came from.
func (p *Printer) PrintSourceFiles(files []string) {
	if len(files) == 0 {
		return
	}

	var sb strings.Builder
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("• %s\n", f))
	}
	p.printBox("SOURCE FILES", strings.TrimSuffix(sb.String(), "\n"))
}
