package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/newssense/internal/types"
)

func TestPrintQueryInfo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	info := &types.QueryInfo{
		CleanedQuery: "Why is TCS down?",
		Intent:       types.IntentExplanation,
		Entities: types.EntityMatch{
			Companies: []string{"TCS"},
			Keywords:  []string{"down"},
		},
		Phrases: []string{"tcs down"},
	}
	p.PrintQueryInfo(info)

	out := buf.String()
	assert.Contains(t, out, "PROCESSED QUERY")
	assert.Contains(t, out, "Why is TCS down?")
	assert.Contains(t, out, "explanation")
	assert.Contains(t, out, "TCS")
}

func TestPrintQueryInfoNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQueryInfo(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedSources(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{
			Article:        types.Article{Title: "TCS shares up 2%"},
			MatchedTerms:   []string{"TCS"},
			RelevanceScore: 75.0,
			ExactMatch:     true,
		},
	}
	p.PrintRankedSources(results)

	out := buf.String()
	assert.Contains(t, out, "RANKED SOURCES")
	assert.Contains(t, out, "TCS shares up 2%")
	assert.Contains(t, out, "75.00")
	assert.Contains(t, out, "(exact)")
}

func TestPrintRankedSourcesEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedSources(nil)
	assert.Contains(t, buf.String(), "No relevant articles found")
}

func TestPrintSourceFiles(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSourceFiles([]string{"moneycontrol.json"})
	assert.Contains(t, buf.String(), "moneycontrol.json")
}

func TestPrintSourceFilesEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSourceFiles(nil)
	assert.Empty(t, buf.String())
}
