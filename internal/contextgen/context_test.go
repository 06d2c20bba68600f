package contextgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newssense/internal/finance"
	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/types"
)

func testBuilder(t *testing.T, provider finance.Provider) *Builder {
	t.Helper()
	return New(gazetteer.Default(), provider)
}

func TestBuildArticleBlocks(t *testing.T) {
	b := testBuilder(t, nil)
	results := []types.MatchResult{
		{Article: types.Article{Title: "TCS shares up 2%", Source: "Moneycontrol", Date: "2024-03-15", Content: "TCS gained today on strong volumes."}},
		{Article: types.Article{Title: "IT sector rally", Source: "Mint", Date: "2024-03-14", Content: "Broad gains across IT."}},
	}

	context := b.Build(results, types.EntityMatch{})

	assert.Contains(t, context, "Article 1: 'TCS shares up 2%' from Moneycontrol on 2024-03-15")
	assert.Contains(t, context, "Article 2: 'IT sector rally' from Mint on 2024-03-14")
	assert.Contains(t, context, "TCS gained today on strong volumes.")
}

func TestBuildFillsMissingMetadata(t *testing.T) {
	b := testBuilder(t, nil)
	results := []types.MatchResult{{Article: types.Article{Content: "body"}}}

	context := b.Build(results, types.EntityMatch{})

	assert.Contains(t, context, "Article 1: 'Unknown Title' from Unknown Source on Unknown Date")
}

func TestBuildTruncatesLongContent(t *testing.T) {
	b := testBuilder(t, nil)
	long := strings.Repeat("x", 1500)
	results := []types.MatchResult{{Article: types.Article{Title: "T", Source: "S", Date: "2024-03-15", Content: long}}}

	context := b.Build(results, types.EntityMatch{})

	assert.Contains(t, context, strings.Repeat("x", 1000)+"...")
	assert.NotContains(t, context, strings.Repeat("x", 1001))
}

func TestBuildSentinelWhenEmpty(t *testing.T) {
	b := testBuilder(t, nil)
	context := b.Build(nil, types.EntityMatch{})
	assert.Equal(t, Sentinel, context)
}

func TestBuildCompanyFinancialBlock(t *testing.T) {
	provider := finance.NewStatic(finance.Series{Symbol: "TCS", Points: []finance.Point{
		{Date: "2024-03-11", Close: 100, Volume: 10000},
		{Date: "2024-03-15", Close: 105, Volume: 12000},
	}})
	b := testBuilder(t, provider)

	context := b.Build(nil, types.EntityMatch{Companies: []string{"TCS"}})

	require.NotEqual(t, Sentinel, context)
	assert.Contains(t, context, "Financial Data for TCS:")
	assert.Contains(t, context, "Latest Close Price: 105.00")
	assert.Contains(t, context, "5-Day Price Change: 5.00%")
	assert.Contains(t, context, "Latest Trading Volume: 12000")
}

func TestBuildIndexFinancialBlock(t *testing.T) {
	provider := finance.NewStatic(finance.Series{Symbol: "Nifty", Points: []finance.Point{
		{Date: "2024-03-11", Close: 22000},
		{Date: "2024-03-15", Close: 22220},
	}})
	b := testBuilder(t, provider)

	context := b.Build(nil, types.EntityMatch{Indices: []string{"Nifty"}})

	assert.Contains(t, context, "Financial Data for Nifty:")
	assert.Contains(t, context, "Latest Close Value: 22220.00")
	assert.Contains(t, context, "5-Day Change: 1.00%")
}

func TestBuildSkipsEntitiesWithoutData(t *testing.T) {
	b := testBuilder(t, finance.None{})
	context := b.Build(nil, types.EntityMatch{Companies: []string{"TCS"}})
	assert.Equal(t, Sentinel, context)
}
