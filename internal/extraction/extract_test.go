package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newssense/internal/gazetteer"
)

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(gazetteer.Default())
}

func TestExtractCompanyByName(t *testing.T) {
	e := testExtractor(t)
	match := e.Extract("Why did Reliance Industries fall today?")
	assert.Equal(t, []string{"Reliance Industries"}, match.Companies)
}

func TestExtractCompanyByVariant(t *testing.T) {
	e := testExtractor(t)
	// The suffix-stripped variant "reliance" also resolves to the
	// canonical name.
	match := e.Extract("why did reliance fall today?")
	assert.Equal(t, []string{"Reliance Industries"}, match.Companies)
}

func TestExtractCompanyBySymbol(t *testing.T) {
	e := testExtractor(t)
	match := e.Extract("What is the outlook for INFY?")
	assert.Contains(t, match.Companies, "Infosys")
}

func TestExtractSymbolNeedsWordBoundary(t *testing.T) {
	e := testExtractor(t)
	// "INFYX" must not match the INFY symbol.
	match := e.Extract("The INFYX fund gained")
	assert.NotContains(t, match.Companies, "Infosys")
}

func TestExtractSymbolIsCaseSensitive(t *testing.T) {
	e := testExtractor(t)
	// Lowercase "itc" matches the company variant, not the symbol; both
	// resolve to the same canonical name exactly once.
	match := e.Extract("Is ITC a good buy?")
	count := 0
	for _, c := range match.Companies {
		if c == "ITC" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractCompanyDeduplicated(t *testing.T) {
	e := testExtractor(t)
	// Name and symbol both present; the company is recorded once.
	match := e.Extract("TCS results: TCS beats estimates")
	assert.Equal(t, []string{"TCS"}, match.Companies)
}

func TestExtractSectorsAndIndices(t *testing.T) {
	e := testExtractor(t)
	match := e.Extract("How did the Banking sector and Nifty perform?")

	assert.Contains(t, match.Sectors, "Banking")
	assert.Contains(t, match.Indices, "Nifty")
}

func TestExtractResidualKeywords(t *testing.T) {
	e := testExtractor(t)
	match := e.Extract("Why did TCS announce layoffs yesterday?")

	// Short tokens, stopwords and entity names are excluded.
	assert.Contains(t, match.Keywords, "announce")
	assert.Contains(t, match.Keywords, "layoffs")
	assert.Contains(t, match.Keywords, "yesterday")
	assert.NotContains(t, match.Keywords, "tcs")
	assert.NotContains(t, match.Keywords, "why")
	assert.NotContains(t, match.Keywords, "did")
}

func TestExtractKeywordsSkipFinancialStopwords(t *testing.T) {
	e := testExtractor(t)
	match := e.Extract("stock market shares report earnings")

	assert.NotContains(t, match.Keywords, "stock")
	assert.NotContains(t, match.Keywords, "market")
	assert.Contains(t, match.Keywords, "earnings")
}

func TestExtractEmptyText(t *testing.T) {
	e := testExtractor(t)
	match := e.Extract("")

	require.NotNil(t, match.Companies)
	assert.Empty(t, match.Companies)
	assert.Empty(t, match.Sectors)
	assert.Empty(t, match.Indices)
	assert.Empty(t, match.Keywords)
	assert.True(t, match.IsEmpty())
}
