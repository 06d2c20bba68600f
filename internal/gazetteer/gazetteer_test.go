package gazetteer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() Data {
	return Data{
		Companies: []string{"Reliance Industries", "TCS", "Jyothy Labs"},
		Symbols:   map[string]string{"RELIANCE": "Reliance Industries", "TCS": "TCS"},
		Sectors:   []string{"IT", "Banking"},
		Indices:   []string{"Nifty", "Sensex"},
		DomainWeights: map[string]float64{
			"earnings":    2.0,
			"acquisition": 2.5,
		},
	}
}

func TestNewDerivesCompanyVariants(t *testing.T) {
	g, err := New(testData())
	require.NoError(t, err)

	variants := g.VariantsOf("Reliance Industries")
	assert.Contains(t, variants, "reliance industries")
	assert.Contains(t, variants, "relianceindustries")
	assert.Contains(t, variants, "reliance")
}

func TestNewRejectsDuplicateCompanies(t *testing.T) {
	data := testData()
	data.Companies = append(data.Companies, "tcs")

	_, err := New(data)
	require.Error(t, err)
	var gazErr *Error
	assert.ErrorAs(t, err, &gazErr)
}

func TestNewRejectsEmptyTables(t *testing.T) {
	data := testData()
	data.Sectors = nil

	_, err := New(data)
	assert.Error(t, err)
}

func TestSymbolLookups(t *testing.T) {
	g, err := New(testData())
	require.NoError(t, err)

	company, ok := g.CompanyForSymbol("RELIANCE")
	require.True(t, ok)
	assert.Equal(t, "Reliance Industries", company)

	symbol, ok := g.SymbolForCompany("tcs")
	require.True(t, ok)
	assert.Equal(t, "TCS", symbol)

	_, ok = g.CompanyForSymbol("UNKNOWN")
	assert.False(t, ok)
}

func TestSymbolsAreSorted(t *testing.T) {
	g, err := New(testData())
	require.NoError(t, err)
	assert.Equal(t, []string{"RELIANCE", "TCS"}, g.Symbols())
}

func TestSectorAndIndexChecks(t *testing.T) {
	g, err := New(testData())
	require.NoError(t, err)

	assert.True(t, g.IsSector("banking"))
	assert.False(t, g.IsSector("Aviation"))
	assert.True(t, g.IsIndex("NIFTY"))
	assert.False(t, g.IsIndex("DAX"))
}

func TestDomainWeights(t *testing.T) {
	g, err := New(testData())
	require.NoError(t, err)

	assert.Equal(t, 2.5, g.DomainWeight("Acquisition"))
	assert.Equal(t, 1.0, g.DomainWeight("unknown"))
	assert.True(t, g.HasDomainTerm("earnings"))
	assert.False(t, g.HasDomainTerm("weather"))
}

func TestDefaultGazetteer(t *testing.T) {
	g := Default()

	assert.Contains(t, g.Companies(), "TCS")
	assert.True(t, g.IsIndex("Nifty"))
	assert.True(t, g.HasDomainTerm("earnings"))
}

func TestLoadFileValidatesAgainstSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazetteer.json")

	// "companies" is required by the schema.
	bad := `{"symbols": {}, "sectors": ["IT"], "indices": ["Nifty"]}`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	var gazErr *Error
	assert.ErrorAs(t, err, &gazErr)
}

func TestLoadFileAcceptsValidData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazetteer.json")

	good := `{
		"companies": ["Acme Corp"],
		"symbols": {"ACME": "Acme Corp"},
		"sectors": ["Widgets"],
		"indices": ["Acme 50"],
		"domain_weights": {"merger": 2.0}
	}`
	require.NoError(t, os.WriteFile(path, []byte(good), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Corp"}, g.Companies())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
