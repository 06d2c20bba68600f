// Package gazetteer provides the static financial reference tables used
// for lexical entity matching: company names, ticker symbols, sectors,
// market indices and domain term weights. A Gazetteer is built once at
// startup and is read-only afterwards, so it is safe for concurrent use.
package gazetteer

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// companySuffixes are name suffix tokens stripped when deriving match
// variants ("Reliance Industries" also matches as "reliance").
var companySuffixes = []string{"industries", "limited", "ltd"}

// Data is the serialized form of the reference tables.
type Data struct {
	Companies     []string           `json:"companies" validate:"required,min=1,dive,required"`
	Symbols       map[string]string  `json:"symbols" validate:"required,dive,required"`
	Sectors       []string           `json:"sectors" validate:"required,min=1,dive,required"`
	Indices       []string           `json:"indices" validate:"required,min=1,dive,required"`
	DomainWeights map[string]float64 `json:"domain_weights" validate:"dive,gt=0"`
}

// Gazetteer holds the reference tables in lookup-friendly form.
type Gazetteer struct {
	companies []string
	variants  map[string][]string
	symbols   map[string]string
	sectors   []string
	indices   []string
	weights   map[string]float64
}

// New builds a Gazetteer from reference data. It returns an error when
// the data fails structural validation or violates the table invariants
// (unique canonical company names, non-empty symbol targets). A failure
// here is fatal for the engine.
func New(data Data) (*Gazetteer, error) {
	if err := validator.New().Struct(data); err != nil {
		return nil, &Error{Message: "invalid gazetteer data", Cause: err}
	}

	seen := make(map[string]bool, len(data.Companies))
	variants := make(map[string][]string, len(data.Companies))
	for _, name := range data.Companies {
		folded := strings.ToLower(name)
		if seen[folded] {
			return nil, &Error{Message: "duplicate canonical company name: " + name}
		}
		seen[folded] = true
		variants[folded] = deriveVariants(name)
	}

	weights := make(map[string]float64, len(data.DomainWeights))
	for term, w := range data.DomainWeights {
		weights[strings.ToLower(term)] = w
	}

	g := &Gazetteer{
		companies: append([]string(nil), data.Companies...),
		variants:  variants,
		symbols:   make(map[string]string, len(data.Symbols)),
		sectors:   append([]string(nil), data.Sectors...),
		indices:   append([]string(nil), data.Indices...),
		weights:   weights,
	}
	for symbol, company := range data.Symbols {
		g.symbols[strings.ToUpper(symbol)] = company
	}
	return g, nil
}

// deriveVariants returns the lowercased match variants of a company name:
// the name itself, the name with spaces removed, and the name with each
// known suffix token stripped. Variants are deduplicated.
func deriveVariants(name string) []string {
	lower := strings.ToLower(name)
	candidates := []string{lower, strings.ReplaceAll(lower, " ", "")}
	for _, suffix := range companySuffixes {
		if strings.Contains(lower, suffix) {
			stripped := strings.Join(strings.Fields(strings.ReplaceAll(lower, suffix, "")), " ")
			candidates = append(candidates, stripped)
		}
	}

	seen := make(map[string]bool, len(candidates))
	variants := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}

// Companies returns the canonical company names.
func (g *Gazetteer) Companies() []string {
	return g.companies
}

// VariantsOf returns the lowercased match variants of a company name, or
// nil when the company is unknown.
func (g *Gazetteer) VariantsOf(company string) []string {
	return g.variants[strings.ToLower(company)]
}

// Symbols returns the known ticker symbols in deterministic order.
func (g *Gazetteer) Symbols() []string {
	symbols := make([]string, 0, len(g.symbols))
	for s := range g.symbols {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// CompanyForSymbol resolves a ticker symbol to its canonical company
// name. The lookup is case-sensitive on purpose: symbols are matched
// against original-case text.
func (g *Gazetteer) CompanyForSymbol(symbol string) (string, bool) {
	company, ok := g.symbols[symbol]
	return company, ok
}

// SymbolForCompany resolves a canonical company name to its ticker
// symbol (case-insensitive on the company name).
func (g *Gazetteer) SymbolForCompany(company string) (string, bool) {
	for symbol, name := range g.symbols {
		if strings.EqualFold(name, company) {
			return symbol, true
		}
	}
	return "", false
}

// Sectors returns the known sector names.
func (g *Gazetteer) Sectors() []string {
	return g.sectors
}

// Indices returns the known market index names.
func (g *Gazetteer) Indices() []string {
	return g.indices
}

// IsSector reports whether text names a known sector (case-insensitive).
func (g *Gazetteer) IsSector(text string) bool {
	for _, s := range g.sectors {
		if strings.EqualFold(s, text) {
			return true
		}
	}
	return false
}

// IsIndex reports whether text names a known index (case-insensitive).
func (g *Gazetteer) IsIndex(text string) bool {
	for _, idx := range g.indices {
		if strings.EqualFold(idx, text) {
			return true
		}
	}
	return false
}

// DomainWeight returns the tabulated weight for a domain term, or 1.0
// when the term is not in the table.
func (g *Gazetteer) DomainWeight(term string) float64 {
	if w, ok := g.weights[strings.ToLower(term)]; ok {
		return w
	}
	return 1.0
}

// HasDomainTerm reports whether the term is in the domain weight table.
func (g *Gazetteer) HasDomainTerm(term string) bool {
	_, ok := g.weights[strings.ToLower(term)]
	return ok
}
