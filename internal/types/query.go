package types

// Intent classifies what a question is asking for.
type Intent string

// Intent values, in classification priority order.
const (
	IntentInformation Intent = "information"
	IntentExplanation Intent = "explanation"
	IntentAnalysis    Intent = "analysis"
	IntentMovement    Intent = "movement"
	IntentPrediction  Intent = "prediction"
	IntentComparison  Intent = "comparison"
	IntentGeneral     Intent = "general"
)

// EntityMatch holds the typed entities extracted from a text. Companies,
// sectors and indices carry canonical gazetteer names, never the raw
// matched substring. Keywords preserve token order.
type EntityMatch struct {
	Companies []string `json:"companies"`
	Sectors   []string `json:"sectors"`
	Indices   []string `json:"indices"`
	Keywords  []string `json:"keywords"`
}

// IsEmpty reports whether no typed entity was found.
func (e EntityMatch) IsEmpty() bool {
	return len(e.Companies) == 0 && len(e.Sectors) == 0 && len(e.Indices) == 0
}

// QueryInfo is the processed form of an incoming question, consumed by
// the scorer.
type QueryInfo struct {
	OriginalQuery string             `json:"original_query"`
	CleanedQuery  string             `json:"cleaned_query"`
	Entities      EntityMatch        `json:"entities"`
	Intent        Intent             `json:"intent"`
	Phrases       []string           `json:"phrases"`
	KeyTerms      map[string]float64 `json:"key_terms"`
}
