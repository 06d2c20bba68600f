// Package finance supplies recent price series for companies and market
// indices. The engine never fetches market data itself; a Provider is a
// collaborator that answers lookups from whatever backing store it has.
package finance

// Point is one trading day of a price series.
type Point struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume,omitempty"`
}

// Series is a chronological price series for one instrument, oldest
// point first.
type Series struct {
	Symbol string  `json:"symbol"`
	Points []Point `json:"points"`
}

// Latest returns the most recent point.
func (s Series) Latest() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// FiveDayChange returns the percentage change of the close over the last
// five trading days (fewer when the series is shorter). A series with
// fewer than two points, or a zero opening close, has no defined change.
func (s Series) FiveDayChange() (float64, bool) {
	if len(s.Points) < 2 {
		return 0, false
	}
	window := s.Points
	if len(window) > 5 {
		window = window[len(window)-5:]
	}
	first := window[0].Close
	last := window[len(window)-1].Close
	if first == 0 {
		return 0, false
	}
	return (last/first - 1) * 100, true
}

// Provider answers price-series lookups by ticker symbol.
type Provider interface {
	// SeriesFor returns the series for a symbol, or false when the
	// provider has no data for it.
	SeriesFor(symbol string) (Series, bool)
}

// Static is an in-memory Provider backed by a fixed symbol map. Useful
// for tests and for callers that assemble data themselves.
type Static struct {
	series map[string]Series
}

// NewStatic builds a Static provider from a list of series.
func NewStatic(series ...Series) *Static {
	m := make(map[string]Series, len(series))
	for _, s := range series {
		m[s.Symbol] = s
	}
	return &Static{series: m}
}

// SeriesFor implements Provider.
func (p *Static) SeriesFor(symbol string) (Series, bool) {
	s, ok := p.series[symbol]
	return s, ok
}

// None is a Provider with no data. It stands in when the caller has no
// financial data source configured.
type None struct{}

// SeriesFor implements Provider. It always misses.
func (None) SeriesFor(string) (Series, bool) {
	return Series{}, false
}
