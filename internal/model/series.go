package model

// DefaultMonthHorizon default month window of the observed reports (Jan..Aug)
const DefaultMonthHorizon = 8

// MonthLabels returns the month labels for a horizon of n months starting at January.
func MonthLabels(n int) []string {
	all := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if n < 1 {
		n = 1
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// MetricSeries one named metric with an ordered per-month value sequence.
// Immutable once produced by the extractor.
type MetricSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Sum aggregate over the whole horizon
func (s MetricSeries) Sum() float64 {
	total := 0.0
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Latest value of the last month in the horizon; zero when empty
func (s MetricSeries) Latest() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Values[len(s.Values)-1]
}

// ZeroSeries returns an all-zero series for a metric that was expected but not found.
func ZeroSeries(name string, horizon int) MetricSeries {
	return MetricSeries{Name: name, Values: make([]float64, horizon)}
}

// BaseValueSet named numeric variables available to KPI formulas.
// Built fresh per upload; a series registered here also exposes its
// aggregate sum under the same variable name.
type BaseValueSet struct {
	Scalars map[string]float64      `json:"scalars"`
	Series  map[string]MetricSeries `json:"series"`
}

// NewBaseValueSet creates an empty value set.
func NewBaseValueSet() *BaseValueSet {
	return &BaseValueSet{
		Scalars: make(map[string]float64),
		Series:  make(map[string]MetricSeries),
	}
}

// SetScalar registers a scalar variable.
func (b *BaseValueSet) SetScalar(name string, value float64) {
	b.Scalars[name] = value
}

// AddScalar accumulates into a scalar variable.
func (b *BaseValueSet) AddScalar(name string, value float64) {
	b.Scalars[name] += value
}

// SetSeries registers a series and its sum as a scalar of the same name.
func (b *BaseValueSet) SetSeries(name string, series MetricSeries) {
	b.Series[name] = series
	b.Scalars[name] = series.Sum()
}

// Lookup resolves a variable name to its scalar value.
func (b *BaseValueSet) Lookup(name string) (float64, bool) {
	v, ok := b.Scalars[name]
	return v, ok
}

// Names returns all registered variable names.
func (b *BaseValueSet) Names() []string {
	names := make([]string, 0, len(b.Scalars))
	for name := range b.Scalars {
		names = append(names, name)
	}
	return names
}
