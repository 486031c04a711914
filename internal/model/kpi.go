package model

// KPI value formats
const (
	FormatCurrency   = "currency"
	FormatPercentage = "percentage"
	FormatCount      = "count"
)

// Finance KPI keys
const (
	KPITotalRevenue        = "total_revenue"
	KPITotalExpenses       = "total_expenses"
	KPITotalNetIncome      = "total_net_income"
	KPIProfitMargin        = "profit_margin"
	KPIAvgMonthlyRevenue   = "avg_monthly_revenue"
	KPIAvgMonthlyNetIncome = "avg_monthly_net_income"
)

// Recruitment KPI keys
const (
	KPITotalPlacements       = "total_placements"
	KPITotalTerminations     = "total_terminations"
	KPINetPlacementsLatest   = "net_placements_latest"
	KPIW2Placements          = "w2_placements"
	KPIC2CPlacements         = "c2c_placements"
	KPITotalCurrentBillables = "total_current_billables"
	KPIGrossMarginTotal      = "gross_margin_total"
)

// KPIDefinition a registered KPI: display label, value format and
// the built-in default formula over BaseValueSet variable names.
type KPIDefinition struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Format         string `json:"format"`
	DefaultFormula string `json:"defaultFormula"`
}

// FormulaSpec KPI key -> formula string. Starts from built-in defaults,
// user edits override individual keys.
type FormulaSpec map[string]string

// KPIResult one evaluated KPI. Always recomputed from
// (BaseValueSet, FormulaSpec); never persisted.
type KPIResult struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Format string  `json:"format"`
	Error  bool    `json:"error,omitempty"`
}
