package formula

import "github.com/praneethkukunuru/recruitment-dashboard/internal/model"

// Registry the built-in KPI set. Order is the dashboard card order.
var Registry = []model.KPIDefinition{
	// Finance
	{Key: model.KPITotalRevenue, Label: "Total Revenue", Format: model.FormatCurrency,
		DefaultFormula: "Total Revenue"},
	{Key: model.KPITotalExpenses, Label: "Total Expenses", Format: model.FormatCurrency,
		DefaultFormula: "Total Expenses"},
	{Key: model.KPITotalNetIncome, Label: "Total Net Income", Format: model.FormatCurrency,
		DefaultFormula: "Total Net Income"},
	{Key: model.KPIProfitMargin, Label: "Profit Margin", Format: model.FormatPercentage,
		DefaultFormula: "Total Net Income / Total Revenue * 100"},
	{Key: model.KPIAvgMonthlyRevenue, Label: "Avg Monthly Revenue", Format: model.FormatCurrency,
		DefaultFormula: "Total Revenue / Months"},
	{Key: model.KPIAvgMonthlyNetIncome, Label: "Avg Monthly Net Income", Format: model.FormatCurrency,
		DefaultFormula: "Total Net Income / Months"},

	// Recruitment
	{Key: model.KPITotalCurrentBillables, Label: "Total Current Billables", Format: model.FormatCount,
		DefaultFormula: "Total billables Latest"},
	{Key: model.KPIW2Placements, Label: "W2 Placements", Format: model.FormatCount,
		DefaultFormula: "TG W2 Latest + VNST W2 Latest"},
	{Key: model.KPIC2CPlacements, Label: "C2C Placements", Format: model.FormatCount,
		DefaultFormula: "TG C2C Latest + VNST C2C Latest"},
	{Key: model.KPINetPlacementsLatest, Label: "Net Placements (Latest Month)", Format: model.FormatCount,
		DefaultFormula: "Net Placements Latest"},
	{Key: model.KPITotalPlacements, Label: "Total Placements", Format: model.FormatCount,
		DefaultFormula: "New Placements"},
	{Key: model.KPITotalTerminations, Label: "Total Terminations", Format: model.FormatCount,
		DefaultFormula: "Terminations"},
	{Key: model.KPIGrossMarginTotal, Label: "Gross Margin Total", Format: model.FormatCurrency,
		DefaultFormula: "Gross Margin Total"},
}

// Defaults returns the built-in FormulaSpec.
func Defaults() model.FormulaSpec {
	spec := make(model.FormulaSpec, len(Registry))
	for _, def := range Registry {
		spec[def.Key] = def.DefaultFormula
	}
	return spec
}

// Definition looks up a KPI definition by key.
func Definition(key string) (model.KPIDefinition, bool) {
	for _, def := range Registry {
		if def.Key == key {
			return def, true
		}
	}
	return model.KPIDefinition{}, false
}

// KnownKey reports whether key names a registered KPI.
func KnownKey(key string) bool {
	_, ok := Definition(key)
	return ok
}
