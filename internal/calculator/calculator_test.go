package calculator

import (
	"testing"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/formula"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

func financeValues() *model.BaseValueSet {
	vars := model.NewBaseValueSet()
	vars.SetScalar("Total Revenue", 1000)
	vars.SetScalar("Total Expenses", 800)
	vars.SetScalar("Total Net Income", 200)
	vars.SetScalar("Months", 8)
	return vars
}

func TestCalculateDefaults(t *testing.T) {
	c := NewCalculator()

	formulas := model.FormulaSpec{
		"total_revenue":       "Total Revenue",
		"profit_margin":       "Total Net Income / Total Revenue * 100",
		"avg_monthly_revenue": "Total Revenue / Months",
	}
	results := c.Calculate(financeValues(), formulas)

	if got := results["total_revenue"]; got.Value != 1000 || got.Error {
		t.Errorf("total_revenue = %+v", got)
	}
	if got := results["profit_margin"]; got.Value != 20 || got.Format != model.FormatPercentage {
		t.Errorf("profit_margin = %+v", got)
	}
	if got := results["avg_monthly_revenue"]; got.Value != 125 {
		t.Errorf("avg_monthly_revenue = %+v", got)
	}
	if got := results["total_revenue"]; got.Label != "Total Revenue" {
		t.Errorf("total_revenue label = %q", got.Label)
	}
}

// One broken formula must not take the other KPIs down with it.
func TestCalculateIsolatesErrors(t *testing.T) {
	c := NewCalculator()

	formulas := model.FormulaSpec{
		"total_revenue": "Total Revenue",
		"profit_margin": "Total Net Income / Nonexistent Variable",
	}
	results := c.Calculate(financeValues(), formulas)

	if got := results["profit_margin"]; !got.Error || got.Value != 0 {
		t.Errorf("profit_margin = %+v, want errored zero", got)
	}
	if got := results["total_revenue"]; got.Error || got.Value != 1000 {
		t.Errorf("total_revenue = %+v, want clean 1000", got)
	}
}

func TestCalculateUnknownKeyKeepsKeyAsLabel(t *testing.T) {
	c := NewCalculator()

	results := c.Calculate(financeValues(), model.FormulaSpec{"custom_thing": "Total Revenue * 2"})
	got := results["custom_thing"]
	if got.Value != 2000 || got.Label != "custom_thing" {
		t.Errorf("custom_thing = %+v", got)
	}
}

func TestProcessEvaluatesFullDefaultSet(t *testing.T) {
	c := NewCalculator()

	result := &model.ExtractionResult{
		ReportType: model.ReportFinance,
		Months:     model.MonthLabels(8),
		BaseValues: financeValues(),
	}
	// Recruitment variables so every default formula resolves.
	for _, name := range []string{
		"Total billables", "TG W2", "VNST W2", "TG C2C", "VNST C2C",
		"Net Placements", "New Placements", "Terminations",
	} {
		result.BaseValues.SetScalar(name, 10)
		result.BaseValues.SetScalar(name+" Latest", 5)
	}
	result.BaseValues.SetScalar("Gross Margin Total", 500)

	out := c.Process(result, formula.Defaults())
	if len(out.KPIs) != len(formula.Registry) {
		t.Fatalf("KPIs = %d, want %d", len(out.KPIs), len(formula.Registry))
	}
	for key, kpi := range out.KPIs {
		if kpi.Error {
			t.Errorf("KPI %s errored", key)
		}
	}
}
