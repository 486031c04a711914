package calculator

import (
	"testing"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

func seededResult(reportType model.ReportType, names []string) *model.ExtractionResult {
	result := &model.ExtractionResult{
		ReportType: reportType,
		Months:     model.MonthLabels(8),
		BaseValues: model.NewBaseValueSet(),
	}
	for _, name := range names {
		series := model.MetricSeries{Name: name, Values: []float64{1, 2, 3, 4, 5, 6, 7, 8}}
		result.Series = append(result.Series, series)
		result.BaseValues.SetSeries(name, series)
	}
	return result
}

func TestPlacementCharts(t *testing.T) {
	c := NewCalculator()

	result := seededResult(model.ReportPlacement, []string{
		"TG W2", "TG C2C", "VNST W2",
		"New Placements", "Terminations", "Net Placements", "Net billables",
		"Total billables",
	})
	result.Margins = []model.MarginRow{
		{Company: "TG W2", Year2024: 75, Year2025: 20, Total: 95},
		{Company: "VNST C2C", Year2024: 0, Year2025: 10, Total: 10},
	}

	charts := c.Charts(result)

	for _, key := range []string{"employment_types", "placement_metrics", "billables_trend", "gross_margin"} {
		if _, ok := charts[key]; !ok {
			t.Errorf("chart %q missing", key)
		}
	}

	pm := charts["placement_metrics"]
	if pm.Type != "bar" {
		t.Errorf("placement_metrics type = %q", pm.Type)
	}
	last := pm.Data.Datasets[len(pm.Data.Datasets)-1]
	if last.Label != "Net billables" || last.Type != "line" || last.YAxisID != "y1" {
		t.Errorf("net billables overlay = %+v", last)
	}

	gm := charts["gross_margin"]
	if len(gm.Data.Labels) != 2 || len(gm.Data.Datasets) != 3 {
		t.Errorf("gross_margin shape = %d labels, %d datasets", len(gm.Data.Labels), len(gm.Data.Datasets))
	}
	if gm.Data.Datasets[2].Data[0] != 95 {
		t.Errorf("gross_margin total[0] = %v", gm.Data.Datasets[2].Data[0])
	}
}

func TestFinanceCharts(t *testing.T) {
	c := NewCalculator()

	result := seededResult(model.ReportFinance, []string{
		"Techgene Total Income", "Techgene Total Expense", "Techgene Net Income",
		"Vensiti Total Income", "Vensiti Total Expense", "Vensiti Net Income",
		"Direct Hire Revenue", "Services Revenue", "IT Staffing Revenue",
		"Direct Hire Net Income",
	})

	charts := c.Charts(result)

	for _, key := range []string{"monthly_trend", "revenue_by_unit", "expense_breakdown", "profitability"} {
		if _, ok := charts[key]; !ok {
			t.Errorf("chart %q missing", key)
		}
	}

	eb := charts["expense_breakdown"]
	if eb.Type != "doughnut" {
		t.Errorf("expense_breakdown type = %q", eb.Type)
	}
	// Each company slice is the sum of its expense series (1+..+8).
	if got := eb.Data.Datasets[0].Data[0]; got != 36 {
		t.Errorf("expense slice = %v, want 36", got)
	}

	rev := charts["revenue_by_unit"]
	if len(rev.Data.Datasets) != 3 {
		t.Errorf("revenue_by_unit datasets = %d, want 3", len(rev.Data.Datasets))
	}
}

func TestPLCharts(t *testing.T) {
	c := NewCalculator()

	result := seededResult(model.ReportPL, []string{
		"Revenue", "COGS", "Operating Expenses",
		"Other Income", "Other Expenses", "Net Income",
	})

	charts := c.Charts(result)

	for _, key := range []string{"pl_area", "pl_net_income", "pl_waterfall"} {
		if _, ok := charts[key]; !ok {
			t.Errorf("chart %q missing", key)
		}
	}

	area := charts["pl_area"]
	if area.Type != "line" || len(area.Data.Datasets) != 3 {
		t.Errorf("pl_area = type %q, %d datasets", area.Type, len(area.Data.Datasets))
	}
	if !area.Data.Datasets[0].Fill {
		t.Error("pl_area datasets must fill")
	}

	// The profit walk uses the latest month: revenue in, costs negated.
	wf := charts["pl_waterfall"]
	steps := wf.Data.Datasets[0].Data
	if len(steps) != 5 || steps[0] != 8 || steps[1] != -8 {
		t.Errorf("pl_waterfall steps = %v", steps)
	}
}

func TestBalanceCharts(t *testing.T) {
	c := NewCalculator()

	result := seededResult(model.ReportBalance, []string{"Assets", "Liabilities", "Equity"})
	charts := c.Charts(result)

	cmp, ok := charts["bs_comparison"]
	if !ok {
		t.Fatal("bs_comparison missing")
	}
	if len(cmp.Data.Datasets) != 2 {
		t.Errorf("bs_comparison datasets = %d, want 2", len(cmp.Data.Datasets))
	}
	if _, ok := charts["bs_equity"]; !ok {
		t.Error("bs_equity missing")
	}
}

func TestMarginStatementCharts(t *testing.T) {
	c := NewCalculator()

	result := seededResult(model.ReportMargin, []string{"Gross Margin", "Margin %"})
	charts := c.Charts(result)

	trend, ok := charts["margin_trend"]
	if !ok {
		t.Fatal("margin_trend missing")
	}
	if trend.Type != "bar" || len(trend.Data.Datasets) != 2 {
		t.Errorf("margin_trend = type %q, %d datasets", trend.Type, len(trend.Data.Datasets))
	}
	pct := trend.Data.Datasets[1]
	if pct.Type != "line" || pct.YAxisID != "y1" {
		t.Errorf("margin %% overlay = %+v", pct)
	}
}

// A sparse extraction produces only the charts its series can back.
func TestChartsDegradeWithMissingSeries(t *testing.T) {
	c := NewCalculator()

	result := seededResult(model.ReportPlacement, []string{"TG W2"})
	charts := c.Charts(result)

	if _, ok := charts["employment_types"]; !ok {
		t.Error("employment_types should build from a single series")
	}
	if _, ok := charts["gross_margin"]; ok {
		t.Error("gross_margin must be absent without margin rows")
	}
	if _, ok := charts["billables_trend"]; ok {
		t.Error("billables_trend must be absent without Total billables")
	}
}
