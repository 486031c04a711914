package calculator

import (
	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/parser"
)

// palette dashboard series colors, assigned in dataset order
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc949", "#af7aa1", "#ff9da7",
}

func color(i int) string {
	return palette[i%len(palette)]
}

// Charts builds the Chart.js config set for an extraction. The chart keys
// are stable; the frontend looks them up by name.
func (c *Calculator) Charts(result *model.ExtractionResult) map[string]model.ChartConfig {
	switch result.ReportType {
	case model.ReportPlacement:
		return c.placementCharts(result)
	case model.ReportFinance:
		return c.financeCharts(result)
	case model.ReportPL:
		return c.plCharts(result)
	case model.ReportBalance:
		return c.balanceCharts(result)
	case model.ReportMargin:
		return c.marginStatementCharts(result)
	default:
		return map[string]model.ChartConfig{}
	}
}

func (c *Calculator) placementCharts(result *model.ExtractionResult) map[string]model.ChartConfig {
	charts := map[string]model.ChartConfig{}

	if chart, ok := c.employmentChart(result); ok {
		charts["employment_types"] = chart
	}
	if chart, ok := c.placementMetricsChart(result); ok {
		charts["placement_metrics"] = chart
	}
	if chart, ok := c.billablesChart(result); ok {
		charts["billables_trend"] = chart
	}
	if chart, ok := c.marginChart(result); ok {
		charts["gross_margin"] = chart
	}
	return charts
}

// employmentChart stacked bars, one dataset per company/employment type.
// Datasets persisted without the company split fall back to the plain
// employment type series.
func (c *Calculator) employmentChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	for i, spec := range parser.EmploymentLabels {
		series, ok := result.FindSeries(spec.Variable)
		if !ok {
			continue
		}
		datasets = append(datasets, model.ChartDataset{
			Label:           series.Name,
			Data:            series.Values,
			BackgroundColor: color(i),
		})
	}
	if len(datasets) == 0 {
		for i, name := range []string{"W2", "C2C", "1099", "Referral"} {
			series, ok := result.FindSeries(name)
			if !ok {
				continue
			}
			datasets = append(datasets, model.ChartDataset{
				Label:           series.Name,
				Data:            series.Values,
				BackgroundColor: color(i),
			})
		}
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type: "bar",
		Data: model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{
			"responsive": true,
			"scales": map[string]any{
				"x": map[string]any{"stacked": true},
				"y": map[string]any{"stacked": true, "beginAtZero": true},
			},
		},
	}, true
}

// placementMetricsChart grouped bars for the placement counts, with net
// billables overlaid as a line on a secondary axis
func (c *Calculator) placementMetricsChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	for i, name := range []string{"New Placements", "Terminations", "Net Placements"} {
		series, ok := result.FindSeries(name)
		if !ok {
			continue
		}
		datasets = append(datasets, model.ChartDataset{
			Label:           series.Name,
			Data:            series.Values,
			BackgroundColor: color(i),
		})
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	if series, ok := result.FindSeries("Net billables"); ok {
		datasets = append(datasets, model.ChartDataset{
			Label:       series.Name,
			Data:        series.Values,
			Type:        "line",
			BorderColor: color(3),
			BorderWidth: 2,
			Tension:     0.3,
			YAxisID:     "y1",
		})
	}

	return model.ChartConfig{
		Type: "bar",
		Data: model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{
			"responsive": true,
			"scales": map[string]any{
				"y":  map[string]any{"beginAtZero": true},
				"y1": map[string]any{"position": "right", "beginAtZero": true, "grid": map[string]any{"drawOnChartArea": false}},
			},
		},
	}, true
}

// billablesChart total billables trend line
func (c *Calculator) billablesChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	series, ok := result.FindSeries("Total billables")
	if !ok {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type: "line",
		Data: model.ChartData{
			Labels: result.Months,
			Datasets: []model.ChartDataset{{
				Label:       series.Name,
				Data:        series.Values,
				BorderColor: color(0),
				BorderWidth: 2,
				Fill:        true,
				Tension:     0.3,
			}},
		},
		Options: map[string]any{
			"responsive": true,
			"scales":     map[string]any{"y": map[string]any{"beginAtZero": true}},
		},
	}, true
}

// marginChart gross margin by company, 2024 vs 2025 vs total
func (c *Calculator) marginChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	if len(result.Margins) == 0 {
		return model.ChartConfig{}, false
	}

	companies := make([]string, len(result.Margins))
	y24 := make([]float64, len(result.Margins))
	y25 := make([]float64, len(result.Margins))
	totals := make([]float64, len(result.Margins))
	for i, m := range result.Margins {
		companies[i] = m.Company
		y24[i] = m.Year2024
		y25[i] = m.Year2025
		totals[i] = m.Total
	}

	return model.ChartConfig{
		Type: "bar",
		Data: model.ChartData{
			Labels: companies,
			Datasets: []model.ChartDataset{
				{Label: "2024", Data: y24, BackgroundColor: color(0)},
				{Label: "2025", Data: y25, BackgroundColor: color(1)},
				{Label: "Total", Data: totals, BackgroundColor: color(2)},
			},
		},
		Options: map[string]any{
			"responsive": true,
			"scales":     map[string]any{"y": map[string]any{"beginAtZero": true}},
		},
	}, true
}

func (c *Calculator) plCharts(result *model.ExtractionResult) map[string]model.ChartConfig {
	charts := map[string]model.ChartConfig{}

	if chart, ok := c.plAreaChart(result); ok {
		charts["pl_area"] = chart
	}
	if chart, ok := c.plNetIncomeChart(result); ok {
		charts["pl_net_income"] = chart
	}
	if chart, ok := c.plWaterfallChart(result); ok {
		charts["pl_waterfall"] = chart
	}
	return charts
}

// plAreaChart stacked revenue, COGS and opex areas
func (c *Calculator) plAreaChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	for i, name := range []string{"Revenue", "COGS", "Operating Expenses"} {
		series, ok := result.FindSeries(name)
		if !ok {
			continue
		}
		datasets = append(datasets, model.ChartDataset{
			Label:           series.Name,
			Data:            series.Values,
			BorderColor:     color(i),
			BackgroundColor: color(i),
			BorderWidth:     2,
			Fill:            true,
			Tension:         0.3,
		})
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type:    "line",
		Data:    model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{"responsive": true},
	}, true
}

// plNetIncomeChart net income trend line
func (c *Calculator) plNetIncomeChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	series, ok := result.FindSeries("Net Income")
	if !ok {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type: "line",
		Data: model.ChartData{
			Labels: result.Months,
			Datasets: []model.ChartDataset{{
				Label:       series.Name,
				Data:        series.Values,
				BorderColor: color(4),
				BorderWidth: 2,
				Tension:     0.3,
			}},
		},
		Options: map[string]any{"responsive": true},
	}, true
}

// plWaterfallChart profit walk of the latest month: revenue in, costs out
func (c *Calculator) plWaterfallChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	latest := func(name string) (float64, bool) {
		series, ok := result.FindSeries(name)
		if !ok {
			return 0, false
		}
		return series.Latest(), true
	}

	revenue, ok := latest("Revenue")
	if !ok {
		return model.ChartConfig{}, false
	}
	cogs, _ := latest("COGS")
	opex, _ := latest("Operating Expenses")
	otherInc, _ := latest("Other Income")
	otherExp, _ := latest("Other Expenses")

	steps := []float64{revenue, -cogs, -opex, otherInc, -otherExp}
	colors := make([]string, len(steps))
	for i, v := range steps {
		if v >= 0 {
			colors[i] = color(4)
		} else {
			colors[i] = color(2)
		}
	}

	return model.ChartConfig{
		Type: "bar",
		Data: model.ChartData{
			Labels: []string{"Revenue", "COGS", "Opex", "Other Income", "Other Expenses"},
			Datasets: []model.ChartDataset{{
				Label:           "Profit Walk",
				Data:            steps,
				BackgroundColor: colors,
			}},
		},
		Options: map[string]any{"responsive": true},
	}, true
}

func (c *Calculator) balanceCharts(result *model.ExtractionResult) map[string]model.ChartConfig {
	charts := map[string]model.ChartConfig{}

	if chart, ok := c.balanceComparisonChart(result); ok {
		charts["bs_comparison"] = chart
	}
	if chart, ok := c.balanceEquityChart(result); ok {
		charts["bs_equity"] = chart
	}
	return charts
}

// balanceComparisonChart assets vs liabilities lines
func (c *Calculator) balanceComparisonChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	for i, name := range []string{"Assets", "Liabilities"} {
		series, ok := result.FindSeries(name)
		if !ok {
			continue
		}
		datasets = append(datasets, model.ChartDataset{
			Label:       series.Name,
			Data:        series.Values,
			BorderColor: color(i),
			BorderWidth: 2,
			Tension:     0.3,
		})
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type:    "line",
		Data:    model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{"responsive": true},
	}, true
}

// balanceEquityChart equity trend line
func (c *Calculator) balanceEquityChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	series, ok := result.FindSeries("Equity")
	if !ok {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type: "line",
		Data: model.ChartData{
			Labels: result.Months,
			Datasets: []model.ChartDataset{{
				Label:       series.Name,
				Data:        series.Values,
				BorderColor: color(3),
				BorderWidth: 2,
				Fill:        true,
				Tension:     0.3,
			}},
		},
		Options: map[string]any{"responsive": true},
	}, true
}

func (c *Calculator) marginStatementCharts(result *model.ExtractionResult) map[string]model.ChartConfig {
	charts := map[string]model.ChartConfig{}
	if chart, ok := c.marginTrendChart(result); ok {
		charts["margin_trend"] = chart
	}
	return charts
}

// marginTrendChart margin amount bars with the percentage overlaid on a
// secondary axis
func (c *Calculator) marginTrendChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	amount, ok := result.FindSeries("Gross Margin")
	if !ok {
		return model.ChartConfig{}, false
	}

	datasets := []model.ChartDataset{{
		Label:           amount.Name,
		Data:            amount.Values,
		BackgroundColor: color(0),
	}}
	if pct, ok := result.FindSeries("Margin %"); ok {
		datasets = append(datasets, model.ChartDataset{
			Label:       pct.Name,
			Data:        pct.Values,
			Type:        "line",
			BorderColor: color(1),
			BorderWidth: 2,
			Tension:     0.3,
			YAxisID:     "y1",
		})
	}

	return model.ChartConfig{
		Type: "bar",
		Data: model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{
			"responsive": true,
			"scales": map[string]any{
				"y":  map[string]any{"beginAtZero": true},
				"y1": map[string]any{"position": "right", "beginAtZero": true, "grid": map[string]any{"drawOnChartArea": false}},
			},
		},
	}, true
}

func (c *Calculator) financeCharts(result *model.ExtractionResult) map[string]model.ChartConfig {
	charts := map[string]model.ChartConfig{}

	if chart, ok := c.monthlyTrendChart(result); ok {
		charts["monthly_trend"] = chart
	}
	if chart, ok := c.revenueByUnitChart(result); ok {
		charts["revenue_by_unit"] = chart
	}
	if chart, ok := c.expenseBreakdownChart(result); ok {
		charts["expense_breakdown"] = chart
	}
	if chart, ok := c.profitabilityChart(result); ok {
		charts["profitability"] = chart
	}
	return charts
}

// monthlyTrendChart company income vs expense lines from the P&L sheets
func (c *Calculator) monthlyTrendChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	i := 0
	for _, company := range []string{"Techgene", "Vensiti"} {
		for _, metric := range []string{"Total Income", "Total Expense"} {
			series, ok := result.FindSeries(company + " " + metric)
			if !ok {
				continue
			}
			datasets = append(datasets, model.ChartDataset{
				Label:       series.Name,
				Data:        series.Values,
				BorderColor: color(i),
				BorderWidth: 2,
				Tension:     0.3,
			})
			i++
		}
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type:    "line",
		Data:    model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{"responsive": true},
	}, true
}

// revenueByUnitChart revenue bars per business unit
func (c *Calculator) revenueByUnitChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	for i, unit := range []string{"Direct Hire", "Services", "IT Staffing"} {
		series, ok := result.FindSeries(unit + " Revenue")
		if !ok {
			continue
		}
		datasets = append(datasets, model.ChartDataset{
			Label:           unit,
			Data:            series.Values,
			BackgroundColor: color(i),
		})
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type: "bar",
		Data: model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{
			"responsive": true,
			"scales":     map[string]any{"y": map[string]any{"beginAtZero": true}},
		},
	}, true
}

// expenseBreakdownChart total expenses per company as a doughnut
func (c *Calculator) expenseBreakdownChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var labels []string
	var totals []float64
	var colors []string
	for i, company := range []string{"Techgene", "Vensiti"} {
		series, ok := result.FindSeries(company + " Total Expense")
		if !ok {
			continue
		}
		labels = append(labels, company)
		totals = append(totals, series.Sum())
		colors = append(colors, color(i))
	}
	if len(labels) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type: "doughnut",
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.ChartDataset{{
				Label:           "Total Expenses",
				Data:            totals,
				BackgroundColor: colors,
			}},
		},
		Options: map[string]any{"responsive": true},
	}, true
}

// profitabilityChart net income lines per business unit and company
func (c *Calculator) profitabilityChart(result *model.ExtractionResult) (model.ChartConfig, bool) {
	var datasets []model.ChartDataset
	i := 0
	for _, name := range []string{"Direct Hire", "Services", "IT Staffing", "Techgene", "Vensiti"} {
		series, ok := result.FindSeries(name + " Net Income")
		if !ok {
			continue
		}
		datasets = append(datasets, model.ChartDataset{
			Label:       name,
			Data:        series.Values,
			BorderColor: color(i),
			BorderWidth: 2,
			Tension:     0.3,
		})
		i++
	}
	if len(datasets) == 0 {
		return model.ChartConfig{}, false
	}

	return model.ChartConfig{
		Type:    "line",
		Data:    model.ChartData{Labels: result.Months, Datasets: datasets},
		Options: map[string]any{"responsive": true},
	}, true
}
