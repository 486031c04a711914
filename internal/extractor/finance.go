package extractor

import (
	"fmt"
	"strings"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/parser"
)

// labelProbeCols how many leading columns may hold a finance row label
const labelProbeCols = 4

// ExtractFinance processes the monthly income & expenses workbook: the
// business unit summary, the three per-unit net income sheets and the two
// company P&L sheets. Aggregate totals ("Total Revenue", "Total Expenses",
// "Total Net Income") accumulate across every processed sheet.
func (e *Extractor) ExtractFinance(wb *Workbook) (*model.ExtractionResult, error) {
	result := e.newResult(model.ReportFinance)

	// Horizon length is itself a formula variable (used by the monthly
	// average KPIs).
	result.BaseValues.SetScalar("Months", float64(e.horizon))
	result.BaseValues.SetScalar("Total Revenue", 0)
	result.BaseValues.SetScalar("Total Expenses", 0)
	result.BaseValues.SetScalar("Total Net Income", 0)

	processedAny := false
	for _, sheet := range wb.Sheets {
		rec := e.recognizer.Recognize(sheet.Name, sheet.Rows)
		status := model.SheetStatus{SheetName: sheet.Name, SheetType: string(rec.SheetType)}

		switch rec.SheetType {
		case parser.SheetBUSummary:
			e.extractSummary(sheet.Rows, result)
			status.Processed = true
		case parser.SheetBUDetail:
			e.extractBusinessUnit(sheet.Rows, rec.BusinessUnit, result)
			status.Processed = true
		case parser.SheetPnL:
			e.extractPnL(sheet.Rows, rec.Company, result)
			status.Processed = true
		}
		if status.Processed {
			processedAny = true
		}
		result.Sheets = append(result.Sheets, status)
	}

	if !processedAny {
		return nil, fmt.Errorf("no recognizable finance sheets in %s", wb.FileName)
	}
	return result, nil
}

// extractSummary Summary of Business Units: every row whose label mentions
// revenue/income/expense/profit becomes a series under its own label.
func (e *Extractor) extractSummary(rows [][]string, result *model.ExtractionResult) {
	_, monthCols := parser.FindMonthHeaderRow(rows, probeRows)
	if monthCols == nil {
		return
	}

	for _, row := range rows {
		label := parser.Cell(row, 0)
		if label == "" {
			continue
		}
		norm := parser.NormalizeLabel(label)
		if !strings.Contains(norm, "revenue") && !strings.Contains(norm, "income") &&
			!strings.Contains(norm, "expense") && !strings.Contains(norm, "profit") {
			continue
		}

		values := make([]float64, e.horizon)
		for m := 1; m <= e.horizon; m++ {
			if col, ok := monthCols[m]; ok {
				values[m-1] = parser.ParseNumber(parser.Cell(row, col))
			}
		}

		// The workbook-wide accumulators own these names; a summary row
		// labeled like one is registered under a Summary prefix instead.
		name := label
		switch norm {
		case "total revenue", "total expenses", "total net income", "months":
			name = "Summary " + label
		}
		registerSeries(result, model.MetricSeries{Name: name, Values: values})
	}
}

// extractBusinessUnit one "<Unit> Net income" sheet: Revenue, Gross Income
// and Net Income rows become "<Unit> <Metric>" series and feed the
// workbook-wide totals.
func (e *Extractor) extractBusinessUnit(rows [][]string, unit string, result *model.ExtractionResult) {
	_, monthCols := parser.FindMonthHeaderRow(rows, probeRows)

	for _, spec := range parser.BUDetailLabels {
		variable := unit + " " + spec.Variable
		series := e.extractAnyColSeries(rows, monthCols, spec.Label, variable)
		if series == nil {
			result.MissingLabels = append(result.MissingLabels, variable)
			zero := model.ZeroSeries(variable, e.horizon)
			registerSeries(result, zero)
			continue
		}
		registerSeries(result, *series)

		switch spec.Variable {
		case "Revenue":
			result.BaseValues.AddScalar("Total Revenue", series.Sum())
		case "Net Income":
			result.BaseValues.AddScalar("Total Net Income", series.Sum())
		}
	}
}

// extractPnL one company P&L sheet with "Mon 25" month columns
func (e *Extractor) extractPnL(rows [][]string, company string, result *model.ExtractionResult) {
	_, monthCols := parser.FindMonthHeaderRow(rows, probeRows)

	for _, spec := range parser.PnLLabels {
		variable := company + " " + spec.Variable
		series := e.extractAnyColSeries(rows, monthCols, spec.Label, variable)
		if series == nil {
			result.MissingLabels = append(result.MissingLabels, variable)
			zero := model.ZeroSeries(variable, e.horizon)
			registerSeries(result, zero)
			continue
		}
		registerSeries(result, *series)

		switch spec.Variable {
		case "Total Income":
			result.BaseValues.AddScalar("Total Revenue", series.Sum())
		case "Total Expense":
			result.BaseValues.AddScalar("Total Expenses", series.Sum())
		case "Net Income":
			result.BaseValues.AddScalar("Total Net Income", series.Sum())
		}
	}
}

// extractAnyColSeries reads one labeled row, probing the leading columns for
// the label; exact match first, then substring (the sheets prefix some labels,
// e.g. "Total Revenue" where the schema expects "Revenue"). Returns nil when
// the label is absent.
func (e *Extractor) extractAnyColSeries(rows [][]string, monthCols map[int]int, label, variable string) *model.MetricSeries {
	rowIdx, _ := parser.FindRowAnyCol(rows, label, labelProbeCols)
	if rowIdx < 0 {
		rowIdx, _ = parser.FindRowContaining(rows, label, labelProbeCols)
	}
	if rowIdx < 0 || monthCols == nil {
		return nil
	}

	values := make([]float64, e.horizon)
	row := rows[rowIdx]
	for m := 1; m <= e.horizon; m++ {
		if col, ok := monthCols[m]; ok {
			values[m-1] = parser.ParseNumber(parser.Cell(row, col))
		}
	}
	return &model.MetricSeries{Name: variable, Values: values}
}
