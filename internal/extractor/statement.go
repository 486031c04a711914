package extractor

import (
	"fmt"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/parser"
)

// ExtractPL processes a standalone P&L statement. Gross profit, operating
// income and net income are derived from the extracted rows.
func (e *Extractor) ExtractPL(wb *Workbook) (*model.ExtractionResult, error) {
	result, err := e.extractStatement(wb, model.ReportPL, parser.PLLabels, parser.SheetPL)
	if err != nil {
		return nil, err
	}
	e.derivePLSeries(result)
	return result, nil
}

// ExtractBalance processes a balance sheet statement.
func (e *Extractor) ExtractBalance(wb *Workbook) (*model.ExtractionResult, error) {
	return e.extractStatement(wb, model.ReportBalance, parser.BalanceLabels, parser.SheetBalance)
}

// ExtractMarginStatement processes a margin statement. The percentage row
// averages over the horizon instead of summing.
func (e *Extractor) ExtractMarginStatement(wb *Workbook) (*model.ExtractionResult, error) {
	result, err := e.extractStatement(wb, model.ReportMargin, parser.MarginStatementLabels, parser.SheetMarginStmt)
	if err != nil {
		return nil, err
	}
	if s, ok := result.FindSeries("Margin %"); ok && len(s.Values) > 0 {
		result.BaseValues.SetScalar("Margin %", s.Sum()/float64(len(s.Values)))
	}
	return result, nil
}

// extractStatement shared single-statement extraction: the first sheet
// carrying a month header and enough of the expected labels is processed,
// remaining sheets are reported unrecognized.
func (e *Extractor) extractStatement(wb *Workbook, reportType model.ReportType, specs []parser.LabelSpec, sheetType parser.SheetType) (*model.ExtractionResult, error) {
	result := e.newResult(reportType)

	processed := false
	for _, sheet := range wb.Sheets {
		rec := e.recognizer.RecognizeStatement(sheet.Name, sheet.Rows, specs, sheetType)
		status := model.SheetStatus{SheetName: sheet.Name, SheetType: string(rec.SheetType)}

		if !processed && rec.SheetType == sheetType {
			if _, monthCols := parser.FindMonthHeaderRow(sheet.Rows, probeRows); monthCols != nil {
				e.extractStatementRows(sheet.Rows, monthCols, specs, result)
				status.Processed = true
				processed = true
			}
		}
		result.Sheets = append(result.Sheets, status)
	}

	if !processed {
		return nil, fmt.Errorf("no recognizable %s sheet in %s", reportType, wb.FileName)
	}
	return result, nil
}

func (e *Extractor) extractStatementRows(rows [][]string, monthCols map[int]int, specs []parser.LabelSpec, result *model.ExtractionResult) {
	for _, spec := range specs {
		series := e.extractAnyColSeries(rows, monthCols, spec.Label, spec.Variable)
		if series == nil {
			result.MissingLabels = append(result.MissingLabels, spec.Variable)
			registerSeries(result, model.ZeroSeries(spec.Variable, e.horizon))
			continue
		}
		registerSeries(result, *series)
	}
}

// derivePLSeries gross profit = revenue - COGS, operating income = gross
// profit - opex, net income = operating income + other income - other
// expenses.
func (e *Extractor) derivePLSeries(result *model.ExtractionResult) {
	get := func(name string) []float64 {
		if s, ok := result.FindSeries(name); ok {
			return s.Values
		}
		return make([]float64, e.horizon)
	}
	at := func(values []float64, i int) float64 {
		if i >= len(values) {
			return 0
		}
		return values[i]
	}

	revenue := get("Revenue")
	cogs := get("COGS")
	opex := get("Operating Expenses")
	otherInc := get("Other Income")
	otherExp := get("Other Expenses")

	gross := make([]float64, e.horizon)
	opInc := make([]float64, e.horizon)
	net := make([]float64, e.horizon)
	for i := 0; i < e.horizon; i++ {
		gross[i] = at(revenue, i) - at(cogs, i)
		opInc[i] = gross[i] - at(opex, i)
		net[i] = opInc[i] + at(otherInc, i) - at(otherExp, i)
	}

	registerSeries(result, model.MetricSeries{Name: "Gross Profit", Values: gross})
	registerSeries(result, model.MetricSeries{Name: "Operating Income", Values: opInc})
	registerSeries(result, model.MetricSeries{Name: "Net Income", Values: net})
}
