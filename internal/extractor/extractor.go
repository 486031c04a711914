// Package extractor turns uploaded workbooks into normalized metric series
// and the base value set consumed by KPI formulas.
package extractor

import (
	"fmt"
	"time"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/parser"
)

// Extractor label-driven sheet extractor
type Extractor struct {
	horizon    int
	recognizer *parser.SheetRecognizer
}

// New creates an extractor with the given month horizon.
func New(horizon int) *Extractor {
	if horizon <= 0 {
		horizon = model.DefaultMonthHorizon
	}
	return &Extractor{
		horizon:    horizon,
		recognizer: parser.NewSheetRecognizer(),
	}
}

// Extract dispatches on the report type.
func (e *Extractor) Extract(wb *Workbook, reportType model.ReportType) (*model.ExtractionResult, error) {
	switch reportType {
	case model.ReportPlacement:
		return e.ExtractPlacement(wb)
	case model.ReportFinance:
		return e.ExtractFinance(wb)
	case model.ReportPL:
		return e.ExtractPL(wb)
	case model.ReportBalance:
		return e.ExtractBalance(wb)
	case model.ReportMargin:
		return e.ExtractMarginStatement(wb)
	default:
		return nil, fmt.Errorf("unsupported report type %q", reportType)
	}
}

// newResult shared result scaffolding
func (e *Extractor) newResult(reportType model.ReportType) *model.ExtractionResult {
	return &model.ExtractionResult{
		ReportType:  reportType,
		Months:      model.MonthLabels(e.horizon),
		BaseValues:  model.NewBaseValueSet(),
		ExtractedAt: time.Now(),
	}
}

// extractSeries reads one labeled row as a per-month series. The label is
// looked up in the designated label column; a missing label yields a
// zero-filled series so the remaining metrics still extract.
func (e *Extractor) extractSeries(rows [][]string, labelCol int, monthCols map[int]int, spec parser.LabelSpec) (model.MetricSeries, bool) {
	rowIdx := parser.FindRowByLabel(rows, labelCol, spec.Label)
	if rowIdx < 0 {
		return model.ZeroSeries(spec.Variable, e.horizon), false
	}

	values := make([]float64, e.horizon)
	row := rows[rowIdx]
	for m := 1; m <= e.horizon; m++ {
		col, ok := monthCols[m]
		if !ok {
			continue
		}
		values[m-1] = parser.ParseNumber(parser.Cell(row, col))
	}
	return model.MetricSeries{Name: spec.Variable, Values: values}, true
}

// registerSeries stores a series in the result and exposes both its sum and
// its latest-month value as formula variables.
func registerSeries(result *model.ExtractionResult, series model.MetricSeries) {
	result.Series = append(result.Series, series)
	result.BaseValues.SetSeries(series.Name, series)
	result.BaseValues.SetScalar(series.Name+" Latest", series.Latest())
}
