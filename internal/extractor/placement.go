package extractor

import (
	"fmt"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/parser"
)

// probeRows how deep to look for header and label cells in loosely
// structured sheets
const probeRows = 20

// ExtractPlacement processes a multi-sheet recruitment placement report:
// employment types, billables + placement metrics, and gross margin.
// Unrecognized sheets are skipped; recognized sheets with missing rows
// degrade to zero-filled series.
func (e *Extractor) ExtractPlacement(wb *Workbook) (*model.ExtractionResult, error) {
	result := e.newResult(model.ReportPlacement)

	seen := map[parser.SheetType]bool{}
	for _, sheet := range wb.Sheets {
		rec := e.recognizer.Recognize(sheet.Name, sheet.Rows)
		status := model.SheetStatus{SheetName: sheet.Name, SheetType: string(rec.SheetType)}

		switch rec.SheetType {
		case parser.SheetEmployment:
			if !seen[rec.SheetType] {
				e.extractEmployment(sheet.Rows, result)
				status.Processed = true
			}
		case parser.SheetPlacements:
			if !seen[rec.SheetType] {
				e.extractPlacementMetrics(sheet.Rows, result)
				status.Processed = true
			}
		case parser.SheetGrossMargin:
			if !seen[rec.SheetType] {
				e.extractGrossMargin(sheet.Rows, result)
				status.Processed = true
			}
		}
		seen[rec.SheetType] = true
		result.Sheets = append(result.Sheets, status)
	}

	if len(result.Series) == 0 && len(result.Margins) == 0 {
		return nil, fmt.Errorf("no recognizable placement sheets in %s", wb.FileName)
	}
	return result, nil
}

// extractEmployment sheet 1: per-company employment type counts
func (e *Extractor) extractEmployment(rows [][]string, result *model.ExtractionResult) {
	_, monthCols := parser.FindMonthHeaderRow(rows, probeRows)
	labelCol := e.findLabelColumn(rows, parser.EmploymentLabels)

	for _, spec := range parser.EmploymentLabels {
		series, found := e.extractSeries(rows, labelCol, monthCols, spec)
		if !found {
			result.MissingLabels = append(result.MissingLabels, spec.Label)
		}
		registerSeries(result, series)
	}
}

// extractPlacementMetrics sheet 2: billables block + placement metrics block
func (e *Extractor) extractPlacementMetrics(rows [][]string, result *model.ExtractionResult) {
	_, monthCols := parser.FindMonthHeaderRow(rows, probeRows)

	specs := append(append([]parser.LabelSpec{}, parser.BillableLabels...), parser.PlacementMetricLabels...)
	labelCol := e.findLabelColumn(rows, specs)

	for _, spec := range specs {
		series, found := e.extractSeries(rows, labelCol, monthCols, spec)
		if !found {
			result.MissingLabels = append(result.MissingLabels, spec.Label)
		}
		registerSeries(result, series)
	}
}

// extractGrossMargin sheet 3: per-company margins with 2024/2025/total columns
func (e *Extractor) extractGrossMargin(rows [][]string, result *model.ExtractionResult) {
	col2024, col2025, colTotal := findMarginColumns(rows)

	grandTotal := 0.0
	for _, row := range rows {
		company := parser.Cell(row, 0)
		if company == "" {
			continue
		}
		switch parser.NormalizeLabel(company) {
		case "2024", "2025", "total", "company":
			continue // header or stray year row
		}

		y24 := parser.ParseNumber(parser.Cell(row, col2024))
		y25 := parser.ParseNumber(parser.Cell(row, col2025))
		total := parser.ParseNumber(parser.Cell(row, colTotal))
		if total == 0 {
			total = y24 + y25
		}
		if y24 == 0 && y25 == 0 && total == 0 {
			continue
		}

		result.Margins = append(result.Margins, model.MarginRow{
			Company:  company,
			Year2024: y24,
			Year2025: y25,
			Total:    total,
		})
		grandTotal += total
	}

	result.BaseValues.SetScalar("Gross Margin Total", grandTotal)
}

// findLabelColumn probes for the column the row labels live in. Placement
// report revisions have shifted it, so the first matching spec decides.
func (e *Extractor) findLabelColumn(rows [][]string, specs []parser.LabelSpec) int {
	for _, spec := range specs {
		if col := parser.FindLabelColumn(rows, spec.Label, probeRows); col >= 0 {
			return col
		}
	}
	return 0
}

// findMarginColumns locates the 2024/2025/Total columns; defaults to the
// original fixed layout (1,2,3) when no header row is present.
func findMarginColumns(rows [][]string) (col2024, col2025, colTotal int) {
	col2024, col2025, colTotal = 1, 2, 3
	for _, row := range rows[:min(len(rows), probeRows)] {
		for c, cell := range row {
			switch parser.NormalizeLabel(cell) {
			case "2024":
				col2024 = c
			case "2025":
				col2025 = c
			case "total":
				colTotal = c
			}
		}
	}
	return col2024, col2025, colTotal
}
