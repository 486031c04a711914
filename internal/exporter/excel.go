package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

const (
	summarySheet      = "Summary"
	consolidatedSheet = "Consolidated Placements Data"
	marginSheet       = "Gross Margin IT Staffing"
)

// Report builds the recruitment dashboard workbook: a summary sheet, the
// consolidated placements grid and the gross margin table.
func (e *Exporter) Report() (*excelize.File, error) {
	emp, err := e.store.ListEmployment()
	if err != nil {
		return nil, err
	}
	plc, err := e.store.ListPlacement()
	if err != nil {
		return nil, err
	}
	margins, err := e.store.ListMargins()
	if err != nil {
		return nil, err
	}
	return BuildReport(emp, plc, margins)
}

// BuildReport assembles the workbook from dataset rows.
func BuildReport(emp []store.EmploymentRow, plc []store.PlacementRow, margins []store.MarginDataRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, emp); err != nil {
		return nil, err
	}
	if err := writeConsolidatedSheet(f, emp, plc); err != nil {
		return nil, err
	}
	if err := writeMarginSheet(f, margins); err != nil {
		return nil, err
	}

	// Drop excelize's default sheet and open on the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(summarySheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	return f, nil
}

func writeSummarySheet(f *excelize.File, emp []store.EmploymentRow) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	latest := "N/A"
	if len(emp) > 0 {
		latest = emp[len(emp)-1].Month
	}
	cells := []struct {
		cell  string
		value any
	}{
		{"A1", "Recruitment Dashboard Report"},
		{"A2", "Generated on"},
		{"B2", time.Now().Format("2006-01-02 15:04:05")},
		{"A3", "Months of data"},
		{"B3", len(emp)},
		{"A4", "Latest month"},
		{"B4", latest},
	}
	for _, c := range cells {
		if err := f.SetCellValue(summarySheet, c.cell, c.value); err != nil {
			return err
		}
	}
	return nil
}

func writeConsolidatedSheet(f *excelize.File, emp []store.EmploymentRow, plc []store.PlacementRow) error {
	if _, err := f.NewSheet(consolidatedSheet); err != nil {
		return err
	}

	csvBytes, err := RenderDatasetCSV(emp, plc)
	if err != nil {
		return err
	}
	// The CSV layout is the canonical grid; reuse it cell for cell.
	records, err := parseCSV(csvBytes)
	if err != nil {
		return err
	}
	for r, record := range records {
		for c, value := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(consolidatedSheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMarginSheet(f *excelize.File, margins []store.MarginDataRow) error {
	if _, err := f.NewSheet(marginSheet); err != nil {
		return err
	}

	header := []any{"Company", "2024", "2025", "Total"}
	for c, v := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(marginSheet, cell, v); err != nil {
			return err
		}
	}

	for r, m := range margins {
		values := []any{m.CompanyType, m.Year2024, m.Year2025, m.Total}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(marginSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseCSV(data []byte) ([][]string, error) {
	records, err := csvReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("reparse dataset csv: %w", err)
	}
	return records, nil
}
