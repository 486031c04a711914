// Package exporter renders the persisted recruitment dataset for download.
package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

// Exporter dataset exporter over the store
type Exporter struct {
	store *store.Store
}

// NewExporter creates an exporter.
func NewExporter(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

// DatasetCSV renders the recruitment dataset as CSV in the consolidated
// sheet layout, so the export can be re-uploaded as a placement report.
func (e *Exporter) DatasetCSV() ([]byte, error) {
	emp, err := e.store.ListEmployment()
	if err != nil {
		return nil, err
	}
	plc, err := e.store.ListPlacement()
	if err != nil {
		return nil, err
	}
	return RenderDatasetCSV(emp, plc)
}

// RenderDatasetCSV writes the month header row, the billable block and the
// placement metrics block. Rows are keyed by the employment months; a
// placement month without an employment row is appended at the end.
func RenderDatasetCSV(emp []store.EmploymentRow, plc []store.PlacementRow) ([]byte, error) {
	months := datasetMonths(emp, plc)

	empByMonth := make(map[string]store.EmploymentRow, len(emp))
	for _, r := range emp {
		empByMonth[r.Month] = r
	}
	plcByMonth := make(map[string]store.PlacementRow, len(plc))
	for _, r := range plc {
		plcByMonth[r.Month] = r
	}

	record := func(label string, pick func(month string) int) []string {
		row := make([]string, 0, len(months)+1)
		row = append(row, label)
		for _, month := range months {
			row = append(row, strconv.Itoa(pick(month)))
		}
		return row
	}

	records := [][]string{
		append([]string{""}, months...),
		record("W2", func(m string) int { return empByMonth[m].W2 }),
		record("C2C", func(m string) int { return empByMonth[m].C2C }),
		record("1099", func(m string) int { return empByMonth[m].Emp1099 }),
		record("Referral", func(m string) int { return empByMonth[m].Referral }),
		record("Total billables", func(m string) int { return empByMonth[m].TotalBillables }),
		record("New Placements", func(m string) int { return plcByMonth[m].NewPlacements }),
		record("Terminations", func(m string) int { return plcByMonth[m].Terminations }),
		record("Net Placements", func(m string) int { return plcByMonth[m].NetPlacements }),
		record("Net billables", func(m string) int { return plcByMonth[m].NetBillables }),
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write dataset csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvReadAll(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func datasetMonths(emp []store.EmploymentRow, plc []store.PlacementRow) []string {
	var months []string
	seen := map[string]bool{}
	for _, r := range emp {
		months = append(months, r.Month)
		seen[r.Month] = true
	}
	for _, r := range plc {
		if !seen[r.Month] {
			months = append(months, r.Month)
		}
	}
	return months
}
