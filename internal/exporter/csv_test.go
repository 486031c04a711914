package exporter

import (
	"bytes"
	"testing"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/extractor"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

func sampleDataset() ([]store.EmploymentRow, []store.PlacementRow) {
	emp := []store.EmploymentRow{
		{Month: "Jan", W2: 12, C2C: 6, Emp1099: 1, Referral: 0, TotalBillables: 19},
		{Month: "Feb", W2: 13, C2C: 6, Emp1099: 1, Referral: 1, TotalBillables: 21},
		{Month: "Mar", W2: 15, C2C: 7, Emp1099: 2, Referral: 1, TotalBillables: 25},
	}
	plc := []store.PlacementRow{
		{Month: "Jan", NewPlacements: 4, Terminations: 1, NetPlacements: 3, NetBillables: 19},
		{Month: "Feb", NewPlacements: 3, Terminations: 0, NetPlacements: 3, NetBillables: 21},
		{Month: "Mar", NewPlacements: 5, Terminations: 1, NetPlacements: 4, NetBillables: 25},
	}
	return emp, plc
}

func TestRenderDatasetCSVLayout(t *testing.T) {
	emp, plc := sampleDataset()

	data, err := RenderDatasetCSV(emp, plc)
	if err != nil {
		t.Fatalf("RenderDatasetCSV: %v", err)
	}

	records, err := csvReadAll(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("rows = %d, want 10", len(records))
	}
	if records[0][1] != "Jan" || records[0][3] != "Mar" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "W2" || records[1][1] != "12" {
		t.Errorf("W2 row = %v", records[1])
	}
	if records[9][0] != "Net billables" || records[9][3] != "25" {
		t.Errorf("net billables row = %v", records[9])
	}
}

// An exported dataset must survive being uploaded again as a placement
// report with every value intact.
func TestDatasetCSVRoundTrip(t *testing.T) {
	emp, plc := sampleDataset()

	data, err := RenderDatasetCSV(emp, plc)
	if err != nil {
		t.Fatalf("RenderDatasetCSV: %v", err)
	}

	wb, err := extractor.ReadWorkbook(bytes.NewReader(data), "recruitment_dataset.csv")
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	result, err := extractor.New(len(emp)).ExtractPlacement(wb)
	if err != nil {
		t.Fatalf("ExtractPlacement: %v", err)
	}

	checks := map[string][]int{
		"W2":              {12, 13, 15},
		"Total billables": {19, 21, 25},
		"New Placements":  {4, 3, 5},
		"Net Placements":  {3, 3, 4},
	}
	for name, want := range checks {
		series, ok := result.FindSeries(name)
		if !ok {
			t.Errorf("series %q missing after round trip", name)
			continue
		}
		for i, v := range want {
			if series.Values[i] != float64(v) {
				t.Errorf("%s[%d] = %v, want %d", name, i, series.Values[i], v)
			}
		}
	}
}

func TestRenderDatasetCSVDisjointMonths(t *testing.T) {
	emp := []store.EmploymentRow{{Month: "Jan", W2: 10}}
	plc := []store.PlacementRow{{Month: "Feb", NewPlacements: 2}}

	data, err := RenderDatasetCSV(emp, plc)
	if err != nil {
		t.Fatalf("RenderDatasetCSV: %v", err)
	}
	records, _ := csvReadAll(data)
	if records[0][1] != "Jan" || records[0][2] != "Feb" {
		t.Errorf("header = %v", records[0])
	}
	// Months absent from a block render as zero.
	if records[1][2] != "0" {
		t.Errorf("W2 Feb = %q, want 0", records[1][2])
	}
	if records[6][1] != "0" || records[6][2] != "2" {
		t.Errorf("new placements row = %v", records[6])
	}
}
