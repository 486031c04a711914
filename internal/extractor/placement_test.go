package extractor

import (
	"testing"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

func placementWorkbook() *Workbook {
	return &Workbook{
		FileName: "Placement Report as of Aug 2025.xlsx",
		Sheets: []Sheet{
			{
				Name: "Employment Types",
				Rows: [][]string{
					{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug"},
					{"TG W2", "10", "11", "12", "13", "14", "15", "16", "17"},
					{"TG C2C", "5", "5", "6", "6", "7", "7", "8", "8"},
					{"TG 1099", "1", "1", "2", "2", "2", "3", "3", "3"},
					{"TG Referral", "0", "1", "1", "1", "2", "2", "2", "2"},
					{"VNST W2", "2", "2", "3", "3", "3", "4", "4", "5"},
					{"VNST C2C", "1", "1", "1", "2", "2", "2", "2", "3"},
				},
			},
			{
				Name: "Consolidated Placements Data",
				Rows: [][]string{
					{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug"},
					{"W2", "12", "13", "15", "16", "17", "19", "20", "22"},
					{"C2C", "6", "6", "7", "8", "9", "9", "10", "11"},
					{"1099", "1", "1", "2", "2", "2", "3", "3", "3"},
					{"Referral", "0", "1", "1", "1", "2", "2", "2", "2"},
					{"Total billables", "19", "21", "25", "27", "30", "33", "35", "38"},
					{"New Placements", "4", "3", "5", "3", "4", "4", "3", "5"},
					{"Terminations", "1", "0", "1", "1", "1", "0", "1", "1"},
					{"Net Placements", "3", "3", "4", "2", "3", "4", "2", "4"},
					{"Net billables", "19", "21", "25", "27", "30", "33", "35", "38"},
				},
			},
			{
				Name: "Gross Margin IT Staffing",
				Rows: [][]string{
					{"", "2024", "2025", "Total"},
					{"Techgene 1099", "20", "10", "30"},
					{"TG C2C", "25", "15", "40"},
					{"TG W2", "75", "20", "95"},
					{"VNST C2C", "0", "10", "10"},
					{"VNST W2", "5", "20", "25"},
				},
			},
		},
	}
}

func TestExtractPlacement(t *testing.T) {
	e := New(8)

	result, err := e.ExtractPlacement(placementWorkbook())
	if err != nil {
		t.Fatalf("ExtractPlacement error: %v", err)
	}

	tgw2, ok := result.FindSeries("TG W2")
	if !ok {
		t.Fatal("TG W2 series missing")
	}
	want := []float64{10, 11, 12, 13, 14, 15, 16, 17}
	for i, v := range want {
		if tgw2.Values[i] != v {
			t.Errorf("TG W2[%d] = %v, want %v", i, tgw2.Values[i], v)
		}
	}

	// Sums and latest values are exposed as formula variables.
	if got, _ := result.BaseValues.Lookup("New Placements"); got != 31 {
		t.Errorf("New Placements sum = %v, want 31", got)
	}
	if got, _ := result.BaseValues.Lookup("Total billables Latest"); got != 38 {
		t.Errorf("Total billables Latest = %v, want 38", got)
	}
	if got, _ := result.BaseValues.Lookup("TG W2 Latest"); got != 17 {
		t.Errorf("TG W2 Latest = %v, want 17", got)
	}

	// Gross margin rows and the grand total.
	if len(result.Margins) != 5 {
		t.Fatalf("margin rows = %d, want 5", len(result.Margins))
	}
	if got, _ := result.BaseValues.Lookup("Gross Margin Total"); got != 200 {
		t.Errorf("Gross Margin Total = %v, want 200", got)
	}
}

// A missing expected row must zero-fill that one metric and not block the
// rest of the extraction.
func TestExtractPlacementMissingRow(t *testing.T) {
	wb := placementWorkbook()
	// Drop the TG Referral row from the employment sheet.
	wb.Sheets[0].Rows = append(wb.Sheets[0].Rows[:4], wb.Sheets[0].Rows[5:]...)

	e := New(8)
	result, err := e.ExtractPlacement(wb)
	if err != nil {
		t.Fatalf("ExtractPlacement error: %v", err)
	}

	ref, ok := result.FindSeries("TG Referral")
	if !ok {
		t.Fatal("TG Referral series must still exist")
	}
	for i, v := range ref.Values {
		if v != 0 {
			t.Errorf("TG Referral[%d] = %v, want 0", i, v)
		}
	}

	found := false
	for _, l := range result.MissingLabels {
		if l == "TG Referral" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing labels = %v, want TG Referral reported", result.MissingLabels)
	}

	// Remaining metrics unaffected.
	if got, _ := result.BaseValues.Lookup("TG W2"); got != 108 {
		t.Errorf("TG W2 sum = %v, want 108", got)
	}
}

func TestExtractPlacementNoRecognizableSheets(t *testing.T) {
	wb := &Workbook{
		FileName: "junk.xlsx",
		Sheets:   []Sheet{{Name: "Notes", Rows: [][]string{{"hello"}}}},
	}

	e := New(8)
	if _, err := e.ExtractPlacement(wb); err == nil {
		t.Fatal("expected error for a workbook with no recognizable sheets")
	}
}

func TestExtractDispatch(t *testing.T) {
	e := New(8)
	if _, err := e.Extract(placementWorkbook(), model.ReportPlacement); err != nil {
		t.Errorf("placement dispatch error: %v", err)
	}
	if _, err := e.Extract(placementWorkbook(), model.ReportType("bogus")); err == nil {
		t.Error("unknown report type must error")
	}
}
