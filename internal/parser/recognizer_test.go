package parser

import "testing"

func TestRecognizeFinanceSheets(t *testing.T) {
	r := NewSheetRecognizer()

	tests := []struct {
		sheetName string
		wantType  SheetType
		wantUnit  string
		wantCo    string
	}{
		{"Direct Hire Net income", SheetBUDetail, "Direct Hire", ""},
		{"Services Net income", SheetBUDetail, "Services", ""},
		{"IT Staffing Net Income", SheetBUDetail, "IT Staffing", ""},
		{"Techgene PnL new", SheetPnL, "", "Techgene"},
		{"Vensiti PnL new", SheetPnL, "", "Vensiti"},
		{"Summary of Business Units", SheetBUSummary, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sheetName, func(t *testing.T) {
			got := r.Recognize(tt.sheetName, nil)
			if got.SheetType != tt.wantType {
				t.Errorf("sheet type = %s, want %s", got.SheetType, tt.wantType)
			}
			if got.BusinessUnit != tt.wantUnit {
				t.Errorf("business unit = %q, want %q", got.BusinessUnit, tt.wantUnit)
			}
			if got.Company != tt.wantCo {
				t.Errorf("company = %q, want %q", got.Company, tt.wantCo)
			}
		})
	}
}

func TestRecognizeEmploymentSheet(t *testing.T) {
	r := NewSheetRecognizer()

	rows := [][]string{
		{"", "Jan", "Feb", "Mar"},
		{"TG W2", "10", "11", "12"},
		{"TG C2C", "5", "6", "7"},
		{"TG 1099", "2", "2", "3"},
		{"TG Referral", "1", "1", "1"},
	}

	got := r.Recognize("Sheet1", rows)
	if got.SheetType != SheetEmployment {
		t.Fatalf("sheet type = %s, want %s (confidence %.2f)", got.SheetType, SheetEmployment, got.Confidence)
	}
}

func TestRecognizePlacementsSheet(t *testing.T) {
	r := NewSheetRecognizer()

	rows := [][]string{
		{"", "Jan", "Feb"},
		{"W2", "10", "11"},
		{"Total billables", "20", "21"},
		{"New Placements", "3", "4"},
		{"Terminations", "1", "0"},
		{"Net Placements", "2", "4"},
	}

	got := r.Recognize("Consolidated Placements Data", rows)
	if got.SheetType != SheetPlacements {
		t.Fatalf("sheet type = %s, want %s", got.SheetType, SheetPlacements)
	}
}

func TestRecognizeGrossMarginByName(t *testing.T) {
	r := NewSheetRecognizer()

	// Margin sheets are often nearly empty; the name has to carry recognition.
	rows := [][]string{
		{"", "2024", "2025", "Total"},
		{"TG W2", "75", "20", "95"},
	}

	got := r.Recognize("Gross Margin IT Staffing", rows)
	if got.SheetType != SheetGrossMargin {
		t.Fatalf("sheet type = %s, want %s", got.SheetType, SheetGrossMargin)
	}
}

func TestRecognizeUnknownSheet(t *testing.T) {
	r := NewSheetRecognizer()

	rows := [][]string{
		{"Notes", "whatever"},
		{"random", "content"},
	}

	got := r.Recognize("Scratch", rows)
	if got.SheetType != SheetUnknown {
		t.Fatalf("sheet type = %s, want %s", got.SheetType, SheetUnknown)
	}
}
