package extractor

import (
	"strings"
	"testing"
)

func TestReadWorkbookCSV(t *testing.T) {
	csv := "Metric,Jan,Feb,Mar\nNew Placements,3,4,5\nTerminations,1,,2\n"

	wb, err := ReadWorkbook(strings.NewReader(csv), "placements.csv")
	if err != nil {
		t.Fatalf("ReadWorkbook error: %v", err)
	}
	if len(wb.Sheets) != 1 {
		t.Fatalf("sheets = %d, want 1", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "placements" {
		t.Errorf("sheet name = %q, want placements", wb.Sheets[0].Name)
	}
	if got := wb.Sheets[0].Rows[1][0]; got != "New Placements" {
		t.Errorf("cell = %q", got)
	}
	if got := wb.Sheets[0].Rows[2][2]; got != "" {
		t.Errorf("empty cell = %q, want empty", got)
	}
}

func TestReadWorkbookRaggedCSV(t *testing.T) {
	csv := "a,b,c\nx\ny,z\n"

	wb, err := ReadWorkbook(strings.NewReader(csv), "ragged.csv")
	if err != nil {
		t.Fatalf("ReadWorkbook error: %v", err)
	}
	if len(wb.Sheets[0].Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(wb.Sheets[0].Rows))
	}
}

func TestReadWorkbookUnsupportedExtension(t *testing.T) {
	if _, err := ReadWorkbook(strings.NewReader("x"), "report.pdf"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
