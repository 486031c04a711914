package extractor

import "testing"

func financeWorkbook() *Workbook {
	months := []string{"", "Jan 25", "Feb 25", "Mar 25", "Apr 25", "May 25", "Jun 25", "Jul 25", "Aug 25"}
	return &Workbook{
		FileName: "Monthly Income and Expenses Aug 2025.xlsx",
		Sheets: []Sheet{
			{
				Name: "Summary of Business Units",
				Rows: [][]string{
					months,
					{"Gross Revenue", "100", "100", "100", "100", "100", "100", "100", "100"},
					{"Operating Expenses", "80", "80", "80", "80", "80", "80", "80", "80"},
					{"Net Profit", "20", "20", "20", "20", "20", "20", "20", "20"},
					{"Headcount", "50", "50", "51", "51", "52", "52", "53", "53"},
				},
			},
			{
				Name: "Direct Hire Net income",
				Rows: [][]string{
					months,
					{"Total Revenue", "10", "10", "10", "10", "10", "10", "10", "10"},
					{"Gross Income", "6", "6", "6", "6", "6", "6", "6", "6"},
					{"Net Income", "4", "4", "4", "4", "4", "4", "4", "4"},
				},
			},
			{
				Name: "Techgene PnL new",
				Rows: [][]string{
					months,
					{"Total Income", "20", "20", "20", "20", "20", "20", "20", "20"},
					{"Total Expense", "15", "15", "15", "15", "15", "15", "15", "15"},
					{"Net Income", "5", "5", "5", "5", "5", "5", "5", "5"},
				},
			},
		},
	}
}

func TestExtractFinance(t *testing.T) {
	e := New(8)

	result, err := e.ExtractFinance(financeWorkbook())
	if err != nil {
		t.Fatalf("ExtractFinance error: %v", err)
	}

	// Aggregates accumulate over the detail and P&L sheets.
	checks := map[string]float64{
		"Months":                     8,
		"Total Revenue":              240, // 80 direct hire + 160 techgene
		"Total Expenses":             120,
		"Total Net Income":           72, // 32 direct hire + 40 techgene
		"Direct Hire Revenue":        80,
		"Techgene Net Income":        40,
		"Techgene Net Income Latest": 5,
		"Gross Revenue":              800,
	}
	for name, want := range checks {
		got, ok := result.BaseValues.Lookup(name)
		if !ok {
			t.Errorf("variable %q not registered", name)
			continue
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	// Summary rows without a financial keyword stay out.
	if _, ok := result.BaseValues.Lookup("Headcount"); ok {
		t.Error("Headcount must not become a variable")
	}

	dh, ok := result.FindSeries("Direct Hire Revenue")
	if !ok {
		t.Fatal("Direct Hire Revenue series missing")
	}
	if len(dh.Values) != 8 || dh.Values[0] != 10 {
		t.Errorf("Direct Hire Revenue values = %v", dh.Values)
	}
}

func TestExtractFinanceSummaryTotalRowStaysNamespaced(t *testing.T) {
	months := []string{"", "Jan 25", "Feb 25", "Mar 25", "Apr 25", "May 25", "Jun 25", "Jul 25", "Aug 25"}
	wb := &Workbook{
		FileName: "Monthly Income and Expenses Aug 2025.xlsx",
		Sheets: []Sheet{
			{
				Name: "Summary of Business Units",
				Rows: [][]string{
					months,
					{"Total Revenue", "100", "100", "100", "100", "100", "100", "100", "100"},
					{"Total Expenses", "80", "80", "80", "80", "80", "80", "80", "80"},
					{"Total Net Income", "20", "20", "20", "20", "20", "20", "20", "20"},
				},
			},
			{
				Name: "Techgene PnL new",
				Rows: [][]string{
					months,
					{"Total Income", "20", "20", "20", "20", "20", "20", "20", "20"},
					{"Total Expense", "15", "15", "15", "15", "15", "15", "15", "15"},
					{"Net Income", "5", "5", "5", "5", "5", "5", "5", "5"},
				},
			},
		},
	}

	e := New(8)
	result, err := e.ExtractFinance(wb)
	if err != nil {
		t.Fatalf("ExtractFinance error: %v", err)
	}

	// The accumulators see only the P&L sheet; the summary rows live under
	// their own prefixed names.
	checks := map[string]float64{
		"Total Revenue":            160,
		"Total Expenses":           120,
		"Total Net Income":         40,
		"Summary Total Revenue":    800,
		"Summary Total Expenses":   640,
		"Summary Total Net Income": 160,
	}
	for name, want := range checks {
		got, ok := result.BaseValues.Lookup(name)
		if !ok {
			t.Errorf("variable %q not registered", name)
			continue
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestExtractFinanceMissingRow(t *testing.T) {
	wb := financeWorkbook()
	// Drop the Gross Income row from the Direct Hire sheet.
	dh := &wb.Sheets[1]
	dh.Rows = append(dh.Rows[:2], dh.Rows[3:]...)

	e := New(8)
	result, err := e.ExtractFinance(wb)
	if err != nil {
		t.Fatalf("ExtractFinance error: %v", err)
	}

	gi, ok := result.FindSeries("Direct Hire Gross Income")
	if !ok {
		t.Fatal("Direct Hire Gross Income series must still exist")
	}
	for i, v := range gi.Values {
		if v != 0 {
			t.Errorf("Direct Hire Gross Income[%d] = %v, want 0", i, v)
		}
	}

	found := false
	for _, l := range result.MissingLabels {
		if l == "Direct Hire Gross Income" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing labels = %v, want Direct Hire Gross Income reported", result.MissingLabels)
	}

	// Totals keep accumulating from the surviving rows.
	if got, _ := result.BaseValues.Lookup("Total Revenue"); got != 240 {
		t.Errorf("Total Revenue = %v, want 240", got)
	}
}

func TestExtractFinanceNoRecognizableSheets(t *testing.T) {
	wb := &Workbook{
		FileName: "junk.xlsx",
		Sheets:   []Sheet{{Name: "Sheet1", Rows: [][]string{{"nothing"}}}},
	}

	e := New(8)
	if _, err := e.ExtractFinance(wb); err == nil {
		t.Fatal("expected error for a workbook with no recognizable sheets")
	}
}
