package model

import "time"

// ReportType uploaded file discriminator
type ReportType string

const (
	ReportPlacement ReportType = "placement" // recruitment placement report (multi-sheet xlsx)
	ReportFinance   ReportType = "finance"   // monthly income & expenses workbook
	ReportPL        ReportType = "pl"        // standalone P&L statement
	ReportBalance   ReportType = "balance"   // balance sheet
	ReportMargin    ReportType = "margin"    // margin statement
)

// ValidReportType reports whether t names a known report type.
func ValidReportType(t ReportType) bool {
	switch t {
	case ReportPlacement, ReportFinance, ReportPL, ReportBalance, ReportMargin:
		return true
	}
	return false
}

// SheetInfo sheet name + row count, for upload previews
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// UploadResult response body of a successful upload
type UploadResult struct {
	FileType   string      `json:"fileType"`
	FileName   string      `json:"fileName"`
	SheetNames []string    `json:"sheetNames,omitempty"`
	Columns    []string    `json:"columns,omitempty"`
	Preview    [][]string  `json:"preview,omitempty"`
	Sheets     []SheetInfo `json:"sheets,omitempty"`
}

// SheetStatus per-sheet extraction outcome
type SheetStatus struct {
	SheetName string `json:"sheetName"`
	SheetType string `json:"sheetType"`
	Processed bool   `json:"processed"`
	Error     string `json:"error,omitempty"`
}

// ExtractionResult normalized output of the sheet extractor for one upload
type ExtractionResult struct {
	ReportType    ReportType     `json:"reportType"`
	Months        []string       `json:"months"`
	BaseValues    *BaseValueSet  `json:"baseValues"`
	Series        []MetricSeries `json:"series"`
	Margins       []MarginRow    `json:"margins,omitempty"`
	Sheets        []SheetStatus  `json:"sheets"`
	MissingLabels []string       `json:"missingLabels,omitempty"`
	ExtractedAt   time.Time      `json:"extractedAt"`
}

// FindSeries returns the extracted series with the given name.
func (r *ExtractionResult) FindSeries(name string) (MetricSeries, bool) {
	for _, s := range r.Series {
		if s.Name == name {
			return s, true
		}
	}
	return MetricSeries{}, false
}

// MarginRow gross margin of one company, split by year
type MarginRow struct {
	Company  string  `json:"company"`
	Year2024 float64 `json:"year2024"`
	Year2025 float64 `json:"year2025"`
	Total    float64 `json:"total"`
}

// ProcessResult KPIs + chart configs returned by the process endpoints
type ProcessResult struct {
	KPIs   map[string]KPIResult   `json:"kpis"`
	Charts map[string]ChartConfig `json:"charts"`
}
