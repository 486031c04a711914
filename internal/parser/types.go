package parser

// SheetType recognized sheet kinds across the supported workbooks
type SheetType string

const (
	SheetEmployment  SheetType = "employment"   // placement report: TG/VNST employment types
	SheetPlacements  SheetType = "placements"   // placement report: billables + placement metrics
	SheetGrossMargin SheetType = "gross_margin" // placement report: gross margin by company
	SheetBUSummary   SheetType = "bu_summary"   // finance: Summary of Business Units
	SheetBUDetail    SheetType = "bu_detail"    // finance: per business unit net income
	SheetPnL         SheetType = "pnl"          // finance: Techgene/Vensiti P&L
	SheetPL          SheetType = "pl"           // standalone P&L statement
	SheetBalance     SheetType = "balance"      // balance sheet
	SheetMarginStmt  SheetType = "margin_stmt"  // margin statement
	SheetUnknown     SheetType = "unknown"
)

// RecognitionResult outcome of sheet type recognition
type RecognitionResult struct {
	SheetName  string    `json:"sheetName"`
	SheetType  SheetType `json:"sheetType"`
	Confidence float64   `json:"confidence"` // 0-1
	// BusinessUnit canonical unit name for bu_detail sheets ("Direct Hire", ...)
	BusinessUnit string `json:"businessUnit,omitempty"`
	// Company canonical company name for pnl sheets ("Techgene", "Vensiti")
	Company string `json:"company,omitempty"`
}

// LabelSpec one expected row label and the BaseValueSet variable it feeds
type LabelSpec struct {
	Label    string // label as it appears in the sheet's first column
	Variable string // canonical variable name registered in the BaseValueSet
}
