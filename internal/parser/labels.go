package parser

// Declarative label schema: every extractable row of every recognized sheet
// type is listed here once. Unmatched labels degrade to zero-filled series
// instead of failing the whole extraction.

// EmploymentLabels placement report sheet 1: employment types per company
var EmploymentLabels = []LabelSpec{
	{Label: "TG W2", Variable: "TG W2"},
	{Label: "TG C2C", Variable: "TG C2C"},
	{Label: "TG 1099", Variable: "TG 1099"},
	{Label: "TG Referral", Variable: "TG Referral"},
	{Label: "VNST W2", Variable: "VNST W2"},
	{Label: "VNST C2C", Variable: "VNST C2C"},
	{Label: "VNST 1099", Variable: "VNST 1099"},
}

// BillableLabels placement report sheet 2: billables block
var BillableLabels = []LabelSpec{
	{Label: "W2", Variable: "W2"},
	{Label: "C2C", Variable: "C2C"},
	{Label: "1099", Variable: "1099"},
	{Label: "Referral", Variable: "Referral"},
	{Label: "Total billables", Variable: "Total billables"},
}

// PlacementMetricLabels placement report sheet 2: placement metrics block
var PlacementMetricLabels = []LabelSpec{
	{Label: "New Placements", Variable: "New Placements"},
	{Label: "Terminations", Variable: "Terminations"},
	{Label: "Net Placements", Variable: "Net Placements"},
	{Label: "Net billables", Variable: "Net billables"},
}

// MarginCompanies gross margin sheet: known company rows. Rows outside this
// list are still extracted; the list only drives recognition scoring.
var MarginCompanies = []string{
	"Techgene 1099",
	"TG C2C",
	"TG W2",
	"Vensiti 1099",
	"VNST C2C",
	"VNST W2",
}

// PLLabels standalone P&L statement: extractable rows. Gross profit,
// operating income and net income are derived from these.
var PLLabels = []LabelSpec{
	{Label: "Revenue", Variable: "Revenue"},
	{Label: "COGS", Variable: "COGS"},
	{Label: "Operating Expenses", Variable: "Operating Expenses"},
	{Label: "Other Income", Variable: "Other Income"},
	{Label: "Other Expenses", Variable: "Other Expenses"},
}

// BalanceLabels balance sheet: extractable rows
var BalanceLabels = []LabelSpec{
	{Label: "Assets", Variable: "Assets"},
	{Label: "Liabilities", Variable: "Liabilities"},
	{Label: "Equity", Variable: "Equity"},
}

// MarginStatementLabels margin statement: extractable rows
var MarginStatementLabels = []LabelSpec{
	{Label: "Gross Margin", Variable: "Gross Margin"},
	{Label: "Margin %", Variable: "Margin %"},
}

// BUDetailLabels finance business-unit sheets: extractable rows
var BUDetailLabels = []LabelSpec{
	{Label: "Revenue", Variable: "Revenue"},
	{Label: "Gross Income", Variable: "Gross Income"},
	{Label: "Net Income", Variable: "Net Income"},
}

// PnLLabels finance P&L sheets: extractable rows
var PnLLabels = []LabelSpec{
	{Label: "Total Income", Variable: "Total Income"},
	{Label: "Total Expense", Variable: "Total Expense"},
	{Label: "Net Income", Variable: "Net Income"},
}

// buDetailSheets finance sheet name -> canonical business unit
var buDetailSheets = map[string]string{
	"direct hire net income": "Direct Hire",
	"services net income":    "Services",
	"it staffing net income": "IT Staffing",
}

// pnlSheets finance sheet name -> canonical company
var pnlSheets = map[string]string{
	"techgene pnl new": "Techgene",
	"vensiti pnl new":  "Vensiti",
}
