package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/extractor"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/session"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

// ProcessPlacement extracts and processes a placement report upload.
// POST /api/reports/placement/process
func (h *Handler) ProcessPlacement(c *gin.Context) {
	h.processUpload(c, model.ReportPlacement)
}

// ProcessFinance extracts and processes a finance workbook upload.
// POST /api/reports/finance/process
func (h *Handler) ProcessFinance(c *gin.Context) {
	h.processUpload(c, model.ReportFinance)
}

// ProcessPL extracts and processes a standalone P&L statement upload.
// POST /api/reports/pl/process
func (h *Handler) ProcessPL(c *gin.Context) {
	h.processUpload(c, model.ReportPL)
}

// ProcessBalance extracts and processes a balance sheet upload.
// POST /api/reports/balance/process
func (h *Handler) ProcessBalance(c *gin.Context) {
	h.processUpload(c, model.ReportBalance)
}

// ProcessMargin extracts and processes a margin statement upload.
// POST /api/reports/margin/process
func (h *Handler) ProcessMargin(c *gin.Context) {
	h.processUpload(c, model.ReportMargin)
}

func (h *Handler) processUpload(c *gin.Context, reportType model.ReportType) {
	uid := userID(c)
	wb, logID, ok := h.readUpload(c, uid)
	if !ok {
		return
	}
	h.process(c, uid, logID, wb, reportType)
}

// process runs extraction, refreshes the session state and responds with
// the recomputed KPIs and charts.
func (h *Handler) process(c *gin.Context, uid string, logID int64, wb *extractor.Workbook, reportType model.ReportType) {
	result, err := h.extractor.Extract(wb, reportType)
	if err != nil {
		h.finishLog(logID, string(reportType), len(wb.Sheets), "failed", err.Error())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if len(result.MissingLabels) > 0 {
		log.Printf("extraction of %s: missing labels %v zero-filled", wb.FileName, result.MissingLabels)
	}

	state := h.sessions.SetExtraction(uid, result)
	kpis, charts := h.recalculate(uid, state)

	if reportType == model.ReportPlacement {
		emp, plc, margins := datasetFromExtraction(result)
		if err := h.store.ReplaceDataset(emp, plc, margins); err != nil {
			log.Printf("persist recruitment dataset: %v", err)
		}
	}

	h.finishLog(logID, string(reportType), len(wb.Sheets), "completed", "")
	c.JSON(http.StatusOK, gin.H{
		"reportType":    result.ReportType,
		"months":        result.Months,
		"sheets":        result.Sheets,
		"missingLabels": result.MissingLabels,
		"kpis":          kpis,
		"charts":        charts,
	})
}

// recalculate recomputes KPIs and charts from everything in the session and
// stores them back.
func (h *Handler) recalculate(uid string, state *session.State) (map[string]model.KPIResult, map[string]model.ChartConfig) {
	vars := combinedValues(state)
	kpis := h.calc.Calculate(vars, h.userFormulas(uid))

	charts := map[string]model.ChartConfig{}
	for _, result := range state.Extractions() {
		for name, chart := range h.calc.Charts(result) {
			charts[name] = chart
		}
	}

	h.sessions.SetResults(uid, kpis, charts)
	return kpis, charts
}

// combinedValues merges the base values of every stored report so formulas
// can reference variables across reports.
func combinedValues(state *session.State) *model.BaseValueSet {
	vars := model.NewBaseValueSet()
	for _, result := range state.Extractions() {
		for name, value := range result.BaseValues.Scalars {
			vars.Scalars[name] = value
		}
		for name, series := range result.BaseValues.Series {
			vars.Series[name] = series
		}
	}
	return vars
}

// userFormulas is the default formula set with the user's overrides applied.
func (h *Handler) userFormulas(uid string) model.FormulaSpec {
	spec := defaultFormulas()
	overrides, err := h.store.GetFormulaOverrides(uid)
	if err != nil {
		log.Printf("load formula overrides: %v", err)
		return spec
	}
	for key, expr := range overrides {
		spec[key] = expr
	}
	return spec
}

// datasetFromExtraction converts a placement extraction into the persisted
// recruitment dataset rows.
func datasetFromExtraction(result *model.ExtractionResult) ([]store.EmploymentRow, []store.PlacementRow, []store.MarginDataRow) {
	at := func(name string, i int) int {
		series, ok := result.FindSeries(name)
		if !ok || i >= len(series.Values) {
			return 0
		}
		return int(series.Values[i])
	}

	var emp []store.EmploymentRow
	var plc []store.PlacementRow
	for i, month := range result.Months {
		emp = append(emp, store.EmploymentRow{
			Month:          month,
			W2:             at("W2", i),
			C2C:            at("C2C", i),
			Emp1099:        at("1099", i),
			Referral:       at("Referral", i),
			TotalBillables: at("Total billables", i),
		})
		plc = append(plc, store.PlacementRow{
			Month:         month,
			NewPlacements: at("New Placements", i),
			Terminations:  at("Terminations", i),
			NetPlacements: at("Net Placements", i),
			NetBillables:  at("Net billables", i),
		})
	}

	var margins []store.MarginDataRow
	for _, m := range result.Margins {
		margins = append(margins, store.MarginDataRow{
			CompanyType: m.Company,
			Year2024:    m.Year2024,
			Year2025:    m.Year2025,
			Total:       m.Total,
		})
	}
	return emp, plc, margins
}
