package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

// GetRecruitmentData returns the persisted recruitment dataset.
// GET /api/recruitment/data
func (h *Handler) GetRecruitmentData(c *gin.Context) {
	emp, plc, margins, err := h.loadDataset()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employment": emp,
		"placement":  plc,
		"margin":     margins,
	})
}

// GetRecruitmentCharts builds charts from the persisted dataset.
// GET /api/recruitment/charts
func (h *Handler) GetRecruitmentCharts(c *gin.Context) {
	emp, plc, margins, err := h.loadDataset()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	result := extractionFromDataset(emp, plc, margins)
	c.JSON(http.StatusOK, h.calc.Charts(result))
}

// AddMonthRequest one month of recruitment data
type AddMonthRequest struct {
	Month      string              `json:"month" binding:"required"`
	Employment store.EmploymentRow `json:"employment"`
	Placement  store.PlacementRow  `json:"placement"`
}

// AddRecruitmentMonth inserts or overwrites one month.
// POST /api/recruitment/months
func (h *Handler) AddRecruitmentMonth(c *gin.Context) {
	var req AddMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}
	if !validMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a three letter month name"})
		return
	}

	req.Employment.Month = req.Month
	req.Placement.Month = req.Month
	if err := h.store.AddMonth(req.Employment, req.Placement); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) loadDataset() ([]store.EmploymentRow, []store.PlacementRow, []store.MarginDataRow, error) {
	emp, err := h.store.ListEmployment()
	if err != nil {
		return nil, nil, nil, err
	}
	plc, err := h.store.ListPlacement()
	if err != nil {
		return nil, nil, nil, err
	}
	margins, err := h.store.ListMargins()
	if err != nil {
		return nil, nil, nil, err
	}
	return emp, plc, margins, nil
}

func validMonth(month string) bool {
	for _, m := range model.MonthLabels(12) {
		if m == month {
			return true
		}
	}
	return false
}

// extractionFromDataset rebuilds an extraction view over the persisted rows
// so the chart builders work on stored data too.
func extractionFromDataset(emp []store.EmploymentRow, plc []store.PlacementRow, margins []store.MarginDataRow) *model.ExtractionResult {
	result := &model.ExtractionResult{
		ReportType: model.ReportPlacement,
		BaseValues: model.NewBaseValueSet(),
	}

	for _, r := range emp {
		result.Months = append(result.Months, r.Month)
	}

	add := func(name string, pick func(i int) float64, n int) {
		values := make([]float64, n)
		for i := 0; i < n; i++ {
			values[i] = pick(i)
		}
		series := model.MetricSeries{Name: name, Values: values}
		result.Series = append(result.Series, series)
		result.BaseValues.SetSeries(name, series)
	}

	if len(emp) > 0 {
		add("W2", func(i int) float64 { return float64(emp[i].W2) }, len(emp))
		add("C2C", func(i int) float64 { return float64(emp[i].C2C) }, len(emp))
		add("1099", func(i int) float64 { return float64(emp[i].Emp1099) }, len(emp))
		add("Referral", func(i int) float64 { return float64(emp[i].Referral) }, len(emp))
		add("Total billables", func(i int) float64 { return float64(emp[i].TotalBillables) }, len(emp))
	}
	if len(plc) > 0 {
		add("New Placements", func(i int) float64 { return float64(plc[i].NewPlacements) }, len(plc))
		add("Terminations", func(i int) float64 { return float64(plc[i].Terminations) }, len(plc))
		add("Net Placements", func(i int) float64 { return float64(plc[i].NetPlacements) }, len(plc))
		add("Net billables", func(i int) float64 { return float64(plc[i].NetBillables) }, len(plc))
	}

	for _, m := range margins {
		result.Margins = append(result.Margins, model.MarginRow{
			Company:  m.CompanyType,
			Year2024: m.Year2024,
			Year2025: m.Year2025,
			Total:    m.Total,
		})
	}
	return result
}
