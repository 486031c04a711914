// Package v1 exposes the dashboard HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/calculator"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/extractor"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/session"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

// UserIDKey gin context key under which the uid middleware stores the
// caller's id.
const UserIDKey = "uid"

// Handler V1 API handler
type Handler struct {
	store     *store.Store
	sessions  *session.Manager
	extractor *extractor.Extractor
	calc      *calculator.Calculator
	maxUpload int64
}

// NewHandler creates the V1 API handler. maxUpload caps upload size in
// bytes; zero means no cap.
func NewHandler(st *store.Store, sessions *session.Manager, horizon int, maxUpload int64) *Handler {
	return &Handler{
		store:     st,
		sessions:  sessions,
		extractor: extractor.New(horizon),
		calc:      calculator.NewCalculator(),
		maxUpload: maxUpload,
	}
}

// RegisterRoutes registers the V1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System status
	router.GET("/status", h.GetStatus)

	// Upload and report processing
	router.POST("/upload", h.Upload)
	router.POST("/reports/placement/process", h.ProcessPlacement)
	router.POST("/reports/finance/process", h.ProcessFinance)
	router.POST("/reports/pl/process", h.ProcessPL)
	router.POST("/reports/balance/process", h.ProcessBalance)
	router.POST("/reports/margin/process", h.ProcessMargin)

	// Processed dashboard state
	router.GET("/data", h.GetData)
	router.POST("/session/clear", h.ClearSession)

	// KPI formulas
	router.GET("/formulas", h.GetFormulas)
	router.POST("/formulas", h.SaveFormulas)
	router.POST("/formulas/reset", h.ResetFormulas)

	// Persisted recruitment dataset
	recruitment := router.Group("/recruitment")
	recruitment.GET("/data", h.GetRecruitmentData)
	recruitment.GET("/charts", h.GetRecruitmentCharts)
	recruitment.POST("/months", h.AddRecruitmentMonth)
	recruitment.GET("/export/dataset", h.ExportDataset)
	recruitment.GET("/export/report", h.ExportReport)
}

// userID resolves the caller's id set by the uid middleware.
func userID(c *gin.Context) string {
	if uid := c.GetString(UserIDKey); uid != "" {
		return uid
	}
	return "local"
}
