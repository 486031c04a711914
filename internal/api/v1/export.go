package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/exporter"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDataset downloads the recruitment dataset as CSV.
// GET /api/recruitment/export/dataset
func (h *Handler) ExportDataset(c *gin.Context) {
	data, err := exporter.NewExporter(h.store).DatasetCSV()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="recruitment_dataset.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportReport downloads the recruitment dashboard workbook.
// GET /api/recruitment/export/report
func (h *Handler) ExportReport(c *gin.Context) {
	file, err := exporter.NewExporter(h.store).Report()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="recruitment_dashboard_report.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
