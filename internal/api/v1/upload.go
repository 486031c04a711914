package v1

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/extractor"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

const previewRows = 10

// Upload receives a spreadsheet and either processes it as the given report
// type or, without a type, returns an inspection preview.
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	uid := userID(c)

	wb, logID, ok := h.readUpload(c, uid)
	if !ok {
		return
	}

	reportType := model.ReportType(c.DefaultPostForm("type", ""))
	switch {
	case reportType == "":
		h.finishLog(logID, "preview", len(wb.Sheets), "completed", "")
		c.JSON(http.StatusOK, previewResult(wb))
	case model.ValidReportType(reportType):
		h.process(c, uid, logID, wb, reportType)
	default:
		h.finishLog(logID, string(reportType), len(wb.Sheets), "failed", "unsupported type")
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported report type %q", reportType)})
	}
}

// readUpload pulls the multipart file out of the request and decodes it.
// On failure it writes the error response itself and returns ok=false.
func (h *Handler) readUpload(c *gin.Context, uid string) (*extractor.Workbook, int64, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return nil, 0, false
	}
	if h.maxUpload > 0 && header.Size > h.maxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds the %d MB upload limit", h.maxUpload/(1<<20))})
		return nil, 0, false
	}

	logID, err := h.store.CreateUploadLog(uid, header.Filename, header.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, 0, false
	}

	file, err := header.Open()
	if err != nil {
		h.finishLog(logID, "", 0, "failed", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open uploaded file"})
		return nil, 0, false
	}
	defer file.Close()

	wb, err := extractor.ReadWorkbook(file, header.Filename)
	if err != nil {
		h.finishLog(logID, "", 0, "failed", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("could not read %s: %v", header.Filename, err)})
		return nil, 0, false
	}
	return wb, logID, true
}

func (h *Handler) finishLog(logID int64, reportType string, sheetCount int, status, errMsg string) {
	// Log failures must not break the request.
	_ = h.store.FinishUploadLog(logID, reportType, sheetCount, status, errMsg)
}

// previewResult summarizes a workbook without extracting it.
func previewResult(wb *extractor.Workbook) model.UploadResult {
	result := model.UploadResult{
		FileType:   strings.TrimPrefix(strings.ToLower(filepath.Ext(wb.FileName)), "."),
		FileName:   wb.FileName,
		SheetNames: wb.SheetNames(),
	}
	for _, sheet := range wb.Sheets {
		result.Sheets = append(result.Sheets, model.SheetInfo{Name: sheet.Name, RowCount: len(sheet.Rows)})
	}

	if len(wb.Sheets) > 0 {
		rows := wb.Sheets[0].Rows
		if len(rows) > 0 {
			result.Columns = rows[0]
		}
		limit := previewRows
		if limit > len(rows) {
			limit = len(rows)
		}
		result.Preview = rows[:limit]
	}
	return result
}
