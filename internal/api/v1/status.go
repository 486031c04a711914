package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

// StatusResponse system status
type StatusResponse struct {
	Initialized    bool                 `json:"initialized"`
	HasSessionData bool                 `json:"hasSessionData"`
	ActiveSessions int                  `json:"activeSessions"`
	RecentUploads  []store.UploadRecord `json:"recentUploads"`
}

// GetStatus reports whether persisted data exists and what the caller has
// uploaded recently.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	uid := userID(c)

	initialized, err := h.store.HasRecruitmentData()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{})
		return
	}

	uploads, err := h.store.RecentUploads(uid, 10)
	if err != nil {
		uploads = nil
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    initialized,
		HasSessionData: h.sessions.Get(uid) != nil,
		ActiveSessions: h.sessions.Count(),
		RecentUploads:  uploads,
	})
}
