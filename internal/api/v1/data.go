package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetData returns the caller's processed dashboard state, if any.
// GET /api/data
func (h *Handler) GetData(c *gin.Context) {
	state := h.sessions.Get(userID(c))
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"hasData": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasData":   true,
		"placement": state.Placement,
		"finance":   state.Finance,
		"pl":        state.PL,
		"balance":   state.Balance,
		"margin":    state.Margin,
		"kpis":      state.KPIs,
		"charts":    state.Charts,
		"updatedAt": state.UpdatedAt,
	})
}

// ClearSession drops the caller's in-memory state. Persisted data and saved
// formulas are untouched.
// POST /api/session/clear
func (h *Handler) ClearSession(c *gin.Context) {
	h.sessions.Clear(userID(c))
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
