package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/formula"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

func defaultFormulas() model.FormulaSpec {
	return formula.Defaults()
}

// FormulaInfo one KPI formula as presented to the editor
type FormulaInfo struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Format  string `json:"format"`
	Formula string `json:"formula"`
	Default string `json:"default"`
	Custom  bool   `json:"custom"`
}

// GetFormulas lists every KPI with its active formula, in dashboard order.
// GET /api/formulas
func (h *Handler) GetFormulas(c *gin.Context) {
	uid := userID(c)
	overrides, err := h.store.GetFormulaOverrides(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var out []FormulaInfo
	for _, def := range formula.Registry {
		info := FormulaInfo{
			Key:     def.Key,
			Label:   def.Label,
			Format:  def.Format,
			Formula: def.DefaultFormula,
			Default: def.DefaultFormula,
		}
		if expr, ok := overrides[def.Key]; ok {
			info.Formula = expr
			info.Custom = true
		}
		out = append(out, info)
	}

	var variables []string
	if state := h.sessions.Get(uid); state != nil {
		variables = combinedValues(state).Names()
	}
	c.JSON(http.StatusOK, gin.H{"formulas": out, "variables": variables})
}

// SaveFormulasRequest formula overrides keyed by KPI key
type SaveFormulasRequest struct {
	Formulas map[string]string `json:"formulas" binding:"required"`
}

// SaveFormulas validates and stores the caller's formula overrides, then
// recomputes the dashboard if report data is loaded.
// POST /api/formulas
func (h *Handler) SaveFormulas(c *gin.Context) {
	uid := userID(c)

	var req SaveFormulasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if len(req.Formulas) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no formulas given"})
		return
	}

	for key, expr := range req.Formulas {
		if !formula.KnownKey(key) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown KPI %q", key)})
			return
		}
		if expr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("empty formula for %q", key)})
			return
		}
	}

	// With report data loaded the formulas are checked against the live
	// variable set; broken ones are rejected before they reach the store.
	if state := h.sessions.Get(uid); state != nil {
		vars := combinedValues(state)
		for key, expr := range req.Formulas {
			if _, err := formula.Evaluate(expr, vars); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "key": key})
				return
			}
		}
	}

	if err := h.store.SaveFormulas(uid, model.FormulaSpec(req.Formulas)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondRecalculated(c, uid)
}

// ResetFormulasRequest reset one KPI, or all when the key is empty
type ResetFormulasRequest struct {
	Key string `json:"key"`
}

// ResetFormulas restores default formulas.
// POST /api/formulas/reset
func (h *Handler) ResetFormulas(c *gin.Context) {
	uid := userID(c)

	var req ResetFormulasRequest
	_ = c.ShouldBindJSON(&req) // empty body resets everything

	var err error
	if req.Key == "" {
		err = h.store.DeleteFormulas(uid)
	} else if !formula.KnownKey(req.Key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown KPI %q", req.Key)})
		return
	} else {
		err = h.store.DeleteFormula(uid, req.Key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondRecalculated(c, uid)
}

// respondRecalculated returns fresh KPIs when session data exists, or a bare
// success otherwise.
func (h *Handler) respondRecalculated(c *gin.Context, uid string) {
	state := h.sessions.Get(uid)
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"saved": true})
		return
	}
	kpis, charts := h.recalculate(uid, state)
	c.JSON(http.StatusOK, gin.H{"saved": true, "kpis": kpis, "charts": charts})
}
