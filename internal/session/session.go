// Package session holds per-user dashboard state between requests.
package session

import (
	"sync"
	"time"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

// State everything processed for one user. Replaced wholesale on each
// successful report processing, so concurrent uploads resolve to whichever
// finished last.
type State struct {
	Placement *model.ExtractionResult
	Finance   *model.ExtractionResult
	PL        *model.ExtractionResult
	Balance   *model.ExtractionResult
	Margin    *model.ExtractionResult

	KPIs   map[string]model.KPIResult
	Charts map[string]model.ChartConfig

	UpdatedAt time.Time
}

// Extraction returns the stored extraction for the report type.
func (s *State) Extraction(reportType model.ReportType) *model.ExtractionResult {
	if s == nil {
		return nil
	}
	switch reportType {
	case model.ReportPlacement:
		return s.Placement
	case model.ReportFinance:
		return s.Finance
	case model.ReportPL:
		return s.PL
	case model.ReportBalance:
		return s.Balance
	case model.ReportMargin:
		return s.Margin
	default:
		return nil
	}
}

// Extractions returns every stored extraction, in a fixed order.
func (s *State) Extractions() []*model.ExtractionResult {
	if s == nil {
		return nil
	}
	var out []*model.ExtractionResult
	for _, r := range []*model.ExtractionResult{s.Placement, s.Finance, s.PL, s.Balance, s.Margin} {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Manager in-memory session state keyed by user id
type Manager struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{states: make(map[string]*State)}
}

// Get returns the user's state, or nil if none exists.
func (m *Manager) Get(userID string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[userID]
}

// SetExtraction stores an extraction under its report type, keeping the
// other report's data.
func (m *Manager) SetExtraction(userID string, result *model.ExtractionResult) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.states[userID]
	if state == nil {
		state = &State{}
		m.states[userID] = state
	}
	switch result.ReportType {
	case model.ReportPlacement:
		state.Placement = result
	case model.ReportFinance:
		state.Finance = result
	case model.ReportPL:
		state.PL = result
	case model.ReportBalance:
		state.Balance = result
	case model.ReportMargin:
		state.Margin = result
	}
	state.UpdatedAt = time.Now()
	return state
}

// SetResults stores the latest KPI and chart output.
func (m *Manager) SetResults(userID string, kpis map[string]model.KPIResult, charts map[string]model.ChartConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.states[userID]
	if state == nil {
		state = &State{}
		m.states[userID] = state
	}
	state.KPIs = kpis
	state.Charts = charts
	state.UpdatedAt = time.Now()
}

// Clear wipes one user's state; other users are untouched.
func (m *Manager) Clear(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
}

// Count reports how many users currently hold state.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.states)
}
