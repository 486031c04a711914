package session

import (
	"sync"
	"testing"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

func TestSetExtractionKeepsOtherReport(t *testing.T) {
	m := NewManager()

	m.SetExtraction("u1", &model.ExtractionResult{ReportType: model.ReportPlacement})
	m.SetExtraction("u1", &model.ExtractionResult{ReportType: model.ReportFinance})

	state := m.Get("u1")
	if state == nil {
		t.Fatal("state missing")
	}
	if state.Placement == nil || state.Finance == nil {
		t.Errorf("placement = %v, finance = %v, want both set", state.Placement, state.Finance)
	}
	if state.Extraction(model.ReportPlacement) != state.Placement {
		t.Error("Extraction(placement) mismatch")
	}

	m.SetExtraction("u1", &model.ExtractionResult{ReportType: model.ReportBalance})
	state = m.Get("u1")
	if state.Extraction(model.ReportBalance) != state.Balance || state.Balance == nil {
		t.Error("Extraction(balance) mismatch")
	}
	if got := len(state.Extractions()); got != 3 {
		t.Errorf("Extractions() = %d entries, want 3", got)
	}
}

func TestClearIsPerUser(t *testing.T) {
	m := NewManager()

	m.SetExtraction("u1", &model.ExtractionResult{ReportType: model.ReportPlacement})
	m.SetExtraction("u2", &model.ExtractionResult{ReportType: model.ReportPlacement})

	m.Clear("u1")
	if m.Get("u1") != nil {
		t.Error("u1 state should be gone")
	}
	if m.Get("u2") == nil {
		t.Error("u2 state should survive")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestConcurrentWritersLastWins(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.SetExtraction("u1", &model.ExtractionResult{ReportType: model.ReportPlacement})
			m.SetResults("u1", map[string]model.KPIResult{}, nil)
		}()
	}
	wg.Wait()

	if m.Get("u1") == nil {
		t.Fatal("state missing after concurrent writes")
	}
}

func TestNilStateExtraction(t *testing.T) {
	var s *State
	if s.Extraction(model.ReportPlacement) != nil {
		t.Error("nil state must yield nil extraction")
	}
}
