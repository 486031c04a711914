package store

import (
	"fmt"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

// GetFormulaOverrides returns the user's saved formulas, keyed by KPI key.
// Only overridden KPIs appear; callers merge over the defaults.
func (s *Store) GetFormulaOverrides(userID string) (model.FormulaSpec, error) {
	rows, err := s.db.Query(`
		SELECT kpi_key, formula FROM custom_formulas WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query custom formulas: %w", err)
	}
	defer rows.Close()

	spec := model.FormulaSpec{}
	for rows.Next() {
		var key, expr string
		if err := rows.Scan(&key, &expr); err != nil {
			return nil, fmt.Errorf("scan custom formula: %w", err)
		}
		spec[key] = expr
	}
	return spec, rows.Err()
}

// SaveFormulas upserts the given overrides for one user atomically.
func (s *Store) SaveFormulas(userID string, spec model.FormulaSpec) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save formulas: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, expr := range spec {
		if _, err := tx.Exec(`
			INSERT INTO custom_formulas (user_id, kpi_key, formula)
			VALUES (?, ?, ?)
			ON CONFLICT(user_id, kpi_key) DO UPDATE SET
				formula = excluded.formula,
				updated_at = CURRENT_TIMESTAMP
		`, userID, key, expr); err != nil {
			return fmt.Errorf("save formula %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// DeleteFormula removes one override, restoring the default formula.
func (s *Store) DeleteFormula(userID, key string) error {
	if _, err := s.db.Exec(`
		DELETE FROM custom_formulas WHERE user_id = ? AND kpi_key = ?
	`, userID, key); err != nil {
		return fmt.Errorf("delete formula %s: %w", key, err)
	}
	return nil
}

// DeleteFormulas removes every override for the user.
func (s *Store) DeleteFormulas(userID string) error {
	if _, err := s.db.Exec(`
		DELETE FROM custom_formulas WHERE user_id = ?
	`, userID); err != nil {
		return fmt.Errorf("delete formulas: %w", err)
	}
	return nil
}
