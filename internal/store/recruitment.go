package store

import (
	"database/sql"
	"fmt"
)

// monthOrder orders month name columns chronologically in queries.
const monthOrder = `CASE month
	WHEN 'Jan' THEN 1 WHEN 'Feb' THEN 2 WHEN 'Mar' THEN 3 WHEN 'Apr' THEN 4
	WHEN 'May' THEN 5 WHEN 'Jun' THEN 6 WHEN 'Jul' THEN 7 WHEN 'Aug' THEN 8
	WHEN 'Sep' THEN 9 WHEN 'Oct' THEN 10 WHEN 'Nov' THEN 11 WHEN 'Dec' THEN 12
	END`

// EmploymentRow one month of billable headcount by employment type
type EmploymentRow struct {
	Month          string `json:"month"`
	W2             int    `json:"w2"`
	C2C            int    `json:"c2c"`
	Emp1099        int    `json:"employment_1099"`
	Referral       int    `json:"referral"`
	TotalBillables int    `json:"total_billables"`
}

// PlacementRow one month of placement activity
type PlacementRow struct {
	Month         string `json:"month"`
	NewPlacements int    `json:"new_placements"`
	Terminations  int    `json:"terminations"`
	NetPlacements int    `json:"net_placements"`
	NetBillables  int    `json:"net_billables"`
}

// MarginDataRow per-company gross margin, 2024 vs 2025
type MarginDataRow struct {
	CompanyType string  `json:"company_type"`
	Year2024    float64 `json:"year_2024"`
	Year2025    float64 `json:"year_2025"`
	Total       float64 `json:"total"`
}

// UpsertEmploymentMonth inserts or overwrites one employment month.
func (s *Store) UpsertEmploymentMonth(tx *sql.Tx, row EmploymentRow) error {
	_, err := tx.Exec(`
		INSERT INTO employment_data (month, w2, c2c, employment_1099, referral, total_billables)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			w2 = excluded.w2,
			c2c = excluded.c2c,
			employment_1099 = excluded.employment_1099,
			referral = excluded.referral,
			total_billables = excluded.total_billables
	`, row.Month, row.W2, row.C2C, row.Emp1099, row.Referral, row.TotalBillables)
	if err != nil {
		return fmt.Errorf("upsert employment month %s: %w", row.Month, err)
	}
	return nil
}

// UpsertPlacementMonth inserts or overwrites one placement month.
func (s *Store) UpsertPlacementMonth(tx *sql.Tx, row PlacementRow) error {
	_, err := tx.Exec(`
		INSERT INTO placement_data (month, new_placements, terminations, net_placements, net_billables)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			new_placements = excluded.new_placements,
			terminations = excluded.terminations,
			net_placements = excluded.net_placements,
			net_billables = excluded.net_billables
	`, row.Month, row.NewPlacements, row.Terminations, row.NetPlacements, row.NetBillables)
	if err != nil {
		return fmt.Errorf("upsert placement month %s: %w", row.Month, err)
	}
	return nil
}

// AddMonth writes one month of employment and placement data atomically.
func (s *Store) AddMonth(emp EmploymentRow, plc PlacementRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin add month: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.UpsertEmploymentMonth(tx, emp); err != nil {
		return err
	}
	if err := s.UpsertPlacementMonth(tx, plc); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplaceDataset clears the recruitment tables and loads a fresh dataset in
// one transaction.
func (s *Store) ReplaceDataset(emp []EmploymentRow, plc []PlacementRow, margins []MarginDataRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace dataset: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"employment_data", "placement_data", "margin_data"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, row := range emp {
		if err := s.UpsertEmploymentMonth(tx, row); err != nil {
			return err
		}
	}
	for _, row := range plc {
		if err := s.UpsertPlacementMonth(tx, row); err != nil {
			return err
		}
	}
	for _, row := range margins {
		if _, err := tx.Exec(`
			INSERT INTO margin_data (company_type, year_2024, year_2025, total)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(company_type) DO UPDATE SET
				year_2024 = excluded.year_2024,
				year_2025 = excluded.year_2025,
				total = excluded.total
		`, row.CompanyType, row.Year2024, row.Year2025, row.Total); err != nil {
			return fmt.Errorf("insert margin row %s: %w", row.CompanyType, err)
		}
	}
	return tx.Commit()
}

// ListEmployment returns all employment months in calendar order.
func (s *Store) ListEmployment() ([]EmploymentRow, error) {
	rows, err := s.db.Query(`
		SELECT month, w2, c2c, employment_1099, referral, total_billables
		FROM employment_data ORDER BY ` + monthOrder)
	if err != nil {
		return nil, fmt.Errorf("query employment data: %w", err)
	}
	defer rows.Close()

	var out []EmploymentRow
	for rows.Next() {
		var r EmploymentRow
		if err := rows.Scan(&r.Month, &r.W2, &r.C2C, &r.Emp1099, &r.Referral, &r.TotalBillables); err != nil {
			return nil, fmt.Errorf("scan employment row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListPlacement returns all placement months in calendar order.
func (s *Store) ListPlacement() ([]PlacementRow, error) {
	rows, err := s.db.Query(`
		SELECT month, new_placements, terminations, net_placements, net_billables
		FROM placement_data ORDER BY ` + monthOrder)
	if err != nil {
		return nil, fmt.Errorf("query placement data: %w", err)
	}
	defer rows.Close()

	var out []PlacementRow
	for rows.Next() {
		var r PlacementRow
		if err := rows.Scan(&r.Month, &r.NewPlacements, &r.Terminations, &r.NetPlacements, &r.NetBillables); err != nil {
			return nil, fmt.Errorf("scan placement row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListMargins returns all gross margin rows.
func (s *Store) ListMargins() ([]MarginDataRow, error) {
	rows, err := s.db.Query(`
		SELECT company_type, year_2024, year_2025, total
		FROM margin_data ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query margin data: %w", err)
	}
	defer rows.Close()

	var out []MarginDataRow
	for rows.Next() {
		var r MarginDataRow
		if err := rows.Scan(&r.CompanyType, &r.Year2024, &r.Year2025, &r.Total); err != nil {
			return nil, fmt.Errorf("scan margin row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// HasRecruitmentData reports whether any recruitment rows exist.
func (s *Store) HasRecruitmentData() (bool, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT (SELECT COUNT(1) FROM employment_data)
		     + (SELECT COUNT(1) FROM placement_data)
		     + (SELECT COUNT(1) FROM margin_data)`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count recruitment data: %w", err)
	}
	return n > 0, nil
}

// ClearRecruitmentData empties the recruitment tables.
func (s *Store) ClearRecruitmentData() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"employment_data", "placement_data", "margin_data"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
