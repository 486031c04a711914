package store

import "fmt"

// UploadRecord one logged upload
type UploadRecord struct {
	ID         int64  `json:"id"`
	FileName   string `json:"filename"`
	FileSize   int64  `json:"file_size"`
	ReportType string `json:"report_type"`
	SheetCount int    `json:"sheet_count"`
	Status     string `json:"status"`
	ErrorMsg   string `json:"error_message"`
	CreatedAt  string `json:"created_at"`
}

// CreateUploadLog records the start of an upload, returning its log id.
func (s *Store) CreateUploadLog(userID, filename string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO upload_log (user_id, filename, file_size, status)
		VALUES (?, ?, ?, 'processing')
	`, userID, filename, fileSize)
	if err != nil {
		return 0, fmt.Errorf("create upload log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get upload log id: %w", err)
	}
	return id, nil
}

// FinishUploadLog completes an upload log entry.
func (s *Store) FinishUploadLog(id int64, reportType string, sheetCount int, status, errorMsg string) error {
	_, err := s.db.Exec(`
		UPDATE upload_log SET
			report_type = ?,
			sheet_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, reportType, sheetCount, status, errorMsg, id)
	if err != nil {
		return fmt.Errorf("finish upload log: %w", err)
	}
	return nil
}

// RecentUploads lists the user's latest uploads, newest first.
func (s *Store) RecentUploads(userID string, limit int) ([]UploadRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, file_size, report_type, sheet_count, status, error_message, created_at
		FROM upload_log WHERE user_id = ?
		ORDER BY id DESC LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query upload log: %w", err)
	}
	defer rows.Close()

	var out []UploadRecord
	for rows.Next() {
		var r UploadRecord
		if err := rows.Scan(&r.ID, &r.FileName, &r.FileSize, &r.ReportType, &r.SheetCount, &r.Status, &r.ErrorMsg, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload log row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
