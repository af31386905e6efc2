package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sood122/yeild-pridiction/internal/model"
)

// CreateLoadLog 创建加载记录，返回记录 ID
func (s *Store) CreateLoadLog(source string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO load_logs (source, status, started_at)
		VALUES (?, ?, ?)
	`, source, model.LoadStatusProcessing, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create load log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get load log id: %w", err)
	}
	return id, nil
}

// FinishLoadLog 完成加载记录
func (s *Store) FinishLoadLog(id int64, status string, rowCount int, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE load_logs SET
			status = ?,
			row_count = ?,
			error_message = ?,
			completed_at = ?
		WHERE id = ?
	`, status, rowCount, errorMessage, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update load log: %w", err)
	}
	return nil
}

// LatestLoadLog 最近一次加载记录
func (s *Store) LatestLoadLog() (*model.LoadLog, error) {
	var (
		log       model.LoadLog
		completed sql.NullTime
	)
	err := s.db.QueryRow(`
		SELECT id, source, status, row_count, error_message, started_at, completed_at
		FROM load_logs ORDER BY id DESC LIMIT 1
	`).Scan(&log.ID, &log.Source, &log.Status, &log.RowCount, &log.ErrorMessage, &log.StartedAt, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoLoadLog
		}
		return nil, fmt.Errorf("failed to query load log: %w", err)
	}
	if completed.Valid {
		t := completed.Time
		log.CompletedAt = &t
	}
	return &log, nil
}
