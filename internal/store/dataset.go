package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Sood122/yeild-pridiction/internal/model"
)

// DatasetMeta 数据集元信息
type DatasetMeta struct {
	ID       string
	Source   string
	Columns  []string
	RowCount int
	LoadedAt time.Time
}

// SaveDataset 在一个事务中写入数据集与全部行
func (s *Store) SaveDataset(id, source string, columns []string, rows [][]string) error {
	colsJSON, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("failed to encode columns: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO datasets (id, source, columns, row_count, loaded_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, source, string(colsJSON), len(rows), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO dataset_rows (dataset_id, row_no, data) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i+1, err)
		}
		if _, err := stmt.Exec(id, i+1, string(data)); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// LatestDataset 最近加载的数据集
func (s *Store) LatestDataset() (*DatasetMeta, error) {
	var (
		meta     DatasetMeta
		colsJSON string
	)
	err := s.db.QueryRow(`
		SELECT id, source, columns, row_count, loaded_at
		FROM datasets ORDER BY loaded_at DESC, rowid DESC LIMIT 1
	`).Scan(&meta.ID, &meta.Source, &colsJSON, &meta.RowCount, &meta.LoadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDataset
		}
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}

	if err := json.Unmarshal([]byte(colsJSON), &meta.Columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns: %w", err)
	}
	return &meta, nil
}

// DatasetRows 按行号顺序返回前 limit 行
func (s *Store) DatasetRows(datasetID string, limit int) ([][]string, error) {
	rows, err := s.db.Query(`
		SELECT data FROM dataset_rows
		WHERE dataset_id = ?
		ORDER BY row_no LIMIT ?
	`, datasetID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset rows: %w", err)
	}
	defer rows.Close()

	result := make([][]string, 0, limit)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var row []string
		if err := json.Unmarshal([]byte(data), &row); err != nil {
			return nil, fmt.Errorf("failed to decode row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// Preview 最近数据集的预览
func (s *Store) Preview(limit int) (*model.DatasetPreview, error) {
	meta, err := s.LatestDataset()
	if err != nil {
		return nil, err
	}

	rows, err := s.DatasetRows(meta.ID, limit)
	if err != nil {
		return nil, err
	}

	loadedAt := meta.LoadedAt
	return &model.DatasetPreview{
		Loaded:    true,
		ID:        meta.ID,
		Source:    meta.Source,
		Columns:   meta.Columns,
		Rows:      rows,
		TotalRows: meta.RowCount,
		LoadedAt:  &loadedAt,
	}, nil
}
