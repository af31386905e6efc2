package model

import "time"

// 数据集加载状态
const (
	LoadStatusProcessing = "processing"
	LoadStatusSuccess    = "success"
	LoadStatusFailed     = "failed"
)

// DatasetPreview 数据集预览（表头 + 前 N 行）
type DatasetPreview struct {
	Loaded    bool       `json:"loaded"`
	ID        string     `json:"id,omitempty"`
	Source    string     `json:"source,omitempty"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"totalRows"`
	LoadedAt  *time.Time `json:"loadedAt,omitempty"`
	Warning   string     `json:"warning,omitempty"`
}

// LoadLog 数据集加载记录
type LoadLog struct {
	ID           int64      `json:"id"`
	Source       string     `json:"source"`
	Status       string     `json:"status"`
	RowCount     int        `json:"rowCount"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
