package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table 解析后的表格：首行为表头
type Table struct {
	Columns []string
	Rows    [][]string
}

// Parse 按扩展名解析数据集：.xlsx 走 Excel，其余按 CSV
func Parse(source string, data []byte) (*Table, error) {
	if strings.EqualFold(extension(source), ".xlsx") {
		return parseXLSX(data)
	}
	return parseCSV(data)
}

// extension 取文件扩展名，URL 时忽略查询参数
func extension(source string) string {
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Path != "" {
		return path.Ext(u.Path)
	}
	return path.Ext(source)
}

func parseCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return newTable(records)
}

func parseXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyDataset
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return newTable(records)
}

// newTable 以首个非空行为表头，数据行按表头宽度补齐或截断，跳过空行
func newTable(records [][]string) (*Table, error) {
	start := -1
	for i, rec := range records {
		if !isBlank(rec) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrEmptyDataset
	}

	columns := make([]string, len(records[start]))
	for i, c := range records[start] {
		columns[i] = strings.TrimSpace(c)
	}

	rows := make([][]string, 0, len(records)-start-1)
	for _, rec := range records[start+1:] {
		if isBlank(rec) {
			continue
		}
		row := make([]string, len(columns))
		copy(row, rec)
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
