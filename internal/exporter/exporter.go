// Package exporter 把推理模型与评分网格导出为 Excel 工作簿
package exporter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Sood122/yeild-pridiction/internal/calculator"
	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/model"
	"github.com/Sood122/yeild-pridiction/internal/util"
)

const (
	SheetGrid    = "Score Grid"
	SheetModel   = "Model"
	SheetRules   = "Rules"
	SheetSeasons = "Seasons"

	// DefaultStep 网格默认步长
	DefaultStep = 25.0
	// maxGridPoints 单个坐标轴的点数上限
	maxGridPoints = 201

	// UndefinedCell 无规则激活时的单元格内容
	UndefinedCell = "-"
)

var ErrInvalidStep = errors.New("exporter: invalid grid step")

// Options 导出选项
type Options struct {
	Temperature float64 // 网格固定温度
	Step        float64 // 降雨量与施肥量的步长，<=0 时取 DefaultStep，NaN/Inf 非法
	Progress    ProgressFunc
}

// Exporter 评分工作簿导出器
type Exporter struct {
	engine *calculator.Engine
}

// NewExporter 创建导出器
func NewExporter(engine *calculator.Engine) *Exporter {
	return &Exporter{engine: engine}
}

// Export 生成工作簿：评分网格（降雨量 x 施肥量，固定温度）、模糊集参数、规则与季节作物
// 调用方负责 Close
func (e *Exporter) Export(opts Options) (*excelize.File, error) {
	if math.IsNaN(opts.Step) || math.IsInf(opts.Step, 0) {
		return nil, fmt.Errorf("%w: step %g", ErrInvalidStep, opts.Step)
	}
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if math.IsNaN(opts.Temperature) || math.IsInf(opts.Temperature, 0) {
		return nil, fmt.Errorf("%w: temperature must be finite", fuzzy.ErrInvalidInput)
	}

	info := e.engine.ModelInfo()
	rainfall, err := findVariable(info, calculator.VarRainfall)
	if err != nil {
		return nil, err
	}
	fertilizer, err := findVariable(info, calculator.VarFertilizer)
	if err != nil {
		return nil, err
	}
	rows, err := axis(rainfall, opts.Step)
	if err != nil {
		return nil, err
	}
	cols, err := axis(fertilizer, opts.Step)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetGrid); err != nil {
		_ = f.Close()
		return nil, err
	}
	for _, name := range []string{SheetModel, SheetRules, SheetSeasons} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	steps := []struct {
		stage Stage
		pct   int
		fill  func() error
	}{
		{StageGrid, 10, func() error { return e.fillGrid(f, opts.Temperature, rows, cols) }},
		{StageModel, 70, func() error { return fillModel(f, info) }},
		{StageSeasons, 90, func() error { return e.fillRulesAndSeasons(f, info) }},
	}
	for _, s := range steps {
		opts.Progress.report(s.pct, s.stage)
		if err := s.fill(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fill %s: %w", s.stage, err)
		}
	}

	f.SetActiveSheet(0)
	opts.Progress.report(100, StageDone)
	return f, nil
}

func (e *Exporter) fillGrid(f *excelize.File, temperature float64, rows, cols []float64) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	if err := f.SetCellValue(SheetGrid, "A1", fmt.Sprintf("rainfall \\ fertilizer (temperature %g)", temperature)); err != nil {
		return err
	}
	for j, fert := range cols {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetGrid, cell, fert); err != nil {
			return err
		}
	}

	for i, rain := range rows {
		values := make([]any, 0, len(cols)+1)
		values = append(values, rain)
		for _, fert := range cols {
			score, err := e.engine.Score(rain, temperature, fert)
			switch {
			case errors.Is(err, fuzzy.ErrUndefinedScore):
				values = append(values, UndefinedCell)
			case err != nil:
				return err
			default:
				values = append(values, util.RoundScore(score))
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetGrid, cell, &values); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(cols)+1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetGrid, "A1", last, header); err != nil {
		return err
	}
	return f.SetColWidth(SheetGrid, "A", "A", 36)
}

func fillModel(f *excelize.File, info model.ModelInfo) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetModel, "A1", &[]any{"variable", "unit", "min", "max", "term", "a", "b", "c"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetModel, "A1", "H1", header); err != nil {
		return err
	}

	vars := append(append([]model.VariableInfo{}, info.Inputs...), info.Output)
	row := 2
	for _, v := range vars {
		for _, t := range v.Terms {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(SheetModel, cell, &[]any{v.Name, v.Unit, v.Min, v.Max, t.Name, t.A, t.B, t.C}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (e *Exporter) fillRulesAndSeasons(f *excelize.File, info model.ModelInfo) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetRules, "A1", &[]any{"rule", "definition", "then"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetRules, "A1", "C1", header); err != nil {
		return err
	}
	for i, r := range info.Rules {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetRules, cell, &[]any{r.Name, r.Text, r.Then}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetRules, "B", "B", 80); err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetSeasons, "A1", &[]any{"season", "crops"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSeasons, "A1", "B1", header); err != nil {
		return err
	}
	for i, season := range info.Seasons {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		crops := strings.Join(e.engine.CropsFor(season), ", ")
		if err := f.SetSheetRow(SheetSeasons, cell, &[]any{season, crops}); err != nil {
			return err
		}
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E3F9E5"}},
	})
}

func findVariable(info model.ModelInfo, name string) (model.VariableInfo, error) {
	for _, v := range info.Inputs {
		if v.Name == name {
			return v, nil
		}
	}
	return model.VariableInfo{}, fmt.Errorf("%w: %s", fuzzy.ErrUnknownVariable, name)
}

// axis 论域上的等距采样点，包含两端
// 点数先按浮点数与上限比较，再转为 int
func axis(v model.VariableInfo, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step %g", ErrInvalidStep, step)
	}
	count := math.Floor((v.Max-v.Min)/step) + 1
	if !(count <= maxGridPoints) {
		return nil, fmt.Errorf("%w: step %g gives %g points for %s (max %d)", ErrInvalidStep, step, count, v.Name, maxGridPoints)
	}
	n := int(count)

	points := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		points = append(points, v.Min+float64(i)*step)
	}
	if last := points[len(points)-1]; last < v.Max {
		points = append(points, v.Max)
	}
	return points, nil
}
