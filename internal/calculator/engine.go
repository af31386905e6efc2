package calculator

import (
	"github.com/google/uuid"

	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/model"
	"github.com/Sood122/yeild-pridiction/internal/util"
)

// Engine 作物推荐计算引擎
// system 与 seasons 在启动时构建一次，之后只读
type Engine struct {
	system  *fuzzy.System
	seasons *SeasonTable
}

// NewEngine 创建计算引擎
func NewEngine(system *fuzzy.System, seasons *SeasonTable) *Engine {
	return &Engine{system: system, seasons: seasons}
}

// NewDefaultEngine 使用内置参数表创建计算引擎
func NewDefaultEngine(resolution float64) (*Engine, error) {
	system, err := NewCropSystem(resolution)
	if err != nil {
		return nil, err
	}
	return NewEngine(system, NewSeasonTable()), nil
}

// Score 计算推荐分数 [0, 10]
// 没有任何规则激活时返回 fuzzy.ErrUndefinedScore
func (e *Engine) Score(rainfall, temperature, fertilizer float64) (float64, error) {
	res, err := e.system.Evaluate(map[string]float64{
		VarRainfall:    rainfall,
		VarTemperature: temperature,
		VarFertilizer:  fertilizer,
	})
	if err != nil {
		return 0, err
	}
	return res.Crisp, nil
}

// CropsFor 季节对应的作物列表
func (e *Engine) CropsFor(season string) []string {
	return e.seasons.CropsFor(season)
}

// Seasons 所有季节
func (e *Engine) Seasons() []string {
	return e.seasons.Seasons()
}

// Evaluate 计算完整推荐结果：分数、推理明细与季节作物
func (e *Engine) Evaluate(in model.Inputs) (*model.Recommendation, error) {
	res, err := e.system.Evaluate(map[string]float64{
		VarRainfall:    in.Rainfall,
		VarTemperature: in.Temperature,
		VarFertilizer:  in.Fertilizer,
	})
	if err != nil {
		return nil, err
	}

	rec := &model.Recommendation{
		ID:          uuid.NewString(),
		Score:       util.RoundScore(res.Crisp),
		Display:     util.FormatScore(res.Crisp),
		Label:       e.system.Label(res.Crisp),
		Memberships: res.Memberships,
		Rules:       make([]model.RuleFiring, 0, len(res.Firing)),
		Activations: res.Activation,
		Season:      in.Season,
		Crops:       e.seasons.CropsFor(in.Season),
		Warnings:    ValidateInputs(e.system, in, e.seasons),
	}
	for _, f := range res.Firing {
		rec.Rules = append(rec.Rules, model.RuleFiring{
			Rule:     f.Rule.Name,
			Text:     f.Rule.String(),
			Then:     f.Rule.Then,
			Strength: f.Strength,
		})
	}

	return rec, nil
}

// ModelInfo 导出变量与规则定义
func (e *Engine) ModelInfo() model.ModelInfo {
	info := model.ModelInfo{
		Resolution: e.system.Resolution(),
		Seasons:    e.seasons.Seasons(),
	}

	specs := make(map[string]variableSpec)
	for _, s := range inputSpecs() {
		specs[s.name] = s
	}

	for _, v := range e.system.Inputs() {
		info.Inputs = append(info.Inputs, variableInfo(v, specs[v.Name]))
	}
	info.Output = variableInfo(e.system.Output(), outputSpec())

	for _, r := range e.system.Rules() {
		info.Rules = append(info.Rules, model.RuleInfo{
			Name: r.Name,
			Text: r.String(),
			Then: r.Then,
		})
	}

	return info
}

// System 底层推理系统
func (e *Engine) System() *fuzzy.System {
	return e.system
}

func variableInfo(v fuzzy.Variable, spec variableSpec) model.VariableInfo {
	info := model.VariableInfo{
		Name:    v.Name,
		Label:   spec.label,
		Unit:    spec.unit,
		Min:     v.Min,
		Max:     v.Max,
		Default: spec.initial,
		Terms:   make([]model.TermInfo, 0, len(v.Terms)),
	}
	if info.Label == "" {
		info.Label = v.Name
	}
	for _, t := range v.Terms {
		info.Terms = append(info.Terms, model.TermInfo{Name: t.Name, A: t.MF.A, B: t.MF.B, C: t.MF.C})
	}
	return info
}

