package calculator

import "github.com/Sood122/yeild-pridiction/internal/fuzzy"

// 变量名
const (
	VarRainfall       = "rainfall"
	VarTemperature    = "temperature"
	VarFertilizer     = "fertilizer"
	VarRecommendation = "recommendation"
)

// 模糊集名
const (
	TermLow     = "low"
	TermMedium  = "medium"
	TermHigh    = "high"
	TermPoor    = "poor"
	TermAverage = "average"
	TermGood    = "good"
)

// variableSpec 变量参数表中的一行
type variableSpec struct {
	name     string
	label    string
	unit     string
	min, max float64
	initial  float64 // 页面滑块初始值
	terms    []termSpec
}

type termSpec struct {
	name    string
	a, b, c float64
}

// ruleSpec 规则表中的一行：前件 (变量, 模糊集) 对与结论
type ruleSpec struct {
	name string
	when [][2]string
	then string
}

func inputSpecs() []variableSpec {
	return []variableSpec{
		{
			name: VarRainfall, label: "Rainfall", unit: "mm",
			min: 0, max: 200, initial: 100,
			terms: []termSpec{
				{TermLow, 0, 0, 100},
				{TermMedium, 50, 100, 150},
				{TermHigh, 100, 200, 200},
			},
		},
		{
			name: VarTemperature, label: "Temperature", unit: "°C",
			min: 10, max: 50, initial: 30,
			terms: []termSpec{
				{TermLow, 10, 10, 25},
				{TermMedium, 20, 30, 40},
				{TermHigh, 35, 50, 50},
			},
		},
		{
			name: VarFertilizer, label: "Fertilizer", unit: "kg/acre",
			min: 0, max: 200, initial: 100,
			terms: []termSpec{
				{TermLow, 0, 0, 100},
				{TermMedium, 50, 100, 150},
				{TermHigh, 100, 200, 200},
			},
		},
	}
}

func outputSpec() variableSpec {
	return variableSpec{
		name: VarRecommendation, label: "Recommendation", unit: "",
		min: 0, max: 10,
		terms: []termSpec{
			{TermPoor, 0, 0, 5},
			{TermAverage, 3, 5, 8},
			{TermGood, 6, 10, 10},
		},
	}
}

func ruleSpecs() []ruleSpec {
	return []ruleSpec{
		{"R1", [][2]string{{VarRainfall, TermLow}, {VarTemperature, TermLow}}, TermPoor},
		{"R2", [][2]string{{VarRainfall, TermMedium}, {VarTemperature, TermMedium}, {VarFertilizer, TermMedium}}, TermGood},
		{"R3", [][2]string{{VarRainfall, TermHigh}, {VarTemperature, TermHigh}}, TermPoor},
		{"R4", [][2]string{{VarRainfall, TermMedium}, {VarFertilizer, TermHigh}}, TermAverage},
	}
}

func (v variableSpec) variable() fuzzy.Variable {
	terms := make([]fuzzy.Term, 0, len(v.terms))
	for _, t := range v.terms {
		terms = append(terms, fuzzy.Term{Name: t.name, MF: fuzzy.Trimf(t.a, t.b, t.c)})
	}
	return fuzzy.NewVariable(v.name, v.min, v.max, terms...)
}

func (r ruleSpec) rule() fuzzy.Rule {
	conds := make([]fuzzy.Condition, 0, len(r.when))
	for _, w := range r.when {
		conds = append(conds, fuzzy.Is(w[0], w[1]))
	}
	return fuzzy.Rule{Name: r.name, If: conds, Then: r.then}
}

// NewCropSystem 按参数表与规则表构建作物推荐推理系统
// resolution <= 0 时使用单位步长
func NewCropSystem(resolution float64) (*fuzzy.System, error) {
	if resolution <= 0 {
		resolution = fuzzy.DefaultResolution
	}

	specs := inputSpecs()
	inputs := make([]fuzzy.Variable, 0, len(specs))
	for _, s := range specs {
		inputs = append(inputs, s.variable())
	}

	rs := ruleSpecs()
	rules := make([]fuzzy.Rule, 0, len(rs))
	for _, r := range rs {
		rules = append(rules, r.rule())
	}

	return fuzzy.NewSystem(inputs, outputSpec().variable(), rules, fuzzy.WithResolution(resolution))
}
