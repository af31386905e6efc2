package fuzzy

import (
	"fmt"
	"math"
)

// DefaultResolution 输出论域离散步长（单位步长）
const DefaultResolution = 1.0

// System 不可变的模糊推理系统：输入变量、输出变量与规则表
// 构造后只读，可被多个调用方共享
type System struct {
	inputs     []Variable
	output     Variable
	rules      []Rule
	resolution float64
}

// Option 系统构造选项
type Option func(*System)

// WithResolution 设置输出论域离散步长
func WithResolution(step float64) Option {
	return func(s *System) {
		s.resolution = step
	}
}

// NewSystem 创建推理系统，并校验所有规则只引用已声明的变量与模糊集
func NewSystem(inputs []Variable, output Variable, rules []Rule, opts ...Option) (*System, error) {
	s := &System{
		output:     output.clone(),
		resolution: DefaultResolution,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !(s.resolution > 0) || math.IsInf(s.resolution, 0) {
		return nil, fmt.Errorf("fuzzy: invalid resolution %g", s.resolution)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no input variables", ErrInvalidVariable)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidRule)
	}

	if err := s.output.Validate(); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	names := map[string]bool{s.output.Name: true}
	for _, v := range inputs {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		if names[v.Name] {
			return nil, fmt.Errorf("%w: %s declared twice", ErrInvalidVariable, v.Name)
		}
		names[v.Name] = true
		s.inputs = append(s.inputs, v.clone())
	}

	for i, r := range rules {
		if err := s.validateRule(r); err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, r.Name, err)
		}
		s.rules = append(s.rules, r.clone())
	}

	return s, nil
}

func (s *System) validateRule(r Rule) error {
	if len(r.If) == 0 {
		return fmt.Errorf("%w: empty antecedent", ErrInvalidRule)
	}
	for _, c := range r.If {
		v, ok := s.input(c.Variable)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownVariable, c.Variable)
		}
		if _, ok := v.Term(c.Term); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownTerm, c.Variable, c.Term)
		}
	}
	if _, ok := s.output.Term(r.Then); !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownTerm, s.output.Name, r.Then)
	}
	return nil
}

func (s *System) input(name string) (Variable, bool) {
	for _, v := range s.inputs {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Inputs 返回输入变量定义的副本
func (s *System) Inputs() []Variable {
	out := make([]Variable, 0, len(s.inputs))
	for _, v := range s.inputs {
		out = append(out, v.clone())
	}
	return out
}

// Input 按名称返回输入变量定义
func (s *System) Input(name string) (Variable, bool) {
	v, ok := s.input(name)
	if !ok {
		return Variable{}, false
	}
	return v.clone(), true
}

// Output 返回输出变量定义的副本
func (s *System) Output() Variable {
	return s.output.clone()
}

// Rules 返回规则表的副本
func (s *System) Rules() []Rule {
	out := make([]Rule, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r.clone())
	}
	return out
}

// Resolution 输出论域离散步长
func (s *System) Resolution() float64 {
	return s.resolution
}

// RuleFiring 单条规则的激活结果
type RuleFiring struct {
	Rule     Rule
	Strength float64
}

// Result 一次推理的完整结果
type Result struct {
	Crisp       float64                       // 解模糊后的输出值
	Inputs      map[string]float64            // 实际参与计算的输入（已限幅）
	Clamped     []string                      // 被限幅的输入变量
	Memberships map[string]map[string]float64 // 变量 -> 模糊集 -> 隶属度
	Firing      []RuleFiring                  // 按规则声明顺序
	Activation  map[string]float64            // 输出模糊集 -> 聚合激活强度
}

// Evaluate 对一组输入执行推理
// 每个输入变量都必须给出值（NaN 非法）；越界值先限幅到论域
// 返回 ErrUndefinedScore 时仍附带中间结果，便于排查
func (s *System) Evaluate(inputs map[string]float64) (*Result, error) {
	for name := range inputs {
		if _, ok := s.input(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
		}
	}

	res := &Result{
		Inputs:      make(map[string]float64, len(s.inputs)),
		Memberships: make(map[string]map[string]float64, len(s.inputs)),
		Activation:  make(map[string]float64, len(s.output.Terms)),
	}

	// 1. 模糊化
	for _, v := range s.inputs {
		x, ok := inputs[v.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, v.Name)
		}
		if math.IsNaN(x) {
			return nil, fmt.Errorf("%w: %s is NaN", ErrInvalidInput, v.Name)
		}
		clamped := v.Clamp(x)
		if clamped != x {
			res.Clamped = append(res.Clamped, v.Name)
		}
		res.Inputs[v.Name] = clamped
		res.Memberships[v.Name] = v.Fuzzify(clamped)
	}

	// 2. 规则激活（AND 取最小）与 3. 按结论聚合（取最大）
	for _, t := range s.output.Terms {
		res.Activation[t.Name] = 0
	}
	for _, r := range s.rules {
		strength := 1.0
		for _, c := range r.If {
			strength = math.Min(strength, res.Memberships[c.Variable][c.Term])
		}
		res.Firing = append(res.Firing, RuleFiring{Rule: r.clone(), Strength: strength})
		res.Activation[r.Then] = math.Max(res.Activation[r.Then], strength)
	}

	// 4. 削顶、取并集、重心法解模糊
	xs, ys := s.aggregate(res.Activation)
	crisp, ok := centroid(xs, ys)
	if !ok {
		return res, ErrUndefinedScore
	}
	res.Crisp = crisp

	return res, nil
}

// Label 返回在 x 处隶属度最高的输出模糊集，平局取声明顺序靠前者
func (s *System) Label(x float64) string {
	best := ""
	bestDegree := -1.0
	for _, t := range s.output.Terms {
		if d := t.MF.Degree(x); d > bestDegree {
			best, bestDegree = t.Name, d
		}
	}
	return best
}
