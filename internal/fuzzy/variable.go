package fuzzy

import (
	"fmt"
	"math"
)

// Term 语言变量上的一个命名模糊集
type Term struct {
	Name string   `json:"name"`
	MF   Triangle `json:"mf"`
}

// Variable 语言变量：论域 [Min, Max] 及其模糊集
type Variable struct {
	Name  string  `json:"name"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Terms []Term  `json:"terms"`
}

// NewVariable 创建语言变量
func NewVariable(name string, min, max float64, terms ...Term) Variable {
	return Variable{Name: name, Min: min, Max: max, Terms: terms}
}

// Validate 校验变量定义
func (v Variable) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidVariable)
	}
	if !(v.Min < v.Max) {
		return fmt.Errorf("%w: %s domain [%g, %g]", ErrInvalidVariable, v.Name, v.Min, v.Max)
	}
	if len(v.Terms) == 0 {
		return fmt.Errorf("%w: %s has no terms", ErrInvalidVariable, v.Name)
	}

	seen := make(map[string]bool, len(v.Terms))
	for _, t := range v.Terms {
		if t.Name == "" {
			return fmt.Errorf("%w: %s has an unnamed term", ErrInvalidVariable, v.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: %s.%s declared twice", ErrInvalidVariable, v.Name, t.Name)
		}
		seen[t.Name] = true

		if err := t.MF.Validate(); err != nil {
			return fmt.Errorf("%s.%s: %w", v.Name, t.Name, err)
		}
	}
	return nil
}

// Term 按名称查找模糊集
func (v Variable) Term(name string) (Term, bool) {
	for _, t := range v.Terms {
		if t.Name == name {
			return t, true
		}
	}
	return Term{}, false
}

// Clamp 将 x 限制到论域内
func (v Variable) Clamp(x float64) float64 {
	return math.Min(math.Max(x, v.Min), v.Max)
}

// Fuzzify 计算 x 在每个模糊集上的隶属度
func (v Variable) Fuzzify(x float64) map[string]float64 {
	degrees := make(map[string]float64, len(v.Terms))
	for _, t := range v.Terms {
		degrees[t.Name] = t.MF.Degree(x)
	}
	return degrees
}

func (v Variable) clone() Variable {
	out := v
	out.Terms = append([]Term(nil), v.Terms...)
	return out
}
