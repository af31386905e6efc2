package fuzzy

import (
	"fmt"
	"strings"
)

// Condition 规则前件中的一项：Variable 属于 Term
type Condition struct {
	Variable string `json:"variable"`
	Term     string `json:"term"`
}

// Is 构造前件条件
func Is(variable, term string) Condition {
	return Condition{Variable: variable, Term: term}
}

// Rule 模糊规则：If 中各条件取最小值（AND），结论为输出变量上的 Then 模糊集
type Rule struct {
	Name string      `json:"name"`
	If   []Condition `json:"if"`
	Then string      `json:"then"`
}

// String 规则的可读形式
func (r Rule) String() string {
	parts := make([]string, 0, len(r.If))
	for _, c := range r.If {
		parts = append(parts, fmt.Sprintf("%s=%s", c.Variable, c.Term))
	}
	return fmt.Sprintf("%s -> %s", strings.Join(parts, " AND "), r.Then)
}

func (r Rule) clone() Rule {
	out := r
	out.If = append([]Condition(nil), r.If...)
	return out
}
