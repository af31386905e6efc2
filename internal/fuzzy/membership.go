// Package fuzzy 实现基于三角隶属函数的 Mamdani 模糊推理（min 合取、max 聚合、重心法解模糊）。
package fuzzy

import "fmt"

// Triangle 三角隶属函数 (A, B, C)，要求 A <= B <= C
// x == B 时隶属度为 1，向 A、C 线性衰减到 0，区间外为 0
type Triangle struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Trimf 创建三角隶属函数
func Trimf(a, b, c float64) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Validate 校验顶点顺序
func (t Triangle) Validate() error {
	if t.A > t.B || t.B > t.C {
		return fmt.Errorf("%w: (%g, %g, %g)", ErrInvalidTriangle, t.A, t.B, t.C)
	}
	return nil
}

// Degree 计算 x 的隶属度，结果在 [0, 1]
func (t Triangle) Degree(x float64) float64 {
	switch {
	case x < t.A || x > t.C:
		return 0
	case x == t.B:
		return 1
	case x < t.B:
		// 此分支保证 A < B
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.C - x) / (t.C - t.B)
	}
}
