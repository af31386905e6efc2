package fuzzy

import "errors"

var (
	// ErrUndefinedScore 所有规则激活强度为 0，聚合输出面积为 0，重心无定义
	ErrUndefinedScore = errors.New("fuzzy: undefined score, no rule fired")
	// ErrInvalidInput 输入值不是有限数
	ErrInvalidInput = errors.New("fuzzy: invalid input value")
	// ErrMissingInput 缺少某个输入变量的值
	ErrMissingInput = errors.New("fuzzy: missing input value")
	// ErrUnknownVariable 引用了未声明的变量
	ErrUnknownVariable = errors.New("fuzzy: unknown variable")
	// ErrUnknownTerm 引用了变量上未声明的模糊集
	ErrUnknownTerm = errors.New("fuzzy: unknown term")
	// ErrInvalidTriangle 三角隶属函数顶点顺序错误
	ErrInvalidTriangle = errors.New("fuzzy: invalid triangle")
	// ErrInvalidVariable 变量定义非法（名称、论域或模糊集）
	ErrInvalidVariable = errors.New("fuzzy: invalid variable")
	// ErrInvalidRule 规则定义非法
	ErrInvalidRule = errors.New("fuzzy: invalid rule")
)
