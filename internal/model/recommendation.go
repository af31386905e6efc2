package model

// Inputs 一次推荐请求的输入
type Inputs struct {
	Rainfall    float64 `json:"rainfall"`    // 降雨量 (mm)
	Temperature float64 `json:"temperature"` // 温度 (°C)
	Fertilizer  float64 `json:"fertilizer"`  // 施肥量 (kg/acre)
	Season      string  `json:"season"`      // 季节
}

// RuleFiring 单条规则的激活强度
type RuleFiring struct {
	Rule     string  `json:"rule"`     // 规则名
	Text     string  `json:"text"`     // 可读形式
	Then     string  `json:"then"`     // 结论模糊集
	Strength float64 `json:"strength"` // 激活强度
}

// Recommendation 推荐结果
type Recommendation struct {
	ID          string                        `json:"id"`
	Score       float64                       `json:"score"`       // 推荐分数 [0, 10]
	Display     string                        `json:"display"`     // 两位小数展示
	Label       string                        `json:"label"`       // 分数所属的输出模糊集
	Memberships map[string]map[string]float64 `json:"memberships"` // 变量 -> 模糊集 -> 隶属度
	Rules       []RuleFiring                  `json:"rules"`
	Activations map[string]float64            `json:"activations"` // 输出模糊集 -> 聚合强度
	Season      string                        `json:"season"`
	Crops       []string                      `json:"crops"`
	Warnings    []string                      `json:"warnings"`
}

// TermInfo 模糊集定义
type TermInfo struct {
	Name string  `json:"name"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	C    float64 `json:"c"`
}

// VariableInfo 语言变量定义（前端据此生成滑块）
type VariableInfo struct {
	Name    string     `json:"name"`
	Label   string     `json:"label"`
	Unit    string     `json:"unit"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Default float64    `json:"default"`
	Terms   []TermInfo `json:"terms"`
}

// RuleInfo 规则定义
type RuleInfo struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Then string `json:"then"`
}

// ModelInfo 推理模型的完整定义
type ModelInfo struct {
	Inputs     []VariableInfo `json:"inputs"`
	Output     VariableInfo   `json:"output"`
	Rules      []RuleInfo     `json:"rules"`
	Resolution float64        `json:"resolution"`
	Seasons    []string       `json:"seasons"`
}
