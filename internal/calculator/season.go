package calculator

// 季节
const (
	SeasonKharif = "Kharif"
	SeasonRabi   = "Rabi"
	SeasonZaid   = "Zaid"
)

// SeasonTable 季节 -> 适宜作物的只读对照表
type SeasonTable struct {
	order []string
	crops map[string][]string
}

// NewSeasonTable 创建季节作物表
func NewSeasonTable() *SeasonTable {
	return &SeasonTable{
		order: []string{SeasonKharif, SeasonRabi, SeasonZaid},
		crops: map[string][]string{
			SeasonKharif: {"Rice", "Maize", "Cotton"},
			SeasonRabi:   {"Wheat", "Mustard", "Barley"},
			SeasonZaid:   {"Watermelon", "Cucumber", "Moong"},
		},
	}
}

// CropsFor 返回季节对应的作物列表（副本）
// 未知季节返回空列表，不报错
func (t *SeasonTable) CropsFor(season string) []string {
	crops, ok := t.crops[season]
	if !ok {
		return []string{}
	}
	return append([]string(nil), crops...)
}

// Seasons 按固定顺序返回所有季节
func (t *SeasonTable) Seasons() []string {
	return append([]string(nil), t.order...)
}

// Has 判断是否为已知季节
func (t *SeasonTable) Has(season string) bool {
	_, ok := t.crops[season]
	return ok
}
