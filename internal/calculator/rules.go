package calculator

import (
	"fmt"

	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/model"
)

// ValidateInputs 校验输入规则，返回提示信息（不阻断计算）
// 越界值会在推理时限幅到论域边界
func ValidateInputs(system *fuzzy.System, in model.Inputs, seasons *SeasonTable) []string {
	warnings := make([]string, 0, 4)

	values := []struct {
		name  string
		value float64
	}{
		{VarRainfall, in.Rainfall},
		{VarTemperature, in.Temperature},
		{VarFertilizer, in.Fertilizer},
	}
	for _, v := range values {
		def, ok := system.Input(v.name)
		if !ok {
			continue
		}
		if v.value < def.Min || v.value > def.Max {
			warnings = append(warnings, fmt.Sprintf(
				"%s %g is outside [%g, %g], clamped to %g",
				v.name, v.value, def.Min, def.Max, def.Clamp(v.value),
			))
		}
	}

	if seasons != nil && in.Season != "" && !seasons.Has(in.Season) {
		warnings = append(warnings, fmt.Sprintf("unknown season %q, no crops suggested", in.Season))
	}

	return warnings
}
