package util

import (
	"fmt"
	"math"
)

// RoundScore 推荐分数保留两位小数
func RoundScore(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatScore 格式化推荐分数（保留两位小数）
func FormatScore(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
