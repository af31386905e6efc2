package fuzzy

import (
	"math"
	"sort"
)

const gridEpsilon = 1e-9

// universe 按步长离散输出论域，末点始终为 Max
func (s *System) universe() []float64 {
	lo, hi := s.output.Min, s.output.Max
	n := int(math.Floor((hi-lo)/s.resolution + gridEpsilon))

	xs := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		xs = append(xs, lo+float64(i)*s.resolution)
	}
	if hi-xs[len(xs)-1] > gridEpsilon {
		xs = append(xs, hi)
	} else {
		xs[len(xs)-1] = hi
	}
	return xs
}

// aggregate 构造削顶后取并集的输出模糊集
// 在离散网格之外补充各模糊集与削顶高度的交点，使削顶处的折线精确
func (s *System) aggregate(activation map[string]float64) ([]float64, []float64) {
	grid := s.universe()
	xs := append([]float64(nil), grid...)

	for _, t := range s.output.Terms {
		cut := activation[t.Name]
		if cut <= 0 || cut >= 1 {
			continue
		}
		for i := 1; i < len(grid); i++ {
			x0, x1 := grid[i-1], grid[i]
			y0, y1 := t.MF.Degree(x0), t.MF.Degree(x1)
			if (y0-cut)*(y1-cut) < 0 {
				xs = append(xs, x0+(cut-y0)*(x1-x0)/(y1-y0))
			}
		}
	}

	sort.Float64s(xs)
	xs = dedupe(xs)

	ys := make([]float64, len(xs))
	for i, x := range xs {
		for _, t := range s.output.Terms {
			ys[i] = math.Max(ys[i], math.Min(activation[t.Name], t.MF.Degree(x)))
		}
	}
	return xs, ys
}

func dedupe(xs []float64) []float64 {
	out := xs[:0]
	for i, x := range xs {
		if i > 0 && x-out[len(out)-1] <= gridEpsilon {
			continue
		}
		out = append(out, x)
	}
	return out
}

// centroid 计算折线 (xs, ys) 下方区域的重心
// 逐段按梯形累加面积与面积矩；总面积为 0 时返回 false
func centroid(xs, ys []float64) (float64, bool) {
	if len(xs) == 1 {
		if ys[0] <= 0 {
			return 0, false
		}
		return xs[0], true
	}

	var moment, area float64
	for i := 1; i < len(xs); i++ {
		x1, x2 := xs[i-1], xs[i]
		y1, y2 := ys[i-1], ys[i]
		if x1 == x2 || (y1 == 0 && y2 == 0) {
			continue
		}

		w := x2 - x1
		var m, a float64
		switch {
		case y1 == y2:
			m = x1 + w/2
			a = w * y1
		case y1 == 0:
			m = x1 + w*2/3
			a = w * y2 / 2
		case y2 == 0:
			m = x1 + w/3
			a = w * y1 / 2
		default:
			m = x1 + (w*2/3)*(y2+y1/2)/(y1+y2)
			a = w * (y1 + y2) / 2
		}
		moment += m * a
		area += a
	}

	if area <= 0 {
		return 0, false
	}
	return moment / area, true
}
