package exporter

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Sood122/yeild-pridiction/internal/calculator"
)

func newExporter(t *testing.T) *Exporter {
	t.Helper()
	engine, err := calculator.NewDefaultEngine(1)
	require.NoError(t, err)
	return NewExporter(engine)
}

func TestExportWorkbook(t *testing.T) {
	var stages []Stage
	f, err := newExporter(t).Export(Options{
		Temperature: 30,
		Step:        100,
		Progress:    func(p Progress) { stages = append(stages, p.Stage) },
	})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetGrid, SheetModel, SheetRules, SheetSeasons}, f.GetSheetList())
	assert.Equal(t, []Stage{StageGrid, StageModel, StageSeasons, StageDone}, stages)

	// 表头：施肥量 0/100/200
	for cell, want := range map[string]string{"B1": "0", "C1": "100", "D1": "200", "A3": "100"} {
		got, err := f.GetCellValue(SheetGrid, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	// rainfall=100, fertilizer=100
	v, err := f.GetCellValue(SheetGrid, "C3")
	require.NoError(t, err)
	assert.Equal(t, "8.67", v)

	// rainfall=0, fertilizer=0：没有规则激活
	v, err = f.GetCellValue(SheetGrid, "B2")
	require.NoError(t, err)
	assert.Equal(t, UndefinedCell, v)

	rules, err := f.GetRows(SheetRules)
	require.NoError(t, err)
	assert.Len(t, rules, 5)
	assert.Equal(t, "R2", rules[2][0])

	seasons, err := f.GetRows(SheetSeasons)
	require.NoError(t, err)
	require.Len(t, seasons, 4)
	assert.Equal(t, []string{"Rabi", "Wheat, Mustard, Barley"}, seasons[2])

	model, err := f.GetRows(SheetModel)
	require.NoError(t, err)
	assert.Len(t, model, 1+4*3)
}

func TestExportRoundTrip(t *testing.T) {
	f, err := newExporter(t).Export(Options{Temperature: 25})
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows(SheetGrid)
	require.NoError(t, err)
	// 0..200 步长 25：9 个点 + 表头
	assert.Len(t, rows, 10)
	assert.Len(t, rows[0], 10)
}

func TestExportInvalidStep(t *testing.T) {
	for _, step := range []float64{0.1, 1e-300, math.SmallestNonzeroFloat64, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := newExporter(t).Export(Options{Temperature: 30, Step: step})
		assert.ErrorIs(t, err, ErrInvalidStep, "step %g", step)
	}
}

func TestAxisRejectsNonFiniteStep(t *testing.T) {
	v := newExporter(t).engine.ModelInfo().Inputs[0]
	for _, step := range []float64{0, -5, 1e-300, math.NaN(), math.Inf(1)} {
		_, err := axis(v, step)
		assert.ErrorIs(t, err, ErrInvalidStep, "step %g", step)
	}
}

func TestAxisIncludesUpperBound(t *testing.T) {
	v, err := axis(newExporter(t).engine.ModelInfo().Inputs[0], 75)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 75, 150, 200}, v)
}
