package exporter

// Stage 导出阶段
type Stage string

const (
	StageModel   Stage = "model"
	StageGrid    Stage = "grid"
	StageSeasons Stage = "seasons"
	StageDone    Stage = "done"
)

// Progress 导出进度事件
type Progress struct {
	Percent int   `json:"percent"`
	Stage   Stage `json:"stage"`
}

// ProgressFunc 进度回调，可为 nil
type ProgressFunc func(Progress)

func (fn ProgressFunc) report(percent int, stage Stage) {
	if fn == nil {
		return
	}
	fn(Progress{Percent: min(max(percent, 0), 100), Stage: stage})
}
