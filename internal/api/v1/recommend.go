package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/logger"
	"github.com/Sood122/yeild-pridiction/internal/model"
	"github.com/Sood122/yeild-pridiction/internal/util"
)

// RecommendRequest 推荐请求（数值字段必填，0 是合法值）
type RecommendRequest struct {
	Rainfall    *float64 `json:"rainfall" binding:"required"`
	Temperature *float64 `json:"temperature" binding:"required"`
	Fertilizer  *float64 `json:"fertilizer" binding:"required"`
	Season      string   `json:"season"`
}

// ScoreResponse 分数响应
type ScoreResponse struct {
	Score   float64 `json:"score"`
	Display string  `json:"display"`
}

// GetModel 获取变量与规则定义
// GET /api/model
func (h *Handler) GetModel(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ModelInfo())
}

// Recommend 计算推荐分数与季节作物
// POST /api/recommend
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	rec, err := h.engine.Evaluate(model.Inputs{
		Rainfall:    *req.Rainfall,
		Temperature: *req.Temperature,
		Fertilizer:  *req.Fertilizer,
		Season:      req.Season,
	})
	var score float64
	if rec != nil {
		score = rec.Score
	}
	h.metrics.ObserveEvaluation(score, err)
	if err != nil {
		h.scoreError(c, err)
		return
	}

	logger.FromGin(c).Debug("recommendation computed",
		zap.String("id", rec.ID),
		zap.Float64("score", rec.Score),
		zap.String("season", rec.Season),
	)
	c.JSON(http.StatusOK, rec)
}

// Score 只计算推荐分数
// GET /api/score?rainfall=&temperature=&fertilizer=
func (h *Handler) Score(c *gin.Context) {
	values := make([]float64, 0, 3)
	for _, key := range []string{"rainfall", "temperature", "fertilizer"} {
		raw, ok := c.GetQuery(key)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: " + key})
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameter: " + key})
			return
		}
		values = append(values, v)
	}

	score, err := h.engine.Score(values[0], values[1], values[2])
	h.metrics.ObserveEvaluation(score, err)
	if err != nil {
		h.scoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{
		Score:   util.RoundScore(score),
		Display: util.FormatScore(score),
	})
}

// scoreError 将推理错误映射为 HTTP 响应
func (h *Handler) scoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fuzzy.ErrUndefinedScore):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "no rule applies to these inputs, score is undefined",
			"code":  "undefined_score",
		})
	case errors.Is(err, fuzzy.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_input"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute score"})
	}
}
