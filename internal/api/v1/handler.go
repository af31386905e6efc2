package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Sood122/yeild-pridiction/internal/calculator"
	"github.com/Sood122/yeild-pridiction/internal/exporter"
	"github.com/Sood122/yeild-pridiction/internal/metrics"
	"github.com/Sood122/yeild-pridiction/internal/store"
)

// maxPreviewRows 预览行数上限
const maxPreviewRows = 100

// Handler V1 API 处理器
type Handler struct {
	engine      *calculator.Engine
	store       *store.Store
	exporter    *exporter.Exporter
	metrics     *metrics.Metrics
	previewRows int
}

// NewHandler 创建 V1 API 处理器，m 可为 nil
func NewHandler(engine *calculator.Engine, store *store.Store, previewRows int, m *metrics.Metrics) *Handler {
	if previewRows <= 0 {
		previewRows = 5
	}
	return &Handler{
		engine:      engine,
		store:       store,
		exporter:    exporter.NewExporter(engine),
		metrics:     m,
		previewRows: previewRows,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 推理模型定义
	router.GET("/model", h.GetModel)

	// 推荐计算
	router.POST("/recommend", h.Recommend)
	router.GET("/score", h.Score)

	// 季节作物
	router.GET("/seasons", h.ListSeasons)
	router.GET("/seasons/:season/crops", h.ListCrops)

	// 数据集预览
	router.GET("/dataset/preview", h.PreviewDataset)

	// 评分网格导出
	router.GET("/export/xlsx", h.ExportWorkbook)
}
