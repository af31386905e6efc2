package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Ready          bool     `json:"ready"`          // 推理模型已就绪
	DatasetStatus  string   `json:"datasetStatus"`  // 数据集加载状态，未配置时为空
	DatasetLoaded  bool     `json:"datasetLoaded"`  // 是否有可预览的数据集
	DatasetWarning string   `json:"datasetWarning"` // 加载失败提示
	Seasons        []string `json:"seasons"`        // 可选季节
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Ready:          true,
		Seasons:        h.engine.Seasons(),
		DatasetWarning: h.datasetWarning(),
	}

	if log, err := h.store.LatestLoadLog(); err == nil {
		resp.DatasetStatus = log.Status
	}
	if _, err := h.store.LatestDataset(); err == nil {
		resp.DatasetLoaded = true
	}

	c.JSON(http.StatusOK, resp)
}
