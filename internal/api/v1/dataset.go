package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sood122/yeild-pridiction/internal/model"
	"github.com/Sood122/yeild-pridiction/internal/store"
)

// PreviewDataset 数据集预览
// GET /api/dataset/preview?rows=N
func (h *Handler) PreviewDataset(c *gin.Context) {
	rows := h.previewRows
	if raw := c.Query("rows"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rows must be a positive integer"})
			return
		}
		rows = min(n, maxPreviewRows)
	}

	preview, err := h.store.Preview(rows)
	if err != nil {
		if errors.Is(err, store.ErrNoDataset) {
			c.JSON(http.StatusOK, model.DatasetPreview{
				Loaded:  false,
				Columns: []string{},
				Rows:    [][]string{},
				Warning: h.datasetWarning(),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dataset"})
		return
	}

	c.JSON(http.StatusOK, preview)
}

// datasetWarning 最近一次加载失败时的提示
func (h *Handler) datasetWarning() string {
	log, err := h.store.LatestLoadLog()
	if err != nil || log.Status != model.LoadStatusFailed {
		return ""
	}
	return "Could not load crop data: " + log.ErrorMessage
}
