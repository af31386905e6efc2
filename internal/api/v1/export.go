package v1

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sood122/yeild-pridiction/internal/exporter"
	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportWorkbook 下载评分网格工作簿
// GET /api/export/xlsx?temperature=30&step=25
func (h *Handler) ExportWorkbook(c *gin.Context) {
	opts := exporter.Options{Temperature: 30, Step: exporter.DefaultStep}
	if raw, ok := c.GetQuery("temperature"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameter: temperature"})
			return
		}
		opts.Temperature = v
	}
	if raw, ok := c.GetQuery("step"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameter: step"})
			return
		}
		opts.Step = v
	}

	f, err := h.exporter.Export(opts)
	if err != nil {
		if errors.Is(err, exporter.ErrInvalidStep) || errors.Is(err, fuzzy.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.FromGin(c).Error("export workbook failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="crop-score-grid-%gC.xlsx"`, opts.Temperature))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.FromGin(c).Error("write workbook failed", zap.Error(err))
	}
}
