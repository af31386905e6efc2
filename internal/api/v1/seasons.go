package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListSeasons 季节列表
// GET /api/seasons
func (h *Handler) ListSeasons(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Seasons())
}

// ListCrops 季节对应的作物，未知季节返回空列表
// GET /api/seasons/:season/crops
func (h *Handler) ListCrops(c *gin.Context) {
	season := c.Param("season")
	c.JSON(http.StatusOK, gin.H{
		"season": season,
		"crops":  h.engine.CropsFor(season),
	})
}
