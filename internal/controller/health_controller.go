package controller

import (
	"net/http"

	"talentscout_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB             *gorm.DB
	GenerationLive bool
}

func NewHealthController(db *gorm.DB, generationLive bool) *HealthController {
	return &HealthController{DB: db, GenerationLive: generationLive}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	mode := "mock"
	if c.GenerationLive {
		mode = "live"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database":   "up",
			"generation": mode,
		},
	})
}
