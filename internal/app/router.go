package app

import (
	"talentscout_backend/docs"
	"talentscout_backend/internal/config"
	"talentscout_backend/internal/middleware"
	"talentscout_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 候选人公开接口
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/screenings", c.screening.Start)
		public.GET("/screenings/:id", c.screening.Get)
		public.POST("/screenings/:id/answers", c.screening.SubmitAnswer)
		public.POST("/admin/login", c.admin.Login)
	}

	// 管理员接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/reports", c.admin.ListReports)
		admin.GET("/reports/:id", c.admin.GetReport)
	}
}
