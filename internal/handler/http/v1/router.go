package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты Health-check и готовности
	system := api.Group("/system")
	{
		system.GET("/health", h.healthCheck)
		system.GET("/ready", h.readinessCheck)
	}

	feed := api.Group("/feed")
	{
		feed.GET("/status", h.getFeedStatus)

		// Журнал опросов и ручной запуск разрешения только по API-ключу
		admin := feed.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		admin.GET("/requests", h.listFeedRequests)
		admin.POST("/resolve-stale", h.resolveStale)
	}
}
