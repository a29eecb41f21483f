package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты диспетчеризации SOS-запросов
	sos := api.Group("/sos")
	if len(h.cfg.APIKeys) > 0 {
		sos.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		sos.POST("", h.createSOS)
		sos.GET("/open", h.listOpenSOS)
		sos.GET("/:id", h.getSOS)
		sos.POST("/:id/claim", h.claimSOS)
		sos.POST("/:id/reject", h.rejectSOS)
		sos.POST("/:id/resolve", h.resolveSOS)
		sos.GET("/:id/helpers/nearest", h.nearestHelpers)
	}

	// Доска публичных оповещений
	alerts := api.Group("/alerts")
	if len(h.cfg.APIKeys) > 0 {
		alerts.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listAlerts)
	}

	// Маршрут Health-check, без аутентификации
	api.GET("/system/health", h.healthCheck)
}
