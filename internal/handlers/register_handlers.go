package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/middleware"
	"github.com/txnsuite/estate-reporting/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	projectionService portssvc.ProjectionService,
	reportingService portssvc.ReportingService,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Everything is estate-scoped and sits behind the auth middleware.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	estates := v1.Group("/estates/:estate_id")

	RegisterEventRoutes(estates, projectionService)
	RegisterReportingRoutes(estates, reportingService)
}
