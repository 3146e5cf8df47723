package handlers

import (
	"net/http"

	"github.com/biztrack/biztrack_app/cmd/docs"
	portssvc "github.com/biztrack/biztrack_app/internal/core/ports/services"
	"github.com/biztrack/biztrack_app/internal/middleware"
	"github.com/biztrack/biztrack_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Unknown routes get the same JSON error envelope as handler failures
	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not Found")
	})

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services, apiLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	// Apply per-IP rate limiting to the entire v1 group
	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter))

	// Delegate route registration to specific handlers, passing required services
	RegisterCompanyRoutes(v1, services.Company)
	RegisterInvoiceRoutes(v1, services.Invoice)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
