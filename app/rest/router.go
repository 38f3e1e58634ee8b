package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"annotate-service/app/port"
	"annotate-service/app/rest/handlers"
	custommw "annotate-service/app/rest/middleware"
	"annotate-service/app/utils/security"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	AnnotationUsecase port.AnnotationUsecase
	CatalogUsecase    port.CatalogUsecase
	HealthChecks      map[string]handlers.HealthChecker

	// Optional. Owned and stopped by the caller.
	RateLimiter *custommw.RateLimiter
	IDS         *security.IntrusionDetectionSystem

	ServiceName   string
	EnableOTel    bool
	EnableMetrics bool
	EnableDebug   bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = config.EnableDebug

	annotationHandler := handlers.NewAnnotationHandler(config.AnnotationUsecase, config.Logger)
	catalogHandler := handlers.NewCatalogHandler(config.CatalogUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecks, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(custommw.RequestID())
	if config.EnableOTel {
		e.Use(otelecho.Middleware(config.ServiceName))
		e.Use(custommw.OTelStatusMiddleware())
	}
	e.Use(custommw.RequestLogger(config.Logger))
	if config.EnableMetrics {
		e.Use(custommw.Metrics())
	}
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	if config.IDS != nil {
		e.Use(custommw.IntrusionDetection(config.IDS))
	}
	if config.RateLimiter != nil {
		e.Use(config.RateLimiter.RateLimit())
	}
	e.Use(middleware.BodyLimit("1M"))

	// Health endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)
	e.GET("/health/live", healthHandler.LivenessCheck)

	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	v1 := e.Group("/v1")

	annotations := v1.Group("/annotations")
	annotations.GET("", annotationHandler.List)
	annotations.POST("", annotationHandler.Create)
	annotations.GET("/new", annotationHandler.NewForm)
	annotations.GET("/edit", annotationHandler.Dispatch)
	annotations.GET("/export/json", annotationHandler.ExportJSON)
	annotations.GET("/export/rdf", annotationHandler.ExportRDF)
	annotations.GET("/:id", annotationHandler.Get)
	annotations.GET("/:id/edit", annotationHandler.EditForm)
	annotations.POST("/:id", annotationHandler.Update)

	v1.GET("/facets", catalogHandler.ListFacets)
	v1.GET("/concepts", catalogHandler.ListConcepts)

	return e
}
