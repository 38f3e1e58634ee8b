package di

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/labstack/echo/v4"

	"annotate-service/app/config"
	"annotate-service/app/driver/catalogfile"
	"annotate-service/app/driver/meilisearch_driver"
	"annotate-service/app/driver/postgres"
	"annotate-service/app/driver/redis_driver"
	"annotate-service/app/enrichment"
	"annotate-service/app/gateway"
	"annotate-service/app/port"
	"annotate-service/app/rest"
	"annotate-service/app/rest/handlers"
	custommw "annotate-service/app/rest/middleware"
	"annotate-service/app/usecase"
	"annotate-service/app/utils/security"
	"annotate-service/app/utils/tokenize"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB          *postgres.DB
	Meilisearch *meilisearch_driver.MeilisearchDriver
	Redis       *redis_driver.RedisDriver

	// Gateways
	SearchIndex port.SearchIndexGateway
	Events      port.AnnotationEventPublisher

	// Usecases
	AnnotationUsecase port.AnnotationUsecase
	CatalogUsecase    port.CatalogUsecase

	rateLimiter *custommw.RateLimiter
	ids         *security.IntrusionDetectionSystem
}

// NewContainer connects every backing service and wires the application.
// The search index must become healthy within the Meilisearch timeout.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	c.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := c.initSearchIndex(ctx); err != nil {
		c.Close()
		return nil, err
	}

	if err := c.initEvents(ctx); err != nil {
		c.Close()
		return nil, err
	}

	annotationRepo := postgres.NewAnnotationRepository(c.DB.Pool(), logger)
	catalogRepo := postgres.NewCatalogRepository(c.DB.Pool(), logger)

	plugins, err := newPlugins(cfg.EnrichLanguages, annotationRepo)
	if err != nil {
		c.Close()
		return nil, err
	}
	enrichmentClient := enrichment.NewClient(c.SearchIndex, logger, plugins...)

	c.AnnotationUsecase = usecase.NewAnnotationUseCase(annotationRepo, catalogRepo, enrichmentClient, c.Events, logger)
	c.CatalogUsecase = usecase.NewCatalogUseCase(catalogRepo, logger)

	if cfg.CatalogFile != "" {
		if err := c.importCatalog(ctx, cfg.CatalogFile); err != nil {
			c.Close()
			return nil, err
		}
	}

	c.rateLimiter = custommw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	c.ids = security.NewIDS(logger)

	logger.Info("Container initialized",
		"index", cfg.MeilisearchIndex,
		"languages", cfg.EnrichLanguages,
		"events", c.Events.IsEnabled())

	return c, nil
}

func (c *Container) initSearchIndex(ctx context.Context) error {
	cfg := c.Config
	client := meilisearch_driver.NewClient(cfg.MeilisearchHost, cfg.MeilisearchAPIKey, cfg.MeilisearchTimeout)

	if err := meilisearch_driver.WaitHealthy(ctx, client, cfg.MeilisearchTimeout, c.Logger); err != nil {
		return fmt.Errorf("failed to reach search index: %w", err)
	}

	c.Meilisearch = meilisearch_driver.NewMeilisearchDriver(client, cfg.MeilisearchIndex, cfg.MeilisearchTimeout)
	if err := c.Meilisearch.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("failed to prepare search index: %w", err)
	}

	c.SearchIndex = gateway.NewSearchIndexGateway(c.Meilisearch, c.Logger)
	return nil
}

func (c *Container) initEvents(ctx context.Context) error {
	if !c.Config.EventsEnabled() {
		c.Events = gateway.NoopEventPublisher{}
		return nil
	}

	var err error
	c.Redis, err = redis_driver.NewRedisDriverWithURL(c.Config.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	if err := c.Redis.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	c.Events = gateway.NewEventPublisherGateway(c.Redis, c.Config.AnnotationStream, c.Logger)
	return nil
}

// newPlugins builds the enrichment plugins. The Japanese dictionary is only
// loaded when "ja" is configured.
func newPlugins(languages []string, repo port.AnnotationRepository) ([]enrichment.Plugin, error) {
	var tokenizer *tokenize.Tokenizer
	if slices.Contains(languages, "ja") {
		var err error
		tokenizer, err = tokenize.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
		}
	}

	return []enrichment.Plugin{
		enrichment.NewEnhanceAnnotations(repo),
		enrichment.NewEnhanceMultilingual(languages, tokenizer),
	}, nil
}

func (c *Container) importCatalog(ctx context.Context, path string) error {
	catalog, err := catalogfile.Load(path)
	if err != nil {
		return err
	}

	result, err := c.CatalogUsecase.Import(ctx, catalog)
	if err != nil {
		return fmt.Errorf("failed to import catalog %s: %w", path, err)
	}

	c.Logger.Info("Catalog imported", "file", path, "facets", result.Facets, "concepts", result.Concepts)
	return nil
}

// HealthChecks returns the dependencies probed by the readiness endpoint.
func (c *Container) HealthChecks() map[string]handlers.HealthChecker {
	checks := map[string]handlers.HealthChecker{
		"database":    c.DB,
		"meilisearch": c.SearchIndex,
	}
	if c.Redis != nil {
		checks["redis"] = handlers.CheckFunc(c.Redis.Ping)
	}
	return checks
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	router := rest.NewRouter(rest.RouterConfig{
		Logger:            c.Logger,
		AnnotationUsecase: c.AnnotationUsecase,
		CatalogUsecase:    c.CatalogUsecase,
		HealthChecks:      c.HealthChecks(),
		RateLimiter:       c.rateLimiter,
		IDS:               c.ids,
		ServiceName:       "annotate-service",
		EnableOTel:        c.Config.EnableOTel,
		EnableMetrics:     c.Config.EnableMetrics,
		EnableDebug:       c.Config.LogLevel == "debug",
	})

	c.Logger.Info("API router created")
	return router
}

// Close releases every resource the container opened.
func (c *Container) Close() {
	if c.rateLimiter != nil {
		c.rateLimiter.Stop()
	}
	if c.ids != nil {
		c.ids.Stop()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close redis", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed")
}
