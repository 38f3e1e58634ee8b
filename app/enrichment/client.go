package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	"annotate-service/app/projector"
	"annotate-service/app/utils/metrics"
)

// Client implements port.IndexEnrichmentClient against a search index.
type Client struct {
	plugins map[string]Plugin
	index   port.SearchIndexGateway
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// NewClient registers plugins by name.
func NewClient(index port.SearchIndexGateway, logger *slog.Logger, plugins ...Plugin) *Client {
	registry := make(map[string]Plugin, len(plugins))
	for _, p := range plugins {
		registry[p.Name()] = p
	}

	return &Client{
		plugins: registry,
		index:   index,
		logger:  logger.With("component", "enrichment"),
		tracer:  otel.Tracer("annotate-service"),
		now:     time.Now,
	}
}

// Enrich runs the requested plugins for the document and commits the result.
func (c *Client) Enrich(ctx context.Context, req domain.EnrichmentRequest) error {
	ctx, span := c.tracer.Start(ctx, "enrichment.Enrich", trace.WithAttributes(
		attribute.String("annotation.uri", req.DocumentID()),
		attribute.StringSlice("enrichment.plugins", req.Plugins()),
	))
	defer span.End()

	if err := c.enrich(ctx, req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RecordEnrichment("error")
		return err
	}

	metrics.RecordEnrichment("ok")
	return nil
}

func (c *Client) enrich(ctx context.Context, req domain.EnrichmentRequest) error {
	uri := req.DocumentID()
	start := c.now()
	produced := domain.IndexDocument{}

	for _, name := range req.Plugins() {
		plugin, ok := c.plugins[name]
		if !ok {
			err := &domain.EnrichmentError{Plugin: name, Op: "resolve", Err: domain.ErrUnknownPlugin}
			if req.FailFast() {
				return err
			}
			c.logger.Warn("skipping unknown plugin", "plugin", name, "uri", uri)
			continue
		}

		pluginStart := c.now()
		if err := plugin.Apply(ctx, uri, produced); err != nil {
			if req.FailFast() {
				return &domain.EnrichmentError{Plugin: name, Op: "apply", Err: err}
			}
			c.logger.Warn("plugin failed, continuing", "plugin", name, "uri", uri, "error", err)
			continue
		}
		elapsed := c.now().Sub(pluginStart)
		metrics.RecordPlugin(name, elapsed.Seconds())

		produced[FlagField(name)] = true
		produced[TimeField(name)] = elapsed.Milliseconds()
	}
	produced[projector.FieldETLTimeMillis] = c.now().Sub(start).Milliseconds()

	stored, found, err := c.index.GetDocument(ctx, uri)
	if err != nil {
		return &domain.EnrichmentError{Op: "fetch", Err: err}
	}
	if !found {
		stored = domain.IndexDocument{}
	}

	if err := c.index.SaveDocument(ctx, uri, Merge(stored, produced, req)); err != nil {
		return &domain.EnrichmentError{Op: "commit", Err: fmt.Errorf("failed to commit document: %w", err)}
	}

	c.logger.Info("document enriched",
		"uri", uri,
		"plugins", req.Plugins(),
		"existing", found,
		"duration_ms", c.now().Sub(start).Milliseconds())
	return nil
}
