package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"annotate-service/app/domain"
	"annotate-service/app/port"
	"annotate-service/app/utils/metrics"
)

// EventPublisherGateway publishes annotation events to a Redis stream.
type EventPublisherGateway struct {
	driver port.EventStreamDriver
	stream string
	logger *slog.Logger
}

// NewEventPublisherGateway creates a publisher writing to stream.
func NewEventPublisherGateway(driver port.EventStreamDriver, stream string, logger *slog.Logger) *EventPublisherGateway {
	return &EventPublisherGateway{
		driver: driver,
		stream: stream,
		logger: logger.With("component", "event_publisher_gateway"),
	}
}

// PublishAnnotationSaved appends the event to the stream.
func (g *EventPublisherGateway) PublishAnnotationSaved(ctx context.Context, event *domain.AnnotationEvent) error {
	messageID, err := g.driver.Publish(ctx, g.stream, event)
	if err != nil {
		metrics.RecordEventPublish("error")
		g.logger.Warn("failed to publish annotation event",
			"stream", g.stream,
			"annotation_id", event.AnnotationID,
			"error", err)
		return fmt.Errorf("failed to publish annotation event: %w", err)
	}

	metrics.RecordEventPublish("ok")
	g.logger.Debug("annotation event published",
		"stream", g.stream,
		"message_id", messageID,
		"event_id", event.EventID)
	return nil
}

// IsEnabled returns true.
func (g *EventPublisherGateway) IsEnabled() bool {
	return true
}

// NoopEventPublisher is used when no event stream is configured.
type NoopEventPublisher struct{}

// PublishAnnotationSaved does nothing.
func (NoopEventPublisher) PublishAnnotationSaved(context.Context, *domain.AnnotationEvent) error {
	return nil
}

// IsEnabled returns false.
func (NoopEventPublisher) IsEnabled() bool {
	return false
}
