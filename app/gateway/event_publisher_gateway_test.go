package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"annotate-service/app/domain"
	mock_port "annotate-service/app/mocks"
	"annotate-service/app/utils/metrics"
)

func TestEventPublisherGateway_PublishAnnotationSaved(t *testing.T) {
	event := domain.NewAnnotationSavedEvent(&domain.Annotation{ID: 7, URI: "http://x/1"}, true)

	t.Run("publishes to configured stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		driver := mock_port.NewMockEventStreamDriver(ctrl)
		driver.EXPECT().Publish(gomock.Any(), "annotate:events", event).Return("1-0", nil)

		before := testutil.ToFloat64(metrics.EventsPublishedTotal.WithLabelValues("ok"))
		gw := NewEventPublisherGateway(driver, "annotate:events", testLogger())

		assert.NoError(t, gw.PublishAnnotationSaved(context.Background(), event))
		assert.True(t, gw.IsEnabled())
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.EventsPublishedTotal.WithLabelValues("ok")))
	})

	t.Run("driver error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		driver := mock_port.NewMockEventStreamDriver(ctrl)
		driver.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("redis down"))

		gw := NewEventPublisherGateway(driver, "annotate:events", testLogger())
		err := gw.PublishAnnotationSaved(context.Background(), event)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
	})
}

func TestNoopEventPublisher(t *testing.T) {
	var p NoopEventPublisher

	assert.NoError(t, p.PublishAnnotationSaved(context.Background(), &domain.AnnotationEvent{}))
	assert.False(t, p.IsEnabled())
}
