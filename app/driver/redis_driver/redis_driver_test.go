package redis_driver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotate-service/app/domain"
)

func setupTestDriver(t *testing.T) (*RedisDriver, *Miniredis) {
	t.Helper()
	mr := NewMiniredis(t)

	driver, err := NewRedisDriverWithURL("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })

	return driver, mr
}

func TestRedisDriver_Publish(t *testing.T) {
	t.Run("appends event to stream", func(t *testing.T) {
		driver, mr := setupTestDriver(t)
		event := &domain.AnnotationEvent{
			EventID:      "evt-1",
			EventType:    domain.EventTypeAnnotationSaved,
			AnnotationID: 42,
			URI:          "http://x/1",
			Created:      true,
			OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		messageID, err := driver.Publish(context.Background(), "annotate:events", event)
		require.NoError(t, err)
		assert.Contains(t, messageID, "-")

		entries, err := mr.Stream("annotate:events")
		require.NoError(t, err)
		require.Len(t, entries, 1)

		values := map[string]string{}
		for i := 0; i+1 < len(entries[0].Values); i += 2 {
			values[entries[0].Values[i]] = entries[0].Values[i+1]
		}
		assert.Equal(t, "evt-1", values["event_id"])
		assert.Equal(t, "annotation.saved", values["event_type"])
		assert.Equal(t, EventSource, values["source"])
		assert.Equal(t, "2026-01-02T03:04:05.000Z", values["created_at"])

		var payload domain.AnnotationEvent
		require.NoError(t, json.Unmarshal([]byte(values["payload"]), &payload))
		assert.Equal(t, int64(42), payload.AnnotationID)
		assert.Equal(t, "http://x/1", payload.URI)
		assert.True(t, payload.Created)
	})

	t.Run("returns error for nil event", func(t *testing.T) {
		driver, _ := setupTestDriver(t)

		_, err := driver.Publish(context.Background(), "annotate:events", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "event is nil")
	})

	t.Run("returns error when redis is down", func(t *testing.T) {
		driver, mr := setupTestDriver(t)
		mr.Close()

		_, err := driver.Publish(context.Background(), "annotate:events", &domain.AnnotationEvent{EventID: "evt-2"})
		assert.Error(t, err)
	})
}

func TestRedisDriver_Ping(t *testing.T) {
	driver, _ := setupTestDriver(t)

	assert.NoError(t, driver.Ping(context.Background()))
}

func TestNewRedisDriverWithURL_Invalid(t *testing.T) {
	_, err := NewRedisDriverWithURL("http://not-redis")
	assert.Error(t, err)
}
