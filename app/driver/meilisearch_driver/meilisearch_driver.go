package meilisearch_driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/meilisearch/meilisearch-go"
)

// PrimaryKey is the primary key attribute of the annotation index.
const PrimaryKey = "id"

const pollInterval = 50 * time.Millisecond

// DriverError is a failed Meilisearch call.
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}

// NewClient creates a Meilisearch client whose HTTP calls time out after timeout.
func NewClient(host, apiKey string, timeout time.Duration) meilisearch.ServiceManager {
	return meilisearch.New(host,
		meilisearch.WithAPIKey(apiKey),
		meilisearch.WithCustomClient(&http.Client{Timeout: timeout}),
	)
}

// WaitHealthy polls the health endpoint with exponential backoff until it
// answers or maxElapsed has passed.
func WaitHealthy(ctx context.Context, client meilisearch.ServiceManager, maxElapsed time.Duration, logger *slog.Logger) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if _, err := client.HealthWithContext(ctx); err != nil {
			logger.Warn("Meilisearch not ready, retrying", "attempt", attempt, "error", err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(bo), backoff.WithMaxElapsedTime(maxElapsed))
	if err != nil {
		return &DriverError{Op: "WaitHealthy", Err: fmt.Sprintf("not healthy after %d attempts: %v", attempt, err)}
	}

	logger.Info("Connected to Meilisearch", "attempts", attempt)
	return nil
}

// MeilisearchDriver reads and writes documents of one index.
type MeilisearchDriver struct {
	client    meilisearch.ServiceManager
	index     meilisearch.IndexManager
	indexName string
	timeout   time.Duration
}

// NewMeilisearchDriver binds the driver to indexName. timeout bounds the
// wait for each write task.
func NewMeilisearchDriver(client meilisearch.ServiceManager, indexName string, timeout time.Duration) *MeilisearchDriver {
	return &MeilisearchDriver{
		client:    client,
		index:     client.Index(indexName),
		indexName: indexName,
		timeout:   timeout,
	}
}

// EnsureIndex creates the index with PrimaryKey when it does not exist.
func (d *MeilisearchDriver) EnsureIndex(ctx context.Context) error {
	_, err := d.index.FetchInfoWithContext(ctx)
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return &DriverError{Op: "EnsureIndex", Err: err.Error()}
	}

	task, err := d.client.CreateIndexWithContext(ctx, &meilisearch.IndexConfig{
		Uid:        d.indexName,
		PrimaryKey: PrimaryKey,
	})
	if err != nil {
		return &DriverError{Op: "EnsureIndex", Err: "failed to create index: " + err.Error()}
	}

	return d.waitForTask(ctx, "EnsureIndex", task.TaskUID)
}

// GetDocument loads the document with id. found is false on 404.
func (d *MeilisearchDriver) GetDocument(ctx context.Context, id string) (map[string]any, bool, error) {
	doc := map[string]any{}
	err := d.index.GetDocumentWithContext(ctx, id, nil, &doc)
	if err != nil {
		if IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, &DriverError{Op: "GetDocument", Err: err.Error()}
	}
	return doc, true, nil
}

// UpdateDocument writes doc, which must carry PrimaryKey, and waits until
// the task succeeded. Fields absent from doc are left as they are.
func (d *MeilisearchDriver) UpdateDocument(ctx context.Context, doc map[string]any) error {
	if _, ok := doc[PrimaryKey]; !ok {
		return &DriverError{Op: "UpdateDocument", Err: "document has no " + PrimaryKey}
	}

	pk := PrimaryKey
	task, err := d.index.UpdateDocumentsWithContext(ctx, []map[string]any{doc}, &meilisearch.DocumentOptions{PrimaryKey: &pk})
	if err != nil {
		return &DriverError{Op: "UpdateDocument", Err: err.Error()}
	}

	return d.waitForTask(ctx, "UpdateDocument", task.TaskUID)
}

// Health checks that the Meilisearch server is available.
func (d *MeilisearchDriver) Health(ctx context.Context) error {
	if _, err := d.client.HealthWithContext(ctx); err != nil {
		return &DriverError{Op: "Health", Err: err.Error()}
	}
	return nil
}

func (d *MeilisearchDriver) waitForTask(ctx context.Context, op string, taskUID int64) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	task, err := d.index.WaitForTaskWithContext(ctx, taskUID, pollInterval)
	if err != nil {
		return &DriverError{Op: op, Err: "failed to wait for task: " + err.Error()}
	}

	if task.Status != meilisearch.TaskStatusSucceeded {
		msg := string(task.Status)
		if task.Error.Message != "" {
			msg += ": " + task.Error.Message
		}
		return &DriverError{Op: op, Err: fmt.Sprintf("task %d %s", taskUID, msg)}
	}

	return nil
}

// IsNotFound reports whether err is a Meilisearch 404 response.
func IsNotFound(err error) bool {
	var meiliErr *meilisearch.Error
	return errors.As(err, &meiliErr) && meiliErr.StatusCode == http.StatusNotFound
}
