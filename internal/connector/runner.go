// internal/connector/runner.go
package connector

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/common/errors"
	"crono-connector/internal/common/logger"
	"crono-connector/internal/common/metrics"
	"crono-connector/internal/common/observability"
)

// Result is one output item. Index points back at the input item that
// produced it; outputs keep input order.
type Result struct {
	Index int `json:"pairedItem"`
	JSON  any `json:"json"`
}

// Runner drives a batch of items through validation, request building and
// execution, strictly one at a time.
type Runner struct {
	client         *cronoapi.Client
	log            logger.Logger
	obs            *observability.Observability
	apiVersion     int
	continueOnFail bool
}

func NewRunner(client *cronoapi.Client, log logger.Logger, obs *observability.Observability, apiVersion int, continueOnFail bool) *Runner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Runner{
		client:         client,
		log:            log,
		obs:            obs,
		apiVersion:     apiVersion,
		continueOnFail: continueOnFail,
	}
}

// Run processes the items sequentially and returns one Result per item, in
// input order. With continueOnFail a failed item yields a Result whose JSON
// is {"error": ...} and the batch keeps going; otherwise the first failure
// aborts the batch.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Result, error) {
	runID := uuid.NewString()
	r.log.Info("starting batch", map[string]interface{}{
		"run_id": runID,
		"items":  len(items),
	})

	results := make([]Result, 0, len(items))
	for _, item := range items {
		start := time.Now()
		response, err := r.processItem(ctx, item)
		r.record(ctx, item, time.Since(start), err)

		if err != nil {
			r.log.WithError(err).Error("item failed", map[string]interface{}{
				"run_id": runID,
				"item":   item.Index,
			})
			if !r.continueOnFail {
				return nil, err
			}
			results = append(results, Result{Index: item.Index, JSON: map[string]any{"error": errorPayload(err)}})
			continue
		}
		results = append(results, Result{Index: item.Index, JSON: response})
	}

	r.log.Info("batch finished", map[string]interface{}{
		"run_id":  runID,
		"results": len(results),
	})
	return results, nil
}

func (r *Runner) processItem(ctx context.Context, item Item) (any, error) {
	if err := ValidateItem(item); err != nil {
		return nil, err
	}
	req, err := BuildRequest(item, r.apiVersion)
	if err != nil {
		return nil, err
	}
	return r.client.Execute(ctx, req)
}

func (r *Runner) record(ctx context.Context, item Item, elapsed time.Duration, err error) {
	resource := item.String("resource", "unknown")
	operation := item.String("operation", "unknown")

	metrics.ItemsProcessed.WithLabelValues(resource, operation).Inc()
	metrics.RequestDuration.WithLabelValues(resource, operation).Observe(elapsed.Seconds())

	status := "success"
	if err != nil {
		status = "error"
		metrics.ItemsFailed.WithLabelValues(resource, operation, string(errors.Code(err))).Inc()
	}
	if r.obs != nil {
		r.obs.RecordItemProcessed(ctx, status)
		r.obs.RecordItemDuration(ctx, elapsed, status)
	}
}

// errorPayload renders an error as the JSON value placed on a failed item's
// result when the batch continues past failures.
func errorPayload(err error) any {
	if stdErr, ok := err.(*errors.StandardError); ok {
		return stdErr
	}
	return err.Error()
}
