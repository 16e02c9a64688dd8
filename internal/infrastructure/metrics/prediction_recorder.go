// Package metrics records prediction outcomes on an OpenTelemetry meter.
package metrics

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PredictionRecorder implements port.PredictionRecorder.
type PredictionRecorder struct {
	predictions metric.Int64Counter
	failures    metric.Int64Counter
	unknown     metric.Int64Counter
}

// NewPredictionRecorder registers the prediction counters on meter.
func NewPredictionRecorder(meter metric.Meter) (*PredictionRecorder, error) {
	predictions, err := meter.Int64Counter("nutrition_predictions",
		metric.WithDescription("Predictions served, by variant, class and override"))
	if err != nil {
		return nil, fmt.Errorf("create predictions counter: %w", err)
	}
	failures, err := meter.Int64Counter("nutrition_prediction_errors",
		metric.WithDescription("Predictions that failed, by kind"))
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}
	unknown, err := meter.Int64Counter("nutrition_unknown_class",
		metric.WithDescription("Classifier outputs with no catalog entry"))
	if err != nil {
		return nil, fmt.Errorf("create unknown class counter: %w", err)
	}
	return &PredictionRecorder{predictions: predictions, failures: failures, unknown: unknown}, nil
}

func (r *PredictionRecorder) RecordPrediction(ctx context.Context, variant string, classID int, overridden bool) {
	r.predictions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", variant),
		attribute.String("class_id", strconv.Itoa(classID)),
		attribute.Bool("overridden", overridden),
	))
}

func (r *PredictionRecorder) RecordFailure(ctx context.Context, kind string) {
	r.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (r *PredictionRecorder) RecordUnknownClass(ctx context.Context, variant string, classID int) {
	r.unknown.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", variant),
		attribute.String("class_id", strconv.Itoa(classID)),
	))
}
