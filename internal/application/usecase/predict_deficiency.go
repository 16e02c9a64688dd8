package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/dto"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/event"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/events"
)

// Failure kinds reported to the PredictionRecorder.
const (
	FailureUnavailable = "unavailable"
	FailureValidation  = "validation"
	FailureInternal    = "internal"
)

// PredictDeficiency is the use case for classifying one submission.
type PredictDeficiency struct {
	engine    *service.InferenceEngine
	publisher port.EventPublisher
	recorder  port.PredictionRecorder
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewPredictDeficiency creates the use case. A nil engine puts it in
// degraded mode where every call fails with model.ErrModelUnavailable.
func NewPredictDeficiency(
	engine *service.InferenceEngine,
	publisher port.EventPublisher,
	recorder port.PredictionRecorder,
	logger *slog.Logger,
) *PredictDeficiency {
	return &PredictDeficiency{
		engine:    engine,
		publisher: publisher,
		recorder:  recorder,
		tracer:    otel.Tracer("nutrition/predict"),
		logger:    logger,
	}
}

// Ready reports whether a model is loaded.
func (uc *PredictDeficiency) Ready() bool { return uc.engine != nil }

// Engine returns the loaded engine or nil.
func (uc *PredictDeficiency) Engine() *service.InferenceEngine { return uc.engine }

// Execute classifies the submission, applies overrides, records metrics and
// publishes events. Publishing is best effort.
func (uc *PredictDeficiency) Execute(ctx context.Context, req dto.PredictRequest) (dto.PredictResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "PredictDeficiency")
	defer span.End()

	if uc.engine == nil {
		uc.recorder.RecordFailure(ctx, FailureUnavailable)
		span.SetStatus(codes.Error, model.ErrModelUnavailable.Error())
		return dto.PredictResponse{}, model.ErrModelUnavailable
	}

	assessment, err := uc.engine.Assess(req.Fields)
	if err != nil {
		kind := FailureInternal
		if model.IsClientError(err) {
			kind = FailureValidation
		}
		uc.recorder.RecordFailure(ctx, kind)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		return dto.PredictResponse{}, err
	}

	bundle := uc.engine.Bundle()
	variant := bundle.Variant().String()
	predictionID := uuid.New()
	verdict := assessment.Verdict

	span.SetAttributes(
		attribute.String("nutrition.variant", variant),
		attribute.Int("nutrition.class_id", verdict.ClassID),
		attribute.Bool("nutrition.overridden", verdict.Overridden),
	)

	uc.recorder.RecordPrediction(ctx, variant, verdict.ClassID, verdict.Overridden)
	if assessment.UnknownClass {
		uc.recorder.RecordUnknownClass(ctx, variant, verdict.ClassID)
	}

	evts := []events.DomainEvent{
		event.NewPredictionCompleted(bundle.ID(), predictionID, variant, verdict.ClassID, verdict.Label, verdict.Overridden),
	}
	if verdict.Overridden {
		evts = append(evts, event.NewSymptomOverrideApplied(
			bundle.ID(), predictionID, verdict.Rule, assessment.ModelVerdict.ClassID, assessment.Symptoms.Names(),
		))
	}
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		uc.logger.Error("failed to publish prediction events",
			"prediction_id", predictionID.String(),
			"error", err,
		)
	}

	return dto.FromAssessment(assessment, predictionID, bundle.ID(), variant), nil
}
