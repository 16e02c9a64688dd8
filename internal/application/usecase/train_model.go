package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/dto"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// TrainModel is the use case for an offline training run.
type TrainModel struct {
	source    port.DatasetSource
	codec     port.BundleCodec
	store     port.ArtifactStore
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewTrainModel creates a new TrainModel use case.
func NewTrainModel(
	source port.DatasetSource,
	codec port.BundleCodec,
	store port.ArtifactStore,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *TrainModel {
	return &TrainModel{
		source:    source,
		codec:     codec,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute loads the dataset, trains the variant's pipeline, persists the
// bundle under req.Key and publishes ModelTrained.
func (uc *TrainModel) Execute(ctx context.Context, req dto.TrainRequest) (dto.TrainResponse, error) {
	variant, err := valueobject.VariantFromString(req.Variant)
	if err != nil {
		return dto.TrainResponse{}, model.NewConfigurationError("unknown variant", err)
	}
	pipeline, err := service.PipelineFor(variant)
	if err != nil {
		return dto.TrainResponse{}, model.NewConfigurationError("no pipeline", err)
	}

	opts := service.DefaultTrainOptions()
	if req.TestSize != 0 {
		opts.TestSize = req.TestSize
	}
	if req.K != 0 {
		opts.K = req.K
	}
	opts.Seed = req.Seed

	ds, err := uc.source.Load(ctx, req.DataPath, variant)
	if err != nil {
		return dto.TrainResponse{}, fmt.Errorf("failed to load dataset: %w", err)
	}

	res, err := service.NewTrainer(pipeline, uc.logger).Train(ds, opts)
	if err != nil {
		return dto.TrainResponse{}, fmt.Errorf("failed to train %s model: %w", variant, err)
	}

	blob, err := uc.codec.Encode(res.Bundle)
	if err != nil {
		return dto.TrainResponse{}, fmt.Errorf("failed to encode bundle: %w", err)
	}
	if err := uc.store.Save(ctx, req.Key, blob); err != nil {
		return dto.TrainResponse{}, fmt.Errorf("failed to save bundle: %w", err)
	}
	uc.logger.Info("model saved",
		"bundle_id", res.Bundle.ID().String(),
		"key", req.Key,
		"bytes", len(blob),
		"accuracy", res.Report.Accuracy,
	)

	if evts := res.Bundle.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.Error("failed to publish training events", "error", err)
		}
	}

	return dto.FromTrainingResult(res, pipeline.Catalog, req.Key), nil
}
