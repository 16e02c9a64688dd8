package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
)

// LoadModel reads the persisted bundle once and builds the inference engine.
type LoadModel struct {
	store  port.ArtifactStore
	codec  port.BundleCodec
	logger *slog.Logger
}

// NewLoadModel creates a new LoadModel use case.
func NewLoadModel(store port.ArtifactStore, codec port.BundleCodec, logger *slog.Logger) *LoadModel {
	return &LoadModel{store: store, codec: codec, logger: logger}
}

// Execute returns an engine for the bundle stored under key. Every failure
// is a *model.ConfigurationError.
func (uc *LoadModel) Execute(ctx context.Context, key string) (*service.InferenceEngine, error) {
	blob, err := uc.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, port.ErrArtifactNotFound) {
			return nil, model.NewConfigurationError(fmt.Sprintf("no model artifact under %q", key), err)
		}
		return nil, model.NewConfigurationError("failed to read model artifact", err)
	}

	bundle, err := uc.codec.Decode(blob)
	if err != nil {
		var cfg *model.ConfigurationError
		if errors.As(err, &cfg) {
			return nil, err
		}
		return nil, model.NewConfigurationError("failed to decode model artifact", err)
	}

	pipeline, err := service.PipelineFor(bundle.Variant())
	if err != nil {
		return nil, model.NewConfigurationError("no pipeline for stored bundle", err)
	}
	engine, err := service.NewInferenceEngine(bundle, pipeline, uc.logger)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("model loaded",
		"bundle_id", bundle.ID().String(),
		"variant", bundle.Variant().String(),
		"features", bundle.Schema().Names(),
		"classes", bundle.Classes(),
		"created_at", bundle.CreatedAt(),
	)
	return engine, nil
}
