package rest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/messaging"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/observability"
)

type nopRecorder struct{}

func (nopRecorder) RecordPrediction(context.Context, string, int, bool) {}
func (nopRecorder) RecordFailure(context.Context, string)               {}
func (nopRecorder) RecordUnknownClass(context.Context, string, int)     {}

func labDataset() *model.Dataset {
	ds := &model.Dataset{Columns: []string{"age", "gender", "height", "weight", "hemoglobin", "cholesterol"}}
	for i := 0; i < 20; i++ {
		g := float64(i % 2)
		f := float64(i % 5)
		ds.Rows = append(ds.Rows,
			model.RawRecord{"age": 25 + f, "gender": g, "height": 160 + f, "weight": 50 + f, "hemoglobin": 15, "cholesterol": 180},
			model.RawRecord{"age": 65 + f, "gender": g, "height": 150, "weight": 40 + f, "hemoglobin": 9, "cholesterol": 200},
			model.RawRecord{"age": 50 + f, "gender": g, "height": 170, "weight": 100 + f, "hemoglobin": 15, "cholesterol": 260},
		)
	}
	return ds
}

func newPredictUseCase(t *testing.T, withModel bool) *usecase.PredictDeficiency {
	t.Helper()
	logger := observability.NopLogger()

	var engine *service.InferenceEngine
	if withModel {
		pipeline := service.LabPipeline()
		res, err := service.NewTrainer(pipeline, logger).Train(labDataset(), service.DefaultTrainOptions())
		require.NoError(t, err)
		engine, err = service.NewInferenceEngine(res.Bundle, pipeline, logger)
		require.NoError(t, err)
	}

	return usecase.NewPredictDeficiency(engine, messaging.NewLogPublisher("test", logger), nopRecorder{}, logger)
}
