package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/event"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

type stubNormalizer struct{ width int }

func (s stubNormalizer) TransformRow(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * 2
	}
	return out, nil
}
func (s stubNormalizer) Width() int { return s.width }

type stubClassifier struct {
	got   []float64
	class int
	err   error
}

func (s *stubClassifier) PredictRow(x []float64) (int, error) {
	s.got = x
	return s.class, s.err
}

func TestNewArtifactBundle(t *testing.T) {
	schema := labSchema(t)
	clf := &stubClassifier{class: 2}

	b, err := model.NewArtifactBundle(valueobject.VariantLab, schema, stubNormalizer{width: 3}, clf,
		[]int{2, 0, 1, 0}, model.TrainingSummary{Accuracy: 0.9, TrainSize: 8, TestSize: 2})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, []int{0, 1, 2}, b.Classes())
	assert.Same(t, schema, b.Schema())

	evts := b.ClearEvents()
	require.Len(t, evts, 1)
	trained, ok := evts[0].(event.ModelTrained)
	require.True(t, ok)
	assert.Equal(t, "lab", trained.Variant)
	assert.Equal(t, []string{"age", "gender", "bmi"}, trained.Features)
	assert.Equal(t, b.ID(), trained.AggregateID())
}

func TestArtifactBundle_ClassifyUsesStoredTransform(t *testing.T) {
	clf := &stubClassifier{class: 1}
	b, err := model.ReconstructArtifactBundle(uuid.New(), valueobject.VariantLab, labSchema(t),
		stubNormalizer{width: 3}, clf, []int{0, 1}, model.TrainingSummary{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, b.Events())

	class, err := b.Classify(model.FeatureVector{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, class)
	assert.Equal(t, []float64{2, 4, 6}, clf.got)

	clf.err = errors.New("boom")
	_, err = b.Classify(model.FeatureVector{1, 2, 3})
	assert.ErrorContains(t, err, "classify features")
}

func TestReconstructArtifactBundle_Rejects(t *testing.T) {
	schema := labSchema(t)
	clf := &stubClassifier{}

	_, err := model.ReconstructArtifactBundle(uuid.New(), valueobject.VariantLab, schema, stubNormalizer{width: 2}, clf, []int{0}, model.TrainingSummary{}, time.Now())
	assert.ErrorContains(t, err, "normalizer width")

	_, err = model.ReconstructArtifactBundle(uuid.New(), valueobject.VariantLab, schema, nil, clf, []int{0}, model.TrainingSummary{}, time.Now())
	assert.ErrorContains(t, err, "together")

	_, err = model.ReconstructArtifactBundle(uuid.Nil, valueobject.VariantLab, schema, stubNormalizer{width: 3}, clf, []int{0}, model.TrainingSummary{}, time.Now())
	assert.ErrorContains(t, err, "id is required")

	_, err = model.ReconstructArtifactBundle(uuid.New(), valueobject.Variant{}, schema, stubNormalizer{width: 3}, clf, []int{0}, model.TrainingSummary{}, time.Now())
	assert.ErrorContains(t, err, "variant")

	_, err = model.ReconstructArtifactBundle(uuid.New(), valueobject.VariantLab, schema, stubNormalizer{width: 3}, clf, nil, model.TrainingSummary{}, time.Now())
	assert.ErrorContains(t, err, "no classes")
}
