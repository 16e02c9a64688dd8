package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/ml"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/testutil"
)

func labEngine(t *testing.T) *service.InferenceEngine {
	t.Helper()
	p := service.LabPipeline()
	res, err := service.NewTrainer(p, discardLogger()).Train(labDataset(), service.DefaultTrainOptions())
	require.NoError(t, err)
	engine, err := service.NewInferenceEngine(res.Bundle, p, discardLogger())
	require.NoError(t, err)
	return engine
}

func TestInferenceEngine_CatalogVerdict(t *testing.T) {
	engine := labEngine(t)

	a, err := engine.Assess(map[string]any{"age": 30, "gender": 1, "height": 160, "weight": 50})
	require.NoError(t, err)

	require.NotNil(t, a.BMI)
	assert.InDelta(t, 19.53, *a.BMI, 0.005)

	want, err := service.LabPipeline().Catalog.Lookup(a.ModelVerdict.ClassID)
	require.NoError(t, err)
	assert.Equal(t, service.ClassHealthy, a.ModelVerdict.ClassID)
	assert.Equal(t, want, a.Verdict)
	assert.False(t, a.Verdict.Overridden)
}

func TestInferenceEngine_SymptomOverride(t *testing.T) {
	engine := labEngine(t)

	a, err := engine.Assess(map[string]any{"age": 30, "gender": 1, "height": 160, "weight": 50, "pale_skin": 1})
	require.NoError(t, err)

	assert.Equal(t, service.ClassHealthy, a.ModelVerdict.ClassID)
	assert.True(t, a.Verdict.Overridden)
	assert.Equal(t, "Moderate Risk: Possible Iron Deficiency", a.Verdict.Label)
	assert.NotEqual(t, a.ModelVerdict.Recommendation, a.Verdict.Recommendation)
	assert.Equal(t, []string{"pale_skin"}, a.Symptoms.Names())
}

func TestInferenceEngine_SymptomFlagMustBeOne(t *testing.T) {
	engine := labEngine(t)

	a, err := engine.Assess(map[string]any{"age": 30, "gender": 1, "height": 160, "weight": 50, "fatigue": 0, "pale_skin": 2})
	require.NoError(t, err)
	assert.False(t, a.Verdict.Overridden)

	a, err = engine.Assess(map[string]any{"age": 30, "gender": 1, "height": 160, "weight": 50, "fatigue": true})
	require.NoError(t, err)
	assert.True(t, a.Verdict.Overridden)
}

func TestInferenceEngine_NonHealthyIsNotOverridden(t *testing.T) {
	engine := labEngine(t)

	a, err := engine.Assess(map[string]any{"age": 67, "gender": 0, "height": 150, "weight": 42, "pale_skin": 1, "fatigue": 1})
	require.NoError(t, err)
	assert.Equal(t, service.ClassAnemiaRisk, a.Verdict.ClassID)
	assert.False(t, a.Verdict.Overridden)
}

func TestInferenceEngine_StrictRejections(t *testing.T) {
	engine := labEngine(t)

	tests := []struct {
		name  string
		input map[string]any
		field string
	}{
		{"zero height", map[string]any{"age": 30, "gender": 1, "height": 0, "weight": 50}, "height"},
		{"negative weight", map[string]any{"age": 30, "gender": 1, "height": 160, "weight": -5}, "weight"},
		{"missing gender", map[string]any{"age": 30, "height": 160, "weight": 50}, "gender"},
		{"null age", map[string]any{"age": nil, "gender": 1, "height": 160, "weight": 50}, "age"},
		{"non numeric weight", map[string]any{"age": 30, "gender": 1, "height": 160, "weight": "heavy"}, "weight"},
		{"gender out of range", map[string]any{"age": 30, "gender": 3, "height": 160, "weight": 50}, "gender"},
		{"tiny height overflows bmi", map[string]any{"age": 30, "gender": 1, "height": 1e-200, "weight": 50}, "bmi"},
		{"huge weight overflows bmi", map[string]any{"age": 30, "gender": 1, "height": 1, "weight": 1e306}, "bmi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Assess(tt.input)
			require.Error(t, err)
			assert.True(t, model.IsClientError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestInferenceEngine_NumericStringsAreCoerced(t *testing.T) {
	engine := labEngine(t)

	a, err := engine.Assess(map[string]any{"age": "30", "gender": "1", "height": "160", "weight": "50"})
	require.NoError(t, err)
	assert.Equal(t, service.ClassHealthy, a.ModelVerdict.ClassID)
}

func TestInferenceEngine_SurveyIsLenient(t *testing.T) {
	p := service.SurveyPipeline()
	res, err := service.NewTrainer(p, discardLogger()).Train(surveyDataset(), service.DefaultTrainOptions())
	require.NoError(t, err)
	engine, err := service.NewInferenceEngine(res.Bundle, p, discardLogger())
	require.NoError(t, err)

	a, err := engine.Assess(map[string]any{"age": 30, "gender": 0, "height": 165, "weight": 60, "sunlight": 2, "bone_pain": 10})
	require.NoError(t, err)
	assert.Equal(t, service.DeficiencyVitaminD, a.Verdict.ClassID)
	assert.Equal(t, "Vitamin D Deficiency", a.Verdict.Label)

	_, err = engine.Assess(map[string]any{})
	assert.NoError(t, err)
}

func TestInferenceEngine_TrainServeParity(t *testing.T) {
	engine := labEngine(t)
	rec := model.RawRecord{"age": 41, "gender": 0, "height": 172, "weight": 77}

	first, err := engine.Bundle().Schema().Build(rec)
	require.NoError(t, err)
	for range 10 {
		again, err := engine.Bundle().Schema().Build(rec)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"age", "gender", "bmi"}, engine.Bundle().Schema().Names())
}

func TestNewInferenceEngine_RejectsMismatchedBundle(t *testing.T) {
	res, err := service.NewTrainer(service.LabPipeline(), discardLogger()).Train(labDataset(), service.DefaultTrainOptions())
	require.NoError(t, err)

	_, err = service.NewInferenceEngine(res.Bundle, service.SurveyPipeline(), discardLogger())
	testutil.RequireErrorAs[*model.ConfigurationError](t, err)

	_, err = service.NewInferenceEngine(nil, service.LabPipeline(), discardLogger())
	testutil.RequireErrorAs[*model.ConfigurationError](t, err)

	// Same variant, different feature order.
	p := service.LabPipeline()
	reordered, err := model.NewFeatureSchema(valueobject.PolicyStrict,
		model.Categorical("gender", 0, 1), model.Direct("age"),
		model.Computed("bmi", model.DerivationBMI, "weight", "height"))
	require.NoError(t, err)
	b, err := model.ReconstructArtifactBundle(uuid.New(), valueobject.VariantLab, reordered,
		res.Bundle.Normalizer(), res.Bundle.Classifier(), res.Bundle.Classes(), res.Bundle.Summary(), time.Now())
	require.NoError(t, err)
	_, err = service.NewInferenceEngine(b, p, discardLogger())
	testutil.RequireErrorAs[*model.ConfigurationError](t, err)
}

type fixedClassifier struct{ class int }

func (f fixedClassifier) PredictRow([]float64) (int, error) { return f.class, nil }

func TestInferenceEngine_UnknownClassUsesFallback(t *testing.T) {
	p := service.LabPipeline()
	scaler, err := ml.RestoreStandardScaler([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)
	b, err := model.ReconstructArtifactBundle(uuid.New(), valueobject.VariantLab, p.Schema,
		scaler, fixedClassifier{class: 9}, []int{0}, model.TrainingSummary{}, time.Now())
	require.NoError(t, err)
	engine, err := service.NewInferenceEngine(b, p, discardLogger())
	require.NoError(t, err)

	a, err := engine.Assess(map[string]any{"age": 30, "gender": 1, "height": 160, "weight": 50, "pale_skin": 1})
	require.NoError(t, err)
	assert.True(t, a.UnknownClass)
	assert.Equal(t, 9, a.Verdict.ClassID)
	assert.Contains(t, a.Verdict.Recommendation, "healthcare professional")
	assert.False(t, a.Verdict.Overridden)
}
