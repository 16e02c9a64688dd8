package service

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// Assessment is the outcome of one request through the engine.
type Assessment struct {
	// Verdict is the final answer after overrides.
	Verdict model.Verdict
	// ModelVerdict is the catalog entry for the classifier output.
	ModelVerdict model.Verdict
	Symptoms     valueobject.SymptomFlags
	// BMI is set when height and weight were both supplied and positive.
	BMI          *float64
	UnknownClass bool
}

// InferenceEngine serves predictions from one loaded bundle. It holds no
// mutable state and is safe for concurrent use.
type InferenceEngine struct {
	bundle   *model.ArtifactBundle
	pipeline *Pipeline
	fields   []string
	logger   *slog.Logger
}

// NewInferenceEngine pairs a bundle with its pipeline. The bundle must have
// been trained for the same variant with an identical feature schema, and
// the catalog must cover every class it can emit.
func NewInferenceEngine(bundle *model.ArtifactBundle, pipeline *Pipeline, logger *slog.Logger) (*InferenceEngine, error) {
	if bundle == nil {
		return nil, model.NewConfigurationError("artifact bundle is nil", nil)
	}
	if !bundle.Variant().Equal(pipeline.Variant) {
		return nil, model.NewConfigurationError(
			fmt.Sprintf("bundle variant %q does not match pipeline %q", bundle.Variant(), pipeline.Variant), nil)
	}
	if !bundle.Schema().Equal(pipeline.Schema) {
		return nil, model.NewConfigurationError(
			fmt.Sprintf("bundle features %v do not match %s features %v",
				bundle.Schema().Names(), pipeline.Variant, pipeline.Schema.Names()), nil)
	}
	if err := pipeline.Catalog.Covers(bundle.Classes()); err != nil {
		return nil, model.NewConfigurationError("catalog does not match bundle classes", err)
	}

	fields := bundle.Schema().InputColumns()
	for _, s := range valueobject.KnownSymptoms {
		if !slices.Contains(fields, s) {
			fields = append(fields, s)
		}
	}
	return &InferenceEngine{bundle: bundle, pipeline: pipeline, fields: fields, logger: logger}, nil
}

// Bundle returns the loaded bundle.
func (e *InferenceEngine) Bundle() *model.ArtifactBundle { return e.bundle }

// Variant returns the served variant.
func (e *InferenceEngine) Variant() valueobject.Variant { return e.bundle.Variant() }

// Predict classifies rec with the bundle's own schema, normalizer and
// classifier and looks the class up in the catalog. An unknown class id
// yields the generic fallback entry; the returned flag reports it.
func (e *InferenceEngine) Predict(rec model.RawRecord) (model.Verdict, bool, error) {
	vec, err := e.bundle.Schema().Build(rec)
	if err != nil {
		return model.Verdict{}, false, err
	}
	class, err := e.bundle.Classify(vec)
	if err != nil {
		return model.Verdict{}, false, err
	}

	verdict, err := e.pipeline.Catalog.Lookup(class)
	var unknown *model.UnknownClassError
	if errors.As(err, &unknown) {
		e.logger.Warn("classifier returned class without catalog entry",
			"class", unknown.ClassID,
			"bundle_id", e.bundle.ID().String(),
		)
		return verdict, true, nil
	}
	if err != nil {
		return model.Verdict{}, false, err
	}
	return verdict, false, nil
}

// Assess coerces a loosely typed request, predicts, and applies the
// symptom overrides.
func (e *InferenceEngine) Assess(values map[string]any) (Assessment, error) {
	rec, err := model.CoerceRecord(values, e.fields)
	if err != nil {
		return Assessment{}, err
	}

	base, unknown, err := e.Predict(rec)
	if err != nil {
		return Assessment{}, err
	}

	flags := SymptomsOf(rec)
	return Assessment{
		Verdict:      e.pipeline.Overrides.Apply(base, flags),
		ModelVerdict: base,
		Symptoms:     flags,
		BMI:          bmiOf(rec),
		UnknownClass: unknown,
	}, nil
}

// SymptomsOf reads the known symptom flags from rec. A flag is set only
// when its value is exactly 1.
func SymptomsOf(rec model.RawRecord) valueobject.SymptomFlags {
	var present []string
	for _, s := range valueobject.KnownSymptoms {
		if v, ok := rec.Get(s); ok && v == 1 {
			present = append(present, s)
		}
	}
	return valueobject.NewSymptomFlags(present...)
}

func bmiOf(rec model.RawRecord) *float64 {
	w, okW := rec.Get(ColumnWeight)
	h, okH := rec.Get(ColumnHeight)
	if !okW || !okH || w <= 0 || h <= 0 {
		return nil
	}
	bmi := model.BMI(w, h)
	return &bmi
}
