// Package service holds the classification pipeline: the per-variant
// configuration, the offline trainer and the online inference engine.
package service

import (
	"fmt"
	"slices"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// Canonical raw column names.
const (
	ColumnAge             = "age"
	ColumnGender          = "gender"
	ColumnHeight          = "height"
	ColumnWeight          = "weight"
	ColumnHemoglobin      = "hemoglobin"
	ColumnCholesterol     = "cholesterol"
	ColumnDietType        = "diet_type"
	ColumnSunlight        = "sunlight"
	ColumnDeficiencyLabel = "deficiency_label"

	FeatureBMI = "bmi"
)

// Pipeline binds the parts that must travel together for one variant.
type Pipeline struct {
	Variant   valueobject.Variant
	Schema    *model.FeatureSchema
	LabelRule LabelRule
	Catalog   *ResultCatalog
	Overrides *HeuristicOverride
}

// RequiredRawColumns lists every dataset column training reads: the schema
// inputs followed by the label inputs.
func (p *Pipeline) RequiredRawColumns() []string {
	cols := p.Schema.InputColumns()
	for _, c := range p.LabelRule.InputColumns() {
		if !slices.Contains(cols, c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// LabPipeline is the 3-class risk model over age, gender and BMI, with labels
// derived from hemoglobin and cholesterol readings.
func LabPipeline() *Pipeline {
	schema, err := model.NewFeatureSchema(valueobject.PolicyStrict,
		model.Direct(ColumnAge),
		model.Categorical(ColumnGender, 0, 1),
		model.Computed(FeatureBMI, model.DerivationBMI, ColumnWeight, ColumnHeight),
	)
	if err != nil {
		panic(err)
	}
	catalog := riskCatalog()
	return &Pipeline{
		Variant:   valueobject.VariantLab,
		Schema:    schema,
		LabelRule: NewThresholdRule(),
		Catalog:   catalog,
		Overrides: NewHeuristicOverride(anemiaSymptomRule(catalog.HealthyClass())),
	}
}

// SurveyPipeline is the 6-class deficiency model over the flat symptom
// survey. Symptoms are classifier inputs here, so no override applies.
func SurveyPipeline() *Pipeline {
	schema, err := model.NewFeatureSchema(valueobject.PolicyLenient,
		model.Direct(ColumnAge),
		model.Direct(ColumnGender),
		model.Direct(ColumnHeight),
		model.Direct(ColumnWeight),
		model.Direct(ColumnDietType),
		model.Direct(ColumnSunlight),
		model.Direct(valueobject.SymptomFatigue),
		model.Direct(valueobject.SymptomHairFall),
		model.Direct(valueobject.SymptomPaleSkin),
		model.Direct(valueobject.SymptomBonePain),
		model.Direct(valueobject.SymptomCrackedLips),
	)
	if err != nil {
		panic(err)
	}
	return &Pipeline{
		Variant:   valueobject.VariantSurvey,
		Schema:    schema,
		LabelRule: IdentityRule{Column: ColumnDeficiencyLabel, NumClasses: 6},
		Catalog:   deficiencyCatalog(),
		Overrides: NewHeuristicOverride(),
	}
}

// PipelineFor returns the pipeline configured for variant.
func PipelineFor(variant valueobject.Variant) (*Pipeline, error) {
	switch {
	case variant.Equal(valueobject.VariantLab):
		return LabPipeline(), nil
	case variant.Equal(valueobject.VariantSurvey):
		return SurveyPipeline(), nil
	default:
		return nil, fmt.Errorf("no pipeline for variant %q", variant.String())
	}
}
