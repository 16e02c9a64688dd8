package service

import (
	"fmt"
	"math"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
)

// LabelRule derives the supervised class of a raw training record.
type LabelRule interface {
	Name() string
	// InputColumns lists the raw columns the rule reads.
	InputColumns() []string
	// Label returns the class id, or an error when the inputs are absent or
	// out of range.
	Label(rec model.RawRecord) (int, error)
}

// Lab risk classes.
const (
	ClassHealthy         = 0
	ClassAnemiaRisk      = 1
	ClassCholesterolRisk = 2
)

// ThresholdRule is the laboratory labelling policy: a sex-specific
// hemoglobin cutoff is checked first and short-circuits the cholesterol
// check, so a record failing both is labelled anemia risk.
type ThresholdRule struct {
	FemaleHemoglobinCutoff float64 // g/dL, strictly below is anemic
	MaleHemoglobinCutoff   float64 // g/dL
	CholesterolCutoff      float64 // mg/dL, strictly above is at risk
}

// NewThresholdRule returns the rule with the WHO-style cutoffs.
func NewThresholdRule() ThresholdRule {
	return ThresholdRule{
		FemaleHemoglobinCutoff: 12.0,
		MaleHemoglobinCutoff:   13.0,
		CholesterolCutoff:      240,
	}
}

func (ThresholdRule) Name() string { return "threshold" }

func (ThresholdRule) InputColumns() []string {
	return []string{ColumnGender, ColumnHemoglobin, ColumnCholesterol}
}

// Label implements LabelRule. Gender follows the feature encoding:
// 1 is female, 0 is male.
func (r ThresholdRule) Label(rec model.RawRecord) (int, error) {
	gender, ok := rec.Get(ColumnGender)
	if !ok {
		return 0, fmt.Errorf("%s is missing", ColumnGender)
	}
	hgb, ok := rec.Get(ColumnHemoglobin)
	if !ok {
		return 0, fmt.Errorf("%s is missing", ColumnHemoglobin)
	}

	cutoff := r.MaleHemoglobinCutoff
	switch gender {
	case 1:
		cutoff = r.FemaleHemoglobinCutoff
	case 0:
	default:
		return 0, fmt.Errorf("%s must be 0 or 1, got %v", ColumnGender, gender)
	}
	if hgb < cutoff {
		return ClassAnemiaRisk, nil
	}

	chol, ok := rec.Get(ColumnCholesterol)
	if !ok {
		return 0, fmt.Errorf("%s is missing", ColumnCholesterol)
	}
	if chol > r.CholesterolCutoff {
		return ClassCholesterolRisk, nil
	}
	return ClassHealthy, nil
}

// IdentityRule reads a ground-truth label column supplied by the dataset.
type IdentityRule struct {
	Column     string
	NumClasses int
}

func (r IdentityRule) Name() string { return "identity" }

func (r IdentityRule) InputColumns() []string { return []string{r.Column} }

// Label implements LabelRule.
func (r IdentityRule) Label(rec model.RawRecord) (int, error) {
	v, ok := rec.Get(r.Column)
	if !ok {
		return 0, fmt.Errorf("%s is missing", r.Column)
	}
	if v != math.Trunc(v) || v < 0 || int(v) >= r.NumClasses {
		return 0, fmt.Errorf("%s must be an integer in [0, %d), got %v", r.Column, r.NumClasses, v)
	}
	return int(v), nil
}
