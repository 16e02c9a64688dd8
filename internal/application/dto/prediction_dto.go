package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
)

// PredictRequest is the input DTO for the PredictDeficiency use case. Fields
// holds the submitted form values as decoded from JSON.
type PredictRequest struct {
	Fields map[string]any
}

// PredictResponse is the verdict returned to the caller. The recommendation
// travels under "measures", the key the web form reads.
type PredictResponse struct {
	BMI            *decimal.Decimal `json:"bmi,omitempty"`
	Label          string           `json:"label"`
	Recommendation string           `json:"measures"`
	Variant        string           `json:"variant"`
	Rule           string           `json:"rule,omitempty"`
	Symptoms       []string         `json:"symptoms"`
	ClassID        int              `json:"class_id"`
	PredictionID   uuid.UUID        `json:"prediction_id"`
	BundleID       uuid.UUID        `json:"bundle_id"`
	Overridden     bool             `json:"overridden"`
}

// FromAssessment maps an engine assessment to the response DTO. BMI is
// rounded to two decimals.
func FromAssessment(a service.Assessment, predictionID, bundleID uuid.UUID, variant string) PredictResponse {
	resp := PredictResponse{
		PredictionID:   predictionID,
		BundleID:       bundleID,
		Variant:        variant,
		ClassID:        a.Verdict.ClassID,
		Label:          a.Verdict.Label,
		Recommendation: a.Verdict.Recommendation,
		Overridden:     a.Verdict.Overridden,
		Rule:           a.Verdict.Rule,
		Symptoms:       a.Symptoms.Names(),
	}
	if a.BMI != nil {
		bmi := decimal.NewFromFloat(*a.BMI).Round(2)
		resp.BMI = &bmi
	}
	return resp
}
