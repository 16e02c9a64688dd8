package event

import (
	"github.com/google/uuid"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/events"
)

const (
	// EventTypeModelTrained is emitted when a training run produces a bundle.
	EventTypeModelTrained = "nutrition.model.trained"

	// EventTypePredictionCompleted is emitted for every successful prediction.
	EventTypePredictionCompleted = "nutrition.prediction.completed"

	// EventTypeSymptomOverrideApplied is emitted when a heuristic rule
	// replaced the model's verdict.
	EventTypeSymptomOverrideApplied = "nutrition.override.applied"
)

// ModelTrained is published once per training run.
type ModelTrained struct {
	events.BaseEvent
	Variant   string   `json:"variant"`
	Features  []string `json:"features"`
	Classes   []int    `json:"classes"`
	Accuracy  float64  `json:"accuracy"`
	TrainSize int      `json:"train_size"`
	TestSize  int      `json:"test_size"`
}

// NewModelTrained creates a ModelTrained event for bundle bundleID.
func NewModelTrained(bundleID uuid.UUID, variant string, features []string, classes []int, accuracy float64, trainSize, testSize int) ModelTrained {
	return ModelTrained{
		BaseEvent: events.NewBaseEvent(EventTypeModelTrained, bundleID),
		Variant:   variant,
		Features:  features,
		Classes:   classes,
		Accuracy:  accuracy,
		TrainSize: trainSize,
		TestSize:  testSize,
	}
}

// PredictionCompleted carries the outcome of one prediction. Raw inputs are
// deliberately absent; only the verdict leaves the process.
type PredictionCompleted struct {
	events.BaseEvent
	PredictionID uuid.UUID `json:"prediction_id"`
	Variant      string    `json:"variant"`
	ClassID      int       `json:"class_id"`
	Label        string    `json:"label"`
	Overridden   bool      `json:"overridden"`
}

// NewPredictionCompleted creates a PredictionCompleted event. The aggregate is
// the bundle that produced the prediction.
func NewPredictionCompleted(bundleID, predictionID uuid.UUID, variant string, classID int, label string, overridden bool) PredictionCompleted {
	return PredictionCompleted{
		BaseEvent:    events.NewBaseEvent(EventTypePredictionCompleted, bundleID),
		PredictionID: predictionID,
		Variant:      variant,
		ClassID:      classID,
		Label:        label,
		Overridden:   overridden,
	}
}

// SymptomOverrideApplied records which rule replaced a model verdict.
type SymptomOverrideApplied struct {
	events.BaseEvent
	PredictionID uuid.UUID `json:"prediction_id"`
	Rule         string    `json:"rule"`
	ModelClassID int       `json:"model_class_id"`
	Symptoms     []string  `json:"symptoms"`
}

// NewSymptomOverrideApplied creates a SymptomOverrideApplied event.
func NewSymptomOverrideApplied(bundleID, predictionID uuid.UUID, rule string, modelClassID int, symptoms []string) SymptomOverrideApplied {
	return SymptomOverrideApplied{
		BaseEvent:    events.NewBaseEvent(EventTypeSymptomOverrideApplied, bundleID),
		PredictionID: predictionID,
		Rule:         rule,
		ModelClassID: modelClassID,
		Symptoms:     symptoms,
	}
}
