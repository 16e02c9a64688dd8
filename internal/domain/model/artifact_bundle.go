package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/event"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/events"
)

// Normalizer applies a fitted, stored transform to one feature vector.
type Normalizer interface {
	TransformRow(x []float64) ([]float64, error)
	Width() int
}

// Classifier maps a normalized feature vector to a class id.
type Classifier interface {
	PredictRow(x []float64) (int, error)
}

// TrainingSummary is the part of the training metrics kept with the bundle.
type TrainingSummary struct {
	Accuracy  float64 `json:"accuracy"`
	TrainSize int     `json:"train_size"`
	TestSize  int     `json:"test_size"`
}

// ArtifactBundle is the aggregate root for a trained model: the feature
// schema, the fitted normalizer and the fitted classifier, always used
// together. It is read-only after construction and safe for concurrent use.
type ArtifactBundle struct {
	events.EventCollector
	createdAt  time.Time
	schema     *FeatureSchema
	normalizer Normalizer
	classifier Classifier
	variant    valueobject.Variant
	classes    []int
	summary    TrainingSummary
	id         uuid.UUID
}

// NewArtifactBundle assembles a freshly trained bundle and records a
// ModelTrained event.
func NewArtifactBundle(
	variant valueobject.Variant,
	schema *FeatureSchema,
	normalizer Normalizer,
	classifier Classifier,
	classes []int,
	summary TrainingSummary,
) (*ArtifactBundle, error) {
	b, err := ReconstructArtifactBundle(uuid.New(), variant, schema, normalizer, classifier, classes, summary, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	b.Record(event.NewModelTrained(
		b.id, variant.String(), schema.Names(), b.Classes(),
		summary.Accuracy, summary.TrainSize, summary.TestSize,
	))
	return b, nil
}

// ReconstructArtifactBundle rebuilds a bundle from persisted parts. No events
// are recorded.
func ReconstructArtifactBundle(
	id uuid.UUID,
	variant valueobject.Variant,
	schema *FeatureSchema,
	normalizer Normalizer,
	classifier Classifier,
	classes []int,
	summary TrainingSummary,
	createdAt time.Time,
) (*ArtifactBundle, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("artifact bundle: id is required")
	}
	if variant.IsZero() {
		return nil, fmt.Errorf("artifact bundle: variant is required")
	}
	if schema == nil || normalizer == nil || classifier == nil {
		return nil, fmt.Errorf("artifact bundle: schema, normalizer and classifier must be supplied together")
	}
	if normalizer.Width() != schema.Len() {
		return nil, fmt.Errorf("artifact bundle: normalizer width %d does not match %d features", normalizer.Width(), schema.Len())
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("artifact bundle: no classes")
	}

	sorted := slices.Clone(classes)
	slices.Sort(sorted)

	return &ArtifactBundle{
		id:         id,
		variant:    variant,
		schema:     schema,
		normalizer: normalizer,
		classifier: classifier,
		classes:    slices.Compact(sorted),
		summary:    summary,
		createdAt:  createdAt,
	}, nil
}

// --- Accessors ---

func (b *ArtifactBundle) ID() uuid.UUID                { return b.id }
func (b *ArtifactBundle) Variant() valueobject.Variant { return b.variant }
func (b *ArtifactBundle) Schema() *FeatureSchema       { return b.schema }
func (b *ArtifactBundle) Normalizer() Normalizer       { return b.normalizer }
func (b *ArtifactBundle) Classifier() Classifier       { return b.classifier }
func (b *ArtifactBundle) Summary() TrainingSummary     { return b.summary }
func (b *ArtifactBundle) CreatedAt() time.Time         { return b.createdAt }

// Classes returns the sorted class ids seen in training.
func (b *ArtifactBundle) Classes() []int { return slices.Clone(b.classes) }

// Classify runs the stored normalizer and classifier over a feature vector
// built by this bundle's schema.
func (b *ArtifactBundle) Classify(vec FeatureVector) (int, error) {
	scaled, err := b.normalizer.TransformRow(vec)
	if err != nil {
		return 0, fmt.Errorf("normalize features: %w", err)
	}
	class, err := b.classifier.PredictRow(scaled)
	if err != nil {
		return 0, fmt.Errorf("classify features: %w", err)
	}
	return class, nil
}
