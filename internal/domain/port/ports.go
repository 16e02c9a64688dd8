package port

import (
	"context"
	"errors"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/events"
)

// ErrArtifactNotFound is returned by an ArtifactStore when key has no blob.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactStore is the durable key-value blob store holding serialized bundles.
type ArtifactStore interface {
	// Save stores blob under key, replacing any previous blob.
	Save(ctx context.Context, key string, blob []byte) error

	// Load returns the blob stored under key or ErrArtifactNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
}

// BundleCodec serializes an ArtifactBundle as a single unit.
type BundleCodec interface {
	Encode(bundle *model.ArtifactBundle) ([]byte, error)
	Decode(blob []byte) (*model.ArtifactBundle, error)
}

// DatasetSource loads raw training records.
type DatasetSource interface {
	Load(ctx context.Context, path string, variant valueobject.Variant) (*model.Dataset, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// PredictionRecorder receives per-prediction measurements.
type PredictionRecorder interface {
	RecordPrediction(ctx context.Context, variant string, classID int, overridden bool)
	RecordFailure(ctx context.Context, kind string)
	RecordUnknownClass(ctx context.Context, variant string, classID int)
}
