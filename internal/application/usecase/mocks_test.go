package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/events"
)

// --- Mock implementations ---

type mockDatasetSource struct {
	dataset  *model.Dataset
	err      error
	gotPath  string
	gotVar   valueobject.Variant
	loadFunc func(ctx context.Context, path string, variant valueobject.Variant) (*model.Dataset, error)
}

func (m *mockDatasetSource) Load(ctx context.Context, path string, variant valueobject.Variant) (*model.Dataset, error) {
	m.gotPath, m.gotVar = path, variant
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path, variant)
	}
	return m.dataset, m.err
}

type mockArtifactStore struct {
	blobs   map[string][]byte
	saveErr error
	loadErr error
}

func newMockArtifactStore() *mockArtifactStore {
	return &mockArtifactStore{blobs: make(map[string][]byte)}
}

func (m *mockArtifactStore) Save(_ context.Context, key string, blob []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.blobs[key] = blob
	return nil
}

func (m *mockArtifactStore) Load(_ context.Context, key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	b, ok := m.blobs[key]
	if !ok {
		return nil, port.ErrArtifactNotFound
	}
	return b, nil
}

// mockCodec keeps bundles in memory and hands out their ids as blobs.
type mockCodec struct {
	bundles   map[string]*model.ArtifactBundle
	decodeErr error
}

func newMockCodec() *mockCodec {
	return &mockCodec{bundles: make(map[string]*model.ArtifactBundle)}
}

func (m *mockCodec) Encode(b *model.ArtifactBundle) ([]byte, error) {
	m.bundles[b.ID().String()] = b
	return []byte(b.ID().String()), nil
}

func (m *mockCodec) Decode(blob []byte) (*model.ArtifactBundle, error) {
	if m.decodeErr != nil {
		return nil, m.decodeErr
	}
	return m.bundles[string(blob)], nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishedEvents []events.DomainEvent
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockRecorder struct {
	predictions []int
	failures    []string
	unknown     []int
	overridden  int
}

func (m *mockRecorder) RecordPrediction(_ context.Context, _ string, classID int, overridden bool) {
	m.predictions = append(m.predictions, classID)
	if overridden {
		m.overridden++
	}
}

func (m *mockRecorder) RecordFailure(_ context.Context, kind string) {
	m.failures = append(m.failures, kind)
}

func (m *mockRecorder) RecordUnknownClass(_ context.Context, _ string, classID int) {
	m.unknown = append(m.unknown, classID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

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
