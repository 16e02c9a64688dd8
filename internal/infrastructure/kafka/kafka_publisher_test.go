package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/event"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/kafka"
	pkgkafka "github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/kafka"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/observability"
)

type mockProducer struct {
	topic    string
	messages []pkgkafka.Message
	err      error
}

func (m *mockProducer) Publish(_ context.Context, topic string, messages ...pkgkafka.Message) error {
	m.topic = topic
	m.messages = append(m.messages, messages...)
	return m.err
}

func TestPublisher_Publish(t *testing.T) {
	producer := &mockProducer{}
	p := kafka.NewPublisher(producer, "nutrition.events", observability.NopLogger())

	bundleID, predictionID := uuid.New(), uuid.New()
	err := p.Publish(context.Background(),
		event.NewPredictionCompleted(bundleID, predictionID, "lab", 0, "Moderate Risk", true),
		event.NewSymptomOverrideApplied(bundleID, predictionID, "healthy_with_anemia_symptoms", 0, []string{"fatigue"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "nutrition.events", producer.topic)
	require.Len(t, producer.messages, 2)
	for _, m := range producer.messages {
		assert.Equal(t, bundleID.String(), string(m.Key))
	}
	assert.Equal(t, event.EventTypeSymptomOverrideApplied, producer.messages[1].Headers["event_type"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(producer.messages[0].Value, &body))
	assert.Equal(t, predictionID.String(), body["prediction_id"])
	assert.Equal(t, true, body["overridden"])
}

func TestPublisher_PublishError(t *testing.T) {
	producer := &mockProducer{err: errors.New("leader not available")}
	p := kafka.NewPublisher(producer, "nutrition.events", observability.NopLogger())

	err := p.Publish(context.Background(), event.NewPredictionCompleted(uuid.New(), uuid.New(), "lab", 0, "x", false))
	assert.ErrorContains(t, err, "leader not available")

	producer.err = errors.New("unused")
	assert.NoError(t, p.Publish(context.Background()))
}
