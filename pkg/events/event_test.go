package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := uuid.New()

	before := time.Now().UTC()
	evt := NewBaseEvent("nutrition.model.trained", aggregateID)
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, "nutrition.model.trained", evt.EventType())
	assert.Equal(t, aggregateID, evt.AggregateID())
	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestBaseEventJSONIsInline(t *testing.T) {
	type sample struct {
		BaseEvent
		Label string `json:"label"`
	}
	evt := sample{BaseEvent: NewBaseEvent("x", uuid.New()), Label: "healthy"}

	raw, err := json.Marshal(evt)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "x", m["event_type"])
	assert.Equal(t, "healthy", m["label"])
	assert.Contains(t, m, "event_id")
}

func TestEventCollector(t *testing.T) {
	var c EventCollector
	c.Record(NewBaseEvent("a", uuid.New()))
	c.Record(NewBaseEvent("b", uuid.New()), NewBaseEvent("c", uuid.New()))

	snapshot := c.Events()
	require.Len(t, snapshot, 3)
	snapshot[0] = nil
	assert.NotNil(t, c.Events()[0], "Events returns a copy")

	got := c.ClearEvents()
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[2].EventType())
	assert.Empty(t, c.Events())
	assert.Empty(t, c.ClearEvents())
}
