package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/testutil"
)

func TestCoerceRecord(t *testing.T) {
	values := map[string]any{
		"age":     "30",
		"gender":  float64(1),
		"height":  json.Number("160"),
		"weight":  " 50.5 ",
		"fatigue": true,
		"sun":     nil,
		"ignored": "not a number",
	}

	rec, err := model.CoerceRecord(values, []string{"age", "gender", "height", "weight", "fatigue", "sun", "absent"})
	require.NoError(t, err)

	assert.Equal(t, model.RawRecord{
		"age":     30,
		"gender":  1,
		"height":  160,
		"weight":  50.5,
		"fatigue": 1,
	}, rec)
	assert.False(t, rec.Has("sun"), "null is treated as absent")
}

func TestCoerceRecord_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "word", value: "tall"},
		{name: "empty string", value: ""},
		{name: "object", value: map[string]any{"cm": 160}},
		{name: "infinity", value: math.Inf(1)},
		{name: "nan string", value: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.CoerceRecord(map[string]any{"height": tt.value}, []string{"height"})
			ve := testutil.RequireErrorAs[*model.ValidationError](t, err)
			assert.Equal(t, "height", ve.Field)
		})
	}
}
