package ml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/ml"
)

func TestStandardScaler_Fit(t *testing.T) {
	s := ml.NewStandardScaler()
	require.NoError(t, s.Fit([][]float64{
		{1, 10, 5},
		{3, 20, 5},
	}))

	assert.Equal(t, []float64{2, 15, 5}, s.Mean)
	assert.Equal(t, []float64{1, 5, 1}, s.Std, "constant column gets unit scale")

	out, err := s.TransformRow([]float64{3, 10, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, 0}, out)
}

func TestStandardScaler_TransformDoesNotRefit(t *testing.T) {
	s := ml.NewStandardScaler()
	train := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	require.NoError(t, s.Fit(train))

	before, err := s.TransformRow([]float64{4, 4})
	require.NoError(t, err)

	// Transforming unseen data, however extreme, leaves the fitted parameters alone.
	_, err = s.Transform([][]float64{{1000, -1000}, {5e6, 7}})
	require.NoError(t, err)

	after, err := s.TransformRow([]float64{4, 4})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStandardScaler_Errors(t *testing.T) {
	t.Run("unfitted", func(t *testing.T) {
		_, err := ml.NewStandardScaler().TransformRow([]float64{1})
		assert.ErrorIs(t, err, ml.ErrNotFitted)
	})

	t.Run("width mismatch", func(t *testing.T) {
		s := ml.NewStandardScaler()
		require.NoError(t, s.Fit([][]float64{{1, 2}}))
		_, err := s.TransformRow([]float64{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("empty fit", func(t *testing.T) {
		assert.Error(t, ml.NewStandardScaler().Fit(nil))
	})
}

func TestRestoreStandardScaler(t *testing.T) {
	s, err := ml.RestoreStandardScaler([]float64{1, 2}, []float64{1, 4})
	require.NoError(t, err)
	out, err := s.TransformRow([]float64{2, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out)

	_, err = ml.RestoreStandardScaler([]float64{1}, []float64{1, 2})
	assert.Error(t, err)

	_, err = ml.RestoreStandardScaler([]float64{1}, []float64{0})
	assert.Error(t, err)
}
