package ml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/ml"
)

func labelsOf(counts map[int]int) []int {
	var out []int
	for c := 0; c < 10; c++ {
		for i := 0; i < counts[c]; i++ {
			out = append(out, c)
		}
	}
	return out
}

func TestStratifiedSplit_Reproducible(t *testing.T) {
	labels := labelsOf(map[int]int{0: 50, 1: 30, 2: 20})

	a, err := ml.StratifiedSplit(labels, 0.2, 42)
	require.NoError(t, err)
	b, err := ml.StratifiedSplit(labels, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	c, err := ml.StratifiedSplit(labels, 0.2, 7)
	require.NoError(t, err)
	assert.NotEqual(t, a.Test, c.Test)
}

func TestStratifiedSplit_PreservesClassShares(t *testing.T) {
	labels := labelsOf(map[int]int{0: 50, 1: 30, 2: 20})

	s, err := ml.StratifiedSplit(labels, 0.2, 42)
	require.NoError(t, err)

	assert.Len(t, s.Test, 20)
	assert.Len(t, s.Train, 80)

	perClass := map[int]int{}
	for _, i := range s.Test {
		perClass[labels[i]]++
	}
	assert.Equal(t, map[int]int{0: 10, 1: 6, 2: 4}, perClass)

	seen := map[int]bool{}
	for _, i := range append(append([]int{}, s.Train...), s.Test...) {
		assert.False(t, seen[i], "index %d assigned twice", i)
		seen[i] = true
	}
	assert.Len(t, seen, len(labels))
}

func TestStratifiedSplit_SmallClasses(t *testing.T) {
	labels := []int{0, 0, 0, 0, 0, 1, 1, 2}

	s, err := ml.StratifiedSplit(labels, 0.2, 1)
	require.NoError(t, err)

	testClasses := map[int]int{}
	for _, i := range s.Test {
		testClasses[labels[i]]++
	}
	assert.Equal(t, 1, testClasses[1], "pair class keeps one row on each side")
	assert.Zero(t, testClasses[2], "singleton class stays in training")
}

func TestStratifiedSplit_InvalidRatio(t *testing.T) {
	_, err := ml.StratifiedSplit([]int{0, 1}, 0, 1)
	assert.Error(t, err)
	_, err = ml.StratifiedSplit([]int{0, 1}, 1, 1)
	assert.Error(t, err)
	_, err = ml.StratifiedSplit(nil, 0.2, 1)
	assert.Error(t, err)
}
