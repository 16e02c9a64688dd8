package ml

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// Split holds row indices into the original dataset.
type Split struct {
	Train []int
	Test  []int
}

// StratifiedSplit partitions row indices so that every class keeps roughly
// the same share in the test partition. The same labels, ratio and seed always
// yield the same partition.
//
// A class with at least two rows contributes at least one row to each side;
// a singleton class stays in the training partition.
func StratifiedSplit(labels []int, testRatio float64, seed uint64) (Split, error) {
	if testRatio <= 0 || testRatio >= 1 {
		return Split{}, fmt.Errorf("ml: test ratio must be in (0, 1), got %v", testRatio)
	}
	if len(labels) == 0 {
		return Split{}, fmt.Errorf("ml: cannot split an empty dataset")
	}

	byClass := make(map[int][]int)
	for i, l := range labels {
		byClass[l] = append(byClass[l], i)
	}
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var out Split
	for _, c := range classes {
		idx := byClass[c]
		rng.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })

		n := len(idx)
		nTest := int(math.Round(float64(n) * testRatio))
		if n >= 2 {
			nTest = max(1, min(nTest, n-1))
		} else {
			nTest = 0
		}
		out.Test = append(out.Test, idx[:nTest]...)
		out.Train = append(out.Train, idx[nTest:]...)
	}

	sort.Ints(out.Train)
	sort.Ints(out.Test)
	return out, nil
}

// Take selects rows of X and y by index.
func Take(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	xs := make([][]float64, len(idx))
	ys := make([]int, len(idx))
	for i, j := range idx {
		xs[i] = X[j]
		ys[i] = y[j]
	}
	return xs, ys
}
