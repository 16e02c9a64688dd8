package ml

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// KNN is a multi-class k-nearest-neighbours classifier using Euclidean
// distance and an unweighted majority vote. Ties are broken towards the
// lowest class id.
type KNN struct {
	K      int         `json:"k"`
	Points [][]float64 `json:"points"`
	Labels []int       `json:"labels"`
}

// NewKNN creates an unfitted classifier with the given neighbourhood size.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

// Fit stores the training data. The slices are copied so later mutation by
// the caller cannot change the model.
func (m *KNN) Fit(X [][]float64, y []int) error {
	if m.K <= 0 {
		return fmt.Errorf("ml: k must be positive, got %d", m.K)
	}
	if len(X) == 0 {
		return errors.New("ml: cannot fit knn on empty matrix")
	}
	if len(X) != len(y) {
		return errors.New("ml: the number of feature vectors must match the number of labels")
	}
	width := len(X[0])
	m.Points = make([][]float64, len(X))
	for i, row := range X {
		if len(row) != width {
			return fmt.Errorf("ml: row %d has %d columns, want %d", i, len(row), width)
		}
		m.Points[i] = append([]float64(nil), row...)
	}
	m.Labels = append([]int(nil), y...)
	return nil
}

// Validate checks a restored model for internal consistency.
func (m *KNN) Validate(width int) error {
	if m.K <= 0 {
		return fmt.Errorf("ml: k must be positive, got %d", m.K)
	}
	if len(m.Points) == 0 {
		return errors.New("ml: knn has no training points")
	}
	if len(m.Points) != len(m.Labels) {
		return fmt.Errorf("ml: knn has %d points but %d labels", len(m.Points), len(m.Labels))
	}
	for i, p := range m.Points {
		if len(p) != width {
			return fmt.Errorf("ml: point %d has %d columns, want %d", i, len(p), width)
		}
	}
	return nil
}

// Classes returns the sorted distinct labels seen during Fit.
func (m *KNN) Classes() []int {
	seen := make(map[int]struct{}, 8)
	for _, l := range m.Labels {
		seen[l] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// PredictRow classifies a single already-scaled row.
func (m *KNN) PredictRow(x []float64) (int, error) {
	if len(m.Points) == 0 {
		return 0, ErrNotFitted
	}
	if len(x) != len(m.Points[0]) {
		return 0, fmt.Errorf("ml: row has %d columns, model expects %d", len(x), len(m.Points[0]))
	}
	return m.predictSingle(x), nil
}

// Predict classifies every row of X, spreading the work across GOMAXPROCS
// goroutines.
func (m *KNN) Predict(X [][]float64) ([]int, error) {
	if len(m.Points) == 0 {
		return nil, ErrNotFitted
	}
	for i, row := range X {
		if len(row) != len(m.Points[0]) {
			return nil, fmt.Errorf("ml: row %d has %d columns, model expects %d", i, len(row), len(m.Points[0]))
		}
	}

	out := make([]int, len(X))
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, len(X))
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				out[i] = m.predictSingle(X[i])
			}
		}(start, end)
	}

	wg.Wait()
	return out, nil
}

type neighbour struct {
	d     float64
	idx   int
	label int
}

func (m *KNN) predictSingle(xi []float64) int {
	k := min(m.K, len(m.Points))
	nbrs := make([]neighbour, 0, k+1)

	// Ordering by (distance, training index) keeps the neighbourhood stable
	// when several points are equidistant.
	less := func(a, b neighbour) bool {
		if a.d != b.d {
			return a.d < b.d
		}
		return a.idx < b.idx
	}

	for j, xj := range m.Points {
		n := neighbour{d: euclidSquared(xi, xj), idx: j, label: m.Labels[j]}
		if len(nbrs) < k {
			nbrs = append(nbrs, n)
			sort.Slice(nbrs, func(a, b int) bool { return less(nbrs[a], nbrs[b]) })
		} else if less(n, nbrs[len(nbrs)-1]) {
			nbrs[len(nbrs)-1] = n
			sort.Slice(nbrs, func(a, b int) bool { return less(nbrs[a], nbrs[b]) })
		}
	}

	votes := make(map[int]int, k)
	for _, n := range nbrs {
		votes[n.label]++
	}
	best, bestVotes := 0, -1
	for label, v := range votes {
		if v > bestVotes || (v == bestVotes && label < best) {
			best, bestVotes = label, v
		}
	}
	return best
}

// euclidSquared avoids the square root; ordering is unchanged.
func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
