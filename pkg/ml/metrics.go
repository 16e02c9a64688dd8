package ml

import (
	"fmt"
	"sort"
	"strings"
)

// ClassMetrics is one row of a classification report.
type ClassMetrics struct {
	Class     int     `json:"class"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Report summarizes held-out classification quality.
type Report struct {
	Accuracy    float64        `json:"accuracy"`
	PerClass    []ClassMetrics `json:"per_class"`
	MacroAvg    ClassMetrics   `json:"macro_avg"`
	WeightedAvg ClassMetrics   `json:"weighted_avg"`
	Total       int            `json:"total"`
}

// Accuracy is the share of positions where yPred equals yTrue.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// ClassificationReport computes per-class precision, recall and F1 over the
// union of true and predicted classes. Undefined ratios are reported as zero.
func ClassificationReport(yTrue, yPred []int) (Report, error) {
	if len(yTrue) != len(yPred) {
		return Report{}, fmt.Errorf("ml: %d true labels but %d predictions", len(yTrue), len(yPred))
	}

	tp := make(map[int]int)
	fp := make(map[int]int)
	fn := make(map[int]int)
	support := make(map[int]int)
	classSet := make(map[int]struct{})

	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		classSet[t] = struct{}{}
		classSet[p] = struct{}{}
		support[t]++
		if t == p {
			tp[t]++
		} else {
			fp[p]++
			fn[t]++
		}
	}

	classes := make([]int, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	r := Report{Accuracy: Accuracy(yTrue, yPred), Total: len(yTrue)}
	var macro, weighted ClassMetrics
	for _, c := range classes {
		m := ClassMetrics{Class: c, Support: support[c]}
		if d := tp[c] + fp[c]; d > 0 {
			m.Precision = float64(tp[c]) / float64(d)
		}
		if d := tp[c] + fn[c]; d > 0 {
			m.Recall = float64(tp[c]) / float64(d)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.PerClass = append(r.PerClass, m)

		macro.Precision += m.Precision
		macro.Recall += m.Recall
		macro.F1 += m.F1
		w := float64(m.Support)
		weighted.Precision += w * m.Precision
		weighted.Recall += w * m.Recall
		weighted.F1 += w * m.F1
	}

	if n := float64(len(classes)); n > 0 {
		macro.Precision /= n
		macro.Recall /= n
		macro.F1 /= n
	}
	if n := float64(len(yTrue)); n > 0 {
		weighted.Precision /= n
		weighted.Recall /= n
		weighted.F1 /= n
	}
	macro.Class, weighted.Class = -1, -1
	macro.Support, weighted.Support = len(yTrue), len(yTrue)
	r.MacroAvg, r.WeightedAvg = macro, weighted
	return r, nil
}

// String renders the report in the familiar columnar layout.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%12s %10s %10s %10s %10s\n", "", "precision", "recall", "f1-score", "support")
	for _, m := range r.PerClass {
		fmt.Fprintf(&b, "%12d %10.2f %10.2f %10.2f %10d\n", m.Class, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\n%12s %10s %10s %10.2f %10d\n", "accuracy", "", "", r.Accuracy, r.Total)
	fmt.Fprintf(&b, "%12s %10.2f %10.2f %10.2f %10d\n", "macro avg", r.MacroAvg.Precision, r.MacroAvg.Recall, r.MacroAvg.F1, r.MacroAvg.Support)
	fmt.Fprintf(&b, "%12s %10.2f %10.2f %10.2f %10d\n", "weighted avg", r.WeightedAvg.Precision, r.WeightedAvg.Recall, r.WeightedAvg.F1, r.WeightedAvg.Support)
	return b.String()
}

// DistinctSorted returns the sorted unique values of xs.
func DistinctSorted(xs []int) []int {
	seen := make(map[int]struct{}, len(xs))
	out := make([]int, 0)
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}
