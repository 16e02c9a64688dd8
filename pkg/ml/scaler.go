// Package ml provides the small numeric toolkit used to train and serve the
// deficiency classifiers: z-score scaling, a k-nearest-neighbours classifier,
// seeded stratified splitting and a classification report.
package ml

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFitted is returned when a model is used before Fit.
var ErrNotFitted = errors.New("ml: model is not fitted")

// StandardScaler standardizes each column to zero mean and unit variance.
// Variance is the population variance; a constant column gets a unit scale so
// that it transforms to zero instead of dividing by zero.
type StandardScaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// NewStandardScaler returns an unfitted scaler.
func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// RestoreStandardScaler rebuilds a fitted scaler from persisted parameters.
func RestoreStandardScaler(mean, std []float64) (*StandardScaler, error) {
	if len(mean) == 0 || len(mean) != len(std) {
		return nil, fmt.Errorf("ml: scaler parameters have mismatched lengths %d and %d", len(mean), len(std))
	}
	for j, s := range std {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("ml: scaler std[%d] must be positive and finite, got %v", j, s)
		}
	}
	return &StandardScaler{
		Mean: append([]float64(nil), mean...),
		Std:  append([]float64(nil), std...),
	}, nil
}

// Fit computes per-column mean and standard deviation of X.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("ml: cannot fit scaler on empty matrix")
	}
	r, c := len(X), len(X[0])
	mean := make([]float64, c)
	std := make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if len(X[i]) != c {
				return fmt.Errorf("ml: row %d has %d columns, want %d", i, len(X[i]), c)
			}
			mean[j] += X[i][j]
		}
		mean[j] /= float64(r)
		v := 0.0
		for i := 0; i < r; i++ {
			d := X[i][j] - mean[j]
			v += d * d
		}
		v /= float64(r)
		std[j] = math.Sqrt(v)
		if std[j] == 0 {
			std[j] = 1
		}
	}
	s.Mean, s.Std = mean, std
	return nil
}

// Fitted reports whether Fit or Restore has populated the parameters.
func (s *StandardScaler) Fitted() bool { return len(s.Mean) > 0 }

// Width is the number of columns the scaler was fitted on.
func (s *StandardScaler) Width() int { return len(s.Mean) }

// TransformRow scales a single row with the fitted parameters. The input is
// never modified.
func (s *StandardScaler) TransformRow(x []float64) ([]float64, error) {
	if !s.Fitted() {
		return nil, ErrNotFitted
	}
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("ml: row has %d columns, scaler expects %d", len(x), len(s.Mean))
	}
	out := make([]float64, len(x))
	for j := range x {
		out[j] = (x[j] - s.Mean[j]) / s.Std[j]
	}
	return out, nil
}

// Transform scales every row of X.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled, err := s.TransformRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = scaled
	}
	return out, nil
}

// FitTransform fits on X and returns X scaled.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
