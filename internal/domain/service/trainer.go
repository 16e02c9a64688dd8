package service

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/ml"
)

// TrainOptions controls one training run.
type TrainOptions struct {
	TestSize float64
	Seed     uint64
	K        int
}

// DefaultTrainOptions returns a 20% held-out split, seed 42 and k=5.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{TestSize: 0.2, Seed: 42, K: 5}
}

// TrainingResult is the bundle plus everything the run measured.
type TrainingResult struct {
	Bundle *model.ArtifactBundle
	Report ml.Report
	// Distribution counts labels over the usable rows, before the split.
	Distribution map[int]int
	// LabelledDistribution counts labels over every labelled row, before
	// incomplete records are dropped.
	LabelledDistribution map[int]int
	LabelledRows         int
	DroppedRows          int
	PredictedClasses     []int
	Warnings             []string
}

// Trainer fits a pipeline's normalizer and classifier on a raw dataset.
type Trainer struct {
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewTrainer creates a trainer for pipeline.
func NewTrainer(pipeline *Pipeline, logger *slog.Logger) *Trainer {
	return &Trainer{pipeline: pipeline, logger: logger}
}

// Train runs the full procedure: column check, labelling, row filtering,
// stratified split, scaling fitted on the training rows only, classifier
// fit and held-out evaluation.
func (t *Trainer) Train(ds *model.Dataset, opts TrainOptions) (*TrainingResult, error) {
	if ds == nil {
		return nil, model.NewConfigurationError("dataset is nil", nil)
	}
	required := t.pipeline.RequiredRawColumns()
	var missing []string
	for _, c := range required {
		if !slices.Contains(ds.Columns, c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, model.NewConfigurationError(fmt.Sprintf("dataset is missing columns %v", missing), nil)
	}
	if opts.TestSize <= 0 || opts.TestSize >= 1 {
		return nil, model.NewConfigurationError(fmt.Sprintf("test size must be in (0, 1), got %v", opts.TestSize), nil)
	}
	if opts.K <= 0 {
		return nil, model.NewConfigurationError(fmt.Sprintf("k must be positive, got %d", opts.K), nil)
	}

	// The label rule sees every row before anything is dropped.
	labels := make([]int, len(ds.Rows))
	labelErrs := make([]error, len(ds.Rows))
	labelled := 0
	labelledDistribution := make(map[int]int)
	for i, rec := range ds.Rows {
		labels[i], labelErrs[i] = t.pipeline.LabelRule.Label(rec)
		if labelErrs[i] == nil {
			labelled++
			labelledDistribution[labels[i]]++
		}
	}

	var X [][]float64
	var y []int
	dropped := 0
	for i, rec := range ds.Rows {
		if labelErrs[i] != nil || !rec.Has(required...) {
			dropped++
			continue
		}
		vec, err := t.pipeline.Schema.Build(rec)
		if err != nil {
			dropped++
			continue
		}
		X = append(X, vec)
		y = append(y, labels[i])
	}
	if len(X) == 0 {
		return nil, model.NewConfigurationError("no usable rows after dropping incomplete records", nil)
	}
	t.logger.Info("dataset prepared",
		"variant", t.pipeline.Variant.String(),
		"rows", len(ds.Rows),
		"labelled", labelled,
		"usable", len(X),
		"dropped", dropped,
	)

	distribution := make(map[int]int)
	for _, l := range y {
		distribution[l]++
	}

	split, err := ml.StratifiedSplit(y, opts.TestSize, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("split dataset: %w", err)
	}
	if len(split.Train) == 0 || len(split.Test) == 0 {
		return nil, model.NewConfigurationError(
			fmt.Sprintf("split produced %d training and %d test rows", len(split.Train), len(split.Test)), nil)
	}
	XTrain, yTrain := ml.Take(X, y, split.Train)
	XTest, yTest := ml.Take(X, y, split.Test)

	scaler := ml.NewStandardScaler()
	XTrainScaled, err := scaler.FitTransform(XTrain)
	if err != nil {
		return nil, fmt.Errorf("fit scaler: %w", err)
	}
	XTestScaled, err := scaler.Transform(XTest)
	if err != nil {
		return nil, fmt.Errorf("scale test rows: %w", err)
	}

	knn := ml.NewKNN(opts.K)
	if err := knn.Fit(XTrainScaled, yTrain); err != nil {
		return nil, fmt.Errorf("fit classifier: %w", err)
	}
	classes := knn.Classes()
	if err := t.pipeline.Catalog.Covers(classes); err != nil {
		return nil, model.NewConfigurationError("catalog does not match trained classes", err)
	}

	predicted, err := knn.Predict(XTestScaled)
	if err != nil {
		return nil, fmt.Errorf("evaluate classifier: %w", err)
	}
	report, err := ml.ClassificationReport(yTest, predicted)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	predictedClasses := ml.DistinctSorted(predicted)
	var warnings []string
	for _, c := range classes {
		if !slices.Contains(predictedClasses, c) {
			w := fmt.Sprintf("class %d is never predicted on the test split", c)
			warnings = append(warnings, w)
			t.logger.Warn("class coverage gap", "class", c, "variant", t.pipeline.Variant.String())
		}
	}

	bundle, err := model.NewArtifactBundle(
		t.pipeline.Variant,
		t.pipeline.Schema,
		scaler,
		knn,
		classes,
		model.TrainingSummary{Accuracy: report.Accuracy, TrainSize: len(split.Train), TestSize: len(split.Test)},
	)
	if err != nil {
		return nil, fmt.Errorf("assemble bundle: %w", err)
	}

	return &TrainingResult{
		Bundle:               bundle,
		Report:               report,
		Distribution:         distribution,
		LabelledDistribution: labelledDistribution,
		LabelledRows:         labelled,
		DroppedRows:          dropped,
		PredictedClasses:     predictedClasses,
		Warnings:             warnings,
	}, nil
}
