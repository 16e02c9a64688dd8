package dto

import (
	"sort"

	"github.com/google/uuid"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/ml"
)

// TrainRequest is the input DTO for the TrainModel use case.
type TrainRequest struct {
	Variant  string  `json:"variant"`
	DataPath string  `json:"data_path"`
	Key      string  `json:"key"`
	TestSize float64 `json:"test_size"`
	Seed     uint64  `json:"seed"`
	K        int     `json:"k"`
}

// ClassCount is one row of a label distribution.
type ClassCount struct {
	Label string `json:"label"`
	Class int    `json:"class"`
	Count int    `json:"count"`
}

// TrainResponse summarizes a finished training run.
type TrainResponse struct {
	Report       ml.Report    `json:"report"`
	Variant      string       `json:"variant"`
	Key          string       `json:"key"`
	Features     []string     `json:"features"`
	Classes      []int        `json:"classes"`
	Distribution []ClassCount `json:"distribution"`
	// LabelledDistribution includes rows later dropped as incomplete.
	LabelledDistribution []ClassCount `json:"labelled_distribution"`
	PredictedClasses     []int        `json:"predicted_classes"`
	Warnings             []string     `json:"warnings,omitempty"`
	TrainSize            int          `json:"train_size"`
	TestSize             int          `json:"test_size"`
	DroppedRows          int          `json:"dropped_rows"`
	BundleID             uuid.UUID    `json:"bundle_id"`
}

// FromTrainingResult maps a trainer result to the response DTO.
func FromTrainingResult(res *service.TrainingResult, catalog *service.ResultCatalog, key string) TrainResponse {
	b := res.Bundle
	return TrainResponse{
		BundleID:             b.ID(),
		Variant:              b.Variant().String(),
		Key:                  key,
		Features:             b.Schema().Names(),
		Classes:              b.Classes(),
		Distribution:         Distribution(res.Distribution, catalog),
		LabelledDistribution: Distribution(res.LabelledDistribution, catalog),
		Report:               res.Report,
		PredictedClasses:     res.PredictedClasses,
		Warnings:             res.Warnings,
		TrainSize:            b.Summary().TrainSize,
		TestSize:             b.Summary().TestSize,
		DroppedRows:          res.DroppedRows,
	}
}

// Distribution flattens counts into rows sorted by class.
func Distribution(counts map[int]int, catalog *service.ResultCatalog) []ClassCount {
	out := make([]ClassCount, 0, len(counts))
	for class, n := range counts {
		v, _ := catalog.Lookup(class)
		out = append(out, ClassCount{Class: class, Count: n, Label: v.Label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}

// InspectResponse describes the label balance of a raw dataset.
type InspectResponse struct {
	Variant      string       `json:"variant"`
	Columns      []string     `json:"columns"`
	Missing      []string     `json:"missing_columns,omitempty"`
	Distribution []ClassCount `json:"distribution"`
	Rows         int          `json:"rows"`
	Unlabelled   int          `json:"unlabelled"`
}
