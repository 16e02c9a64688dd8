package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/dto"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// InspectDataset reports the class balance of a raw dataset without training.
type InspectDataset struct {
	source port.DatasetSource
}

// NewInspectDataset creates a new InspectDataset use case.
func NewInspectDataset(source port.DatasetSource) *InspectDataset {
	return &InspectDataset{source: source}
}

// Execute applies the variant's label rule to every row and counts classes.
func (uc *InspectDataset) Execute(ctx context.Context, path, variantName string) (dto.InspectResponse, error) {
	variant, err := valueobject.VariantFromString(variantName)
	if err != nil {
		return dto.InspectResponse{}, model.NewConfigurationError("unknown variant", err)
	}
	pipeline, err := service.PipelineFor(variant)
	if err != nil {
		return dto.InspectResponse{}, model.NewConfigurationError("no pipeline", err)
	}

	ds, err := uc.source.Load(ctx, path, variant)
	if err != nil {
		return dto.InspectResponse{}, fmt.Errorf("failed to load dataset: %w", err)
	}

	resp := dto.InspectResponse{
		Variant: variant.String(),
		Columns: ds.Columns,
		Rows:    len(ds.Rows),
	}
	for _, c := range pipeline.RequiredRawColumns() {
		if !slices.Contains(ds.Columns, c) {
			resp.Missing = append(resp.Missing, c)
		}
	}

	counts := make(map[int]int)
	for _, rec := range ds.Rows {
		class, err := pipeline.LabelRule.Label(rec)
		if err != nil {
			resp.Unlabelled++
			continue
		}
		counts[class]++
	}
	resp.Distribution = dto.Distribution(counts, pipeline.Catalog)
	return resp, nil
}
