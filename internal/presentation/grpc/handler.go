package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/dto"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
)

// Compile-time assertion that NutritionServiceHandler implements NutritionServiceServer.
var _ NutritionServiceServer = (*NutritionServiceHandler)(nil)

// PredictRequest carries the same fields as the REST form submission.
type PredictRequest struct {
	Fields map[string]any `json:"fields"`
}

// PredictResponse mirrors the REST response body.
type PredictResponse struct {
	dto.PredictResponse
}

// NutritionServiceHandler implements the gRPC NutritionServiceServer interface.
type NutritionServiceHandler struct {
	UnimplementedNutritionServiceServer
	predict *usecase.PredictDeficiency
	logger  *slog.Logger
}

// NewNutritionServiceHandler creates a new gRPC handler.
func NewNutritionServiceHandler(predict *usecase.PredictDeficiency, logger *slog.Logger) *NutritionServiceHandler {
	return &NutritionServiceHandler{predict: predict, logger: logger}
}

// Predict classifies one submission.
func (h *NutritionServiceHandler) Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error) {
	if req.Fields == nil {
		return nil, status.Error(codes.InvalidArgument, "fields are required")
	}

	resp, err := h.predict.Execute(ctx, dto.PredictRequest{Fields: req.Fields})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &PredictResponse{PredictResponse: resp}, nil
}

func (h *NutritionServiceHandler) toStatus(err error) error {
	switch {
	case model.IsClientError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrModelUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		h.logger.Error("prediction failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
