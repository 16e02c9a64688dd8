package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/dto"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
)

const maxBodyBytes = 64 << 10

// PredictHandler serves POST /predict.
type PredictHandler struct {
	predict *usecase.PredictDeficiency
	logger  *slog.Logger
}

// NewPredictHandler creates a new prediction handler.
func NewPredictHandler(predict *usecase.PredictDeficiency, logger *slog.Logger) *PredictHandler {
	return &PredictHandler{predict: predict, logger: logger}
}

type predictResponse struct {
	Success bool `json:"success"`
	dto.PredictResponse
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RegisterRoutes registers the prediction endpoint on mux.
func (h *PredictHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /predict", h.Predict)
}

// Predict decodes the form submission and returns the verdict.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}

	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil || fields == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be a JSON object"})
		return
	}

	resp, err := h.predict.Execute(r.Context(), dto.PredictRequest{Fields: fields})
	if err != nil {
		status, msg := h.classify(err)
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, predictResponse{Success: true, PredictResponse: resp})
}

func (h *PredictHandler) classify(err error) (int, string) {
	switch {
	case model.IsClientError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrModelUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		h.logger.Error("prediction failed", "error", err)
		return http.StatusInternalServerError, "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
