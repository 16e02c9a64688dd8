package service_test

import (
	"io"
	"log/slog"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// labDataset returns 20 rows per class with well separated features:
// young and lean rows are healthy, old and light rows are anemic, and heavy
// middle-aged rows have high cholesterol.
func labDataset() *model.Dataset {
	ds := &model.Dataset{Columns: []string{"age", "gender", "height", "weight", "hemoglobin", "cholesterol"}}
	for i := 0; i < 20; i++ {
		g := float64(i % 2)
		f := float64(i % 5)
		ds.Rows = append(ds.Rows,
			model.RawRecord{"age": 25 + f, "gender": g, "height": 160 + f, "weight": 50 + f, "hemoglobin": 15, "cholesterol": 180},
			model.RawRecord{"age": 65 + f, "gender": g, "height": 150, "weight": 40 + f, "hemoglobin": 9 + f/5, "cholesterol": 200},
			model.RawRecord{"age": 50 + f, "gender": g, "height": 170, "weight": 100 + f, "hemoglobin": 15, "cholesterol": 260 + f},
		)
	}
	return ds
}

// surveyDataset returns 10 rows per deficiency class where the class is
// signalled by one dominant input.
func surveyDataset() *model.Dataset {
	cols := []string{"age", "gender", "height", "weight", "diet_type", "sunlight",
		"fatigue", "hair_fall", "pale_skin", "bone_pain", "cracked_lips", "deficiency_label"}
	ds := &model.Dataset{Columns: cols}
	signal := []string{"", "pale_skin", "bone_pain", "fatigue", "cracked_lips", "hair_fall"}
	for class, s := range signal {
		for range 10 {
			rec := model.RawRecord{
				"age": 30, "gender": 0, "height": 165, "weight": 60,
				"diet_type": 0, "sunlight": 2,
				"fatigue": 0, "hair_fall": 0, "pale_skin": 0, "bone_pain": 0, "cracked_lips": 0,
				"deficiency_label": float64(class),
			}
			if s != "" {
				rec[s] = 10
			}
			ds.Rows = append(ds.Rows, rec)
		}
	}
	return ds
}
