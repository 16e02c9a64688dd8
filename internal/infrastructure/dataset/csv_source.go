// Package dataset loads raw training tables into model.Dataset form.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// NHANES variable codes and the canonical columns they feed.
var nhanesColumns = map[string]string{
	"ridageyr": "age",
	"riagendr": "gender",
	"bmxht":    "height",
	"bmxwt":    "weight",
	"lbxhgb":   "hemoglobin",
	"lbxtc":    "cholesterol",
}

// NHANES codes sex as 1 male, 2 female; the feature encoding is 0 male,
// 1 female.
var nhanesGender = map[float64]float64{1: 0, 2: 1}

var missingTokens = map[string]bool{"": true, "na": true, "nan": true, "null": true, ".": true}

// CSVSource implements port.DatasetSource for comma or tab separated files
// with a header row.
type CSVSource struct {
	logger *slog.Logger
}

// NewCSVSource creates a new CSVSource.
func NewCSVSource(logger *slog.Logger) *CSVSource {
	return &CSVSource{logger: logger}
}

// Load reads path. Empty and non-numeric cells become absent values. For
// the lab variant NHANES variable codes are renamed to canonical columns
// and the sex code is remapped.
func (s *CSVSource) Load(ctx context.Context, path string, variant valueobject.Variant) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	return s.Read(ctx, f, comma, variant)
}

// Read parses a delimited table from r.
func (s *CSVSource) Read(ctx context.Context, r io.Reader, comma rune, variant valueobject.Variant) (*model.Dataset, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, model.NewConfigurationError("dataset is empty", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	mapNHANES := variant.Equal(valueobject.VariantLab)
	columns := make([]string, len(header))
	fromNHANES := make([]bool, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(norm.NFKC.String(h)))
		if canonical, ok := nhanesColumns[name]; ok && mapNHANES {
			name = canonical
			fromNHANES[i] = true
		}
		columns[i] = name
	}

	ds := &model.Dataset{Columns: columns}
	unparsed := 0
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		rec := make(model.RawRecord, len(columns))
		for i, cell := range row {
			if i >= len(columns) {
				break
			}
			cell = strings.TrimSpace(cell)
			if missingTokens[strings.ToLower(cell)] {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				unparsed++
				continue
			}
			if fromNHANES[i] && columns[i] == "gender" {
				mapped, ok := nhanesGender[v]
				if !ok {
					unparsed++
					continue
				}
				v = mapped
			}
			rec[columns[i]] = v
		}
		ds.Rows = append(ds.Rows, rec)
	}

	s.logger.Info("dataset loaded",
		"variant", variant.String(),
		"columns", len(columns),
		"rows", len(ds.Rows),
		"unparsed_cells", unparsed,
	)
	return ds, nil
}
