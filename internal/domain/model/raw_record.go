package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRecord maps column names to numeric values. An absent key means the
// value was not supplied.
type RawRecord map[string]float64

// Get returns the value for name and whether it was present.
func (r RawRecord) Get(name string) (float64, bool) {
	v, ok := r[name]
	return v, ok
}

// Has reports whether every name is present.
func (r RawRecord) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := r[n]; !ok {
			return false
		}
	}
	return true
}

// CoerceRecord converts loosely typed request values into a RawRecord,
// keeping only the listed fields. Numbers pass through, numeric strings are
// parsed, booleans map to 1/0, and null is treated as absent. Anything else
// is a ValidationError.
func CoerceRecord(values map[string]any, fields []string) (RawRecord, error) {
	rec := make(RawRecord, len(fields))
	for _, f := range fields {
		raw, ok := values[f]
		if !ok || raw == nil {
			continue
		}
		v, err := coerceNumber(f, raw)
		if err != nil {
			return nil, err
		}
		rec[f] = v
	}
	return rec, nil
}

func coerceNumber(field string, raw any) (float64, error) {
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int64:
		v = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, &ValidationError{Field: field, Reason: "must be numeric"}
		}
		v = f
	case bool:
		if x {
			v = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, &ValidationError{Field: field, Reason: "must be numeric"}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &ValidationError{Field: field, Reason: "must be numeric"}
		}
		v = f
	default:
		return 0, &ValidationError{Field: field, Reason: "must be numeric"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	return v, nil
}

// Dataset is a table of raw records with its header.
type Dataset struct {
	Columns []string
	Rows    []RawRecord
}
