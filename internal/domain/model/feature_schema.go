package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// FeatureKind distinguishes pass-through columns from derived values.
type FeatureKind string

const (
	FeatureDirect   FeatureKind = "direct"
	FeatureComputed FeatureKind = "computed"
)

// DerivationBMI names the body-mass-index derivation over (weight, height).
const DerivationBMI = "bmi"

// FeatureSpec describes one position of the feature vector.
type FeatureSpec struct {
	Name       string      `json:"name"`
	Kind       FeatureKind `json:"kind"`
	Inputs     []string    `json:"inputs"`
	Derivation string      `json:"derivation,omitempty"`
	// Allowed restricts a categorical input to a closed set of codes.
	Allowed []float64 `json:"allowed,omitempty"`
}

// Direct declares a feature copied from the raw column of the same name.
func Direct(name string) FeatureSpec {
	return FeatureSpec{Name: name, Kind: FeatureDirect, Inputs: []string{name}}
}

// Categorical declares a direct feature restricted to the given codes.
func Categorical(name string, allowed ...float64) FeatureSpec {
	s := Direct(name)
	s.Allowed = allowed
	return s
}

// Computed declares a feature derived from inputs by a registered derivation.
func Computed(name, derivation string, inputs ...string) FeatureSpec {
	return FeatureSpec{Name: name, Kind: FeatureComputed, Inputs: inputs, Derivation: derivation}
}

type derivation func(inputs []string, values []float64) (float64, error)

var derivations = map[string]struct {
	arity int
	fn    derivation
}{
	DerivationBMI: {arity: 2, fn: func(inputs []string, v []float64) (float64, error) {
		if v[0] <= 0 {
			return 0, &DegenerateInputError{Field: inputs[0], Value: v[0]}
		}
		if v[1] <= 0 {
			return 0, &DegenerateInputError{Field: inputs[1], Value: v[1]}
		}
		return BMI(v[0], v[1]), nil
	}},
}

// BMI computes weight_kg / (height_cm/100)^2. Callers must reject
// non-positive inputs first.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

// FeatureSchema is the ordered feature contract shared by training and
// inference. It is immutable once constructed.
type FeatureSchema struct {
	specs  []FeatureSpec
	policy valueobject.InputPolicy
}

// NewFeatureSchema validates the specs and resolves their derivations.
func NewFeatureSchema(policy valueobject.InputPolicy, specs ...FeatureSpec) (*FeatureSchema, error) {
	if policy != valueobject.PolicyStrict && policy != valueobject.PolicyLenient {
		return nil, fmt.Errorf("feature schema: unknown input policy %d", policy)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("feature schema: no features")
	}

	seen := make(map[string]bool, len(specs))
	out := make([]FeatureSpec, len(specs))
	for i, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("feature schema: feature %d has no name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("feature schema: duplicate feature %q", s.Name)
		}
		seen[s.Name] = true

		switch s.Kind {
		case FeatureDirect:
			if len(s.Inputs) != 1 {
				return nil, fmt.Errorf("feature schema: direct feature %q needs exactly one input", s.Name)
			}
		case FeatureComputed:
			d, ok := derivations[s.Derivation]
			if !ok {
				return nil, fmt.Errorf("feature schema: feature %q uses unknown derivation %q", s.Name, s.Derivation)
			}
			if len(s.Inputs) != d.arity {
				return nil, fmt.Errorf("feature schema: derivation %q takes %d inputs, got %d", s.Derivation, d.arity, len(s.Inputs))
			}
		default:
			return nil, fmt.Errorf("feature schema: feature %q has unknown kind %q", s.Name, s.Kind)
		}

		out[i] = FeatureSpec{
			Name:       s.Name,
			Kind:       s.Kind,
			Inputs:     slices.Clone(s.Inputs),
			Derivation: s.Derivation,
			Allowed:    slices.Clone(s.Allowed),
		}
	}
	return &FeatureSchema{specs: out, policy: policy}, nil
}

// Build reconstructs the feature vector for rec. Absent inputs are rejected
// under the strict policy and read as zero under the lenient one.
func (s *FeatureSchema) Build(rec RawRecord) (FeatureVector, error) {
	vec := make(FeatureVector, len(s.specs))
	for i, spec := range s.specs {
		values := make([]float64, len(spec.Inputs))
		for j, in := range spec.Inputs {
			v, ok := rec.Get(in)
			if !ok {
				if s.policy == valueobject.PolicyStrict {
					return nil, &ValidationError{Field: in, Reason: "is required"}
				}
				v = 0
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ValidationError{Field: in, Reason: "must be a finite number"}
			}
			values[j] = v
		}

		switch spec.Kind {
		case FeatureDirect:
			if len(spec.Allowed) > 0 && !slices.Contains(spec.Allowed, values[0]) {
				return nil, &ValidationError{Field: spec.Name, Reason: fmt.Sprintf("must be one of %v", spec.Allowed)}
			}
			vec[i] = values[0]
		case FeatureComputed:
			v, err := derivations[spec.Derivation].fn(spec.Inputs, values)
			if err != nil {
				return nil, err
			}
			// Extreme but positive inputs can still overflow.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &DegenerateInputError{Field: spec.Name, Reason: "is not a finite number", Value: v}
			}
			vec[i] = v
		}
	}
	return vec, nil
}

// Names returns the feature names in vector order.
func (s *FeatureSchema) Names() []string {
	out := make([]string, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec.Name
	}
	return out
}

// Specs returns a copy of the feature descriptors.
func (s *FeatureSchema) Specs() []FeatureSpec {
	out := make([]FeatureSpec, len(s.specs))
	for i, spec := range s.specs {
		out[i] = FeatureSpec{
			Name:       spec.Name,
			Kind:       spec.Kind,
			Inputs:     slices.Clone(spec.Inputs),
			Derivation: spec.Derivation,
			Allowed:    slices.Clone(spec.Allowed),
		}
	}
	return out
}

// Len is the feature vector length.
func (s *FeatureSchema) Len() int { return len(s.specs) }

// Policy returns the missing-input policy.
func (s *FeatureSchema) Policy() valueobject.InputPolicy { return s.policy }

// InputColumns returns every raw column the schema reads, in first-use order.
func (s *FeatureSchema) InputColumns() []string {
	var out []string
	for _, spec := range s.specs {
		for _, in := range spec.Inputs {
			if !slices.Contains(out, in) {
				out = append(out, in)
			}
		}
	}
	return out
}

// Equal reports whether both schemas produce identical vectors.
func (s *FeatureSchema) Equal(other *FeatureSchema) bool {
	if other == nil || s.policy != other.policy || len(s.specs) != len(other.specs) {
		return false
	}
	for i := range s.specs {
		a, b := s.specs[i], other.specs[i]
		if a.Name != b.Name || a.Kind != b.Kind || a.Derivation != b.Derivation ||
			!slices.Equal(a.Inputs, b.Inputs) || !slices.Equal(a.Allowed, b.Allowed) {
			return false
		}
	}
	return true
}

// FeatureVector is an ordered numeric sequence aligned with a FeatureSchema.
type FeatureVector []float64
