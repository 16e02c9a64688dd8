package valueobject

import "fmt"

// Variant identifies one configuration of the classification pipeline.
type Variant struct {
	value string
}

var (
	// VariantLab is the 3-class risk model over demographic inputs with labels
	// derived from laboratory readings.
	VariantLab = Variant{value: "lab"}
	// VariantSurvey is the 6-class deficiency model over the flat symptom survey.
	VariantSurvey = Variant{value: "survey"}
)

// VariantFromString reconstructs a Variant from its string representation.
func VariantFromString(s string) (Variant, error) {
	switch s {
	case "lab":
		return VariantLab, nil
	case "survey":
		return VariantSurvey, nil
	default:
		return Variant{}, fmt.Errorf("invalid variant: %q", s)
	}
}

// String returns the string representation.
func (v Variant) String() string {
	return v.value
}

// IsZero returns true if the Variant has not been set.
func (v Variant) IsZero() bool {
	return v.value == ""
}

// Equal checks equality with another Variant.
func (v Variant) Equal(other Variant) bool {
	return v.value == other.value
}
