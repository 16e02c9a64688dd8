package valueobject

import "fmt"

// InputPolicy decides what happens when a raw field is absent.
type InputPolicy int

const (
	// PolicyStrict rejects a record with any absent or non-numeric input.
	PolicyStrict InputPolicy = iota + 1
	// PolicyLenient substitutes zero for absent inputs. Present values must
	// still be numeric.
	PolicyLenient
)

func (p InputPolicy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// InputPolicyFromString parses the String form of a policy.
func InputPolicyFromString(s string) (InputPolicy, error) {
	switch s {
	case "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return 0, fmt.Errorf("invalid input policy: %q", s)
	}
}
