package valueobject

import "sort"

// Symptom names reported by the intake form.
const (
	SymptomPaleSkin    = "pale_skin"
	SymptomFatigue     = "fatigue"
	SymptomHairFall    = "hair_fall"
	SymptomBonePain    = "bone_pain"
	SymptomCrackedLips = "cracked_lips"
)

// KnownSymptoms lists every flag the request contract recognises.
var KnownSymptoms = []string{
	SymptomPaleSkin,
	SymptomFatigue,
	SymptomHairFall,
	SymptomBonePain,
	SymptomCrackedLips,
}

// SymptomFlags is an immutable set of self-reported symptoms.
type SymptomFlags struct {
	set map[string]bool
}

// NewSymptomFlags builds a set from the names that are reported present.
func NewSymptomFlags(present ...string) SymptomFlags {
	set := make(map[string]bool, len(present))
	for _, s := range present {
		set[s] = true
	}
	return SymptomFlags{set: set}
}

// Has reports whether the named symptom was flagged.
func (f SymptomFlags) Has(name string) bool {
	return f.set[name]
}

// Any reports whether at least one of names was flagged.
func (f SymptomFlags) Any(names ...string) bool {
	for _, n := range names {
		if f.set[n] {
			return true
		}
	}
	return false
}

// Names returns the flagged symptoms in sorted order.
func (f SymptomFlags) Names() []string {
	out := make([]string, 0, len(f.set))
	for n, ok := range f.set {
		if ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
