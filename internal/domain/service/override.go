package service

import (
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
)

// OverrideRule replaces a model verdict when its predicate holds.
type OverrideRule struct {
	Name        string
	When        func(v model.Verdict, flags valueobject.SymptomFlags) bool
	Replacement CatalogEntry
}

// HeuristicOverride evaluates an ordered rule list over a model verdict and
// the self-reported symptom flags. The first matching rule wins; with no
// match the verdict is returned unchanged. It never fails.
type HeuristicOverride struct {
	rules []OverrideRule
}

// NewHeuristicOverride builds an override over rules, evaluated in order.
func NewHeuristicOverride(rules ...OverrideRule) *HeuristicOverride {
	return &HeuristicOverride{rules: append([]OverrideRule(nil), rules...)}
}

// Apply returns the final verdict.
func (h *HeuristicOverride) Apply(v model.Verdict, flags valueobject.SymptomFlags) model.Verdict {
	if v.Overridden {
		return v
	}
	for _, r := range h.rules {
		if r.When(v, flags) {
			return model.Verdict{
				ClassID:        v.ClassID,
				Label:          r.Replacement.Label,
				Recommendation: r.Replacement.Recommendation,
				Overridden:     true,
				Rule:           r.Name,
			}
		}
	}
	return v
}

// Rules returns the rule names in evaluation order.
func (h *HeuristicOverride) Rules() []string {
	out := make([]string, len(h.rules))
	for i, r := range h.rules {
		out[i] = r.Name
	}
	return out
}

// HealthyButSymptomatic matches a verdict of the healthy class when any of
// symptoms is flagged. Verdicts of any other class are left to the model.
func HealthyButSymptomatic(healthyClass int, symptoms ...string) func(model.Verdict, valueobject.SymptomFlags) bool {
	return func(v model.Verdict, flags valueobject.SymptomFlags) bool {
		return v.ClassID == healthyClass && flags.Any(symptoms...)
	}
}

// RuleAnemiaSymptoms is the name of the lab variant's only override.
const RuleAnemiaSymptoms = "healthy_with_anemia_symptoms"

var moderateIronRisk = CatalogEntry{
	Label:          "Moderate Risk: Possible Iron Deficiency",
	Recommendation: "While your demographic profile is low-risk, your reported symptoms (Pale Skin/Fatigue) are strong indicators of Anemia. Consider a blood test.",
}

func anemiaSymptomRule(healthyClass int) OverrideRule {
	return OverrideRule{
		Name:        RuleAnemiaSymptoms,
		When:        HealthyButSymptomatic(healthyClass, valueobject.SymptomPaleSkin, valueobject.SymptomFatigue),
		Replacement: moderateIronRisk,
	}
}
