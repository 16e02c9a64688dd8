package service

import (
	"fmt"
	"slices"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
)

// CatalogEntry is the human-facing text for one class.
type CatalogEntry struct {
	Label          string
	Recommendation string
}

// fallbackEntry is served for a class id the catalog does not know.
var fallbackEntry = CatalogEntry{
	Label:          "Unable to Determine Risk",
	Recommendation: "Your result could not be matched to a known category. Please consult a healthcare professional for a proper assessment.",
}

// ResultCatalog is a closed mapping from class id to display text.
type ResultCatalog struct {
	name    string
	entries map[int]CatalogEntry
	healthy int
}

// NewResultCatalog builds a catalog. healthy names the no-risk class the
// heuristic overrides key on.
func NewResultCatalog(name string, healthy int, entries map[int]CatalogEntry) (*ResultCatalog, error) {
	if _, ok := entries[healthy]; !ok {
		return nil, fmt.Errorf("catalog %s: healthy class %d has no entry", name, healthy)
	}
	copied := make(map[int]CatalogEntry, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &ResultCatalog{name: name, entries: copied, healthy: healthy}, nil
}

func (c *ResultCatalog) Name() string      { return c.name }
func (c *ResultCatalog) HealthyClass() int { return c.healthy }

// Classes returns the sorted class ids with entries.
func (c *ResultCatalog) Classes() []int {
	out := make([]int, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the verdict for classID. Unknown ids yield the generic
// fallback verdict together with an UnknownClassError.
func (c *ResultCatalog) Lookup(classID int) (model.Verdict, error) {
	e, ok := c.entries[classID]
	if !ok {
		return model.Verdict{
			ClassID:        classID,
			Label:          fallbackEntry.Label,
			Recommendation: fallbackEntry.Recommendation,
		}, &model.UnknownClassError{ClassID: classID}
	}
	return model.Verdict{ClassID: classID, Label: e.Label, Recommendation: e.Recommendation}, nil
}

// Covers returns an error naming the first class without an entry.
func (c *ResultCatalog) Covers(classes []int) error {
	for _, id := range classes {
		if _, ok := c.entries[id]; !ok {
			return fmt.Errorf("catalog %s has no entry for class %d", c.name, id)
		}
	}
	return nil
}

func riskCatalog() *ResultCatalog {
	c, err := NewResultCatalog("risk-3", ClassHealthy, map[int]CatalogEntry{
		ClassHealthy: {
			Label:          "Low Risk / Healthy Range",
			Recommendation: "Your profile matches individuals with healthy lab results. Maintain a balanced diet rich in fruits, vegetables, and whole grains.",
		},
		ClassAnemiaRisk: {
			Label:          "High Risk: Anemia / Iron Deficiency",
			Recommendation: "Your profile shares characteristics with groups prone to low hemoglobin. Increase Iron intake (Spinach, Red Meat, Lentils) and Vitamin C to aid absorption.",
		},
		ClassCholesterolRisk: {
			Label:          "High Risk: Elevated Cholesterol / Dietary Imbalance",
			Recommendation: "Your profile suggests a risk of metabolic imbalance. Consider reducing saturated fats and increasing fiber intake (Oats, Beans).",
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Survey deficiency classes.
const (
	DeficiencyNone       = 0
	DeficiencyIron       = 1
	DeficiencyVitaminD   = 2
	DeficiencyVitaminB12 = 3
	DeficiencyRiboflavin = 4
	DeficiencyProtein    = 5
)

func deficiencyCatalog() *ResultCatalog {
	c, err := NewResultCatalog("deficiency-6", DeficiencyNone, map[int]CatalogEntry{
		DeficiencyNone: {
			Label:          "No Significant Deficiency",
			Recommendation: "Your answers do not point to a specific deficiency. Keep a varied diet with vegetables, fruit, whole grains and a protein source at every meal.",
		},
		DeficiencyIron: {
			Label:          "Iron Deficiency",
			Recommendation: "Include iron-rich foods such as spinach, lentils, beans, jaggery and lean red meat, and pair them with Vitamin C (citrus, amla) to aid absorption. A hemoglobin test is advisable.",
		},
		DeficiencyVitaminD: {
			Label:          "Vitamin D Deficiency",
			Recommendation: "Get 15 to 20 minutes of morning sunlight daily and add fortified milk, eggs and oily fish. Ask a doctor about a Vitamin D level test if bone or joint pain persists.",
		},
		DeficiencyVitaminB12: {
			Label:          "Vitamin B12 Deficiency",
			Recommendation: "Add dairy, eggs, fish or B12-fortified foods. Vegetarian and vegan diets often need a supplement; confirm with a blood test.",
		},
		DeficiencyRiboflavin: {
			Label:          "Vitamin B2 (Riboflavin) Deficiency",
			Recommendation: "Cracked lips and mouth sores respond to riboflavin-rich foods: milk, curd, almonds, mushrooms and green leafy vegetables.",
		},
		DeficiencyProtein: {
			Label:          "Protein / Zinc Deficiency",
			Recommendation: "Increase protein with pulses, paneer, eggs, nuts and seeds, which also supply zinc for hair and skin health.",
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
