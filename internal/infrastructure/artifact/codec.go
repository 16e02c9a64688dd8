// Package artifact persists model bundles as validated JSON documents.
package artifact

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/ml"
)

// FormatVersion is the bundle document version this codec reads and writes.
const FormatVersion = 1

const classifierKNN = "knn"

//go:embed bundle.schema.json
var bundleSchema []byte

const schemaURL = "schema://nutrition/bundle.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func documentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bundleSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse bundle schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add bundle schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

type document struct {
	CreatedAt     time.Time             `json:"created_at"`
	Variant       string                `json:"variant"`
	Policy        string                `json:"policy"`
	Features      []model.FeatureSpec   `json:"features"`
	Normalizer    normalizerDoc         `json:"normalizer"`
	Classifier    classifierDoc         `json:"classifier"`
	Classes       []int                 `json:"classes"`
	Metrics       model.TrainingSummary `json:"metrics"`
	FormatVersion int                   `json:"format_version"`
	ID            uuid.UUID             `json:"id"`
}

type normalizerDoc struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

type classifierDoc struct {
	Type   string      `json:"type"`
	Points [][]float64 `json:"points"`
	Labels []int       `json:"labels"`
	K      int         `json:"k"`
}

// JSONCodec implements port.BundleCodec.
type JSONCodec struct{}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec() *JSONCodec { return &JSONCodec{} }

// Encode serializes a bundle trained with the ml package's scaler and KNN.
func (JSONCodec) Encode(b *model.ArtifactBundle) ([]byte, error) {
	scaler, ok := b.Normalizer().(*ml.StandardScaler)
	if !ok {
		return nil, fmt.Errorf("encode bundle: unsupported normalizer %T", b.Normalizer())
	}
	knn, ok := b.Classifier().(*ml.KNN)
	if !ok {
		return nil, fmt.Errorf("encode bundle: unsupported classifier %T", b.Classifier())
	}

	doc := document{
		FormatVersion: FormatVersion,
		ID:            b.ID(),
		Variant:       b.Variant().String(),
		CreatedAt:     b.CreatedAt(),
		Policy:        b.Schema().Policy().String(),
		Features:      b.Schema().Specs(),
		Normalizer:    normalizerDoc{Mean: scaler.Mean, Std: scaler.Std},
		Classifier:    classifierDoc{Type: classifierKNN, K: knn.K, Points: knn.Points, Labels: knn.Labels},
		Classes:       b.Classes(),
		Metrics:       b.Summary(),
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}
	return out, nil
}

// Decode validates blob against the bundle document schema and rebuilds the
// bundle. Every failure is a *model.ConfigurationError.
func (JSONCodec) Decode(blob []byte) (*model.ArtifactBundle, error) {
	sch, err := documentSchema()
	if err != nil {
		return nil, model.NewConfigurationError("bundle schema unavailable", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(blob))
	if err != nil {
		return nil, model.NewConfigurationError("artifact is not valid JSON", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, model.NewConfigurationError("artifact does not match bundle schema", err)
	}

	var doc document
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, model.NewConfigurationError("artifact could not be decoded", err)
	}

	b, err := rebuild(doc)
	if err != nil {
		return nil, model.NewConfigurationError("artifact is inconsistent", err)
	}
	return b, nil
}

func rebuild(doc document) (*model.ArtifactBundle, error) {
	variant, err := valueobject.VariantFromString(doc.Variant)
	if err != nil {
		return nil, err
	}
	policy, err := valueobject.InputPolicyFromString(doc.Policy)
	if err != nil {
		return nil, err
	}
	schema, err := model.NewFeatureSchema(policy, doc.Features...)
	if err != nil {
		return nil, err
	}

	scaler, err := ml.RestoreStandardScaler(doc.Normalizer.Mean, doc.Normalizer.Std)
	if err != nil {
		return nil, err
	}
	if scaler.Width() != schema.Len() {
		return nil, fmt.Errorf("normalizer has %d columns for %d features", scaler.Width(), schema.Len())
	}

	knn := &ml.KNN{K: doc.Classifier.K, Points: doc.Classifier.Points, Labels: doc.Classifier.Labels}
	if err := knn.Validate(schema.Len()); err != nil {
		return nil, err
	}
	classes := slices.Clone(doc.Classes)
	slices.Sort(classes)
	if !slices.Equal(slices.Compact(classes), knn.Classes()) {
		return nil, fmt.Errorf("classes %v do not match classifier labels %v", doc.Classes, knn.Classes())
	}

	return model.ReconstructArtifactBundle(doc.ID, variant, schema, scaler, knn, doc.Classes, doc.Metrics, doc.CreatedAt)
}
