package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/model"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/valueobject"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/dataset"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/observability"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/testutil"
)

func TestCSVSource_NHANESMapping(t *testing.T) {
	src := dataset.NewCSVSource(observability.NopLogger())
	in := "SEQN,RIDAGEYR,RIAGENDR,BMXHT,BMXWT,LBXHGB,LBXTC\n" +
		"1,34,2,160.5,55.2,11.4,190\n" +
		"2,51,1,175,90,15.1,\n"

	ds, err := src.Read(context.Background(), strings.NewReader(in), ',', valueobject.VariantLab)
	require.NoError(t, err)

	assert.Equal(t, []string{"seqn", "age", "gender", "height", "weight", "hemoglobin", "cholesterol"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, model.RawRecord{
		"seqn": 1, "age": 34, "gender": 1, "height": 160.5, "weight": 55.2, "hemoglobin": 11.4, "cholesterol": 190,
	}, ds.Rows[0])
	assert.Equal(t, 0.0, ds.Rows[1]["gender"])
	assert.False(t, ds.Rows[1].Has("cholesterol"))
}

func TestCSVSource_SurveyKeepsColumnNames(t *testing.T) {
	src := dataset.NewCSVSource(observability.NopLogger())
	in := "\ufeffAge,Gender,Pale_Skin,deficiency_label\n25,1,1,1\n40,0,NA,0\n33,0,yes,2\n"

	ds, err := src.Read(context.Background(), strings.NewReader(in), ',', valueobject.VariantSurvey)
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "gender", "pale_skin", "deficiency_label"}, ds.Columns)
	assert.Equal(t, model.RawRecord{"age": 25, "gender": 1, "pale_skin": 1, "deficiency_label": 1}, ds.Rows[0])
	assert.False(t, ds.Rows[1].Has("pale_skin"))
	assert.False(t, ds.Rows[2].Has("pale_skin"))
}

func TestCSVSource_NHANESCodesIgnoredForSurvey(t *testing.T) {
	src := dataset.NewCSVSource(observability.NopLogger())
	ds, err := src.Read(context.Background(), strings.NewReader("RIAGENDR\n2\n"), ',', valueobject.VariantSurvey)
	require.NoError(t, err)
	assert.Equal(t, []string{"riagendr"}, ds.Columns)
	assert.Equal(t, 2.0, ds.Rows[0]["riagendr"])
}

func TestCSVSource_LoadTSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.tsv")
	require.NoError(t, os.WriteFile(path, []byte("age\tgender\n30\t1\n"), 0o600))

	ds, err := dataset.NewCSVSource(observability.NopLogger()).Load(context.Background(), path, valueobject.VariantSurvey)
	require.NoError(t, err)
	assert.Equal(t, []model.RawRecord{{"age": 30, "gender": 1}}, ds.Rows)
}

func TestCSVSource_Errors(t *testing.T) {
	src := dataset.NewCSVSource(observability.NopLogger())

	_, err := src.Read(context.Background(), strings.NewReader(""), ',', valueobject.VariantLab)
	testutil.RequireErrorAs[*model.ConfigurationError](t, err)

	_, err = src.Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), valueobject.VariantLab)
	assert.ErrorContains(t, err, "missing.csv")
}
