package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/sqlite"
)

func TestArtifactStore(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "db", "artifacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.Load(ctx, "default")
	assert.ErrorIs(t, err, port.ErrArtifactNotFound)

	require.NoError(t, store.Save(ctx, "default", []byte("first")))
	require.NoError(t, store.Save(ctx, "default", []byte("second")))
	require.NoError(t, store.Save(ctx, "survey", []byte("other")))

	got, err := store.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	got, err = store.Load(ctx, "survey")
	require.NoError(t, err)
	assert.Equal(t, "other", string(got))
}
