package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/storage"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/observability"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/testutil"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		opts storage.Options
	}{
		{name: "file", opts: storage.Options{Kind: "file", Path: filepath.Join(dir, "model.json")}},
		{name: "sqlite", opts: storage.Options{Kind: "sqlite", SQLitePath: filepath.Join(dir, "db", "artifacts.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, closeFn, err := storage.Open(ctx, tt.opts, observability.NopLogger())
			require.NoError(t, err)
			defer closeFn()

			_, err = store.Load(ctx, "default")
			assert.ErrorIs(t, err, port.ErrArtifactNotFound)

			require.NoError(t, store.Save(ctx, "default", []byte(`{"ok":true}`)))
			blob, err := store.Load(ctx, "default")
			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(blob))
		})
	}
}

func TestOpen_UnknownKind(t *testing.T) {
	_, _, err := storage.Open(context.Background(), storage.Options{Kind: "s3"}, observability.NopLogger())
	testutil.AssertErrorContains(t, err, "unknown artifact store")
}
