package postgres

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), PoolConfig{URL: "://not-a-url"})
	assert.ErrorContains(t, err, "postgres: parse config")
}

func TestRunMigrations_UnknownDatabase(t *testing.T) {
	src := fstest.MapFS{"1_init.up.sql": {Data: []byte("SELECT 1;")}}
	err := RunMigrations("nosuchdb://localhost/x", src)
	assert.ErrorContains(t, err, "postgres: create migrator")
}
