package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/phrazzld/swapi-gateway/internal/platform/postgres"
	"github.com/phrazzld/swapi-gateway/internal/platform/postgres/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	var found bool
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		found = true
		body, err := migrations.FS.ReadFile(e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
	assert.True(t, found, "expected at least one embedded migration")
}

func TestMigrateUnknownCommand(t *testing.T) {
	err := postgres.Migrate(context.Background(), nil, "sideways", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}
