package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"STORAGE_DRIVER", "CATALOG_SOURCE", "HTTP_PORT", "MAX_RETRIES", "POSTGRES_HOST"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, DriverNone, cfg.StorageDriver)
	assert.Equal(t, SourceMemory, cfg.CatalogSource)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.False(t, cfg.UsesStore())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("CATALOG_SOURCE", "store")
	t.Setenv("MAX_RETRIES", "not-a-number")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "rooms")

	cfg := FromEnv()
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.True(t, cfg.UsesStore())
	assert.Equal(t, 5, cfg.MaxRetries, "unparsable ints fall back to the default")
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=rooms")
}
