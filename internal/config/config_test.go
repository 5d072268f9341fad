package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.BreedStore.Driver)
	assert.Equal(t, "configs/breeds.hjson", cfg.BreedStore.CatalogPath)
	assert.Equal(t, "0 6 * * 1", cfg.Ranking.CronSchedule)
	assert.Equal(t, "medium", cfg.Ranking.ManagementLevel)
	assert.Equal(t, 4, cfg.Simulation.CompareConcurrency)
	assert.Equal(t, 15*time.Second, cfg.Digest.Timeout)
	assert.False(t, cfg.MongoDB.Enabled())
	assert.False(t, cfg.Sheets.Enabled())
	assert.False(t, cfg.Digest.Enabled())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "APP_PORT=9090\nBREED_STORE_DRIVER=SQLite\nSQLITE_PATH=/tmp/breeds.db\nMONGODB_URI=mongodb://localhost:27017\nCOMPARE_CONCURRENCY=8\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv does not override variables that are already set.
	for _, key := range []string{"APP_PORT", "BREED_STORE_DRIVER", "SQLITE_PATH", "MONGODB_URI", "COMPARE_CONCURRENCY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.BreedStore.Driver)
	assert.Equal(t, "/tmp/breeds.db", cfg.BreedStore.SQLitePath)
	assert.True(t, cfg.MongoDB.Enabled())
	assert.Equal(t, 8, cfg.Simulation.CompareConcurrency)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"BREED_STORE_DRIVER": "redis"}},
		{name: "bad concurrency", env: map[string]string{"COMPARE_CONCURRENCY": "many"}},
		{name: "zero concurrency", env: map[string]string{"COMPARE_CONCURRENCY": "0"}},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "half sheets config", env: map[string]string{"GOOGLE_SHEET_EXPORT_ID": "sheet-id"}},
		{name: "bad digest timeout", env: map[string]string{"DIGEST_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

// chdirTemp switches into a fresh temp dir for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
