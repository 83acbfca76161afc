package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.01, cfg.Matching.AmountTolerance)
	assert.Equal(t, 3, cfg.Matching.FuzzyDateToleranceDays)
	assert.Equal(t, 1.0, cfg.Matching.ConfidenceExact)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Matching.MatcherConfig().Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
matching:
  fuzzy_date_tolerance_days: 5
  confidence_fuzzy_date: 0.85
server:
  port: 9090
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden fields
	assert.Equal(t, 5, cfg.Matching.FuzzyDateToleranceDays)
	assert.Equal(t, 0.85, cfg.Matching.ConfidenceFuzzyDate)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults retained for omitted fields
	assert.Equal(t, 0.01, cfg.Matching.AmountTolerance)
	assert.Equal(t, 1.0, cfg.Matching.ConfidenceExact)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("does_not_exist.yaml")
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("matching: ["), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadOrEnv_Overrides(t *testing.T) {
	t.Setenv("RECON_SERVER_PORT", "7001")
	t.Setenv("RECON_LOG_LEVEL", "warn")

	cfg := LoadOrEnv()

	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
