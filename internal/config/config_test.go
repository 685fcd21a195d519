package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{EnvAddr, EnvRate, EnvBurst, EnvWorkers, EnvFactor, EnvShutdownTimeout} {
		t.Setenv(k, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvFile(t *testing.T) {
	for _, k := range []string{EnvAddr, EnvRate, EnvBurst, EnvWorkers, EnvFactor, EnvShutdownTimeout} {
		t.Setenv(k, "")
		// godotenv does not override variables that are set, even when empty
		require.NoError(t, os.Unsetenv(k))
	}

	f := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(f, []byte(
		"GOBEAM_ADDR=127.0.0.1:9000\nGOBEAM_RATE=2.5\nGOBEAM_BURST=3\nGOBEAM_WORKERS=8\nGOBEAM_FACTOR=0.8\nGOBEAM_SHUTDOWN_TIMEOUT=2s\n",
	), 0600))

	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.EqualValues(t, 2.5, cfg.Rate)
	assert.Equal(t, 3, cfg.Burst)
	assert.Equal(t, 8, cfg.Workers)
	assert.EqualValues(t, 0.8, cfg.Factor)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv(EnvWorkers, "many")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvFactor, "-1")
	_, err = Load()
	assert.Error(t, err)
}
