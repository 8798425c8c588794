package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vealkind/kgram/src/rolling"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 5, cfg.WindowSize)
	assert.Equal(t, "modular", cfg.Mode)
	assert.Equal(t, 4, cfg.Workers)
	assert.Empty(t, cfg.FilterPattern)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("KGRAM_ENVIRONMENT", "prod")
	t.Setenv("KGRAM_WINDOW_SIZE", "9")
	t.Setenv("KGRAM_MODE", "unbounded")
	t.Setenv("KGRAM_WORKERS", "2")
	t.Setenv("KGRAM_FILTER_PATTERN", `\s`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 9, cfg.WindowSize)
	assert.Equal(t, "unbounded", cfg.Mode)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, `\s`, cfg.FilterPattern)
}

func TestConfig_HashMode(t *testing.T) {
	mode, err := Config{Mode: "modular"}.HashMode()
	require.NoError(t, err)
	assert.Equal(t, rolling.ModeModular, mode)

	mode, err = Config{Mode: "unbounded"}.HashMode()
	require.NoError(t, err)
	assert.Equal(t, rolling.ModeUnbounded, mode)

	_, err = Config{Mode: "bogus"}.HashMode()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	require.NotNil(t, NewLogger(EnvDev))
	require.NotNil(t, NewLogger(EnvProd))
}
