package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 80.0, cfg.CoreKHRV)
	assert.Equal(t, 60.0, cfg.CoreKVO2)
	assert.Equal(t, 0.85, cfg.RedThreshold)
	assert.Equal(t, 0.95, cfg.YellowThreshold)
	assert.Equal(t, 300.0, cfg.DeviationScale)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CORE_K_HRV", "100")
	t.Setenv("SENTINEL_RED_THRESHOLD", "0.8")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.CoreKHRV)
	assert.Equal(t, 0.8, cfg.RedThreshold)
	assert.Equal(t, 9090, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"missing database path", func(c *Config) { c.DatabasePath = "" }, true},
		{"negative K", func(c *Config) { c.CoreKHRV = -80 }, true},
		{"thresholds out of order", func(c *Config) { c.RedThreshold = 0.96 }, true},
		{"yellow above one", func(c *Config) { c.YellowThreshold = 1.2 }, true},
		{"zero deviation scale", func(c *Config) { c.DeviationScale = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				DatabasePath:    "./data/etcore.db",
				CoreKHRV:        80,
				CoreKVO2:        60,
				RedThreshold:    0.85,
				YellowThreshold: 0.95,
				DeviationScale:  300,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKForSignal(t *testing.T) {
	cfg := &Config{CoreKHRV: 80, CoreKVO2: 60}

	assert.Equal(t, 80.0, cfg.KForSignal("hrv"))
	assert.Equal(t, 60.0, cfg.KForSignal("vo2"))
	assert.Equal(t, 80.0, cfg.KForSignal(""))
	assert.Equal(t, 80.0, cfg.KForSignal("unknown"))
}
