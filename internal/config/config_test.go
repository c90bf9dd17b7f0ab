package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[arena]
seed = 42

[player]
start_money = 120

[placed_tower]
cost = 75
min_spacing = 10

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Arena.Seed)
	assert.Equal(t, 120.0, cfg.Player.StartMoney)
	assert.Equal(t, 75, cfg.PlacedTower.Cost)
	assert.Equal(t, 10.0, cfg.PlacedTower.MinSpacing)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Незатронутые поля остаются по умолчанию
	assert.Equal(t, 80.0, cfg.PlacedTower.MaxHealth)
	assert.Equal(t, 300.0, cfg.Central.MaxHealth)
	assert.Equal(t, float64(ScreenWidth), cfg.Arena.Width)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[player\nstart_money = 1"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "[audio]\nvolume = 3.0\n"))
	assert.ErrorContains(t, err, "audio.volume")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"arena", func(c *Config) { c.Arena.Width = 0 }, "arena size"},
		{"player health", func(c *Config) { c.Player.MaxHealth = -1 }, "player.max_health"},
		{"fire cooldown", func(c *Config) { c.Player.FireCooldown = 0 }, "fire_cooldown"},
		{"tower cooldown", func(c *Config) { c.PlacedTower.ShotCooldown = 0 }, "shot_cooldown"},
		{"time limits", func(c *Config) { c.Waves.TimeLimitMax = 10 }, "time limits"},
		{"economy", func(c *Config) { c.Economy.PassiveIncome = -0.1 }, "economy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}
