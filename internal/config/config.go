// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 1800
	ScreenHeight = 1100
	TickRate     = 60 // Тиков симуляции в секунду

	ProjectileRadius = 5.0

	EnemyHitFlashDuration    = 5
	TowerFiringFlashDuration = 5
	TowerDamageFlashDuration = 20
	UpgradeMessageDuration   = 120

	SeparationForce = 0.5

	// Смещение точки вылета снаряда башни от её края
	TowerMuzzleOffset = 8.0

	MinDifficulty  = 0.5
	MaxDifficulty  = 2.0
	DifficultyStep = 0.05
)

var (
	BackgroundColor    = color.RGBA{30, 30, 30, 255}
	MenuBackground     = color.RGBA{20, 20, 40, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TitleColor         = color.RGBA{255, 255, 120, 255}
	PlayerColor        = color.RGBA{255, 255, 255, 255}
	PlayerFlickerColor = color.RGBA{200, 200, 200, 255}
	CentralTowerColor  = color.RGBA{100, 100, 255, 255}
	PlacedTowerColor   = color.RGBA{100, 200, 100, 255}
	TowerFiringColor   = color.RGBA{200, 200, 100, 255}
	TowerDamagedColor  = color.RGBA{255, 0, 0, 255}
	RangeColor         = color.RGBA{180, 180, 180, 255}
	HitColor           = color.RGBA{255, 255, 255, 255}
	FriendlyShotColor  = color.RGBA{255, 255, 0, 255}
	HostileShotColor   = color.RGBA{255, 90, 60, 255}
	HealthBarBack      = color.RGBA{60, 60, 60, 255}
	HealthBarFront     = color.RGBA{80, 220, 80, 255}
	EnemyHealthFront   = color.RGBA{220, 80, 80, 255}
	OverlayColor       = color.RGBA{0, 0, 0, 200}
	GoodMessageColor   = color.RGBA{40, 255, 40, 255}
	BadMessageColor    = color.RGBA{255, 70, 70, 255}
	EnemyColors        = map[string]color.RGBA{
		"triangle": {255, 200, 80, 255},
		"square":   {80, 200, 255, 255},
		"star":     {120, 120, 230, 255},
		"boss":     {255, 80, 200, 255},
	}
)

// Config — настройки сессии, загружаемые из TOML.
type Config struct {
	Arena       ArenaConfig       `toml:"arena"`
	Player      PlayerConfig      `toml:"player"`
	Central     TowerConfig       `toml:"central_tower"`
	PlacedTower PlacedTowerConfig `toml:"placed_tower"`
	Waves       WavesConfig       `toml:"waves"`
	Economy     EconomyConfig     `toml:"economy"`
	Logging     LoggingConfig     `toml:"logging"`
	Audio       AudioConfig       `toml:"audio"`
	Content     ContentConfig     `toml:"content"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Seed   int64   `toml:"seed"` // 0 — текущее время
}

type PlayerConfig struct {
	StartMoney   float64 `toml:"start_money"`
	OffsetY      float64 `toml:"offset_y"` // Смещение старта от центра арены вниз
	Radius       float64 `toml:"radius"`
	Speed        float64 `toml:"speed"`
	MaxHealth    float64 `toml:"max_health"`
	BulletDamage float64 `toml:"bullet_damage"`
	BulletSpeed  float64 `toml:"bullet_speed"`
	FireCooldown int     `toml:"fire_cooldown"`
	IFrames      int     `toml:"iframes"`
}

type TowerConfig struct {
	MaxHealth    float64 `toml:"max_health"`
	Radius       float64 `toml:"radius"`
	ShotCooldown int     `toml:"shot_cooldown"`
	ShotSpeed    float64 `toml:"shot_speed"`
	ShotDamage   float64 `toml:"shot_damage"`
	ShotRange    float64 `toml:"shot_range"`
	RegenRate    float64 `toml:"regen_rate"`
}

type PlacedTowerConfig struct {
	TowerConfig
	Cost        int     `toml:"cost"`
	BuildMargin float64 `toml:"build_margin"` // Радиус новой башни в проверке расстояния
	MinSpacing  float64 `toml:"min_spacing"`
}

type WavesConfig struct {
	TimeLimitBase    int `toml:"time_limit_base"`
	TimeLimitPerWave int `toml:"time_limit_per_wave"`
	TimeLimitMax     int `toml:"time_limit_max"`
}

type EconomyConfig struct {
	PassiveIncome float64 `toml:"passive_income"` // Стартовые значения накопителей
	PlayerRegen   float64 `toml:"player_regen"`
	CentralRegen  float64 `toml:"central_regen"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

type ContentConfig struct {
	Dir string `toml:"dir"` // Пусто — встроенные данные
}

// Load читает TOML поверх значений по умолчанию. Пустой путь — только умолчания.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default возвращает настройки оригинальной игры.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Player: PlayerConfig{
			StartMoney:   50,
			OffsetY:      150,
			Radius:       20,
			Speed:        5,
			MaxHealth:    50,
			BulletDamage: 8,
			BulletSpeed:  9,
			FireCooldown: 18,
			IFrames:      60,
		},
		Central: TowerConfig{
			MaxHealth:    300,
			Radius:       50,
			ShotCooldown: 45,
			ShotSpeed:    7,
			ShotDamage:   6,
			ShotRange:    350,
		},
		PlacedTower: PlacedTowerConfig{
			TowerConfig: TowerConfig{
				MaxHealth:    80,
				Radius:       25,
				ShotCooldown: 60,
				ShotSpeed:    5,
				ShotDamage:   4,
				ShotRange:    200,
				RegenRate:    0.05,
			},
			Cost:        50,
			BuildMargin: 25,
			MinSpacing:  20,
		},
		Waves: WavesConfig{
			TimeLimitBase:    3600,
			TimeLimitPerWave: 600,
			TimeLimitMax:     10800,
		},
		Economy: EconomyConfig{
			PassiveIncome: 0.02,
			PlayerRegen:   0.02,
			CentralRegen:  0.02,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// Validate проверяет значения, без которых сессия не может работать.
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return errors.New("arena size must be positive")
	case c.Player.MaxHealth <= 0:
		return errors.New("player.max_health must be positive")
	case c.Player.FireCooldown < 1:
		return errors.New("player.fire_cooldown must be at least 1")
	case c.Central.MaxHealth <= 0:
		return errors.New("central_tower.max_health must be positive")
	case c.Central.ShotCooldown < 1 || c.PlacedTower.ShotCooldown < 1:
		return errors.New("tower shot_cooldown must be at least 1")
	case c.PlacedTower.Cost < 0:
		return errors.New("placed_tower.cost must not be negative")
	case c.Waves.TimeLimitBase <= 0 || c.Waves.TimeLimitMax < c.Waves.TimeLimitBase:
		return errors.New("waves time limits are inconsistent")
	case c.Economy.PassiveIncome < 0 || c.Economy.PlayerRegen < 0 || c.Economy.CentralRegen < 0:
		return errors.New("economy rates must not be negative")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.New("audio.volume must be within 0..1")
	}
	return nil
}
