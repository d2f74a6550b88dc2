package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// DefaultFile is read from the working directory when no path is given
const DefaultFile = "pong.toml"

// EnvPrefix prefixes environment overrides, PONG_BALL_SPEED maps to ball.speed
const EnvPrefix = "PONG"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the startup configuration
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Ball   BallConfig   `mapstructure:"ball"`
	Paddle PaddleConfig `mapstructure:"paddle"`
	Keys   KeyConfig    `mapstructure:"keys"`
	Sim    SimConfig    `mapstructure:"sim"`
	Input  InputConfig  `mapstructure:"input"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Log    LogConfig    `mapstructure:"log"`
	Debug  bool         `mapstructure:"debug"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type BallConfig struct {
	Radius float64 `mapstructure:"radius"`
	Speed  float64 `mapstructure:"speed"`
}

type PaddleConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Speed  float64 `mapstructure:"speed"`
}

// KeyConfig holds paddle bindings as normalized key names
type KeyConfig struct {
	LeftUp    core.Key `mapstructure:"left_up"`
	LeftDown  core.Key `mapstructure:"left_down"`
	RightUp   core.Key `mapstructure:"right_up"`
	RightDown core.Key `mapstructure:"right_down"`
}

// All returns the bindings in a fixed order
func (k KeyConfig) All() []core.Key {
	return []core.Key{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown}
}

// Legend renders the bindings for status lines, "W/S  O/L" with the defaults
func (k KeyConfig) Legend() string {
	pair := func(up, down core.Key) string {
		return strings.ToUpper(string(up)) + "/" + strings.ToUpper(string(down))
	}
	return pair(k.LeftUp, k.LeftDown) + "  " + pair(k.RightUp, k.RightDown)
}

type SimConfig struct {
	TickRate        int   `mapstructure:"tick_rate"`
	PhysicsSubsteps int   `mapstructure:"physics_substeps"`
	Seed            int64 `mapstructure:"seed"` // 0 selects a time-based seed
}

// TickInterval is the fixed simulation step
func (s SimConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

type InputConfig struct {
	// HoldWindow accepts a duration string or integer milliseconds
	HoldWindow time.Duration `mapstructure:"-"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type LogConfig struct {
	File       string `mapstructure:"file"` // Empty disables logging
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"` // Megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // Days
	Compress   bool   `mapstructure:"compress"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", int(parameter.WindowWidth))
	v.SetDefault("window.height", int(parameter.WindowHeight))
	v.SetDefault("window.title", parameter.WindowTitle)

	v.SetDefault("ball.radius", parameter.BallRadius)
	v.SetDefault("ball.speed", parameter.BallSpeed)

	v.SetDefault("paddle.width", parameter.PaddleWidth)
	v.SetDefault("paddle.height", parameter.PaddleHeight)
	v.SetDefault("paddle.speed", parameter.PaddleSpeed)

	v.SetDefault("keys.left_up", parameter.KeyLeftUp)
	v.SetDefault("keys.left_down", parameter.KeyLeftDown)
	v.SetDefault("keys.right_up", parameter.KeyRightUp)
	v.SetDefault("keys.right_down", parameter.KeyRightDown)

	v.SetDefault("sim.tick_rate", parameter.TickRate)
	v.SetDefault("sim.physics_substeps", parameter.PhysicsSubsteps)
	v.SetDefault("sim.seed", 0)

	v.SetDefault("input.hold_window", parameter.KeyHoldWindow.String())

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("debug", false)
}

// Load reads defaults, the TOML file and PONG_ environment overrides
// An explicit path must exist; the default file is optional
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".toml"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config %s: %w", DefaultFile, err)
			}
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	hold, err := holdWindow(v.Get("input.hold_window"))
	if err != nil {
		return nil, fmt.Errorf("decode input.hold_window: %w", err)
	}
	cfg.Input.HoldWindow = hold

	for _, k := range []*core.Key{&cfg.Keys.LeftUp, &cfg.Keys.LeftDown, &cfg.Keys.RightUp, &cfg.Keys.RightDown} {
		*k = core.NormalizeKey(string(*k))
	}

	return cfg, nil
}

// holdWindow accepts integer milliseconds or a duration string
func holdWindow(raw interface{}) (time.Duration, error) {
	if ms, err := cast.ToInt64E(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return cast.ToDurationE(raw)
}

// Validate rejects configurations the simulation cannot run with
func Validate(cfg *Config) error {
	positive := []struct {
		name  string
		value float64
	}{
		{"window.width", float64(cfg.Window.Width)},
		{"window.height", float64(cfg.Window.Height)},
		{"ball.radius", cfg.Ball.Radius},
		{"ball.speed", cfg.Ball.Speed},
		{"paddle.width", cfg.Paddle.Width},
		{"paddle.height", cfg.Paddle.Height},
		{"paddle.speed", cfg.Paddle.Speed},
		{"sim.tick_rate", float64(cfg.Sim.TickRate)},
		{"sim.physics_substeps", float64(cfg.Sim.PhysicsSubsteps)},
		{"input.hold_window", float64(cfg.Input.HoldWindow)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, p.name)
		}
	}

	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1]", ErrInvalidConfig)
	}

	seen := make(map[core.Key]bool, 4)
	for _, k := range cfg.Keys.All() {
		if k == "" {
			return fmt.Errorf("%w: empty key binding", ErrInvalidConfig)
		}
		if seen[k] {
			return fmt.Errorf("%w: key %q bound twice", ErrInvalidConfig, k)
		}
		seen[k] = true
	}
	return nil
}
