// Package config loads viewer and server settings with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"boundless/internal/camera"
	"boundless/internal/grid"
	"boundless/internal/render"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BOUNDLESS_GRID_WIDTH.
const EnvPrefix = "BOUNDLESS"

// Config is the full set of tunables.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Camera CameraConfig `mapstructure:"camera"`
	Cull   CullConfig   `mapstructure:"cull"`
	Screen ScreenConfig `mapstructure:"screen"`
	World  WorldConfig  `mapstructure:"world"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type GridConfig struct {
	TileSize  float64 `mapstructure:"tile_size"`
	TileScale float64 `mapstructure:"tile_scale"`
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
}

type CameraConfig struct {
	MinScale float64 `mapstructure:"min_scale"`
	ZoomStep float64 `mapstructure:"zoom_step"`
}

type CullConfig struct {
	Margin  float64 `mapstructure:"margin"`
	Workers int     `mapstructure:"workers"`
}

// ScreenConfig sets how many pixels one terminal cell stands for.
type ScreenConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

type WorldConfig struct {
	Seed int64 `mapstructure:"seed"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
	File   string `mapstructure:"file"`   // empty logs to stderr
}

// Layout returns the grid layout.
func (c Config) Layout() grid.Layout {
	return grid.Layout{TileSize: c.Grid.TileSize, TileScale: c.Grid.TileScale, Width: c.Grid.Width, Height: c.Grid.Height}
}

// Limits returns the camera zoom limits.
func (c Config) Limits() camera.Limits {
	return camera.Limits{MinScale: c.Camera.MinScale, ZoomStep: c.Camera.ZoomStep}
}

// Cells returns the terminal cell metrics.
func (c Config) Cells() render.Cells {
	return render.Cells{CellWidth: c.Screen.CellWidth, CellHeight: c.Screen.CellHeight}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.tile_size", 64.0)
	v.SetDefault("grid.tile_scale", 0.25)
	v.SetDefault("grid.width", 128)
	v.SetDefault("grid.height", 128)
	v.SetDefault("camera.min_scale", camera.DefaultMinScale)
	v.SetDefault("camera.zoom_step", camera.DefaultZoomStep)
	v.SetDefault("cull.margin", 0.5)
	v.SetDefault("cull.workers", 1)
	v.SetDefault("screen.cell_width", 8.0)
	v.SetDefault("screen.cell_height", 16.0)
	v.SetDefault("world.seed", 1)
	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "server_host_key")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Load reads defaults, then the optional file at path, then BOUNDLESS_*
// environment variables, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the view pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.TileSize <= 0 || c.Grid.TileScale <= 0 {
		errs = append(errs, errors.New("grid tile size and scale must be positive"))
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, errors.New("grid dimensions must be positive"))
	}
	if c.Camera.MinScale <= 0 {
		errs = append(errs, errors.New("camera.min_scale must be positive"))
	}
	if c.Cull.Margin < 0 {
		errs = append(errs, errors.New("cull.margin must not be negative"))
	}
	if c.Screen.CellWidth <= 0 || c.Screen.CellHeight <= 0 {
		errs = append(errs, errors.New("screen cell size must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
