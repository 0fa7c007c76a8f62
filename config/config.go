// Package config loads the settings of a trek scene from YAML or TOML files, and can watch those files for changes.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/solarlune/trek"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when loading a file whose extension isn't .yaml, .yml, or .toml.
var ErrUnknownFormat = errors.New("unknown config format")

// ErrInvalid is returned when a loaded config holds values that can't be used.
var ErrInvalid = errors.New("invalid config")

// Config holds everything the locomotion example reads from its config file, one field per section.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Map     MapConfig     `yaml:"map" toml:"map"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Trees   TreesConfig   `yaml:"trees" toml:"trees"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig sets up the game window.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// CameraConfig places the orbit camera around the player. Alpha and Beta are in radians.
type CameraConfig struct {
	Alpha  float32 `yaml:"alpha" toml:"alpha"`
	Beta   float32 `yaml:"beta" toml:"beta"`
	Radius float32 `yaml:"radius" toml:"radius"`
	Height float32 `yaml:"height" toml:"height"` // How far above the player the camera looks.
	Near   float32 `yaml:"near" toml:"near"`
}

// MapConfig shapes the terrain.
type MapConfig struct {
	Size         float32 `yaml:"size" toml:"size"`
	MaxHeight    float32 `yaml:"max_height" toml:"max_height"`
	Subdivisions int     `yaml:"subdivisions" toml:"subdivisions"`
	Heightmap    string  `yaml:"heightmap" toml:"heightmap"` // Path to a heightmap image; empty for generated hills.
}

// PlayerConfig tunes the player's controller and names the clips it plays.
type PlayerConfig struct {
	Model                string  `yaml:"model" toml:"model"` // Path to a .gltf or .glb to read clip lengths from; empty for built-in clips.
	ForwardSpeed         float32 `yaml:"forward_speed" toml:"forward_speed"`
	TurnRate             float32 `yaml:"turn_rate" toml:"turn_rate"`
	OrientationLerpSpeed float32 `yaml:"orientation_lerp_speed" toml:"orientation_lerp_speed"`
	StopFraction         float32 `yaml:"stop_fraction" toml:"stop_fraction"`
	Lookahead            float32 `yaml:"lookahead" toml:"lookahead"`
	BlendTime            float32 `yaml:"blend_time" toml:"blend_time"`
	IdleClip             string  `yaml:"idle_clip" toml:"idle_clip"`
	RunClip              string  `yaml:"run_clip" toml:"run_clip"`
}

// TreesConfig controls how trees are scattered over the map.
type TreesConfig struct {
	Count    int     `yaml:"count" toml:"count"`
	Offset   float32 `yaml:"offset" toml:"offset"`
	Margin   float32 `yaml:"margin" toml:"margin"`
	MinScale float32 `yaml:"min_scale" toml:"min_scale"`
	MaxScale float32 `yaml:"max_scale" toml:"max_scale"`
	Seed     uint64  `yaml:"seed" toml:"seed"`
}

// LoggingConfig sets the level logs are written at: debug, info, warn, or error.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the default config: a 200x200 map up to 25 units high, 20,000 trees, and a player running at 4
// units per second.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "trek",
			Width:  796,
			Height: 448,
		},
		Camera: CameraConfig{
			Alpha:  math.Pi * 0.25,
			Beta:   math.Pi * 0.3,
			Radius: 25,
			Height: 2,
			Near:   0.01,
		},
		Map: MapConfig{
			Size:         200,
			MaxHeight:    25,
			Subdivisions: 16,
		},
		Player: PlayerConfig{
			ForwardSpeed:         4,
			TurnRate:             5,
			OrientationLerpSpeed: 16,
			StopFraction:         0.01,
			Lookahead:            0.075,
			BlendTime:            0.1,
			IdleClip:             "Idle",
			RunClip:              "Run",
		},
		Trees: TreesConfig{
			Count:    20_000,
			Offset:   5,
			Margin:   2,
			MinScale: 2,
			MaxScale: 10,
			Seed:     1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file over the defaults; anything the file doesn't set keeps its default value.
// The format is picked by extension: .yaml and .yml files are read as YAML, and .toml files as TOML.
func Load(path string) (*Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil

}

// Validate checks that the config's values can be used to build a scene.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Map.Size <= 0:
		return fmt.Errorf("%w: map size %v must be positive", ErrInvalid, cfg.Map.Size)
	case cfg.Map.Subdivisions < 1:
		return fmt.Errorf("%w: map needs at least 1 subdivision, not %d", ErrInvalid, cfg.Map.Subdivisions)
	case cfg.Map.MaxHeight < 0:
		return fmt.Errorf("%w: map max height %v is negative", ErrInvalid, cfg.Map.MaxHeight)
	case cfg.Player.ForwardSpeed <= 0:
		return fmt.Errorf("%w: player forward speed %v must be positive", ErrInvalid, cfg.Player.ForwardSpeed)
	case cfg.Player.StopFraction < 0:
		return fmt.Errorf("%w: player stop fraction %v is negative", ErrInvalid, cfg.Player.StopFraction)
	case cfg.Trees.Count < 0:
		return fmt.Errorf("%w: tree count %d is negative", ErrInvalid, cfg.Trees.Count)
	case cfg.Trees.MaxScale < cfg.Trees.MinScale:
		return fmt.Errorf("%w: tree max scale %v is below min scale %v", ErrInvalid, cfg.Trees.MaxScale, cfg.Trees.MinScale)
	}
	return nil
}

// ControllerSettings returns settings for a trek.Controller walking on a map built from this config.
func (cfg *Config) ControllerSettings() *trek.ControllerSettings {
	settings := trek.DefaultControllerSettings()
	settings.ForwardSpeed = cfg.Player.ForwardSpeed
	settings.TurnRate = cfg.Player.TurnRate
	settings.OrientationLerpSpeed = cfg.Player.OrientationLerpSpeed
	settings.StopFraction = cfg.Player.StopFraction
	settings.Lookahead = cfg.Player.Lookahead
	settings.GroundSurface = cfg.TerrainOptions().Name
	settings.Clips = map[trek.AnimState]string{
		trek.AnimIdle: cfg.Player.IdleClip,
		trek.AnimRun:  cfg.Player.RunClip,
	}
	return settings
}

// TerrainOptions returns the options for the map's trek.Terrain.
func (cfg *Config) TerrainOptions() trek.TerrainOptions {
	options := trek.DefaultTerrainOptions()
	options.Size = cfg.Map.Size
	options.MaxHeight = cfg.Map.MaxHeight
	options.Subdivisions = cfg.Map.Subdivisions
	return options
}

// ScatterOptions returns the options for scattering the map's trees.
func (cfg *Config) ScatterOptions() trek.ScatterOptions {
	return trek.ScatterOptions{
		Count:    cfg.Trees.Count,
		MapSize:  cfg.Map.Size,
		Offset:   cfg.Trees.Offset,
		Margin:   cfg.Trees.Margin,
		MinScale: cfg.Trees.MinScale,
		MaxScale: cfg.Trees.MaxScale,
		Seed:     cfg.Trees.Seed,
	}
}

// SlogLevel returns the slog level named by the logging config, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
