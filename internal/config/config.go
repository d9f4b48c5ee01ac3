package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/eytandecker/fdmscene/internal/importer"
	"github.com/eytandecker/fdmscene/internal/units"
)

// Config holds all application configuration.
type Config struct {
	Import importer.Settings `toml:"import"`
	Scene  units.System      `toml:"scene"`
	Server ServerConfig      `toml:"server"`
	Log    LogConfig         `toml:"log"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name    string `toml:"name"`
	DataDir string `toml:"data_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Import: importer.DefaultSettings(),
		Scene:  units.DefaultSystem(),
		Server: ServerConfig{Name: "fdmscene", DataDir: "."},
		Log:    LogConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// FDM_SETTINGS_FILE if set, then environment variables.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("FDM_SETTINGS_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.mergeEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	im := &c.Import
	im.PlotScale = getEnvFloat("FDM_PLOT_SCALE", im.PlotScale)
	im.PlotNames = getEnvBool("FDM_PLOT_NAMES", im.PlotNames)
	im.PlotAxes = getEnvBool("FDM_PLOT_AXES", im.PlotAxes)
	im.ThrustersAutoParent = getEnvBool("FDM_THRS_AUTO_PARENT", im.ThrustersAutoParent)
	im.IncludeMetrics = getEnvBool("FDM_INCLUDE_METRICS", im.IncludeMetrics)
	im.IncludeMassBalance = getEnvBool("FDM_INCLUDE_MASS_BALANCE", im.IncludeMassBalance)
	im.IncludeGroundReactions = getEnvBool("FDM_INCLUDE_GROUND_REACTIONS", im.IncludeGroundReactions)
	im.IncludeExternalReactions = getEnvBool("FDM_INCLUDE_EXTERNAL_REACTIONS", im.IncludeExternalReactions)
	im.IncludePropulsion = getEnvBool("FDM_INCLUDE_PROPULSION", im.IncludePropulsion)
	im.ValidateSchema = getEnvBool("FDM_VALIDATE_SCHEMA", im.ValidateSchema)

	c.Scene.Length = getEnvString("FDM_UNIT_SYSTEM", c.Scene.Length)
	c.Scene.ScaleLength = getEnvFloat("FDM_SCALE_LENGTH", c.Scene.ScaleLength)
	c.Scene.Rotation = getEnvString("FDM_ROTATION", c.Scene.Rotation)

	c.Server.Name = getEnvString("FDM_SERVER_NAME", c.Server.Name)
	c.Server.DataDir = getEnvString("FDM_DATA_DIR", c.Server.DataDir)

	c.Log.Level = getEnvString("FDM_LOG_LEVEL", c.Log.Level)
}

// SlogLevel maps the configured level name to a slog.Level, defaulting to
// info for unknown names.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
