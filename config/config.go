package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigPath = "/etc/gpuinfo/config.toml"
	configOverride    = "XDG_CONFIG_HOME"
	configFilePath    = "gpuinfo/config.toml"

	EnvLogLevel     = "GPUINFO_LOG_LEVEL"
	EnvWGPULogLevel = "WGPU_LOG_LEVEL"
)

const (
	OutputText string = "text"
	OutputJSON string = "json"
	OutputTOML string = "toml"
)

const (
	ColorAuto   string = "auto"
	ColorAlways string = "always"
	ColorNever  string = "never"
)

// overwritten in tests
var (
	configDir = ""
	getenv    = os.Getenv
)

type Config struct {
	Output         string     `toml:"output"`
	Color          string     `toml:"color"`
	DebugFilePath  string     `toml:"debug"`
	LogLevel       slog.Level `toml:"log_level"`
	WGPULogLevel   string     `toml:"wgpu_log_level"`
	DefaultOptions []string   `toml:"default_options"`
}

// Load reads the configuration file at filePath. When filePath is empty the
// file is looked up under $XDG_CONFIG_HOME, then at DefaultConfigPath, and a
// missing file yields the defaults. Environment overrides are applied last.
func Load(filePath string) (*Config, error) {
	cfg := defaultConfig()

	explicit := filePath != ""
	if !explicit {
		filePath = defaultFilePath()
	}

	f, err := os.Open(filePath)
	switch {
	case err == nil:
		defer f.Close()
		if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filePath, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputTOML:
	default:
		return fmt.Errorf("unsupported output %q. valid values are %q, %q and %q", c.Output, OutputText, OutputJSON, OutputTOML)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unsupported color mode %q. valid values are %q, %q and %q", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if lvl := getenv(EnvLogLevel); lvl != "" {
		if err := c.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return fmt.Errorf("parsing %s: %w", EnvLogLevel, err)
		}
	}
	if lvl := getenv(EnvWGPULogLevel); lvl != "" {
		c.WGPULogLevel = lvl
	}
	return nil
}

func defaultFilePath() string {
	dir := configDir
	if XDGConfigDir := getenv(configOverride); len(XDGConfigDir) != 0 {
		dir = XDGConfigDir
	}
	if dir == "" {
		return DefaultConfigPath
	}
	p := path.Join(dir, configFilePath)
	if _, err := os.Stat(p); err != nil {
		return DefaultConfigPath
	}
	return p
}

func defaultConfig() Config {
	return Config{
		Output:         OutputText,
		Color:          ColorAuto,
		DebugFilePath:  "",
		LogLevel:       slog.LevelWarn,
		WGPULogLevel:   "warn",
		DefaultOptions: []string{},
	}
}
