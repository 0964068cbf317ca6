// Package config resolves advisor settings from three layers, later ones
// winning: built-in defaults, an optional YAML file, and ADVISOR_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/advisor/internal/logging"
)

const (
	// EnvPrefix marks the environment variables read by LoadConfig.
	EnvPrefix = "ADVISOR_"
	// ConfigPathEnvVar points at a YAML config file.
	ConfigPathEnvVar = "ADVISOR_CONFIG"
)

// Config holds process-wide settings. Command-line flags override it.
type Config struct {
	DBPath      string `koanf:"db"`
	CatalogPath string `koanf:"catalog"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	ListenAddr  string `koanf:"listen_addr"`
}

var validLogFormats = map[string]bool{"json": true, "console": true}

// DefaultConfig uses the bundled catalog and a database under ~/.advisor.
func DefaultConfig() Config {
	return Config{
		DBPath:     filepath.Join(advisorHome(), "advisor.db"),
		LogLevel:   "info",
		LogFormat:  "console",
		ListenAddr: ":8080",
	}
}

func advisorHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".advisor"
	}
	return filepath.Join(home, ".advisor")
}

// LoadConfig layers defaults, the config file (if any) and the environment.
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	path, err := findConfigFile()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envTransform maps ADVISOR_LOG_LEVEL to log_level. Blank values are
// dropped so they do not mask lower layers.
func envTransform(key, value string) (string, any) {
	value = strings.TrimSpace(value)
	if value == "" || key == ConfigPathEnvVar {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// findConfigFile returns ADVISOR_CONFIG, which must exist when set, else
// ~/.advisor/config.yaml if present, else "".
func findConfigFile() (string, error) {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s: %w", ConfigPathEnvVar, err)
		}
		return p, nil
	}
	p := filepath.Join(advisorHome(), "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	return "", nil
}

// Validate rejects unknown log levels and formats and an empty database path.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format %q (want json or console)", c.LogFormat)
	}
	return nil
}
