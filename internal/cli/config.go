package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/elena-krismer/nightingale/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "nightingale"

// Config holds the settings read from the config file. Every field has a
// usable default, so a missing file is not an error.
type Config struct {
	Width       float64 `toml:"width"`        // snapshot width in pixels
	MarginLeft  float64 `toml:"margin_left"`  // left margin of the draw area
	MarginRight float64 `toml:"margin_right"` // right margin of the draw area

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig configures the response and snapshot caches.
type CacheConfig struct {
	TTLHours  int    `toml:"ttl_hours"` // HTTP response cache TTL
	Snapshots string `toml:"snapshots"` // "memory", "file", "redis", or "off"
	RedisAddr string `toml:"redis_addr"`
	RedisDB   int    `toml:"redis_db"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	Sessions string `toml:"sessions"` // "memory", "file", or "mongo"
	MongoURI string `toml:"mongo_uri"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() *Config {
	return &Config{
		Width:       960,
		MarginLeft:  10,
		MarginRight: 10,
		Cache: CacheConfig{
			TTLHours:  24,
			Snapshots: "memory",
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{
			Addr:     ":8080",
			Sessions: "memory",
			MongoURI: "mongodb://localhost:27017",
		},
	}
}

// loadConfig reads the config file at path, falling back to
// ~/.config/nightingale/config.toml when path is empty. A missing file
// yields the defaults; a file that does not parse or fails validation is
// an INVALID_CONFIG error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return defaultConfig(), nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width must be positive, got %v", c.Width)
	}
	if c.MarginLeft < 0 || c.MarginRight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins must be non-negative")
	}
	switch c.Cache.Snapshots {
	case "memory", "file", "redis", "off":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache.snapshots must be memory, file, redis, or off, got %q", c.Cache.Snapshots)
	}
	switch c.Server.Sessions {
	case "memory", "file", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"server.sessions must be memory, file, or mongo, got %q", c.Server.Sessions)
	}
	return nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/nightingale/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory (~/.config/nightingale/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
