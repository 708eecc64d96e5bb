package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config holds settings for the serve command, loaded from a TOML file.
//
// Example:
//
//	listen = ":8080"
//
//	[github]
//	token = "ghp_..."
//
//	[cache]
//	backend = "redis"
//	default_seconds = 14400
//	max_seconds = 86400
//
//	[cache.redis]
//	addr = "localhost:6379"
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `toml:"listen"`

	GitHub GitHubConfig `toml:"github"`
	Cache  CacheConfig  `toml:"cache"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	// Token is the API token used for GraphQL requests.
	// The GITHUB_TOKEN environment variable takes precedence.
	Token string `toml:"token"`
}

// CacheConfig holds rendered-card cache settings.
type CacheConfig struct {
	// Backend selects the cache implementation: "file", "redis", or "none".
	Backend string `toml:"backend"`

	// DefaultSeconds is the cache lifetime when the request does not
	// specify cache_seconds.
	DefaultSeconds int `toml:"default_seconds"`

	// MaxSeconds caps the cache_seconds a request may ask for.
	MaxSeconds int `toml:"max_seconds"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds Redis connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Default cache lifetimes in seconds.
const (
	defaultCacheSeconds = 4 * 60 * 60  // 4 hours
	maxCacheSeconds     = 24 * 60 * 60 // 1 day
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Listen: ":8080",
		Cache: CacheConfig{
			Backend:        CacheBackendFile,
			DefaultSeconds: defaultCacheSeconds,
			MaxSeconds:     maxCacheSeconds,
		},
	}
}

// LoadConfig reads a TOML config file and fills in defaults for
// unset fields. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		applyEnv(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	switch cfg.Cache.Backend {
	case "", CacheBackendFile:
		cfg.Cache.Backend = CacheBackendFile
	case CacheBackendRedis, CacheBackendNone:
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
	if cfg.Cache.DefaultSeconds <= 0 {
		cfg.Cache.DefaultSeconds = defaultCacheSeconds
	}
	if cfg.Cache.MaxSeconds <= 0 {
		cfg.Cache.MaxSeconds = maxCacheSeconds
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides config values from the environment.
func applyEnv(cfg *Config) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	}
}

// defaultTTL returns the default cache lifetime as a duration.
func (c *CacheConfig) defaultTTL() time.Duration {
	return time.Duration(c.DefaultSeconds) * time.Second
}
