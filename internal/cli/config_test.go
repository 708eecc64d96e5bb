package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.DefaultSeconds != defaultCacheSeconds {
		t.Errorf("DefaultSeconds = %d", cfg.Cache.DefaultSeconds)
	}
	if cfg.Cache.MaxSeconds != maxCacheSeconds {
		t.Errorf("MaxSeconds = %d", cfg.Cache.MaxSeconds)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langcard.toml")
	content := `
listen = ":9090"

[github]
token = "file-token"

[cache]
backend = "redis"
default_seconds = 600

[cache.redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.GitHub.Token != "file-token" {
		t.Errorf("Token = %q", cfg.GitHub.Token)
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.DefaultSeconds != 600 {
		t.Errorf("DefaultSeconds = %d", cfg.Cache.DefaultSeconds)
	}
	// Unset fields keep defaults
	if cfg.Cache.MaxSeconds != maxCacheSeconds {
		t.Errorf("MaxSeconds = %d", cfg.Cache.MaxSeconds)
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Cache.Redis)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.GitHub.Token != "env-token" {
		t.Errorf("Token = %q, want env override", cfg.GitHub.Token)
	}
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langcard.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"memcached\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
