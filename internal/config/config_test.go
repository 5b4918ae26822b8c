package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, 10*time.Minute, cfg.VideoCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.edu.vn/")
	t.Setenv("CACHE_BACKEND", "REDIS")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("VIDEO_CACHE_TTL", "90s")
	t.Setenv("LOG_PRETTY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.edu.vn", cfg.APIBaseURL)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 90*time.Second, cfg.VideoCacheTTL)
	assert.False(t, cfg.LogPretty)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "bad base url",
			mutate:  func(c *Config) { c.APIBaseURL = "not a url" },
			wantErr: "APIBaseURL",
		},
		{
			name:    "redis without url",
			mutate:  func(c *Config) { c.CacheBackend = CacheRedis; c.RedisURL = "" },
			wantErr: "RedisURL",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.CacheBackend = "disk" },
			wantErr: "CacheBackend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				APIBaseURL:     "http://localhost:3000",
				SandboxBaseURL: "https://www.tapchikientruc.com.vn/wp-json/wp/v2/posts",
				HTTPTimeout:    time.Second,
				CacheBackend:   CacheMemory,
				VideoCacheTTL:  time.Minute,
				StubPort:       "3000",
				LogLevel:       "info",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
