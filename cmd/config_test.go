package cmd

import (
	"strings"
	"testing"

	"github.com/nchapman/murmur/internal/config"
)

func TestConfigValue(t *testing.T) {
	cfg := &config.Config{
		DefaultModel: "medium",
		Endpoint:     "https://mirror.example.com",
		Revision:     "v1.5.4",
		MaxRetries:   4,
		CacheDir:     "/mnt/models",
	}

	tests := []struct {
		key  string
		want string
	}{
		{"default_model", "medium"},
		{"endpoint", "https://mirror.example.com"},
		{"revision", "v1.5.4"},
		{"max_retries", "4"},
		{"cache_dir", "/mnt/models"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := configValue(cfg, tt.key)
			if err != nil {
				t.Fatalf("configValue(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("configValue(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfigValueUnknownKey(t *testing.T) {
	_, err := configValue(config.DefaultConfig(), "nope")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "default_model") {
		t.Errorf("error should list valid keys, got %v", err)
	}
}

func TestSetConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(*config.Config) bool
	}{
		{
			name: "default model", key: "default_model", value: "medium",
			check: func(c *config.Config) bool { return c.DefaultModel == "medium" },
		},
		{
			name: "default model normalizes case", key: "default_model", value: "MEDIUM",
			check: func(c *config.Config) bool { return c.DefaultModel == "medium" },
		},
		{
			name: "default model unknown", key: "default_model", value: "huge", wantErr: true,
		},
		{
			name: "endpoint", key: "endpoint", value: "https://hf-mirror.example.com",
			check: func(c *config.Config) bool { return c.Endpoint == "https://hf-mirror.example.com" },
		},
		{
			name: "endpoint bad scheme", key: "endpoint", value: "ftp://mirror.example.com", wantErr: true,
		},
		{
			name: "endpoint not a url", key: "endpoint", value: "not a url", wantErr: true,
		},
		{
			name: "revision", key: "revision", value: "v1.5.4",
			check: func(c *config.Config) bool { return c.Revision == "v1.5.4" },
		},
		{
			name: "revision empty", key: "revision", value: "  ", wantErr: true,
		},
		{
			name: "max retries", key: "max_retries", value: "3",
			check: func(c *config.Config) bool { return c.MaxRetries == 3 },
		},
		{
			name: "max retries negative", key: "max_retries", value: "-1", wantErr: true,
		},
		{
			name: "max retries not a number", key: "max_retries", value: "lots", wantErr: true,
		},
		{
			name: "cache dir", key: "cache_dir", value: "/mnt/models",
			check: func(c *config.Config) bool { return c.CacheDir == "/mnt/models" },
		},
		{
			name: "unknown key", key: "nope", value: "x", wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := setConfigValue(cfg, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("setConfigValue(%q, %q) expected error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("setConfigValue(%q, %q) error: %v", tt.key, tt.value, err)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("setConfigValue(%q, %q) did not apply", tt.key, tt.value)
			}
		})
	}
}
