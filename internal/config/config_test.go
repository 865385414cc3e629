package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "REDIS_URL", "KAFKA_BROKERS", "NOTIFICATION_TOPIC", "LISTING_DEBOUNCE", "SUBMIT_DELAY", "SESSION_TTL", "CACHE_TTL"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("NOTIFICATION_TOPIC", "catalog.notifications")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != slog.LevelInfo || cfg.IsProduction() {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ListingDebounce != 500*time.Millisecond || cfg.SubmitDelay != 1500*time.Millisecond {
		t.Errorf("delays = %v, %v", cfg.ListingDebounce, cfg.SubmitDelay)
	}
	if cfg.SessionTTL != 24*time.Hour || cfg.CacheTTL != 5*time.Minute {
		t.Errorf("ttls = %v, %v", cfg.SessionTTL, cfg.CacheTTL)
	}
	if len(cfg.KafkaBrokers) != 0 || cfg.RedisURL != "" {
		t.Errorf("optional backends enabled: %+v", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("LISTING_DEBOUNCE", "250ms")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug || !cfg.IsProduction() {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Errorf("brokers = %v", cfg.KafkaBrokers)
	}
	if cfg.ListingDebounce != 250*time.Millisecond {
		t.Errorf("debounce = %v", cfg.ListingDebounce)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad duration", "SUBMIT_DELAY", "soon"},
		{"negative duration", "SESSION_TTL", "-1h"},
		{"bad level", "LOG_LEVEL", "chatty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}
