package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("MISTRAL_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error without api keys, got %v", err)
	}
	if cfg.HTTPPort != "8000" {
		t.Fatalf("expected default port 8000, got %s", cfg.HTTPPort)
	}
	if cfg.AnalysisModel != "llama-3.3-70b-versatile" || cfg.RefineModel != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected default models %q %q", cfg.AnalysisModel, cfg.RefineModel)
	}
	if cfg.VisionModel != "pixtral-12b-2409" {
		t.Fatalf("unexpected vision model %q", cfg.VisionModel)
	}
	if cfg.RateLimitWindow != time.Minute || cfg.RateLimitMax != 30 {
		t.Fatalf("unexpected rate limit defaults %v %d", cfg.RateLimitWindow, cfg.RateLimitMax)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GROQ_API_KEY", "gk")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.GroqAPIKey != "gk" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.RateLimitWindow != 30*time.Second || cfg.RedisDB != 2 {
		t.Fatalf("unexpected parsed values %v %d", cfg.RateLimitWindow, cfg.RedisDB)
	}
}

func TestLoadConfigInvalidInt(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadConfigTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.10")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" || cfg.TrustedProxies[1] != "192.168.1.10" {
		t.Fatalf("unexpected trusted proxies %v", cfg.TrustedProxies)
	}
}
