package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
// Las API keys no son obligatorias: si faltan, las llamadas fallan al momento del request.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8000"`

	GroqAPIKey    string `env:"GROQ_API_KEY"`
	GroqBaseURL   string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	AnalysisModel string `env:"GROQ_ANALYSIS_MODEL" envDefault:"llama-3.3-70b-versatile"`
	RefineModel   string `env:"GROQ_REFINE_MODEL" envDefault:"llama-3.1-8b-instant"`

	MistralAPIKey  string `env:"MISTRAL_API_KEY"`
	MistralBaseURL string `env:"MISTRAL_BASE_URL" envDefault:"https://api.mistral.ai/v1"`
	VisionModel    string `env:"MISTRAL_VISION_MODEL" envDefault:"pixtral-12b-2409"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"30"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	// TrustedProxies son las IPs/CIDRs cuyo X-Forwarded-For se acepta. Vacio: ninguno.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
