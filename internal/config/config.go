package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string        `env:"DATABASE_URL,required"`
	VisionBaseURL string        `env:"VISION_BASE_URL,required"`
	VisionAPIKey  string        `env:"VISION_API_KEY,required"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	JWTAccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"24h"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Memoización de proyecciones; la clave ya rota con cada análisis
	// nuevo, el TTL solo acota memoria en Redis.
	ForecastCacheTTL time.Duration `env:"FORECAST_CACHE_TTL" envDefault:"6h"`

	// Límite de análisis por cliente; el detector upstream es caro.
	AnalysisRateMax    int           `env:"ANALYSIS_RATE_MAX" envDefault:"10"`
	AnalysisRateWindow time.Duration `env:"ANALYSIS_RATE_WINDOW" envDefault:"1h"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
