package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cargofresh/internal/core/domain/services"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SessionTTL              time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionEvictionSchedule string        `envconfig:"SESSION_EVICTION_SCHEDULE" default:"@every 1m"`

	GeminiBaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	GeminiModel   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash-preview-09-2025"`
	GeminiAPIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiTimeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"0"`

	TariffConfig
}

// TariffConfig overrides the published tariff. Amounts are in pesos.
type TariffConfig struct {
	BaseCost               float64 `envconfig:"TARIFF_BASE_COST" default:"800"`
	PerKgRate              float64 `envconfig:"TARIFF_PER_KG_RATE" default:"12"`
	FrozenMultiplier       float64 `envconfig:"TARIFF_FROZEN_MULTIPLIER" default:"1.25"`
	FreshMultiplier        float64 `envconfig:"TARIFF_FRESH_MULTIPLIER" default:"1.10"`
	DryMultiplier          float64 `envconfig:"TARIFF_DRY_MULTIPLIER" default:"1.0"`
	LastMileSurcharge      float64 `envconfig:"TARIFF_LAST_MILE_SURCHARGE" default:"450"`
	FrequentClientDiscount float64 `envconfig:"TARIFF_FREQUENT_CLIENT_DISCOUNT" default:"0.15"`
	BandLow                float64 `envconfig:"TARIFF_BAND_LOW" default:"0.95"`
	BandHigh               float64 `envconfig:"TARIFF_BAND_HIGH" default:"1.05"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Rates() services.Rates {
	return services.Rates{
		BaseCost:               c.BaseCost,
		PerKgRate:              c.PerKgRate,
		FrozenMultiplier:       c.FrozenMultiplier,
		FreshMultiplier:        c.FreshMultiplier,
		DryMultiplier:          c.DryMultiplier,
		LastMileSurcharge:      c.LastMileSurcharge,
		FrequentClientDiscount: c.FrequentClientDiscount,
		BandLow:                c.BandLow,
		BandHigh:               c.BandHigh,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}
