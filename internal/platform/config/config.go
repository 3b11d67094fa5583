package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCurrencyAPIURL is returned when no Treasury endpoint is configured.
var ErrMissingCurrencyAPIURL = errors.New("currency.api.url (CURRENCY_API_URL) must be set")

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string

	// Treasury rates-of-exchange endpoint
	CurrencyAPIURL        string
	CurrencyAPITimeout    time.Duration
	CatalogMaxPages       int
	CatalogMaxEmptyPages  int
	ConversionConcurrency int

	DefaultAPIKey      string
	RateLimit          string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("currency.api.timeout", "15s")
	v.SetDefault("catalog.max.pages", 500)
	v.SetDefault("catalog.max.empty.pages", 5)
	v.SetDefault("conversion.concurrency", 4)
	v.SetDefault("DEFAULT_API_KEY", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		CurrencyAPIURL:        strings.TrimSpace(v.GetString("currency.api.url")),
		CatalogMaxPages:       v.GetInt("catalog.max.pages"),
		CatalogMaxEmptyPages:  v.GetInt("catalog.max.empty.pages"),
		ConversionConcurrency: v.GetInt("conversion.concurrency"),
		DefaultAPIKey:         v.GetString("DEFAULT_API_KEY"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		PosthogAPIKey:         v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:       v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.CurrencyAPIURL == "" {
		return nil, ErrMissingCurrencyAPIURL
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := v.GetString("currency.api.timeout")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for CURRENCY_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.CurrencyAPITimeout = timeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.DefaultAPIKey == "" {
		log.Println("Warning: DEFAULT_API_KEY not set. Purchase endpoints require an explicit API key.")
	}

	return cfg, nil
}
