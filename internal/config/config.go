package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"medisync/internal/logging"
)

// Gateway kinds
const (
	GatewaySupabase = "supabase"
	GatewayPostgres = "postgres"
	GatewayMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Lead capture
	Gateway              string        `env:"GATEWAY" envDefault:"supabase"`
	CloseDelay           time.Duration `env:"CLOSE_DELAY" envDefault:"2s"`
	SurfaceGatewayErrors bool          `env:"SURFACE_GATEWAY_ERRORS" envDefault:"false"`

	// Hosted data store (Supabase)
	SupabaseURL     string        `env:"SUPABASE_URL"`
	SupabaseKey     string        `env:"SUPABASE_KEY"`
	SupabaseTable   string        `env:"SUPABASE_TABLE" envDefault:"demo_requests"`
	SupabaseTimeout time.Duration `env:"SUPABASE_TIMEOUT" envDefault:"10s"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL"`

	// Notifications
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	// Spam protection
	RecaptchaSecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaMinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0.5"`

	// Chat assistant
	ChatReplyDelay time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"1s"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"medisync-api"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Gateway = strings.ToLower(strings.TrimSpace(cfg.Gateway))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the lead-capture settings that every command relies on
func (c *Config) Validate() error {
	switch c.Gateway {
	case GatewaySupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("%w: SUPABASE_URL and SUPABASE_KEY are required for the supabase gateway", logging.ErrInvalidConfig)
		}
	case GatewayPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres gateway", logging.ErrInvalidConfig)
		}
	case GatewayMemory:
	default:
		return fmt.Errorf("%w: unknown gateway %q", logging.ErrInvalidConfig, c.Gateway)
	}

	if c.CloseDelay < 0 {
		return fmt.Errorf("%w: CLOSE_DELAY must be non-negative", logging.ErrInvalidConfig)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LogConfig derives the logger configuration
func (c *Config) LogConfig() *logging.Config {
	return &logging.Config{
		Level:       strings.ToLower(c.LogLevel),
		File:        c.LogFile,
		MaxSize:     c.LogMaxSize,
		MaxBackups:  c.LogMaxBackups,
		MaxAge:      c.LogMaxAge,
		LogRequests: c.LogRequests,
	}
}
