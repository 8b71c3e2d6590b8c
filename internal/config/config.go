package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// License quota scopes
const (
	QuotaScopeInstitution = "institution"
	QuotaScopeGlobal      = "global"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DatabaseHost      string        `mapstructure:"DB_HOST"`
	DatabasePort      string        `mapstructure:"DB_PORT"`
	DatabaseUser      string        `mapstructure:"DB_USER"`
	DatabasePassword  string        `mapstructure:"DB_PASSWORD"`
	DatabaseName      string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode   string        `mapstructure:"DB_SSL_MODE"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	SeedDefaults      bool          `mapstructure:"SEED_DEFAULTS"`

	// JWT configuration
	JWTSecret                  string `mapstructure:"JWT_SECRET"`
	JWTIssuer                  string `mapstructure:"JWT_ISSUER"`
	JWTAccessTokenLifetimeDays int    `mapstructure:"JWT_ACCESS_TOKEN_LIFETIME_DAYS"`
	BcryptCost                 int    `mapstructure:"BCRYPT_COST"`

	// Auth endpoint throttling (per client IP)
	AuthRateLimitRPS   float64 `mapstructure:"AUTH_RATE_LIMIT_RPS"`
	AuthRateLimitBurst int     `mapstructure:"AUTH_RATE_LIMIT_BURST"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Licensing
	LicenseQuotaScope string `mapstructure:"LICENSE_QUOTA_SCOPE"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)
	config.LicenseQuotaScope = strings.ToLower(strings.TrimSpace(config.LicenseQuotaScope))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "eduman")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("SEED_DEFAULTS", true)

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "eduman")
	v.SetDefault("JWT_ACCESS_TOKEN_LIFETIME_DAYS", 30)
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("AUTH_RATE_LIMIT_RPS", 1.0)
	v.SetDefault("AUTH_RATE_LIMIT_BURST", 5)

	// CORS defaults (frontend dev server)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "https://localhost:5173"})

	v.SetDefault("LICENSE_QUOTA_SCOPE", QuotaScopeInstitution)
	v.SetDefault("METRICS_ENABLED", true)
}

// splitOrigins accepts both a list and a single comma separated entry.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "" || config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JWTAccessTokenLifetimeDays <= 0 {
		return fmt.Errorf("JWT_ACCESS_TOKEN_LIFETIME_DAYS must be positive, got %d", config.JWTAccessTokenLifetimeDays)
	}

	switch config.LicenseQuotaScope {
	case QuotaScopeInstitution, QuotaScopeGlobal:
	default:
		return fmt.Errorf("LICENSE_QUOTA_SCOPE must be %q or %q, got %q", QuotaScopeInstitution, QuotaScopeGlobal, config.LicenseQuotaScope)
	}

	if config.AuthRateLimitRPS <= 0 || config.AuthRateLimitBurst <= 0 {
		return fmt.Errorf("auth rate limit must be positive")
	}

	return nil
}

// TokenLifetime returns the access token lifetime as a duration
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.JWTAccessTokenLifetimeDays) * 24 * time.Hour
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
