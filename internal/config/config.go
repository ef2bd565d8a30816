package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"rinha-backend/internal/infrastructure/database"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration.
// Every key can be overridden by its upper-cased env var (db.host -> DB_HOST).
type Config struct {
	App      AppConfig         `mapstructure:"app"`
	Database database.DBConfig `mapstructure:"db"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"` // development, production
	Port        string `mapstructure:"port"`
	Version     string `mapstructure:"version"`
	LogLevel    string `mapstructure:"log_level"`
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Load reads config from environment variables on top of defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// AutomaticEnv only resolves keys viper already knows, so every key needs a default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Rinha Backend")
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "rinha")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_connections", 25)
	v.SetDefault("db.min_connections", 5)
	v.SetDefault("db.max_conn_lifetime", "5m")
	v.SetDefault("db.max_conn_idle_time", "1m")
	v.SetDefault("db.health_check_period", "1m")
	v.SetDefault("db.max_retries", 3)
	v.SetDefault("db.retry_delay", "1s")
	v.SetDefault("db.connect_timeout", "10s")
	v.SetDefault("db.migrate_on_start", true)
}

// Validate checks settings that would otherwise fail late at startup
func (c *Config) Validate() error {
	var errs []error

	if c.App.Port == "" {
		errs = append(errs, errors.New("APP_PORT must be set"))
	}
	if c.App.IsProduction() && c.Database.Password == "" {
		errs = append(errs, errors.New("DB_PASSWORD must be set in production"))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)",
			c.Database.MinConns, c.Database.MaxConns))
	}
	if c.Database.MaxRetries < 1 {
		errs = append(errs, errors.New("DB_MAX_RETRIES must be at least 1"))
	}

	return errors.Join(errs...)
}
