package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MissingRowPolicy decides how PUT and DELETE respond when the target employee does not exist.
type MissingRowPolicy string

const (
	// MissingRowIgnore answers 200 with an empty body for PUT and 204 for DELETE.
	MissingRowIgnore MissingRowPolicy = "ignore"
	// MissingRowNotFound answers 404 for both.
	MissingRowNotFound MissingRowPolicy = "not_found"
)

// DefaultDatabaseURL is used when neither the config file nor DATABASE_URL provide one.
const DefaultDatabaseURL = "postgres://localhost/acme_hr_directory"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		CORSOrigins     []string      `yaml:"cors_origins" env:"CORS_ALLOWED_ORIGINS"`
		MetricsEnabled  bool          `yaml:"metrics_enabled" env:"METRICS_ENABLED"`
	} `yaml:"server"`

	Database struct {
		URL             string        `yaml:"url" env:"DATABASE_URL"`
		MaxConns        int           `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns        int           `yaml:"min_conns" env:"DB_MIN_CONNS"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
		Bootstrap       bool          `yaml:"bootstrap" env:"DB_BOOTSTRAP"`
	} `yaml:"database"`

	API struct {
		MissingRowPolicy MissingRowPolicy `yaml:"missing_row_policy" env:"API_MISSING_ROW_POLICY"`
	} `yaml:"api"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, an optional YAML file, an optional
// .env file and finally the process environment.
func LoadConfig(configPath, envFile string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Values already present in the environment win over the .env file.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 120 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second
	config.Server.CORSOrigins = []string{"*"}
	config.Server.MetricsEnabled = true

	config.Database.URL = DefaultDatabaseURL
	config.Database.MaxConns = 10
	config.Database.MinConns = 1
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.ConnectTimeout = 10 * time.Second
	config.Database.Bootstrap = true

	config.API.MissingRowPolicy = MissingRowIgnore

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if strings.TrimSpace(config.Database.URL) == "" {
		return fmt.Errorf("database url is required")
	}

	if config.Database.MinConns < 0 {
		return fmt.Errorf("database min_conns must not be negative")
	}

	if config.Database.MaxConns < 1 || config.Database.MaxConns < config.Database.MinConns {
		return fmt.Errorf("database max_conns must be at least 1 and not below min_conns")
	}

	for name, d := range map[string]time.Duration{
		"server.read_timeout":        config.Server.ReadTimeout,
		"server.write_timeout":       config.Server.WriteTimeout,
		"server.idle_timeout":        config.Server.IdleTimeout,
		"server.shutdown_timeout":    config.Server.ShutdownTimeout,
		"database.conn_max_lifetime": config.Database.ConnMaxLifetime,
		"database.connect_timeout":   config.Database.ConnectTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	for _, origin := range config.Server.CORSOrigins {
		if origin == "*" {
			if len(config.Server.CORSOrigins) > 1 {
				return fmt.Errorf("cors origin \"*\" cannot be combined with other origins")
			}
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors origin %q must start with http:// or https://", origin)
		}
	}

	switch config.API.MissingRowPolicy {
	case MissingRowIgnore, MissingRowNotFound:
	default:
		return fmt.Errorf("unknown missing_row_policy %q", config.API.MissingRowPolicy)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
