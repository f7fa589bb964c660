package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// Backend selects the key-value store: file, redis, postgres or
		// memory.
		Backend string `yaml:"backend" env:"STORAGE_BACKEND"`
		FileDir string `yaml:"file_dir" env:"STORAGE_FILE_DIR"`

		Redis struct {
			Addr     string `yaml:"addr" env:"REDIS_ADDR"`
			Password string `yaml:"password" env:"REDIS_PASSWORD"`
			DB       int    `yaml:"db" env:"REDIS_DB"`
		} `yaml:"redis"`

		Postgres struct {
			Host     string `yaml:"host" env:"DB_HOST"`
			Port     string `yaml:"port" env:"DB_PORT"`
			User     string `yaml:"user" env:"DB_USER"`
			Password string `yaml:"password" env:"DB_PASSWORD"`
			DBName   string `yaml:"dbname" env:"DB_NAME"`
			SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Session struct {
		// KeyPrefix namespaces the persisted keys, useful when several
		// deployments share one redis or postgres instance.
		KeyPrefix string `yaml:"key_prefix" env:"SESSION_KEY_PREFIX"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Storage defaults
	config.Storage.Backend = "file"
	config.Storage.FileDir = "data"
	config.Storage.Redis.Addr = "localhost:6379"
	config.Storage.Postgres.Host = "localhost"
	config.Storage.Postgres.Port = "5432"
	config.Storage.Postgres.User = "postgres"
	config.Storage.Postgres.Password = "postgres"
	config.Storage.Postgres.DBName = "uniportal"
	config.Storage.Postgres.SSLMode = "disable"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	err := processStructFields(config)
	if err != nil {
		return err
	}

	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Backend {
	case "file", "redis", "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	if config.Storage.Backend == "file" && config.Storage.FileDir == "" {
		return fmt.Errorf("storage file_dir is required for the file backend")
	}

	if config.Storage.Backend == "postgres" && config.Storage.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required for the postgres backend")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Storage.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Storage.Postgres.User,
		c.Storage.Postgres.Password,
		c.Storage.Postgres.Host,
		c.Storage.Postgres.Port,
		c.Storage.Postgres.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}

// GetEnvAsDuration gets an environment variable as a duration or returns a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
