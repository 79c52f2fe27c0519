package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Notify   NotifyConfig
	Admin    AdminConfig
	Logger   LoggerConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects and configures the key-value store backend.
type StoreConfig struct {
	Driver string // "file" or "postgres"
	Dir    string // data directory for the file driver
}

// DatabaseConfig holds database-related configuration for the postgres
// store driver.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// CatalogConfig selects the source of the bundled default catalogue, used
// when no persisted override exists.
type CatalogConfig struct {
	Source string // "file", "http" or "s3"
	Path   string // file path for the file source
	URL    string // fetch URL for the http source
	Bucket string // S3 bucket for the s3 source
	Region string // S3 region for the s3 source
	Key    string // S3 object key for the s3 source
}

// NotifyConfig holds the outbound order notification configuration. The
// bot token and chat id are deploy-time secrets and are never baked into
// the binary.
type NotifyConfig struct {
	Enabled  bool
	Endpoint string
	BotToken string
	ChatID   string
	Timeout  time.Duration
}

// AdminConfig holds the admin gate configuration.
type AdminConfig struct {
	DefaultPIN string // seeds the stored PIN on first run
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

var pinPattern = regexp.MustCompile(`^\d{4,8}$`)

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "file"),
			Dir:    getEnv("STORE_DIR", "data"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "gameshop"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "file"),
			Path:   getEnv("CATALOG_PATH", "products.json"),
			URL:    getEnv("CATALOG_URL", ""),
			Bucket: getEnv("CATALOG_S3_BUCKET", ""),
			Region: getEnv("CATALOG_S3_REGION", "us-east-1"),
			Key:    getEnv("CATALOG_S3_KEY", "products.json"),
		},
		Notify: NotifyConfig{
			Enabled:  getEnvAsBool("NOTIFY_ENABLED", false),
			Endpoint: getEnv("NOTIFY_ENDPOINT", "https://api.telegram.org"),
			BotToken: getEnv("NOTIFY_BOT_TOKEN", ""),
			ChatID:   getEnv("NOTIFY_CHAT_ID", ""),
			Timeout:  time.Duration(getEnvAsInt("NOTIFY_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Admin: AdminConfig{
			DefaultPIN: getEnv("ADMIN_DEFAULT_PIN", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case "file":
		if c.Store.Dir == "" {
			return fmt.Errorf("store directory is required for the file driver")
		}
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	default:
		return fmt.Errorf("invalid store driver: %s (must be file or postgres)", c.Store.Driver)
	}

	switch c.Catalog.Source {
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for the file source")
		}
	case "http":
		if c.Catalog.URL == "" {
			return fmt.Errorf("catalog URL is required for the http source")
		}
	case "s3":
		if c.Catalog.Bucket == "" {
			return fmt.Errorf("catalog S3 bucket is required for the s3 source")
		}
		if c.Catalog.Region == "" {
			return fmt.Errorf("catalog S3 region is required for the s3 source")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be file, http or s3)", c.Catalog.Source)
	}

	if c.Notify.Enabled {
		if c.Notify.BotToken == "" {
			return fmt.Errorf("notify bot token is required when notifications are enabled")
		}
		if c.Notify.ChatID == "" {
			return fmt.Errorf("notify chat id is required when notifications are enabled")
		}
		if c.Notify.Endpoint == "" {
			return fmt.Errorf("notify endpoint is required when notifications are enabled")
		}
	}

	if c.Admin.DefaultPIN != "" && !pinPattern.MatchString(c.Admin.DefaultPIN) {
		return fmt.Errorf("admin default PIN must be 4-8 digits")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
