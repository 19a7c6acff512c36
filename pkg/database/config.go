package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds database connection settings. When URL is set it is used as
// the DSN verbatim and the discrete fields are ignored.
type Config struct {
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// dsn renders the connection string pgx should dial.
func (c Config) dsn() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// LoadConfigFromEnv builds the database config. DATABASE_URL wins when set;
// otherwise the discrete DB_* variables apply with local-dev defaults.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		URL:             os.Getenv("DATABASE_URL"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
		}
		cfg.MaxOpenConns = n
	}
	if v := os.Getenv("DB_MAX_IDLE_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
		}
		cfg.MaxIdleConns = n
	}
	if cfg.URL != "" {
		// migrate needs a database name even with a URL DSN.
		cfg.Database = getEnvOrDefault("DB_NAME", "findocgpt")
		return cfg, nil
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Host = getEnvOrDefault("DB_HOST", "localhost")
	cfg.Port = port
	cfg.User = getEnvOrDefault("DB_USER", "findocgpt")
	cfg.Password = os.Getenv("DB_PASSWORD")
	cfg.Database = getEnvOrDefault("DB_NAME", "findocgpt")
	cfg.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
