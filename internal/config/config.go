package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"moneymanager/internal/database"
	"moneymanager/internal/logger"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Server
	Port string

	// Database
	Database database.Config

	// Auth
	AuthEnabled        bool
	AuthPassphraseHash string
	JWTSecret          string
	JWTExpirationDur   time.Duration

	// Analytics
	Location       *time.Location
	WeekStart      time.Weekday
	SeedCategories bool

	// Change fan-out
	AMQPURL      string
	AMQPExchange string
}

// defaultJWTSecret is only acceptable while auth is disabled.
const defaultJWTSecret = "fallback-secret-key-for-dev-only"

// Load loads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using environment only")
	}

	config := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		Port: getEnv("PORT", "8080"),

		Database: database.Config{
			Driver:     getEnv("DB_DRIVER", database.DriverSQLite),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "moneymanager"),
			Password:   getEnv("DB_PASSWORD", "moneymanager"),
			DBName:     getEnv("DB_NAME", "moneymanager"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "moneymanager.db"),
		},

		AuthPassphraseHash: getEnv("AUTH_PASSPHRASE_HASH", ""),
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "moneymanager.changes"),
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	var err error
	if config.AuthEnabled, err = getBool("AUTH_ENABLED", false); err != nil {
		return nil, err
	}
	if config.AuthEnabled && config.AuthPassphraseHash == "" {
		return nil, fmt.Errorf("AUTH_ENABLED requires AUTH_PASSPHRASE_HASH")
	}
	if config.AuthEnabled && config.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("AUTH_ENABLED requires JWT_SECRET")
	}
	if config.SeedCategories, err = getBool("SEED_CATEGORIES", true); err != nil {
		return nil, err
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		logger.Get().Warnf("invalid JWT_EXPIRES_IN value '%s', falling back to 24h", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	tz := getEnv("TIMEZONE", "Local")
	if config.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	if config.WeekStart, err = parseWeekday(getEnv("WEEK_START", "monday")); err != nil {
		return nil, err
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return b, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("invalid WEEK_START %q", s)
}
