package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported breed store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the full application configuration surface.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	BreedStore BreedStoreConfig
	MongoDB    MongoDBConfig
	Sheets     SheetsConfig
	Ranking    RankingConfig
	Digest     DigestConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string
}

// BreedStoreConfig chooses where breed reference profiles are read from.
type BreedStoreConfig struct {
	Driver      string
	CatalogPath string
	SQLitePath  string
	DatabaseURL string
}

// MongoDBConfig holds settings for the simulation history. An empty URI disables history.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration required to export simulations to Google Sheets.
// Export is disabled unless both fields are set.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// RankingConfig holds scheduler-related settings for the breed ranking digest.
type RankingConfig struct {
	CronSchedule    string
	ManagementLevel string
	Timezone        string
}

// DigestConfig points at the outbound webhook receiving ranking digests.
type DigestConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// SimulationConfig tunes batch simulations.
type SimulationConfig struct {
	CompareConcurrency int
}

// Enabled reports whether simulations should be written to MongoDB.
func (c MongoDBConfig) Enabled() bool { return c.URI != "" }

// Enabled reports whether spreadsheet export is configured.
func (c SheetsConfig) Enabled() bool { return c.CredentialsPath != "" && c.SpreadsheetID != "" }

// Enabled reports whether ranking digests are posted anywhere.
func (c DigestConfig) Enabled() bool { return c.WebhookURL != "" }

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	concurrency, err := getenvInt("COMPARE_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	timeout, err := time.ParseDuration(getenvWithDefault("DIGEST_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("DIGEST_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		BreedStore: BreedStoreConfig{
			Driver:      strings.ToLower(getenvWithDefault("BREED_STORE_DRIVER", DriverMemory)),
			CatalogPath: getenvWithDefault("BREED_CATALOG_PATH", "configs/breeds.hjson"),
			SQLitePath:  getenvWithDefault("SQLITE_PATH", "livestock.db"),
			DatabaseURL: getenvWithDefault("DATABASE_URL", "postgres://localhost/livestock?sslmode=disable"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "livestock"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
		},
		Ranking: RankingConfig{
			CronSchedule:    getenvWithDefault("RANKING_CRON_SCHEDULE", "0 6 * * 1"),
			ManagementLevel: getenvWithDefault("RANKING_MANAGEMENT_LEVEL", "medium"),
			Timezone:        getenvWithDefault("TIMEZONE", "UTC"),
		},
		Digest: DigestConfig{
			WebhookURL: os.Getenv("DIGEST_WEBHOOK_URL"),
			Timeout:    timeout,
		},
		Simulation: SimulationConfig{
			CompareConcurrency: concurrency,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.BreedStore.Driver {
	case DriverMemory:
		if c.BreedStore.CatalogPath == "" {
			return errors.New("BREED_CATALOG_PATH must be provided for the memory driver")
		}
	case DriverSQLite:
		if c.BreedStore.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be provided for the sqlite driver")
		}
	case DriverPostgres:
		if c.BreedStore.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be provided for the postgres driver")
		}
	default:
		return fmt.Errorf("BREED_STORE_DRIVER %q is not one of memory, sqlite, postgres", c.BreedStore.Driver)
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty when MONGODB_URI is set")
	}

	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_EXPORT_ID must be set together")
	}

	if c.Ranking.CronSchedule == "" {
		return errors.New("RANKING_CRON_SCHEDULE must be provided")
	}

	if c.Ranking.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if _, err := time.LoadLocation(c.Ranking.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Ranking.Timezone, err)
	}

	if c.Simulation.CompareConcurrency < 1 {
		return errors.New("COMPARE_CONCURRENCY must be at least 1")
	}

	if c.Digest.Timeout <= 0 {
		c.Digest.Timeout = 15 * time.Second
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
