package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverNone     = "none"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Catalog sources accepted in CATALOG_SOURCE.
const (
	SourceMemory = "memory"
	SourceStore  = "store"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	StorageDriver string
	CatalogSource string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SQLitePath string

	MaxRetries int
	HTTPPort   string
	LogLevel   string

	CSVOutputPath string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverNone)),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", SourceMemory)),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "gosiwon"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "gosiwon123"),
		PostgresDB:       getEnv("POSTGRES_DB", "gosiwon_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SQLitePath: getEnv("SQLITE_PATH", "./output/catalog.db"),

		MaxRetries: getEnvInt("MAX_RETRIES", 5),
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/results.csv"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// UsesStore reports whether the catalog should be read from the configured store.
func (c *Config) UsesStore() bool {
	return c.CatalogSource == SourceStore && c.StorageDriver != DriverNone
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
