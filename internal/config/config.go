package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	LogLevel       string
	HTTPAddr       string
	DBType         string
	DBDSN          string
	SQLitePath     string
	DataDir        string
	AuthRequired   bool
	AuthToken      string
	AuthServiceURL string
	OpenBrowser    bool
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		c, err := FromEnv()
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// FromEnv reads the current environment without the .env file or caching.
func FromEnv() (*Config, error) {
	c := Parse()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse reads the environment without validating, for callers that apply
// their own overrides before calling Validate.
func Parse() *Config {
	dataDir := getEnv("DATA_DIR", "data")
	return &Config{
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8088"),
		DBType:         getEnv("STORAGE_BACKEND", "memory"),
		DBDSN:          getEnv("POSTGRES_DSN", ""),
		SQLitePath:     getEnv("SQLITE_PATH", filepath.Join(dataDir, "calorietracker.db")),
		DataDir:        dataDir,
		AuthRequired:   getBool("AUTH_REQUIRED", false),
		AuthToken:      getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
		AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),
		OpenBrowser:    getBool("OPEN_BROWSER", false),
	}
}

func (c *Config) Validate() error {
	switch c.DBType {
	case "memory":
	case "file":
		if c.DataDir == "" {
			return errors.New("File storage requires DATA_DIR to be set")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case "postgres":
		if c.DBDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: memory, file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.AuthRequired && c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development when AUTH_REQUIRED=true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
