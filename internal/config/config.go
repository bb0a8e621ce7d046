// Package config loads the runtime configuration of the backend.
//
// Values are read from the environment, optionally seeded from a .env file
// and a configuration file given in CONFIG_FILE. Environment variables always
// take precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/halalflow/backend/internal/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var (
	ErrAPIURLInvalid = errors.New("API_URL must be an absolute URL with scheme and host")
	ErrPortInvalid   = errors.New("PORT must be between 1 and 65535")
)

// Database holds the connection parameters for PostgreSQL.
type Database struct {
	Host     string `mapstructure:"DB_HOST"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
}

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL `mapstructure:"-"`
	Port             int      `mapstructure:"PORT"`
	GinMode          string   `mapstructure:"GIN_MODE"`
	LogFormat        string   `mapstructure:"LOG_FORMAT"`
	DataDir          string   `mapstructure:"DATA_DIR"`
	CORSAllowOrigins []string `mapstructure:"-"`
	EnablePprof      bool     `mapstructure:"ENABLE_PPROF"`
	Database         Database `mapstructure:",squash"`
}

var keys = []string{
	"API_URL",
	"PORT",
	"GIN_MODE",
	"LOG_FORMAT",
	"DATA_DIR",
	"CORS_ALLOW_ORIGINS",
	"ENABLE_PPROF",
	"DB_HOST",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
}

// Load reads the configuration and validates it.
//
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("ENABLE_PPROF", false)

	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper knows about when unmarshalling
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}

	apiURL, err := url.Parse(strings.TrimSuffix(v.GetString("API_URL"), "/"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrAPIURLInvalid, err)
	}
	c.APIURL = apiURL
	c.CORSAllowOrigins = strings.Fields(v.GetString("CORS_ALLOW_ORIGINS"))

	return c, c.Validate()
}

// Validate checks that the configuration can be used to start the backend.
func (c Config) Validate() error {
	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		return ErrAPIURLInvalid
	}

	if c.Port < 1 || c.Port > 65535 {
		return ErrPortInvalid
	}

	return nil
}

// Dialector returns the database dialector for the configuration.
//
// PostgreSQL is used when DB_HOST is set, SQLite in the data directory otherwise.
func (c Config) Dialector() gorm.Dialector {
	if c.Database.Host != "" {
		return models.Postgres(c.Database.Host, c.Database.User, c.Database.Password, c.Database.Name)
	}

	return models.SQLite(filepath.Join(c.DataDir, "halalflow.db") + "?_pragma=foreign_keys(1)")
}

// UsesSQLite reports if the configured database is a SQLite file.
func (c Config) UsesSQLite() bool {
	return c.Database.Host == ""
}
