package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"store-app/internal/models"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	CORS     CORSConfig
	Site     models.SiteInfo
}

type ServerConfig struct {
	Port string
	Env  string
}

// IsProduction reports whether the server runs with release settings.
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}

type SessionConfig struct {
	Name   string
	Secret string
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Paths lets callers point the loader at other files; empty fields fall back
// to the defaults.
type Paths struct {
	EnvFile  string
	SiteFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SESSION_NAME", "store_session")
	v.SetDefault("SESSION_SECRET", "secret123")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "store.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("LOG_ENCODING", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

// Load reads the .env file (optional), the process environment and the
// optional site TOML file. Missing files are not errors.
func Load(paths Paths) (*Config, error) {
	if paths.EnvFile == "" {
		paths.EnvFile = ".env"
	}
	if paths.SiteFile == "" {
		paths.SiteFile = "config/config.toml"
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(paths.EnvFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("read %s: %w", paths.EnvFile, err)
	}

	v.AutomaticEnv()
	v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	v.BindEnv("DATABASE_URL")

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		Session: SessionConfig{
			Name:   v.GetString("SESSION_NAME"),
			Secret: v.GetString("SESSION_SECRET"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			URL:      v.GetString("DATABASE_URL"),
		},
		Logger: LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			Encoding: v.GetString("LOG_ENCODING"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Site: models.SiteInfo{Name: "Store"},
	}

	siteViper := viper.New()
	siteViper.SetConfigFile(paths.SiteFile)
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("read %s: %w", paths.SiteFile, err)
		}
	} else if err := siteViper.UnmarshalKey("site", &cfg.Site); err != nil {
		return nil, fmt.Errorf("unmarshal site info: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	// SetConfigFile bypasses the search path, so a missing file surfaces as
	// an fs error rather than ConfigFileNotFoundError.
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
