package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Catalog   CatalogConfig
	Locations LocationsConfig
	I18n      I18nConfig
	Assets    AssetsConfig
	Redis     RedisConfig
	DB        DBConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  string
}

type LoggerConfig struct {
	Env   string
	Level string
}

// CatalogConfig selects where the exercise document is read from.
// Source is one of "file", "http" or "database".
type CatalogConfig struct {
	Source       string
	URL          string
	Path         string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

type LocationsConfig struct {
	Path string
}

type I18nConfig struct {
	Dir           string
	DefaultLocale string
}

type AssetsConfig struct {
	ImageDir      string
	FallbackImage string
	TemplateDir   string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	Enabled  bool
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

const (
	CatalogSourceFile     = "file"
	CatalogSourceHTTP     = "http"
	CatalogSourceDatabase = "database"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.url", "")
	v.SetDefault("catalog.path", "web/data/exercises.json")
	v.SetDefault("catalog.fetch_timeout", "10s")
	v.SetDefault("catalog.cache_ttl", "10m")

	v.SetDefault("locations.path", "web/data/locations.json")

	v.SetDefault("i18n.dir", "web/i18n")
	v.SetDefault("i18n.default_locale", "en")

	v.SetDefault("assets.image_dir", "web/images")
	v.SetDefault("assets.fallback_image", "placeholder.svg")
	v.SetDefault("assets.template_dir", "web/templates")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
}

// LoadConfig reads config.yaml (optional) and APP_* environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Catalog: CatalogConfig{
			Source:       strings.ToLower(v.GetString("catalog.source")),
			URL:          v.GetString("catalog.url"),
			Path:         v.GetString("catalog.path"),
			FetchTimeout: v.GetDuration("catalog.fetch_timeout"),
			CacheTTL:     v.GetDuration("catalog.cache_ttl"),
		},
		Locations: LocationsConfig{
			Path: v.GetString("locations.path"),
		},
		I18n: I18nConfig{
			Dir:           v.GetString("i18n.dir"),
			DefaultLocale: v.GetString("i18n.default_locale"),
		},
		Assets: AssetsConfig{
			ImageDir:      v.GetString("assets.image_dir"),
			FallbackImage: v.GetString("assets.fallback_image"),
			TemplateDir:   v.GetString("assets.template_dir"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required when catalog.source is %q", CatalogSourceFile)
		}
	case CatalogSourceHTTP:
		if c.Catalog.URL == "" {
			return fmt.Errorf("catalog.url is required when catalog.source is %q", CatalogSourceHTTP)
		}
	case CatalogSourceDatabase:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("db.user and db.name are required when catalog.source is %q", CatalogSourceDatabase)
		}
	default:
		return fmt.Errorf("unsupported catalog.source: %q", c.Catalog.Source)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	return nil
}

// GetDSN returns the go-ora connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
