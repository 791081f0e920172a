package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. ETSITE_SERVER_ADDR for server.addr.
const EnvPrefix = "ETSITE"

const devSessionSecret = "development-only-session-secret"

// ErrInsecureSecret is returned when production runs with the development
// session secret.
var ErrInsecureSecret = errors.New("session.secret must be set in production")

// Config holds all configuration for the application.
type Config struct {
	App     App     `mapstructure:"app"`
	Server  Server  `mapstructure:"server"`
	Session Session `mapstructure:"session"`
	Content Content `mapstructure:"content"`
	Assets  Assets  `mapstructure:"assets"`
	Log     Log     `mapstructure:"log"`
	Publish Publish `mapstructure:"publish"`
}

// App holds general application settings.
type App struct {
	Env string `mapstructure:"env" validate:"oneof=development production"`
}

// Server holds the HTTP server settings.
type Server struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// ThemeRateLimit is the allowed theme toggles per second per client.
	ThemeRateLimit float64 `mapstructure:"theme_rate_limit" validate:"gt=0"`
}

// Session holds the cookie session settings.
type Session struct {
	Secret string `mapstructure:"secret" validate:"required,min=16"`
	MaxAge int    `mapstructure:"max_age" validate:"gte=0"`
}

// Content points at an optional YAML document replacing the built-in copy.
type Content struct {
	Path string `mapstructure:"path"`
}

// Assets holds where page images are served from.
type Assets struct {
	PublicDir string `mapstructure:"public_dir"`
}

// Log holds the logger settings.
type Log struct {
	Format string `mapstructure:"format" validate:"oneof=text json"`
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Publish holds the S3 target of the publish command.
type Publish struct {
	Bucket    string `mapstructure:"bucket" validate:"required"`
	Region    string `mapstructure:"region" validate:"required"`
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKey string `mapstructure:"access_key" validate:"required"`
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	Prefix    string `mapstructure:"prefix"`
}

var validate = validator.New()

// Validate checks the publish target. It is separate from Config validation
// because only the publish command needs it.
func (p Publish) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid publish configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.theme_rate_limit", 1.0)
	v.SetDefault("session.secret", devSessionSecret)
	v.SetDefault("session.max_age", 86400*365)
	v.SetDefault("content.path", "")
	v.SetDefault("assets.public_dir", "public")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "debug")
	v.SetDefault("publish.bucket", "")
	v.SetDefault("publish.region", "auto")
	v.SetDefault("publish.endpoint", "")
	v.SetDefault("publish.access_key", "")
	v.SetDefault("publish.secret_key", "")
	v.SetDefault("publish.prefix", "")
}

// Load reads configuration from the environment (after loading a .env file
// if present) and, when file is not empty, from that config file.
// Environment variables win over the file.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet.
		log.Println("No .env file found, relying on environment variables")
	}
	return load(viper.New(), file)
}

func load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := validate.Struct(cfg.App); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, section := range []any{cfg.Server, cfg.Session, cfg.Log} {
		if err := validate.Struct(section); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	if cfg.IsProduction() && cfg.Session.Secret == devSessionSecret {
		return nil, ErrInsecureSecret
	}
	return &cfg, nil
}
