package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Chart     ChartConfig
	Artifacts ArtifactConfig
	Catalog   ProviderConfig
	Geocode   ProviderConfig
	Elevation ProviderConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         int           `validate:"min=1,max=65535"`
	GinMode      string        `validate:"oneof=debug release test"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ChartConfig controls sampling and rendering
type ChartConfig struct {
	Samples      int     `validate:"min=2,max=1000"`
	ScaleSamples bool    // scale the sample count with the window length
	DefaultHours float64 `validate:"gt=0"`
	MaxHours     float64 `validate:"gte=0"` // 0 disables the upper bound
	Width        float64 `validate:"gt=0"`  // inches
	Height       float64 `validate:"gt=0"`  // inches
	DPI          int     `validate:"min=50,max=1200"`
}

// ArtifactConfig controls where rendered charts are written and how long they live
type ArtifactConfig struct {
	Enabled      bool
	Dir          string        `validate:"required"`
	Retention    time.Duration `validate:"gt=0"`
	ReapInterval time.Duration `validate:"gt=0"`
}

// ProviderConfig configures an optional outbound lookup provider
type ProviderConfig struct {
	Enabled bool
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.celestial-chart")

	setDefaults(v)

	// Read from environment variables, e.g. CELESTIAL_CHART_SERVER_PORT
	v.SetEnvPrefix("CELESTIAL_CHART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 9862)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.readtimeout", "15s")
	v.SetDefault("server.writetimeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("chart.samples", 100)
	v.SetDefault("chart.scalesamples", false)
	v.SetDefault("chart.defaulthours", 24)
	v.SetDefault("chart.maxhours", 24)
	v.SetDefault("chart.width", 10)
	v.SetDefault("chart.height", 6)
	v.SetDefault("chart.dpi", 100)

	v.SetDefault("artifacts.enabled", true)
	v.SetDefault("artifacts.dir", "static/charts")
	v.SetDefault("artifacts.retention", "1h")
	v.SetDefault("artifacts.reapinterval", "60m")

	v.SetDefault("catalog.enabled", false)
	v.SetDefault("catalog.baseurl", "https://cds.unistra.fr/cgi-bin/nph-sesame/-oI/SNV")
	v.SetDefault("catalog.timeout", "10s")

	v.SetDefault("geocode.enabled", false)
	v.SetDefault("geocode.baseurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("geocode.timeout", "5s")

	v.SetDefault("elevation.enabled", false)
	v.SetDefault("elevation.baseurl", "https://api.open-meteo.com/v1/elevation")
	v.SetDefault("elevation.timeout", "5s")
}

// Validate checks field constraints declared in struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Chart.MaxHours > 0 && c.Chart.DefaultHours > c.Chart.MaxHours {
		return fmt.Errorf("invalid configuration: chart.defaulthours (%g) exceeds chart.maxhours (%g)",
			c.Chart.DefaultHours, c.Chart.MaxHours)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
