package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"flat-monitor/core/database"
	"flat-monitor/core/logger"
	"flat-monitor/core/server"
	"flat-monitor/core/storage"
	"flat-monitor/feature/flats"
	"flat-monitor/feature/flats/source"
	"flat-monitor/feature/notify"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up next to the .env file,
// without extension (flat-monitor.yaml, flat-monitor.json, ...).
const FileName = "flat-monitor"

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the snapshot archive bucket (S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the flats store.
	Database database.Config `mapstructure:"database"`
	// Source holds configuration for the listing API.
	Source source.Config `mapstructure:"source"`
	// Monitor holds the schedule and report settings.
	Monitor flats.Config `mapstructure:"monitor"`
	// Telegram holds the bot that receives scheduled reports.
	Telegram notify.Config `mapstructure:"telegram"`
}

// LoadConfig resolves configuration from, in increasing priority: struct tag
// defaults, the optional config file, the .env file and the environment.
func LoadConfig(path string) (*Config, error) {
	envPath := ".env"
	if path != "." {
		envPath = path + "/.env"
	}
	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetConfigName(FileName)
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// SOURCE_BLOCK_ID -> source.block_id
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the monitor cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverMySQL, database.DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}

	if u, err := url.Parse(c.Source.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("source.base_url %q is not an http(s) URL", c.Source.BaseURL))
	}
	if c.Source.BlockID <= 0 {
		errs = append(errs, fmt.Errorf("source.block_id must be positive, got %d", c.Source.BlockID))
	}

	if (c.Telegram.Token == "") != (c.Telegram.ChatID == "") {
		errs = append(errs, errors.New("telegram.token and telegram.chat_id must be set together"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// registerDefaults walks the config type and registers every leaf key with its
// 'default' tag. Registering empty defaults too lets AutomaticEnv see the key.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" || !field.IsExported() {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
