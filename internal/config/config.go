package config

import (
	"fmt"
	"slices"
	"time"

	"sellerflow/internal/locale"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	Port               int           `koanf:"port"`
	DefaultLocale      string        `koanf:"default_locale"`
	MaxDocumentRecords int           `koanf:"max_document_records"`
	SyncDelay          time.Duration `koanf:"sync_delay"`
	SyncAllDelay       time.Duration `koanf:"sync_all_delay"`
	BatchDelay         time.Duration `koanf:"batch_delay"`
	RequestTimeout     time.Duration `koanf:"request_timeout"`
	AllowedOrigin      string        `koanf:"allowed_origin"`
	SeedData           bool          `koanf:"seed_data"`
}

func Default() Config {
	return Config{
		Port:               8080,
		DefaultLocale:      locale.English,
		MaxDocumentRecords: 10000,
		SyncDelay:          2 * time.Second,
		SyncAllDelay:       3 * time.Second,
		BatchDelay:         2 * time.Second,
		RequestTimeout:     60 * time.Second,
		AllowedOrigin:      "*",
		SeedData:           true,
	}
}

func New() (Config, error) {
	cfg := Default()

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if !slices.Contains(locale.Supported, c.DefaultLocale) {
		return fmt.Errorf("invalid default_locale %q: want one of %v", c.DefaultLocale, locale.Supported)
	}
	if c.MaxDocumentRecords <= 0 {
		return fmt.Errorf("max_document_records must be positive, got %d", c.MaxDocumentRecords)
	}
	if c.SyncDelay < 0 || c.SyncAllDelay < 0 || c.BatchDelay < 0 {
		return fmt.Errorf("simulated delays cannot be negative")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
