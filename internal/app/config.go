package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config описывает настройки запуска витрины. Все бэкенды опциональны:
// пустой адрес означает in-memory деградацию соответствующего компонента.
type Config struct {
	App struct {
		Name        string `koanf:"name"`
		HTTPAddr    string `koanf:"http_addr"`
		MetricsAddr string `koanf:"metrics_addr"`
		LogLevel    string `koanf:"log_level"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"http"`

	Ledger struct {
		Key string        `koanf:"key"`
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"ledger"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	Postgres struct {
		DSN string `koanf:"dsn"`
	} `koanf:"postgres"`

	Kafka struct {
		Brokers []string `koanf:"brokers"`
	} `koanf:"kafka"`
}

// DefaultConfig возвращает конфигурацию для локального запуска без бэкендов.
func DefaultConfig() Config {
	var cfg Config
	cfg.App.Name = "luxora"
	cfg.App.HTTPAddr = ":8080"
	cfg.App.MetricsAddr = ":9090"
	cfg.App.LogLevel = "info"
	cfg.HTTP.ReadTimeout = 10 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second
	cfg.HTTP.ShutdownTimeout = 5 * time.Second
	return cfg
}

// LoadConfig читает конфигурацию: дефолты, затем опциональный YAML,
// затем переменные окружения с префиксом LUXORA_ (вложенность через __,
// например LUXORA_REDIS__ADDR или LUXORA_APP__HTTP_ADDR).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("LUXORA_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "LUXORA_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля.
func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.App.MetricsAddr == "" {
		return fmt.Errorf("app.metrics_addr required")
	}
	return nil
}
