package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultBackendURL адрес бэкенда барбершопа, если он не задан ни в файле, ни в окружении
const DefaultBackendURL = "http://localhost:8000"

// Config конфигурация front desk процесса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Backend   BackendConfig   `toml:"backend"`
	FrontDesk FrontDeskConfig `toml:"frontdesk"`
}

// ServerConfig параметры локального HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig адрес удаленного сервиса, который хранит услуги, мастеров и записи
type BackendConfig struct {
	URL     string `toml:"url" env:"BACKEND_URL"`
	Timeout int    `toml:"timeout" env:"BACKEND_TIMEOUT"` // секунды
}

type FrontDeskConfig struct {
	DebugPageURL   string `toml:"debug_page_url"`
	StartupTimeout int    `toml:"startup_timeout"` // секунды на bootstrap и загрузку каталога
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-barber-frontdesk",
		},
		Backend: BackendConfig{
			URL:     DefaultBackendURL,
			Timeout: 10,
		},
		FrontDesk: FrontDeskConfig{
			DebugPageURL:   "/test",
			StartupTimeout: 15,
		},
	}
}

// Load читает конфигурацию в порядке приоритета:
// значения по умолчанию -> toml файл -> .env файлы -> переменные окружения
// Отсутствующий toml или .env файл не является ошибкой
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	for _, f := range envFiles {
		// godotenv не перезаписывает уже выставленные переменные
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, fmt.Errorf("failed to parse environment: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.Backend.URL = strings.TrimRight(strings.TrimSpace(c.Backend.URL), "/")
	if c.Backend.URL == "" {
		c.Backend.URL = DefaultBackendURL
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend url %q", c.Backend.URL)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %d", c.Backend.Timeout)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/', got %q", c.Metrics.Path)
	}

	return nil
}

// LookupBackendURL удобен для диагностики: показывает, откуда взят адрес бэкенда
func (c *Config) LookupBackendURL() (string, string) {
	if v, ok := os.LookupEnv("BACKEND_URL"); ok && strings.TrimRight(strings.TrimSpace(v), "/") == c.Backend.URL {
		return c.Backend.URL, "env"
	}
	if c.Backend.URL == DefaultBackendURL {
		return c.Backend.URL, "default"
	}
	return c.Backend.URL, "file"
}
