package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки распределённой блокировки дат.
// При Enabled = false используется блокировка внутри процесса.
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	KeyPrefix  string `toml:"key_prefix"`
	LockTTLMs  int    `toml:"lock_ttl_ms"`
	LockWaitMs int    `toml:"lock_wait_ms"`
}

func (r RedisConfig) LockTTL() time.Duration {
	return time.Duration(r.LockTTLMs) * time.Millisecond
}

func (r RedisConfig) LockWait() time.Duration {
	return time.Duration(r.LockWaitMs) * time.Millisecond
}

// KafkaConfig настройки публикации событий о записях. Пустой Brokers отключает публикацию.
type KafkaConfig struct {
	Brokers        []string `toml:"brokers"`
	Topic          string   `toml:"topic"`
	WriteTimeoutMs int      `toml:"write_timeout_ms"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func (k KafkaConfig) WriteTimeout() time.Duration {
	return time.Duration(k.WriteTimeoutMs) * time.Millisecond
}

// BookingConfig параметры календаря записи
type BookingConfig struct {
	DurationMinutes int    `toml:"duration_minutes"`
	Location        string `toml:"location"`
	MaxYearsAhead   int    `toml:"max_years_ahead"`
	WindowDays      int    `toml:"window_days"`
	MaxWindowDays   int    `toml:"max_window_days"`
}

// LoadLocation часовой пояс, в котором интерпретируются даты и время записи
func (b BookingConfig) LoadLocation() (*time.Location, error) {
	if b.Location == "" || b.Location == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Location)
}

// Load читает конфигурацию из TOML файла.
// Переменная окружения CONFIG_PATH имеет приоритет над path.
func Load(path string) (*Config, error) {
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и утилитах)
func Parse(data string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "calendar-service",
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			KeyPrefix:  "calendar:lock",
			LockTTLMs:  10000,
			LockWaitMs: 5000,
		},
		Kafka: KafkaConfig{
			Topic:          "calendar.appointments",
			WriteTimeoutMs: 5000,
		},
		Booking: BookingConfig{
			DurationMinutes: 60,
			Location:        "Local",
			MaxYearsAhead:   1,
			WindowDays:      5,
			MaxWindowDays:   31,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Booking.DurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.WindowDays <= 0 || c.Booking.WindowDays > c.Booking.MaxWindowDays {
		return fmt.Errorf("%w: booking.window_days must be in 1..max_window_days", ErrInvalidConfig)
	}
	if c.Booking.MaxYearsAhead < 0 {
		return fmt.Errorf("%w: booking.max_years_ahead must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Booking.LoadLocation(); err != nil {
		return fmt.Errorf("%w: booking.location: %v", ErrInvalidConfig, err)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("%w: kafka.topic is required when brokers are set", ErrInvalidConfig)
	}
	return nil
}
