package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Schedule ScheduleConfig `toml:"schedule"`
	Payments PaymentsConfig `toml:"payments"`
	Notifier NotifierConfig `toml:"notifier"`
	Reminder ReminderConfig `toml:"reminder"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки проверки JWT токенов
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// ScheduleConfig рабочие часы салона и шаг сетки слотов
// Некорректная конфигурация - фатальная ошибка запуска, не runtime ошибка
type ScheduleConfig struct {
	OpenTime               string `toml:"open_time"`
	CloseTime              string `toml:"close_time"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
}

// OperatingHours валидирует и конвертирует конфигурацию в domain.OperatingHours
func (s ScheduleConfig) OperatingHours() (domain.OperatingHours, error) {
	open, err := domain.ParseTick(s.OpenTime)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("schedule: invalid open_time: %w", err)
	}

	closeTick, err := domain.ParseTick(s.CloseTime)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("schedule: invalid close_time: %w", err)
	}

	return domain.NewOperatingHours(open, closeTick, s.SlotGranularityMinutes)
}

// PaymentsConfig настройки клиента платёжного шлюза
type PaymentsConfig struct {
	URL       string `toml:"url"`
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	Timeout   int    `toml:"timeout"`
}

// NotifierConfig настройки клиента сервиса уведомлений
type NotifierConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ReminderConfig настройки планировщика напоминаний
type ReminderConfig struct {
	Enabled     bool   `toml:"enabled"`
	Spec        string `toml:"spec"`
	LeadMinutes int    `toml:"lead_minutes"`
}

// Load загружает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}

	// Рабочие часы проверяются при загрузке: сломанная сетка не должна
	// дожить до обработки запросов
	if _, err := cfg.Schedule.OperatingHours(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
