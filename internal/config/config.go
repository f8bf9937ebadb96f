package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	Auth       AuthConfig       `toml:"auth"`
	Wizard     WizardConfig     `toml:"wizard"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Studio     StudioConfig     `toml:"studio"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MigrateURL возвращает URL подключения для golang-migrate
func (d DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CloudinaryConfig настройки Cloudinary для хранения изображений
type CloudinaryConfig struct {
	CloudName    string `toml:"cloud_name"`
	APIKey       string `toml:"api_key"`
	APISecret    string `toml:"api_secret"`
	ProofFolder  string `toml:"proof_folder"`  // папка для чеков оплаты
	AvatarFolder string `toml:"avatar_folder"` // папка для аватаров
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret  string `toml:"jwt_secret"`
	SessionTTL int    `toml:"session_ttl"` // секунды
}

// WizardConfig настройки мастера бронирования
type WizardConfig struct {
	SessionTTL int    `toml:"session_ttl"` // секунды
	StagingDir string `toml:"staging_dir"` // каталог для временных файлов чеков
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StudioConfig статический контент студии для публичных страниц
type StudioConfig struct {
	Name          string   `toml:"name"`
	Tagline       string   `toml:"tagline"`
	Email         string   `toml:"email"`
	Phone         string   `toml:"phone"`
	Address       string   `toml:"address"`
	WorkingHours  string   `toml:"working_hours"`
	GCashNumber   string   `toml:"gcash_number"`
	GCashName     string   `toml:"gcash_name"`
	SocialLinks   []string `toml:"social_links"`
	GalleryImages []string `toml:"gallery_images"`
}

// Load читает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort == 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
