package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
}

type MongoConfig struct {
	Uri      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Url string `mapstructure:"url"`
}

type AuthConfig struct {
	Secret       string        `mapstructure:"secret"`
	CookieName   string        `mapstructure:"cookie_name"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RecurringConfig struct {
	Timezone    string `mapstructure:"timezone"`
	HorizonDays int    `mapstructure:"horizon_days"`
	Schedule    string `mapstructure:"schedule"`
}

type ExportConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type AdminConfig struct {
	BaseUrl string `mapstructure:"base_url"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Cors      CorsConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
	Recurring RecurringConfig `mapstructure:"recurring"`
	Export    ExportConfig    `mapstructure:"export"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "finance")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.cookie_name", "finance-session")
	v.SetDefault("auth.secure_cookie", true)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("recurring.timezone", "Local")
	v.SetDefault("recurring.horizon_days", 365)
	v.SetDefault("recurring.schedule", "0 0 1 * * *")
	v.SetDefault("export.ttl", 10*time.Minute)
	v.SetDefault("admin.base_url", "http://localhost:8080")
}

// Load reads path (config.yaml in the working directory when empty) and
// applies FINANCE_ prefixed environment overrides, e.g. FINANCE_MONGO_URI.
// A missing default config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("FINANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.Recurring.HorizonDays <= 0 {
		return nil, fmt.Errorf("recurring.horizon_days must be positive, got %d", c.Recurring.HorizonDays)
	}

	return &c, nil
}

// Validate checks the settings the API server can not start without.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return errors.New("auth.secret is required (FINANCE_AUTH_SECRET)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	return nil
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Location resolves recurring.timezone, "Local" being the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Recurring.Timezone == "" || c.Recurring.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Recurring.Timezone)
}

func (c *Config) Horizon() time.Duration {
	return time.Duration(c.Recurring.HorizonDays) * 24 * time.Hour
}

// LoadEnvFile copies the KEY=value pairs of a dotenv file into the process
// environment without overriding variables that are already set.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return err
		}
	}

	return nil
}
