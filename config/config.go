package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBaseURL = "http://localhost:8080"
	DefaultAPITimeout = 10 * time.Second

	// APIURLEnv overrides api.base_url from the config file.
	APIURLEnv = "AIRDESK_API_URL"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Theme    ThemeConfig    `yaml:"theme"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return DefaultAPITimeout
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	InvalidationTopic string   `yaml:"invalidation_topic"`
	GroupID           string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.InvalidationTopic != ""
}

// ThemeConfig selects where the theme preference lives: "file", "redis" or "postgres".
type ThemeConfig struct {
	Store      string `yaml:"store"`
	FilePath   string `yaml:"file_path"`
	SystemDark bool   `yaml:"system_dark"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":3000"},
		API:  APIConfig{BaseURL: DefaultAPIBaseURL},
		Theme: ThemeConfig{
			Store:    "file",
			FilePath: ".airdesk-theme.json",
		},
	}
}

// LoadConfig reads the yaml file at path on top of Default. A missing file is
// not an error: the dashboard runs against the local backend out of the box.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(APIURLEnv); v != "" {
		c.API.BaseURL = v
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
}

// Verify filters out evident errors.
func (c *Config) Verify() error {
	switch c.Theme.Store {
	case "", "file":
		if c.Theme.FilePath == "" {
			return errors.New("config: theme.file_path is required for the file store")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("config: redis.addr is required for the redis theme store")
		}
	case "postgres":
		if c.Database.Host == "" {
			return errors.New("config: database.host is required for the postgres theme store")
		}
	default:
		return fmt.Errorf("config: unknown theme store %q", c.Theme.Store)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.InvalidationTopic == "" {
		return errors.New("config: kafka.invalidation_topic is required when brokers are set")
	}
	return nil
}
