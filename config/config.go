package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override the YAML file,
// e.g. BOOKING_HTTP_ADDRESS or BOOKING_KAFKA_BROKERS.
const EnvPrefix = "BOOKING"

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	GRPC    GRPCConfig    `yaml:"grpc"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Booking BookingConfig `yaml:"booking"`
	Worker  WorkerConfig  `yaml:"worker"`
}

type HTTPConfig struct {
	Address      string `yaml:"address"`
	Swagger      bool   `yaml:"swagger"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" split_words:"true"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic" split_words:"true"`
	GroupID            string   `yaml:"group_id" split_words:"true"`
}

// Enabled reports whether notifications should go through Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.NotificationsTopic != ""
}

type BookingConfig struct {
	// RejectDuplicates makes create fail on an existing identifier instead of overwriting it.
	RejectDuplicates     bool `yaml:"reject_duplicates" split_words:"true"`
	NotifyTimeoutSeconds int  `yaml:"notify_timeout_seconds" split_words:"true"`
}

func (b BookingConfig) NotifyTimeout() time.Duration {
	return time.Duration(b.NotifyTimeoutSeconds) * time.Second
}

type WorkerConfig struct {
	DedupeTTLMinutes int `yaml:"dedupe_ttl_minutes" split_words:"true"`
}

func (w WorkerConfig) DedupeTTL() time.Duration {
	return time.Duration(w.DedupeTTLMinutes) * time.Minute
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML, applies environment overrides and fills defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 1 << 20
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "booking-notifications"
	}
	if c.Booking.NotifyTimeoutSeconds <= 0 {
		c.Booking.NotifyTimeoutSeconds = 5
	}
	if c.Worker.DedupeTTLMinutes <= 0 {
		c.Worker.DedupeTTLMinutes = 24 * 60
	}
}
