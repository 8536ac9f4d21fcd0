package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
http:
  address: ":8081"
  swagger: true
grpc:
  address: ":9091"
kafka:
  brokers: ["kafka:9092"]
  notifications_topic: "notifications"
booking:
  reject_duplicates: true
  notify_timeout_seconds: 2
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.True(t, cfg.HTTP.Swagger)
	assert.Equal(t, ":9091", cfg.GRPC.Address)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.Booking.RejectDuplicates)
	assert.Equal(t, 2*time.Second, cfg.Booking.NotifyTimeout())
	assert.Equal(t, "booking-notifications", cfg.Kafka.GroupID)
	assert.Equal(t, 24*time.Hour, cfg.Worker.DedupeTTL())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("http: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Booking.RejectDuplicates)
	assert.Equal(t, 5*time.Second, cfg.Booking.NotifyTimeout())
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKING_HTTP_ADDRESS", ":7000")
	t.Setenv("BOOKING_KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("BOOKING_BOOKING_REJECT_DUPLICATES", "true")

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Address)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Booking.RejectDuplicates)
	// untouched fields keep their YAML values
	assert.Equal(t, ":9091", cfg.GRPC.Address)
}
