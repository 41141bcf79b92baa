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
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "calendar"
password = "secret"
dbname = "calendar"

[logs]
level = "debug"

[metrics]
enabled = true

[redis]
enabled = true
addr = "redis:6379"
lock_ttl_ms = 3000

[kafka]
brokers = ["kafka-1:9092", "kafka-2:9092"]
topic = "appointments"

[booking]
window_days = 7
location = "UTC"
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "host=db port=5433 user=calendar password=secret dbname=calendar sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 3*time.Second, cfg.Redis.LockTTL())
	assert.Equal(t, 5*time.Second, cfg.Redis.LockWait())
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 60, cfg.Booking.DurationMinutes)
	assert.Equal(t, 7, cfg.Booking.WindowDays)

	loc, err := cfg.Booking.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing dbname", `[server]
http_port = 8080`},
		{"bad window", `[database]
dbname = "x"
[booking]
window_days = 100`},
		{"bad location", `[database]
dbname = "x"
[booking]
location = "Mars/Olympus"`},
		{"kafka without topic", `[database]
dbname = "x"
[kafka]
brokers = ["k:9092"]
topic = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "calendar", cfg.Database.DBName)
}
