package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD", "admin123")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 256, cfg.QRCodeSize)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Empty(t, cfg.KafkaBrokers())
}

func TestLoadConfig_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=7000\nQR_CODE_SIZE=512\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("QR_CODE_SIZE") })

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 512, cfg.QRCodeSize)
}

func unsetEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "app")
	unsetEnv(t, "DB_NAME", "JWT_SECRET", "ADMIN_PASSWORD")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}

func TestLoadDatabaseConfig_IgnoresApplicationSettings(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "storefront")
	unsetEnv(t, "JWT_SECRET", "ADMIN_PASSWORD")

	cfg, err := LoadDatabaseConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{MaxUploadBytes: 1, QRCodeSize: 256, OutboxRelayBatchSize: 10, JWTTTL: time.Hour}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }},
		{"tiny qr", func(c *Config) { c.QRCodeSize = 32 }},
		{"huge qr", func(c *Config) { c.QRCodeSize = 2048 }},
		{"zero batch", func(c *Config) { c.OutboxRelayBatchSize = 0 }},
		{"zero ttl", func(c *Config) { c.JWTTTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_DatabaseURL(t *testing.T) {
	cfg := DatabaseConfig{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "p@ss", DBName: "shop", DBSslMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss@db:5432/shop?sslmode=disable", cfg.DatabaseURL())
}

func TestConfig_KafkaBrokers(t *testing.T) {
	cfg := Config{KafkaHost: "kafka-1:9092, kafka-2:9092,"}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers())
}
