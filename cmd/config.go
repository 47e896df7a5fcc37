package cmd

import (
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DatabaseConfig is the part of Config the migrate tool needs.
type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Config struct {
	DatabaseConfig

	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	BodyLimit string `env:"HTTP_BODY_LIMIT" envDefault:"8M"`

	DBAutoMigrate bool `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	DBDebug       bool `env:"DB_DEBUG" envDefault:"false"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	AdminEmail          string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword       string `env:"ADMIN_PASSWORD,required"`
	DefaultQRISImageURL string `env:"DEFAULT_QRIS_IMAGE_URL" envDefault:"https://example.com/qris.png"`
	MaxUploadBytes      int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
	QRCodeSize          int    `env:"QR_CODE_SIZE" envDefault:"256"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"order.changed"`
	OutboxRelaySchedule    string `env:"OUTBOX_RELAY_SCHEDULE" envDefault:"*/5 * * * * *"`
	OutboxRelayBatchSize   int    `env:"OUTBOX_RELAY_BATCH_SIZE" envDefault:"100"`

	ServiceName  string `env:"SERVICE_NAME" envDefault:"storefront"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads the configuration from the environment. Values in a .env
// file are applied first when the file exists; real environment variables win.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg, dotenvFiles); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadDatabaseConfig is LoadConfig restricted to the database settings.
func LoadDatabaseConfig(dotenvFiles ...string) (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := parseEnv(&cfg, dotenvFiles); err != nil {
		return DatabaseConfig{}, err
	}
	return cfg, nil
}

func parseEnv(v any, dotenvFiles []string) error {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return errors.Wrapf(err, "load %s", f)
		}
	}

	if err := env.Parse(v); err != nil {
		return errors.Wrap(err, "parse environment")
	}
	return nil
}

// Validate checks the values env tags cannot express.
func (c Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.QRCodeSize < 64 || c.QRCodeSize > 1024 {
		return fmt.Errorf("QR_CODE_SIZE must be between 64 and 1024, got %d", c.QRCodeSize)
	}
	if c.OutboxRelayBatchSize <= 0 {
		return fmt.Errorf("OUTBOX_RELAY_BATCH_SIZE must be positive, got %d", c.OutboxRelayBatchSize)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	return nil
}

// DatabaseURL returns the postgres:// URL used by both the pool and the migrator.
func (c DatabaseConfig) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means messaging is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
