package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Verifier  VerifierConfig
	Occupancy OccupancyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`

	TxMaxRetries   int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBackoff time.Duration `envconfig:"DB_TX_RETRY_BACKOFF" default:"100ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the identity service; only the shared secret is needed to validate them.
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer string        `envconfig:"JWT_ISSUER" default:""`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

// StorageConfig points at an S3-compatible bucket for check-in photos.
type StorageConfig struct {
	Enabled         bool   `envconfig:"S3_ENABLED" default:"false"`
	Endpoint        string `envconfig:"S3_ENDPOINT" default:""`
	Region          string `envconfig:"S3_REGION" default:"auto"`
	Bucket          string `envconfig:"S3_BUCKET" default:"classroom-checkins"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" default:""`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" default:""`
}

type CacheConfig struct {
	Enabled   bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string        `envconfig:"REDIS_PASSWORD" default:""`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string        `envconfig:"CACHE_KEY_PREFIX" default:"classroom:"`
	TTL       time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

type VerifierConfig struct {
	Endpoint string        `envconfig:"VERIFIER_ENDPOINT" required:"true"`
	Timeout  time.Duration `envconfig:"VERIFIER_TIMEOUT" default:"10s"`
}

type OccupancyConfig struct {
	MaxDuration time.Duration `envconfig:"OCCUPANCY_MAX_DURATION" default:"180m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Validate checks cross-field settings envconfig cannot express.
func (c Config) Validate() error {
	u, err := url.Parse(c.Verifier.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("VERIFIER_ENDPOINT must be an absolute http(s) URL, got %q", c.Verifier.Endpoint)
	}
	if c.Verifier.Timeout <= 0 {
		return fmt.Errorf("VERIFIER_TIMEOUT must be positive")
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when S3_ENABLED is set")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when REDIS_ENABLED is set")
	}
	if c.Occupancy.MaxDuration <= 0 {
		return fmt.Errorf("OCCUPANCY_MAX_DURATION must be positive")
	}
	if c.DB.TxMaxRetries < 0 {
		return fmt.Errorf("DB_TX_MAX_RETRIES must not be negative")
	}
	if c.JWT.Leeway < 0 {
		return fmt.Errorf("JWT_LEEWAY must not be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
			MinConns: 1,

			TxMaxRetries:   3,
			TxRetryBackoff: 10 * time.Millisecond,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-testing-only",
		},
		Cache: CacheConfig{
			KeyPrefix: "classroom-test:",
			TTL:       time.Minute,
		},
		Verifier: VerifierConfig{
			Endpoint: "http://localhost:18080/recognize",
			Timeout:  2 * time.Second,
		},
		Occupancy: OccupancyConfig{
			MaxDuration: 180 * time.Minute,
		},
	}
}
