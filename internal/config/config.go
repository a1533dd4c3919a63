package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel      int           `env:"LOG_LEVEL" envDefault:"0"`
	DebugMode     bool          `env:"DEBUG_MODE" envDefault:"false"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL"`
	PruneInterval time.Duration `env:"LEDGER_PRUNE_INTERVAL" envDefault:"1h"`
	HTTP          HTTP          `envPrefix:"HTTP_"`
	Database      Database      `envPrefix:"DATABASE_"`
	JWT           JWT           `envPrefix:"JWT_"`
	Bcrypt        Bcrypt        `envPrefix:"BCRYPT_"`
	Storage       Storage       `envPrefix:"MINIO_"`
	SMTP          SMTP          `envPrefix:"SMTP_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	MaxUploadBytes     int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}

// Database contains database connection parameters.
type Database struct {
	DSN string `env:"DSN,required,notEmpty"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string `env:"SECRET,required,notEmpty"`
}

// Bcrypt contains password hashing parameters. Workers 0 means GOMAXPROCS.
type Bcrypt struct {
	Cost    int `env:"COST" envDefault:"10"`
	Workers int `env:"WORKERS" envDefault:"0"`
}

// Storage contains object storage parameters.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"gucfolio-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"gucfolio-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"gucfolio-uploads"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// SMTP contains outbound mail parameters.
type SMTP struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"25"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"no-reply@gucfolio.local"`
	Attempts uint64 `env:"ATTEMPTS" envDefault:"3"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Level returns the effective log level. Debug mode overrides LOG_LEVEL.
func (c *Config) Level() int {
	if c.DebugMode {
		return int(slog.LevelDebug)
	}
	return c.LogLevel
}
