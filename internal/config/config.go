package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`

	Port            string `env:"PORT" envDefault:"9446"`
	StorageBackend  string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	OperatorWorkers int    `env:"OPERATOR_WORKERS" envDefault:"4"`
	OperatorQueue   int    `env:"OPERATOR_QUEUE_SIZE" envDefault:"1000"`
	RunMigrations   bool   `env:"RUN_MIGRATIONS" envDefault:"true"`

	// BudgetCheckFailOpen lets an expense through when its budget cannot be read.
	BudgetCheckFailOpen bool `env:"BUDGET_CHECK_FAIL_OPEN" envDefault:"true"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// ProcessEnvironmentVariables reads the configuration from the environment and an optional .env file.
func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.StorageBackend) {
	case BackendPostgres, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendMemory, c.StorageBackend))
	}
	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("OPERATOR_WORKERS must be at least 1, got %d", c.OperatorWorkers))
	}
	if c.OperatorQueue < 1 {
		errs = append(errs, fmt.Errorf("OPERATOR_QUEUE_SIZE must be at least 1, got %d", c.OperatorQueue))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	return errors.Join(errs...)
}

// PostgresURL builds the connection string used by the server and the migration tool.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
