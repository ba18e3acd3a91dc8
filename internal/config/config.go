package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

// App holds the runtime configuration of the pharmacy server.
type App struct {
	Port            string        `env:"API_PORT" envDefault:"8080"`
	DBConnectionURL string        `env:"DB_CONNECTION_URL"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	SessionSecret   string        `env:"SESSION_SECRET"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	SecureCookies   bool          `env:"SECURE_COOKIES" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Debug           bool          `env:"DEBUG" envDefault:"false"`
}

// NewApp reads an optional .env file from the working directory and then
// parses the process environment into App.
func NewApp() (App, error) {
	return NewAppFromFile(".env")
}

// NewAppFromFile is NewApp with an explicit dotenv path. A missing file is not an error.
func NewAppFromFile(dotenvPath string) (App, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBConnectionURL == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, "DB_CONNECTION_URL")
	}

	if cfg.SessionSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, "SESSION_SECRET")
	}

	if cfg.SessionTTL <= 0 {
		return App{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return App{}, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}

	return cfg, nil
}
