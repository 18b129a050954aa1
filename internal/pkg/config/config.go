package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth    AuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Uploads UploadConfig

	ImageGenBaseURL string `env:"IMAGE_GEN_BASE_URL, default=https://image.pollinations.ai/prompt"`
	JanitorWorkers  int    `env:"JANITOR_WORKERS, default=2"`

	// CORSOrigins is the browser origin allow-list. Defaults to local dev
	// frontends; a wildcard is refused in production.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://localhost:3001,http://localhost:3002"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET, required"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=24h"`
	JWTIssuer string        `env:"JWT_ISSUER, default=commerce-api"`
	// AdminSignupEnabled gates POST /api/admin/signup.
	AdminSignupEnabled bool `env:"ADMIN_SIGNUP_ENABLED, default=true"`
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI,           default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,            default=commerce"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=50"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir      string `env:"UPLOAD_DIR,       default=./uploads"`
	MaxBytes int64  `env:"UPLOAD_MAX_BYTES, default=5242880"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves the configuration from lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.JWTTTL <= 0 {
		return nil, fmt.Errorf("config: JWT_TTL must be positive, got %s", cfg.Auth.JWTTTL)
	}
	if cfg.Uploads.MaxBytes <= 0 {
		return nil, fmt.Errorf("config: UPLOAD_MAX_BYTES must be positive, got %d", cfg.Uploads.MaxBytes)
	}
	if cfg.IsProduction() {
		for _, o := range cfg.CORSOrigins {
			if o == "*" {
				return nil, errors.New("config: CORS_ORIGINS must list explicit origins in production")
			}
		}
	}
	return &cfg, nil
}
