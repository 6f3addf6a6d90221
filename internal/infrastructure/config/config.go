package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	BcryptCost int    `env:"BCRYPT_COST, default=10"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	Audit AuditConfig
}

// JWTConfig holds the per-kind signing secrets and expiry horizons.
// The secrets must differ; sharing one would let a learner token
// authenticate as an instructor.
type JWTConfig struct {
	LearnerSecret    string        `env:"JWT_LEARNER_SECRET"`
	InstructorSecret string        `env:"JWT_INSTRUCTOR_SECRET"`
	LearnerTTL       time.Duration `env:"JWT_LEARNER_TTL,    default=2h"`
	InstructorTTL    time.Duration `env:"JWT_INSTRUCTOR_TTL, default=2h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_market"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.LearnerSecret == "" || cfg.JWT.InstructorSecret == "" {
		return nil, fmt.Errorf("config: JWT_LEARNER_SECRET and JWT_INSTRUCTOR_SECRET are required")
	}
	if cfg.JWT.LearnerSecret == cfg.JWT.InstructorSecret {
		return nil, fmt.Errorf("config: learner and instructor JWT secrets must differ")
	}
	return &cfg, nil
}
