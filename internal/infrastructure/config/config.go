package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=4000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DataDir is the record store root; one JSON file per collection.
	DataDir string `env:"DATA_DIR,   default=data"`
	// UploadDir holds the images/, videos/, and files/ subdirectories.
	UploadDir string `env:"UPLOAD_DIR, default=data/upload"`

	CORSOrigin      string `env:"CORS_ORIGIN,      default=http://localhost:3000"`
	UploadMaxBytes  int64  `env:"UPLOAD_MAX_BYTES, default=10485760"`
	ActivityWorkers int    `env:"ACTIVITY_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
