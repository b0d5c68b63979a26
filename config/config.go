package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains all server configuration parameters.
type Config struct {
	LogLevel string  `env:"LOG_LEVEL" envDefault:"info"`
	Server   Server  `envPrefix:"SERVER_"`
	Badger   Badger  `envPrefix:"BADGER_"`
	JWT      JWT     `envPrefix:"JWT_"`
	Storage  Storage `envPrefix:"STORAGE_"`
}

// Server contains HTTP server parameters.
type Server struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// Badger contains document store parameters.
type Badger struct {
	Path string `env:"PATH" envDefault:"data/badger"`
}

// JWT contains session token parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"somesupersecretsecret"`
}

// Storage contains image storage parameters. Backend is either "disk" or
// "minio"; the minio fields are ignored for the disk backend.
type Storage struct {
	Backend   string `env:"BACKEND" envDefault:"disk"`
	ImageDir  string `env:"IMAGE_DIR" envDefault:"images"`
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"snapfeed-images"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
