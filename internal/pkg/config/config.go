package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port string `env:"PORT,          default=8080"`
	Env  string `env:"ENV,           default=local"`

	// JWTSecret signs every session token. Startup must abort when it is
	// missing or shorter than 64 bytes; auth.NewTokenCodec enforces that.
	JWTSecret string `env:"JWT_SECRET"`

	// ClientOrigin is the SPA origin allowed by CORS. The cookie policy must
	// agree with it on SameSite/Secure.
	ClientOrigin string `env:"CLIENT_ORIGIN, default=http://localhost:5173"`

	// CookieDomain is the registrable parent domain (leading dot) the session
	// cookie is shared across in staging/production. Never derived from
	// request headers. Empty scopes the cookie to the exact host.
	CookieDomain string `env:"COOKIE_DOMAIN"`

	LogLevel string `env:"LOG_LEVEL,  default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wheel_of_life"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
