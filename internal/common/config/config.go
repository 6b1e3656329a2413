package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	// Remote store credentials. A non-empty Addr selects the Redis backend
	// for the whole process lifetime; otherwise the local bbolt store is
	// used. Read once at startup, never re-checked.
	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:""`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Identity struct {
		// Path of the local fallback store file.
		LocalStorePath string `env:"LOCAL_STORE_PATH" envDefault:"data/identities.db"`

		// How often the expiration sweep fires.
		SweepIntervalMinutes int `env:"SWEEP_INTERVAL_MINUTES" envDefault:"1"`
	}
}

// Load reads configuration from the environment, optionally seeded from a
// .env file.
func Load() *Config {
	// Missing .env is fine; in production the variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}

// UseRemoteStore reports whether remote-store credentials are present. The
// decision is made once at process start; a remote outage at startup
// deliberately downgrades the whole session to the local store.
func (c *Config) UseRemoteStore() bool {
	return c.Redis.Addr != ""
}
