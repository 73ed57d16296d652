package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is read from the environment
type Config struct {
	Port           int      `env:"PORT,default=8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=*"`
	// Seed fixes every deal when SeedSet. Zero is a seed like any other.
	Seed     int64 `env:"GAME_SEED"`
	SeedSet  bool
	MaxGames int `env:"MAX_GAMES,default=1000"`
	// IdleTimeout frees a game nobody has touched for this long
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT,default=10m"`
}

// Load decodes the environment into a Config
func Load() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", c.Port)
	}
	c.SeedSet = os.Getenv("GAME_SEED") != ""
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}

	return c, nil
}

// Addr is the address the web server listens on
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// FixedSeed is the seed every deal should use, or nil for a random deal
func (c Config) FixedSeed() *int64 {
	if !c.SeedSet {
		return nil
	}
	seed := c.Seed
	return &seed
}
