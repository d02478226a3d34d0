// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
)

// Config is the full set of server settings.
type Config struct {
	Port     string `env:"PORT"      envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV"   envDefault:"development"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite3"`
	DBPath   string `env:"DB_PATH"   envDefault:"./data/app.db"`

	ClientOrigin   string `env:"CLIENT_ORIGIN"    envDefault:"http://localhost:5173"`
	JWTSecret      string `env:"JWT_SECRET"       envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME"      envDefault:"wordle_token"`
	DailySalt      string `env:"DAILY_SALT"       envDefault:"local_dev_salt"`

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`

	SessionTTL     time.Duration `env:"SESSION_TTL"     envDefault:"1h"`
	MaxGuesses     int           `env:"MAX_GUESSES"     envDefault:"6"`
	BotDifficulty  string        `env:"BOT_DIFFICULTY"  envDefault:"medium"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Production reports whether cookies must be Secure.
func (c Config) Production() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Difficulty returns the parsed default bot difficulty.
func (c Config) Difficulty() bot.Difficulty {
	d, err := bot.ParseDifficulty(c.BotDifficulty)
	if err != nil {
		return bot.DifficultyMedium
	}
	return d
}

// Level returns the parsed zerolog level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.DBDriver != "sqlite3" && c.DBDriver != "sqlite" {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be sqlite3 or sqlite, got %q", c.DBDriver))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH is required"))
	}
	if c.MaxGuesses < 1 {
		errs = append(errs, fmt.Errorf("MAX_GUESSES must be positive, got %d", c.MaxGuesses))
	}
	if c.JWTExpiresDays < 1 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRES_DAYS must be positive, got %d", c.JWTExpiresDays))
	}
	if _, err := bot.ParseDifficulty(c.BotDifficulty); err != nil {
		errs = append(errs, fmt.Errorf("BOT_DIFFICULTY: %w", err))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.Production() && c.JWTSecret == "dev_secret_change_me" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	return errors.Join(errs...)
}
