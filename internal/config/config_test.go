package config

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5175" || cfg.DBDriver != "sqlite3" || cfg.MaxGuesses != 6 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != time.Hour || cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("durations = %v, %v", cfg.SessionTTL, cfg.RequestTimeout)
	}
	if cfg.Difficulty() != bot.DifficultyMedium || cfg.Level() != zerolog.InfoLevel {
		t.Fatal("unexpected difficulty or level")
	}
	if cfg.Production() {
		t.Fatal("default environment is development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("BOT_DIFFICULTY", "HARD")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.DBDriver != "sqlite" || cfg.SessionTTL != 15*time.Minute {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Difficulty() != bot.DifficultyHard || cfg.Level() != zerolog.DebugLevel {
		t.Fatal("overrides not applied")
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MAX_GUESSES", "lots")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"driver":     func(c *Config) { c.DBDriver = "postgres" },
		"guesses":    func(c *Config) { c.MaxGuesses = 0 },
		"difficulty": func(c *Config) { c.BotDifficulty = "insane" },
		"level":      func(c *Config) { c.LogLevel = "loud" },
		"secret":     func(c *Config) { c.AppEnv = "production" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatal(err)
			}
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
