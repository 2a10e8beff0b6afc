package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
)

type Store string

const (
	StoreMemory   Store = "memory"
	StorePostgres Store = "postgres"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Molog"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Store    Store  `envconfig:"STORE" default:"memory"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"molog"`

		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	}

	Auth struct {
		// JWTSecret enables bearer authentication on the API when set.
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}

	Ledger struct {
		AllowDragCopy bool   `envconfig:"LEDGER_ALLOW_DRAG_COPY" default:"false"`
		WeekStart     string `envconfig:"LEDGER_WEEK_START" default:"sunday"`
		Capacity      int    `envconfig:"LEDGER_CAPACITY" default:"3"`
		ViewMode      string `envconfig:"LEDGER_VIEW" default:"day"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// SlogLevel maps LOG_LEVEL onto a slog level. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// WeekStart parses LEDGER_WEEK_START ("sunday", "monday", ...).
func (c *Config) WeekStart() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.Ledger.WeekStart))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}

	return time.Sunday, fmt.Errorf("unknown week start %q", c.Ledger.WeekStart)
}

func (c *Config) ViewMode() (calendar.ViewMode, error) {
	return calendar.ParseViewMode(c.Ledger.ViewMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.App.Store {
	case StoreMemory, StorePostgres:
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.App.Store)
	}

	if _, err := cfg.WeekStart(); err != nil {
		return nil, err
	}

	if _, err := cfg.ViewMode(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
