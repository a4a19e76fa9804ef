package cmd

import (
	"log/slog"
	"strings"
)

const (
	DefaultHTTPPort      = "8080"
	DefaultBoardSchedule = "*/30 * * * * *"
)

type Config struct {
	HTTPPort              string
	LogLevel              string
	KitchenBoardSchedule  string
	DispatchBoardSchedule string
}

// WithDefaults fills empty fields with their default values.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.LogLevel == "" {
		c.LogLevel = slog.LevelInfo.String()
	}
	if c.KitchenBoardSchedule == "" {
		c.KitchenBoardSchedule = DefaultBoardSchedule
	}
	if c.DispatchBoardSchedule == "" {
		c.DispatchBoardSchedule = DefaultBoardSchedule
	}
	return c
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error", case-insensitive).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
