package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Environment overrides for the [logging] section.
const (
	EnvLevel  = "SHELLGRID_LOG_LEVEL"
	EnvFormat = "SHELLGRID_LOG_FORMAT"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes a logger.
type Config struct {
	Level      zerolog.Level
	Format     string
	TimeFormat string    // console only
	Output     io.Writer // nil means stderr
}

// Settings resolves a Config from the [logging] values. Environment
// variables win over the file and verbose wins over both.
func Settings(level, format string, verbose bool) Config {
	if v := os.Getenv(EnvLevel); v != "" {
		level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		format = v
	}
	cfg := Config{Level: ParseLevel(level), Format: FormatConsole, TimeFormat: "15:04:05"}
	if strings.EqualFold(format, FormatJSON) {
		cfg.Format = FormatJSON
	}
	if verbose {
		cfg.Level = zerolog.DebugLevel
	}
	return cfg
}

// New builds a timestamped logger.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stderr
	if cfg.Output != nil {
		w = cfg.Output
	}
	if cfg.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat}
	}
	return zerolog.New(w).Level(cfg.Level).With().Timestamp().Logger()
}

// NewFromConfigValues builds a logger from [logging] values.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(Settings(level, format, false))
}

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"off":      zerolog.Disabled,
	"disabled": zerolog.Disabled,
}

// ParseLevel maps a level name to a zerolog level. Unknown names are info.
func ParseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return zerolog.InfoLevel
}
