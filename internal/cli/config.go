package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mcoot/leaderboard/internal/display"
)

// Config holds CLI configuration
type Config struct {
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:  getEnvOrDefault("LEADERBOARD_OUTPUT", display.FormatText),
		Verbose: getEnvBool("LEADERBOARD_VERBOSE"),
	}
}

// NewLogger creates the JSON logger used by commands. Stdout is reserved for
// the listing, so logs go to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
