package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the quiz client.
//
// Fields:
//   - APIBaseURL: base URL of the quiz/scoring HTTP service.
//   - DBPath: SQLite file holding the durable credential.
//   - RequestTimeout: per-request HTTP timeout; 0 leaves the transport default.
//   - QuestionCount: questions requested when "start" omits a count.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DBPath         string
	RequestTimeout time.Duration
	QuestionCount  int
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DBPath = "quizmaster.db"
	c.RequestTimeout = 30 * time.Second
	c.QuestionCount = 10
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if one is given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
