package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/quizmaster/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are looked at; everything else in args is ignored.
//
// It panics on malformed values, like the file loader.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the quiz service")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.QuestionCount, "n", cfg.QuestionCount, "default number of questions")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
