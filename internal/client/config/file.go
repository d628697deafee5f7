package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/quizmaster/internal/flagx"
	"github.com/dmitrijs2005/quizmaster/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config. Zero values mean "not set"
// and leave the current Config value untouched.
type FileConfig struct {
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	DBPath         string         `json:"db_path" yaml:"db_path"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	QuestionCount  int            `json:"question_count" yaml:"question_count"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// It panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.QuestionCount != 0 {
		cfg.QuestionCount = fc.QuestionCount
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
