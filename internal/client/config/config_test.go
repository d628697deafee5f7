package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, "quizmaster.db", c.DBPath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 10, c.QuestionCount)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg := load(nil)

	require.NotNil(t, cfg)
	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "api_base_url: http://file:8000\nquestion_count: 5\n")

	cfg := load([]string{"-c", path, "-n", "7"})

	assert.Equal(t, "http://file:8000", cfg.APIBaseURL)
	assert.Equal(t, 7, cfg.QuestionCount)
}

func TestLoad_SubSecondTimeoutFromFile(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "request_timeout: 500ms\n")

	cfg := load([]string{"-c", path})

	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
}

func TestLoad_TimeoutFlagOverridesFile(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "request_timeout: 1500ms\n")

	cfg := load([]string{"-c", path, "-t", "4"})

	assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
}
