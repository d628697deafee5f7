// Package config loads runtime configuration for the quiz client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the quiz service
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-n int      default number of questions per quiz
//	-l string   log level
//
// # File schema
//
//	api_base_url: http://localhost:8000
//	db_path: quizmaster.db
//	request_timeout: 30s
//	question_count: 10
//	log_level: info
//
// Durations accept a Go duration string or integer nanoseconds.
package config
