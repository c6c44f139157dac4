// Package config loads tool configuration from an optional YAML file
// with APPLEDICT_* environment overrides.
package config

import "runtime"

// Config is the root tool configuration.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Log     LogConfig     `yaml:"log"`
}

// ConvertConfig holds batch conversion settings.
type ConvertConfig struct {
	Workers              int      `yaml:"workers"                env:"APPLEDICT_WORKERS"                env-default:"0"`
	Suffix               string   `yaml:"suffix"                 env:"APPLEDICT_SUFFIX"                 env-default:"_processed"`
	Extensions           []string `yaml:"extensions"             env:"APPLEDICT_EXTENSIONS"             env-separator:"," env-default:".html"`
	Excludes             []string `yaml:"excludes"               env:"APPLEDICT_EXCLUDES"               env-separator:","`
	BracketTrailingSpace bool     `yaml:"bracket_trailing_space" env:"APPLEDICT_BRACKET_TRAILING_SPACE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"APPLEDICT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"APPLEDICT_LOG_FORMAT" env-default:"text"`
}

// WorkerCount resolves the configured worker count; zero means one
// worker per CPU.
func (c ConvertConfig) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
