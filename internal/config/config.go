// Package config holds globally available configuration values, either
// defaulted, read from a config.toml file, or overridden by command
// line flags before config.Setup() is called.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the config file (relative to the working directory).
	ConfFile = "./config.toml"

	// LogLevel is the standard logger level (op/go-logging Level ordinal).
	LogLevel = 4 // INFO

	// SearchLogLevel is the search-trace logger level.
	SearchLogLevel = 2 // WARNING

	// TestLogLevel is the logger level used in tests.
	TestLogLevel = 5

	// Settings is the tunable engine configuration loaded from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	Book   bookConfiguration
}

func init() {
	// Defaults are available immediately so packages that read
	// config.Settings without an explicit Setup() call (e.g. in unit
	// tests) never see a zero-valued configuration.
	Settings = conf{
		Search: defaultSearchConfiguration(),
		Eval:   defaultEvalConfiguration(),
		Book:   defaultBookConfiguration(),
	}
}

// Setup loads ConfFile if present and falls back to defaults otherwise.
// A missing or malformed config file is never fatal - it only means the
// engine runs with defaults, mirroring BookLoadError's "degrade, don't
// fail" policy.
func Setup() {
	if initialized {
		return
	}
	Settings = conf{
		Search: defaultSearchConfiguration(),
		Eval:   defaultEvalConfiguration(),
		Book:   defaultBookConfiguration(),
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found or invalid, using defaults:", err)
	}
	initialized = true
}
