package config

import "time"

// Config carries the resolved command-line/environment settings. Flag
// binding lives in cmd/server.
type Config struct {
	Bind          string
	Port          int
	AdminGrace    time.Duration
	ExportEnabled bool
	ExportFile    string
	Verbose       bool
}

func Default() Config {
	return Config{
		Bind:          "0.0.0.0",
		Port:          8080,
		AdminGrace:    60 * time.Second,
		ExportEnabled: false,
		ExportFile:    "./wordimpostor-results.txt",
	}
}
