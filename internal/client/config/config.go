// Package config loads the CPU monitor configuration from defaults and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the CPU monitor.
//
// Interval is the wall-clock delay between samples. Timeout bounds each
// HTTP call; zero means block until the call resolves.
type Config struct {
	APIURL    string
	Username  string
	Password  string
	RunName   string
	Interval  time.Duration
	Threshold float64
	Timeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8888"
	c.Interval = 5 * time.Second
	c.Threshold = 75.0
	c.Timeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
