package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	--api-url string     base URL of the telemetry API
//	--username string    account to authenticate as
//	--password string    password (prompted interactively when omitted)
//	--name string        test run name (server picks a default when empty)
//	--interval float     seconds between samples
//	--threshold float    CPU usage percentage treated as "high"
//	--timeout float      HTTP call timeout in seconds, 0 blocks indefinitely
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-api-url", "--api-url",
		"-username", "--username",
		"-password", "--password",
		"-name", "--name",
		"-interval", "--interval",
		"-threshold", "--threshold",
		"-timeout", "--timeout",
	})

	fs := flag.NewFlagSet("monitor", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the telemetry API")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "account to authenticate as")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "password for the account")
	fs.StringVar(&cfg.RunName, "name", cfg.RunName, "test run name")
	interval := fs.Float64("interval", cfg.Interval.Seconds(), "seconds between samples")
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "CPU usage percentage treated as high")
	timeout := fs.Float64("timeout", cfg.Timeout.Seconds(), "HTTP call timeout in seconds (0 blocks)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Interval = time.Duration(*interval * float64(time.Second))
	cfg.Timeout = time.Duration(*timeout * float64(time.Second))
}
