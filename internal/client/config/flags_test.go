package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"--api-url", "http://10.0.0.1:9999",
			"--username", "demo",
			"--password", "demo123",
			"--name", "nightly",
			"--interval", "1.5",
			"--threshold", "50",
			"--timeout", "2"},
			expectPanic: false,
			expected: &Config{
				APIURL:    "http://10.0.0.1:9999",
				Username:  "demo",
				Password:  "demo123",
				RunName:   "nightly",
				Interval:  1500 * time.Millisecond,
				Threshold: 50,
				Timeout:   2 * time.Second,
			}},
		{name: "Test2 incorrect interval", args: []string{"cmd", "--interval", "abc"},
			expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	config := &Config{}
	config.LoadDefaults()

	assert.Equal(t, "http://localhost:8888", config.APIURL)
	assert.Equal(t, 5*time.Second, config.Interval)
	assert.Equal(t, 75.0, config.Threshold)
	assert.Equal(t, time.Duration(0), config.Timeout)
}
