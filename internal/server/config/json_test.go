package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")
	body := `{
		"endpoint_addr": ":9000",
		"database_dsn": "postgres://x:y@z:5432/d",
		"secret_key": "json-secret",
		"token_validity_duration": "45m"
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":9000", c.EndpointAddr)
	assert.Equal(t, "postgres://x:y@z:5432/d", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 45*time.Minute, c.TokenValidityDuration)
}

func TestParseJson_NoFileFlag_KeepsDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8888", c.EndpointAddr)
}
